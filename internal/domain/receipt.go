package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var gramsPerKilogram = decimal.NewFromInt(1000)

type ShipmentItem struct {
	Quantity    int             `json:"quantity"`
	Name        string          `json:"name"`
	WeightGrams decimal.Decimal `json:"weight_grams"`
}

// ShipmentNotice is present on a receipt only when a shipping fee was charged.
type ShipmentNotice struct {
	Items         []ShipmentItem  `json:"items"`
	TotalWeightKg decimal.Decimal `json:"total_weight_kg"`
}

type ReceiptItem struct {
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Receipt represents the checkout transcript: shipment notice, line items and totals
type Receipt struct {
	CartID           uuid.UUID       `json:"cart_id"`
	Customer         string          `json:"customer"`
	Shipment         *ShipmentNotice `json:"shipment,omitempty"`
	Items            []ReceiptItem   `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	ShippingFee      decimal.Decimal `json:"shipping_fee"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	IssuedAt         time.Time       `json:"issued_at"`
}
