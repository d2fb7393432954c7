package receipt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fjod/go_cart/pos/internal/domain"
	"github.com/shopspring/decimal"
)

// Printer renders checkout receipts as a plain-text transcript.
type Printer struct {
	w        io.Writer
	currency string
}

func NewPrinter(w io.Writer, currency string) *Printer {
	return &Printer{w: w, currency: currency}
}

// Print writes the shipment notice (if any) followed by the receipt lines and totals.
func (p *Printer) Print(r *domain.Receipt) error {
	var b strings.Builder

	if r.Shipment != nil {
		b.WriteString("** Shipment notice **\n")
		for _, item := range r.Shipment.Items {
			fmt.Fprintf(&b, "%dx %s %sg\n", item.Quantity, item.Name, item.WeightGrams)
		}
		fmt.Fprintf(&b, "Total package weight %skg\n\n", r.Shipment.TotalWeightKg.StringFixed(1))
	}

	b.WriteString("** Checkout receipt **\n")
	for _, item := range r.Items {
		fmt.Fprintf(&b, "%dx %s %s\n", item.Quantity, item.Name, p.money(item.LineTotal))
	}
	b.WriteString("----------------------\n")
	fmt.Fprintf(&b, "Subtotal %s\n", p.money(r.Subtotal))
	fmt.Fprintf(&b, "Shipping %s\n", p.money(r.ShippingFee))
	fmt.Fprintf(&b, "Amount %s\n", p.money(r.Total))
	fmt.Fprintf(&b, "Balance %s\n", p.money(r.RemainingBalance))

	if _, err := io.WriteString(p.w, b.String()); err != nil {
		return fmt.Errorf("failed to write receipt: %w", err)
	}
	return nil
}

func (p *Printer) money(d decimal.Decimal) string {
	return p.currency + d.String()
}

// JSON encodes the receipt with amounts as decimal strings.
func JSON(r *domain.Receipt) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt: %w", err)
	}
	return data, nil
}
