package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShippingFee is charged once per checkout when any line has shipping weight.
var ShippingFee = decimal.NewFromInt(25)

// CartLine holds a shared reference to a product and the accumulated quantity.
type CartLine struct {
	Product  *Product
	Quantity int
	AddedAt  time.Time
}

// Total returns price * quantity for the line.
func (l CartLine) Total() decimal.Decimal {
	return l.Product.Price().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ShippingWeight returns weight * quantity, or zero for non-shippable products.
func (l CartLine) ShippingWeight() decimal.Decimal {
	w, ok := l.Product.Weight()
	if !ok {
		return decimal.Zero
	}
	return w.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart accumulates lines keyed by product handle. Products and the customer
// are referenced, never copied, and outlive the cart.
type Cart struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	lines map[uuid.UUID]*CartLine
	order []uuid.UUID // insertion order, for stable receipts
}

func NewCart() *Cart {
	now := time.Now()
	return &Cart{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		lines:     make(map[uuid.UUID]*CartLine),
	}
}

// Add puts qty units of p into the cart, merging with an existing line for
// the same product. A failed add leaves the cart unchanged.
func (c *Cart) Add(p *Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if p.IsExpired() {
		at, _ := p.Expiry()
		return &ExpiredProductError{Product: p.Name(), ExpiredAt: at}
	}
	if qty > p.Stock() {
		return &InsufficientStockError{
			Product:   p.Name(),
			Requested: qty,
			Available: p.Stock(),
		}
	}

	now := time.Now()
	if line, exists := c.lines[p.ID()]; exists {
		line.Quantity += qty
	} else {
		c.lines[p.ID()] = &CartLine{Product: p, Quantity: qty, AddedAt: now}
		c.order = append(c.order, p.ID())
	}
	c.UpdatedAt = now
	return nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns the cart lines in the order products were first added.
func (c *Cart) Lines() []CartLine {
	result := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, *c.lines[id])
	}
	return result
}

// Quantity returns the accumulated quantity for a product handle, zero if absent.
func (c *Cart) Quantity(productID uuid.UUID) int {
	if line, exists := c.lines[productID]; exists {
		return line.Quantity
	}
	return 0
}

func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}

// ShippingWeight is the total weight in kilograms of all shippable lines.
func (c *Cart) ShippingWeight() decimal.Decimal {
	weight := decimal.Zero
	for _, line := range c.lines {
		weight = weight.Add(line.ShippingWeight())
	}
	return weight
}

// Checkout validates every line, charges the customer and only then reduces
// stock. Any error before payment succeeds leaves products and customer
// untouched.
func (c *Cart) Checkout(customer *Customer) (*Receipt, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	// First pass: validate all lines, no mutation
	now := time.Now()
	for _, id := range c.order {
		line := c.lines[id]
		p := line.Product
		if p.IsExpiredAt(now) {
			at, _ := p.Expiry()
			return nil, &ExpiredProductError{Product: p.Name(), ExpiredAt: at}
		}
		if line.Quantity > p.Stock() {
			return nil, &InsufficientStockError{
				Product:   p.Name(),
				Requested: line.Quantity,
				Available: p.Stock(),
			}
		}
	}

	subtotal := c.Subtotal()
	weight := c.ShippingWeight()
	fee := decimal.Zero
	if weight.IsPositive() {
		fee = ShippingFee
	}
	total := subtotal.Add(fee)

	if err := customer.Pay(total); err != nil {
		return nil, err
	}

	receipt := c.buildReceipt(customer, subtotal, fee, total, weight)

	// Second pass: reduce stock. Validation above guarantees this cannot fail.
	for _, id := range c.order {
		line := c.lines[id]
		if err := line.Product.ReduceStock(line.Quantity); err != nil {
			panic(fmt.Sprintf("checkout invariant violated after payment: %v", err))
		}
	}

	return receipt, nil
}

func (c *Cart) buildReceipt(customer *Customer, subtotal, fee, total, weight decimal.Decimal) *Receipt {
	receipt := &Receipt{
		CartID:           c.ID,
		Customer:         customer.Name(),
		Subtotal:         subtotal,
		ShippingFee:      fee,
		Total:            total,
		RemainingBalance: customer.Balance(),
		IssuedAt:         time.Now(),
	}

	if fee.IsPositive() {
		notice := &ShipmentNotice{TotalWeightKg: weight}
		for _, line := range c.Lines() {
			if !line.Product.Has(CapabilityShippable) {
				continue
			}
			notice.Items = append(notice.Items, ShipmentItem{
				Quantity:    line.Quantity,
				Name:        line.Product.Name(),
				WeightGrams: line.ShippingWeight().Mul(gramsPerKilogram),
			})
		}
		receipt.Shipment = notice
	}

	for _, line := range c.Lines() {
		receipt.Items = append(receipt.Items, ReceiptItem{
			Quantity:  line.Quantity,
			Name:      line.Product.Name(),
			UnitPrice: line.Product.Price(),
			LineTotal: line.Total(),
		})
	}
	return receipt
}
