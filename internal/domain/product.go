package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Capability is a set of optional facets a product may carry.
type Capability uint8

const (
	CapabilityExpirable Capability = 1 << iota
	CapabilityShippable

	CapabilityNone Capability = 0
)

// String representation (for logging)
func (c Capability) String() string {
	switch c {
	case CapabilityNone:
		return "none"
	case CapabilityExpirable:
		return "expirable"
	case CapabilityShippable:
		return "shippable"
	case CapabilityExpirable | CapabilityShippable:
		return "expirable+shippable"
	}
	return "unknown"
}

// Product is a catalog item. Its capability set is fixed at construction;
// stock is the only field that changes afterwards.
type Product struct {
	id    uuid.UUID
	name  string
	price decimal.Decimal
	stock int

	caps      Capability
	expiresAt time.Time
	weight    decimal.Decimal // kilograms
}

type ProductOption func(*Product)

// WithExpiry makes the product expirable at the given instant.
func WithExpiry(at time.Time) ProductOption {
	return func(p *Product) {
		p.caps |= CapabilityExpirable
		p.expiresAt = at
	}
}

// WithWeight makes the product shippable with the given weight in kilograms.
func WithWeight(kg decimal.Decimal) ProductOption {
	return func(p *Product) {
		p.caps |= CapabilityShippable
		p.weight = kg
	}
}

func NewProduct(name string, price decimal.Decimal, stock int, opts ...ProductOption) (*Product, error) {
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	p := &Product{
		id:    uuid.New(),
		name:  name,
		price: price,
		stock: stock,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.Has(CapabilityShippable) && p.weight.IsNegative() {
		return nil, ErrInvalidWeight
	}
	return p, nil
}

// ID is the stable handle carts use to key their lines.
func (p *Product) ID() uuid.UUID { return p.id }

func (p *Product) Name() string { return p.name }

func (p *Product) Price() decimal.Decimal { return p.price }

func (p *Product) Stock() int { return p.stock }

func (p *Product) Capabilities() Capability { return p.caps }

// Has reports whether the product carries every capability in c.
func (p *Product) Has(c Capability) bool {
	return p.caps&c == c
}

// Expiry returns the expiration instant, if the product is expirable.
func (p *Product) Expiry() (time.Time, bool) {
	if !p.Has(CapabilityExpirable) {
		return time.Time{}, false
	}
	return p.expiresAt, true
}

// Weight returns the weight in kilograms, if the product is shippable.
func (p *Product) Weight() (decimal.Decimal, bool) {
	if !p.Has(CapabilityShippable) {
		return decimal.Zero, false
	}
	return p.weight, true
}

// IsExpired checks the expiry against the current time on every call.
// Products without the expirable capability never expire.
func (p *Product) IsExpired() bool {
	return p.IsExpiredAt(time.Now())
}

func (p *Product) IsExpiredAt(now time.Time) bool {
	if !p.Has(CapabilityExpirable) {
		return false
	}
	return !now.Before(p.expiresAt)
}

// ReduceStock permanently removes qty units from stock. Requests above the
// available stock are rejected, never clamped.
func (p *Product) ReduceStock(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > p.stock {
		return &InsufficientStockError{
			Product:   p.name,
			Requested: qty,
			Available: p.stock,
		}
	}
	p.stock -= qty
	return nil
}
