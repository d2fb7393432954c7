package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "expected %s, got %s", want, got)
}

func mustProduct(t *testing.T, name, price string, stock int, opts ...ProductOption) *Product {
	t.Helper()
	p, err := NewProduct(name, dec(price), stock, opts...)
	require.NoError(t, err)
	return p
}

func TestNewProduct_Variants(t *testing.T) {
	tomorrow := time.Now().Add(24 * time.Hour)

	plain := mustProduct(t, "Scratch card", "50", 10)
	expirable := mustProduct(t, "Milk", "12", 10, WithExpiry(tomorrow))
	shippable := mustProduct(t, "TV", "500", 3, WithWeight(dec("7.5")))
	both := mustProduct(t, "Cheese", "100", 5, WithExpiry(tomorrow), WithWeight(dec("0.2")))

	assert.Equal(t, CapabilityNone, plain.Capabilities())
	assert.Equal(t, CapabilityExpirable, expirable.Capabilities())
	assert.Equal(t, CapabilityShippable, shippable.Capabilities())
	assert.True(t, both.Has(CapabilityExpirable|CapabilityShippable))
	assert.Equal(t, "expirable+shippable", both.Capabilities().String())

	_, ok := plain.Expiry()
	assert.False(t, ok)
	_, ok = plain.Weight()
	assert.False(t, ok)

	at, ok := expirable.Expiry()
	assert.True(t, ok)
	assert.Equal(t, tomorrow, at)

	w, ok := shippable.Weight()
	assert.True(t, ok)
	assertDecimal(t, "7.5", w)

	assert.NotEqual(t, plain.ID(), expirable.ID())
}

func TestNewProduct_Validation(t *testing.T) {
	_, err := NewProduct("", dec("1"), 1)
	assert.ErrorIs(t, err, ErrProductNameRequired)

	_, err = NewProduct("Widget", dec("-1"), 1)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewProduct("Widget", dec("1"), -1)
	assert.ErrorIs(t, err, ErrInvalidStock)

	_, err = NewProduct("Widget", dec("1"), 1, WithWeight(dec("-0.1")))
	assert.ErrorIs(t, err, ErrInvalidWeight)

	p, err := NewProduct("Free sample", decimal.Zero, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock())
}

func TestProduct_IsExpired(t *testing.T) {
	expiry := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	p := mustProduct(t, "Biscuits", "150", 2, WithExpiry(expiry))

	assert.False(t, p.IsExpiredAt(expiry.Add(-time.Nanosecond)))
	assert.True(t, p.IsExpiredAt(expiry), "expiry instant itself counts as expired")
	assert.True(t, p.IsExpiredAt(expiry.Add(time.Hour)))

	plain := mustProduct(t, "Card", "50", 2)
	assert.False(t, plain.IsExpired())
	assert.False(t, plain.IsExpiredAt(time.Now().Add(100*365*24*time.Hour)))
}

func TestProduct_IsExpired_EvaluatedLive(t *testing.T) {
	p := mustProduct(t, "Yogurt", "3", 1, WithExpiry(time.Now().Add(20*time.Millisecond)))
	assert.False(t, p.IsExpired())

	require.Eventually(t, p.IsExpired, time.Second, 10*time.Millisecond, "product never expired")
}

func TestProduct_ReduceStock(t *testing.T) {
	p := mustProduct(t, "Widget", "10", 5)

	require.NoError(t, p.ReduceStock(3))
	assert.Equal(t, 2, p.Stock())

	err := p.ReduceStock(3)
	require.ErrorIs(t, err, ErrInsufficientStock)
	var stockErr *InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "Widget", stockErr.Product)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 2, p.Stock(), "failed reduction must not clamp")

	require.NoError(t, p.ReduceStock(2))
	assert.Equal(t, 0, p.Stock())

	assert.ErrorIs(t, p.ReduceStock(0), ErrInvalidQuantity)
}
