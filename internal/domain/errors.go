package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrExpiredProduct      = errors.New("product is expired")
	ErrEmptyCart           = errors.New("cart is empty, nothing to checkout")
	ErrInsufficientBalance = errors.New("insufficient balance")

	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInvalidPrice        = errors.New("product price must be zero or positive")
	ErrInvalidStock        = errors.New("product stock must be zero or positive")
	ErrInvalidWeight       = errors.New("product weight must be zero or positive")
	ErrProductNameRequired = errors.New("product name is required")
	ErrInvalidBalance      = errors.New("customer balance must be zero or positive")
	ErrInvalidAmount       = errors.New("payment amount must be zero or positive")
)

// InsufficientStockError is returned when a requested quantity exceeds what is on hand.
type InsufficientStockError struct {
	Product   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %d of %q, only %d available", e.Requested, e.Product, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ExpiredProductError is returned when an expirable product is past its expiry.
type ExpiredProductError struct {
	Product   string
	ExpiredAt time.Time
}

func (e *ExpiredProductError) Error() string {
	return fmt.Sprintf("product %q expired at %s", e.Product, e.ExpiredAt.Format(time.RFC3339))
}

func (e *ExpiredProductError) Is(target error) bool {
	return target == ErrExpiredProduct
}

type InsufficientBalanceError struct {
	Customer string
	Amount   decimal.Decimal
	Balance  decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: %q owes %s but has %s", e.Customer, e.Amount, e.Balance)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
