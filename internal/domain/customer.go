package domain

import "github.com/shopspring/decimal"

type Customer struct {
	name    string
	balance decimal.Decimal
}

func NewCustomer(name string, balance decimal.Decimal) (*Customer, error) {
	if balance.IsNegative() {
		return nil, ErrInvalidBalance
	}
	return &Customer{name: name, balance: balance}, nil
}

func (c *Customer) Name() string { return c.name }

func (c *Customer) Balance() decimal.Decimal { return c.balance }

// Pay debits amount from the balance. The balance may reach zero but never
// goes negative; a failed payment leaves it untouched.
func (c *Customer) Pay(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(c.balance) {
		return &InsufficientBalanceError{
			Customer: c.name,
			Amount:   amount,
			Balance:  c.balance,
		}
	}
	c.balance = c.balance.Sub(amount)
	return nil
}
