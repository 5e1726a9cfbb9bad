package domain

import "fmt"

// Currency is a closed set of supported ISO 4217 codes.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// ParseCurrency validates a currency code against the supported set.
func ParseCurrency(code string) (Currency, error) {
	switch c := Currency(code); c {
	case USD, EUR:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
}

func (c Currency) String() string {
	return string(c)
}

// Money is an immutable amount in the smallest currency unit (e.g. cents
// for USD: $10.50 is stored as 1050). The amount is never negative and all
// arithmetic requires matching currencies; operations return new values.
type Money struct {
	amount   int64
	currency Currency
}

// NewMoney creates a Money value. Negative amounts are rejected.
func NewMoney(amount int64, currency Currency) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: amount %d is negative", ErrInvalidAmount, amount)
	}
	return Money{amount: amount, currency: currency}, nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency tag.
func (m Money) Currency() Currency {
	return m.currency
}

// SameCurrencyAs reports whether both values carry the same currency.
func (m Money) SameCurrencyAs(other Money) bool {
	return m.currency == other.currency
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) (Money, error) {
	if !m.SameCurrencyAs(other) {
		return Money{}, fmt.Errorf("%w: cannot add %s to %s", ErrCurrencyMismatch, other.currency, m.currency)
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns the difference. A result below zero is rejected so a
// Money value can never go negative.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.SameCurrencyAs(other) {
		return Money{}, fmt.Errorf("%w: cannot subtract %s from %s", ErrCurrencyMismatch, other.currency, m.currency)
	}
	if m.amount < other.amount {
		return Money{}, fmt.Errorf("%w: %d is less than %d", ErrInsufficientFunds, m.amount, other.amount)
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// LessThan compares two amounts in the same currency.
func (m Money) LessThan(other Money) (bool, error) {
	if !m.SameCurrencyAs(other) {
		return false, fmt.Errorf("%w: cannot compare %s with %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return m.amount < other.amount, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
