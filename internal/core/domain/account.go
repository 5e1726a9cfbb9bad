package domain

import "fmt"

// Account is the aggregate guarding balance invariants: the balance always
// carries the account currency and never goes negative. The balance is
// mutated in place within a single payment; serialization across payments
// is the responsibility of the service and storage layers.
type Account struct {
	id       AccountID
	currency Currency
	balance  Money
}

// NewAccount creates an account. The balance must be denominated in the
// account currency.
func NewAccount(id AccountID, currency Currency, balance Money) (*Account, error) {
	if balance.Currency() != currency {
		return nil, fmt.Errorf("%w: balance is %s, account is %s", ErrCurrencyMismatch, balance.Currency(), currency)
	}
	return &Account{id: id, currency: currency, balance: balance}, nil
}

func (a *Account) ID() AccountID {
	return a.id
}

func (a *Account) Currency() Currency {
	return a.currency
}

// Balance returns the current balance snapshot.
func (a *Account) Balance() Money {
	return a.balance
}

// Credit increases the balance. The money must match the account currency.
func (a *Account) Credit(money Money) error {
	if money.Currency() != a.currency {
		return fmt.Errorf("%w: cannot credit %s account with %s", ErrCurrencyMismatch, a.currency, money.Currency())
	}
	balance, err := a.balance.Add(money)
	if err != nil {
		return err
	}
	a.balance = balance
	return nil
}

// Debit decreases the balance. It fails without touching the balance when
// the currency differs or the amount exceeds the available funds.
func (a *Account) Debit(money Money) error {
	if money.Currency() != a.currency {
		return fmt.Errorf("%w: cannot debit %s account with %s", ErrCurrencyMismatch, a.currency, money.Currency())
	}
	balance, err := a.balance.Subtract(money)
	if err != nil {
		return err
	}
	a.balance = balance
	return nil
}
