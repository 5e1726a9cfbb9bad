package domain

import (
	"fmt"
	"time"
)

type paymentState int

const (
	paymentDrafted paymentState = iota
	paymentExecuted
)

// Payment is a single-use transfer between two accounts: drafted,
// optionally fee-adjusted, then executed exactly once. The debit and
// credit amounts start equal to the requested money; fee policies raise
// the debit side only, so the payee always receives the requested amount.
type Payment struct {
	id          PaymentID
	money       Money
	fromAccount *Account
	toAccount   *Account
	date        time.Time
	debitMoney  Money
	creditMoney Money
	state       paymentState
}

// NewPayment drafts a payment. It validates currency consistency between
// the money and both account balances, rejects non-positive amounts, and
// requires the payer to cover at least the base amount before fees.
func NewPayment(id PaymentID, money Money, fromAccount, toAccount *Account, date time.Time) (*Payment, error) {
	if !money.SameCurrencyAs(fromAccount.Balance()) || !money.SameCurrencyAs(toAccount.Balance()) {
		return nil, fmt.Errorf("%w: payment in %s requires both accounts in the same currency", ErrCurrencyMismatch, money.Currency())
	}
	if money.Amount() <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be higher than 0", ErrInvalidAmount)
	}
	insufficient, err := fromAccount.Balance().LessThan(money)
	if err != nil {
		return nil, err
	}
	if insufficient {
		return nil, fmt.Errorf("%w: balance %s cannot cover payment of %s", ErrInsufficientFunds, fromAccount.Balance(), money)
	}
	return &Payment{
		id:          id,
		money:       money,
		fromAccount: fromAccount,
		toAccount:   toAccount,
		date:        date,
		debitMoney:  money,
		creditMoney: money,
	}, nil
}

func (p *Payment) ID() PaymentID {
	return p.id
}

// Money returns the requested transfer amount, before fees.
func (p *Payment) Money() Money {
	return p.money
}

func (p *Payment) FromAccount() *Account {
	return p.fromAccount
}

func (p *Payment) ToAccount() *Account {
	return p.toAccount
}

func (p *Payment) Date() time.Time {
	return p.date
}

// DebitMoney returns the amount the payer will be (or was) debited,
// including fees applied so far.
func (p *Payment) DebitMoney() Money {
	return p.debitMoney
}

// CreditMoney returns the amount the payee receives. Fees never touch it.
func (p *Payment) CreditMoney() Money {
	return p.creditMoney
}

// ApplyFeePolicy recomputes the debit amount and re-checks that the payer
// balance still covers it. Fee adjustment is only allowed before execution.
func (p *Payment) ApplyFeePolicy(policy PaymentFeePolicy) error {
	if p.state == paymentExecuted {
		return fmt.Errorf("%w: fee policies apply before execution", ErrAlreadyExecuted)
	}
	adjusted, err := policy.Apply(p.debitMoney)
	if err != nil {
		return err
	}
	if !adjusted.SameCurrencyAs(p.debitMoney) {
		return fmt.Errorf("%w: fee policy returned %s for a %s debit", ErrCurrencyMismatch, adjusted.Currency(), p.debitMoney.Currency())
	}
	insufficient, err := p.fromAccount.Balance().LessThan(adjusted)
	if err != nil {
		return err
	}
	if insufficient {
		return fmt.Errorf("%w: balance %s cannot cover debit of %s after fees", ErrInsufficientFunds, p.fromAccount.Balance(), adjusted)
	}
	p.debitMoney = adjusted
	return nil
}

// Execute debits the payer before crediting the payee, so a failed debit
// cannot create money out of thin air. A second call fails fast.
func (p *Payment) Execute() error {
	if p.state == paymentExecuted {
		return fmt.Errorf("%w: payment %s", ErrAlreadyExecuted, p.id)
	}
	if err := p.fromAccount.Debit(p.debitMoney); err != nil {
		return err
	}
	if err := p.toAccount.Credit(p.creditMoney); err != nil {
		return err
	}
	p.state = paymentExecuted
	return nil
}
