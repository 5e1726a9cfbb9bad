package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bank-payment-service/internal/core/domain"

	"github.com/google/uuid"
)

const (
	debitEntry  = "DEBIT"
	creditEntry = "CREDIT"
)

// entry is one leg of a payment in the append-only ledger.
type entry struct {
	id               uuid.UUID
	entryType        string
	amount           int64
	currency         domain.Currency
	bookedOn         string // UTC calendar day, YYYY-MM-DD
	paymentID        string
	relatedAccountID string
}

// AccountRepo is an in-memory AccountRepository backed by an append-only
// transaction ledger per account. Balances are rebuilt by replaying the
// ledger, mirroring the durable implementation. Safe for concurrent use.
type AccountRepo struct {
	mu         sync.RWMutex
	currencies map[domain.AccountID]domain.Currency
	ledgers    map[domain.AccountID][]entry
}

// NewAccountRepo creates an empty in-memory repository.
func NewAccountRepo() *AccountRepo {
	return &AccountRepo{
		currencies: make(map[domain.AccountID]domain.Currency),
		ledgers:    make(map[domain.AccountID][]entry),
	}
}

// CreateAccount registers an account. A non-zero opening balance is
// recorded as a credit leg so replay reproduces it.
func (r *AccountRepo) CreateAccount(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.currencies[account.ID()]; exists {
		return fmt.Errorf("account %s already exists", account.ID())
	}
	r.currencies[account.ID()] = account.Currency()

	if account.Balance().Amount() > 0 {
		r.ledgers[account.ID()] = append(r.ledgers[account.ID()], entry{
			id:               uuid.New(),
			entryType:        creditEntry,
			amount:           account.Balance().Amount(),
			currency:         account.Currency(),
			bookedOn:         dayOf(time.Now()),
			paymentID:        domain.NewPaymentID().String(),
			relatedAccountID: account.ID().String(),
		})
	}
	return nil
}

// FindAccount rehydrates an account by replaying its ledger, or returns
// nil when the account was never created.
func (r *AccountRepo) FindAccount(_ context.Context, id domain.AccountID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	currency, ok := r.currencies[id]
	if !ok {
		return nil, nil
	}

	balance, err := domain.NewMoney(0, currency)
	if err != nil {
		return nil, err
	}
	account, err := domain.NewAccount(id, currency, balance)
	if err != nil {
		return nil, err
	}

	for _, e := range r.ledgers[id] {
		money, err := domain.NewMoney(e.amount, e.currency)
		if err != nil {
			return nil, fmt.Errorf("replay ledger for %s: %w", id, err)
		}
		switch e.entryType {
		case creditEntry:
			err = account.Credit(money)
		case debitEntry:
			err = account.Debit(money)
		default:
			err = fmt.Errorf("unsupported transaction type %q", e.entryType)
		}
		if err != nil {
			return nil, fmt.Errorf("replay ledger for %s: %w", id, err)
		}
	}
	return account, nil
}

// SavePayment appends the debit and credit legs under one lock, so both
// become visible together or not at all.
func (r *AccountRepo) SavePayment(_ context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fromID := payment.FromAccount().ID()
	toID := payment.ToAccount().ID()
	day := dayOf(payment.Date())

	r.ledgers[fromID] = append(r.ledgers[fromID], entry{
		id:               uuid.New(),
		entryType:        debitEntry,
		amount:           payment.DebitMoney().Amount(),
		currency:         payment.DebitMoney().Currency(),
		bookedOn:         day,
		paymentID:        payment.ID().String(),
		relatedAccountID: toID.String(),
	})
	r.ledgers[toID] = append(r.ledgers[toID], entry{
		id:               uuid.New(),
		entryType:        creditEntry,
		amount:           payment.CreditMoney().Amount(),
		currency:         payment.CreditMoney().Currency(),
		bookedOn:         day,
		paymentID:        payment.ID().String(),
		relatedAccountID: fromID.String(),
	})
	return nil
}

// CountPaymentsByDate counts debit legs booked on the given UTC day.
func (r *AccountRepo) CountPaymentsByDate(_ context.Context, id domain.AccountID, date time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day := dayOf(date)
	count := 0
	for _, e := range r.ledgers[id] {
		if e.entryType == debitEntry && e.bookedOn == day {
			count++
		}
	}
	return count, nil
}

func dayOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
