package ports

import (
	"context"
	"time"

	"bank-payment-service/internal/core/domain"
)

// AccountRepository is the persistence boundary consumed by the payment
// core. Implementations rehydrate accounts from an append-only transaction
// ledger and record executed payments as two legs (debit and credit).
type AccountRepository interface {
	// FindAccount rehydrates an account by replaying its ledger.
	// Returns nil (and no error) when the account does not exist.
	FindAccount(ctx context.Context, id domain.AccountID) (*domain.Account, error)

	// SavePayment durably records the debit and credit legs of an executed
	// payment, each tagged with the payment id and the counter-party
	// account id. Both legs are written atomically or not at all.
	SavePayment(ctx context.Context, payment *domain.Payment) error

	// CountPaymentsByDate counts payments debited from the account on the
	// given UTC calendar day. Day truncation must be identical on the
	// write and read paths.
	CountPaymentsByDate(ctx context.Context, id domain.AccountID, date time.Time) (int, error)
}

// AccountCreator sets up new accounts with an opening balance. Kept apart
// from AccountRepository: the payment core never creates accounts.
type AccountCreator interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
}
