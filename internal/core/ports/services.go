package ports

import (
	"context"
	"time"

	"bank-payment-service/internal/core/domain"
)

// PaymentService executes a drafted payment under the daily-limit and fee
// rules, then persists it.
type PaymentService interface {
	MakePayment(ctx context.Context, payment *domain.Payment) error
}

// MakePaymentRequest carries primitive transfer inputs from outer layers.
type MakePaymentRequest struct {
	PaymentID     string
	FromAccountID string
	ToAccountID   string
	Amount        int64
	CurrencyCode  string
	Date          time.Time // zero value means "now"
}

// MakePaymentReceipt reports the executed amounts back to the caller.
type MakePaymentReceipt struct {
	PaymentID    string
	FromAccount  string
	ToAccount    string
	DebitAmount  int64
	CreditAmount int64
	Currency     string
	Date         time.Time
}

// MakePaymentService converts primitive inputs into domain objects, looks
// up both accounts, rejects self-transfers, and delegates to
// PaymentService.
type MakePaymentService interface {
	MakePayment(ctx context.Context, req MakePaymentRequest) (*MakePaymentReceipt, error)
}

// ExecutionGuard reserves a payment id before execution so the same
// payment cannot be executed twice across processes.
type ExecutionGuard interface {
	// Acquire returns true when the payment id has not been seen before.
	Acquire(ctx context.Context, id domain.PaymentID, ttl time.Duration) (bool, error)
}
