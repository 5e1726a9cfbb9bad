package service

import (
	"context"
	"fmt"
	"time"

	"bank-payment-service/internal/core/domain"
	"bank-payment-service/internal/core/ports"
	"bank-payment-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// MakePaymentServiceImpl implements ports.MakePaymentService: the thin
// application layer that turns primitive inputs into domain objects and
// hands them to the payment core. Lookup failures and self-transfers are
// input-validation errors, surfaced before any domain object is built.
type MakePaymentServiceImpl struct {
	accountRepo ports.AccountRepository
	paymentSvc  ports.PaymentService
	log         zerolog.Logger
}

// NewMakePaymentService creates a new MakePaymentServiceImpl.
func NewMakePaymentService(
	accountRepo ports.AccountRepository,
	paymentSvc ports.PaymentService,
	log zerolog.Logger,
) *MakePaymentServiceImpl {
	return &MakePaymentServiceImpl{
		accountRepo: accountRepo,
		paymentSvc:  paymentSvc,
		log:         log,
	}
}

// MakePayment converts the request, looks up both accounts, rejects
// self-transfers, and delegates to the payment core.
func (s *MakePaymentServiceImpl) MakePayment(ctx context.Context, req ports.MakePaymentRequest) (*ports.MakePaymentReceipt, error) {
	paymentID, err := domain.ParsePaymentID(req.PaymentID)
	if err != nil {
		return nil, apperror.ErrInvalidIdentifier(err)
	}
	fromID, err := domain.ParseAccountID(req.FromAccountID)
	if err != nil {
		return nil, apperror.ErrInvalidIdentifier(err)
	}
	toID, err := domain.ParseAccountID(req.ToAccountID)
	if err != nil {
		return nil, apperror.ErrInvalidIdentifier(err)
	}
	currency, err := domain.ParseCurrency(req.CurrencyCode)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	fromAccount, err := s.accountRepo.FindAccount(ctx, fromID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find payer account: %w", err))
	}
	if fromAccount == nil {
		return nil, apperror.ErrAccountNotFound(req.FromAccountID)
	}

	toAccount, err := s.accountRepo.FindAccount(ctx, toID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find payee account: %w", err))
	}
	if toAccount == nil {
		return nil, apperror.ErrAccountNotFound(req.ToAccountID)
	}

	if fromAccount.ID() == toAccount.ID() {
		return nil, apperror.ErrSelfTransfer()
	}

	money, err := domain.NewMoney(req.Amount, currency)
	if err != nil {
		return nil, apperror.ErrPaymentFailed(err)
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	payment, err := domain.NewPayment(paymentID, money, fromAccount, toAccount, date)
	if err != nil {
		return nil, apperror.ErrPaymentFailed(err)
	}

	if err := s.paymentSvc.MakePayment(ctx, payment); err != nil {
		s.log.Warn().Err(err).Str("payment_id", req.PaymentID).Msg("payment rejected")
		return nil, err
	}

	return &ports.MakePaymentReceipt{
		PaymentID:    payment.ID().String(),
		FromAccount:  fromAccount.ID().String(),
		ToAccount:    toAccount.ID().String(),
		DebitAmount:  payment.DebitMoney().Amount(),
		CreditAmount: payment.CreditMoney().Amount(),
		Currency:     currency.String(),
		Date:         payment.Date(),
	}, nil
}
