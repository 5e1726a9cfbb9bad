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

// executionGuardTTL is how long an executed payment id stays reserved.
const executionGuardTTL = 48 * time.Hour

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	accountRepo      ports.AccountRepository
	guard            ports.ExecutionGuard // nil = in-process protection only
	feePolicies      []domain.PaymentFeePolicy
	maxDailyPayments int
	locks            *accountLocks
	log              zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl. Fee policies apply
// in the given order.
func NewPaymentService(
	accountRepo ports.AccountRepository,
	guard ports.ExecutionGuard,
	maxDailyPayments int,
	feePolicies []domain.PaymentFeePolicy,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		accountRepo:      accountRepo,
		guard:            guard,
		feePolicies:      feePolicies,
		maxDailyPayments: maxDailyPayments,
		locks:            newAccountLocks(),
		log:              log,
	}
}

// MakePayment enforces the daily transfer limit, applies the configured
// fee policies, executes the debit/credit, and persists the result. Both
// accounts stay locked for the whole sequence, and the payer's balance is
// re-read under the lock: the drafted payment carries a snapshot taken
// before serialization, and another payment may have debited the account
// since.
func (s *PaymentServiceImpl) MakePayment(ctx context.Context, payment *domain.Payment) error {
	unlock := s.locks.lock(payment.FromAccount().ID(), payment.ToAccount().ID())
	defer unlock()

	count, err := s.accountRepo.CountPaymentsByDate(ctx, payment.FromAccount().ID(), payment.Date())
	if err != nil {
		return apperror.InternalError(fmt.Errorf("count daily payments: %w", err))
	}
	// >= rather than ==: counts can overshoot the limit under
	// concurrent writes, and those must stay blocked too.
	if count >= s.maxDailyPayments {
		return apperror.ErrPaymentFailed(fmt.Errorf(
			"%w: max %d payments per day, %d already made", domain.ErrDailyLimitExceeded, s.maxDailyPayments, count))
	}

	for _, policy := range s.feePolicies {
		if err := payment.ApplyFeePolicy(policy); err != nil {
			return apperror.ErrPaymentFailed(err)
		}
	}

	fresh, err := s.accountRepo.FindAccount(ctx, payment.FromAccount().ID())
	if err != nil {
		return apperror.InternalError(fmt.Errorf("reload payer account: %w", err))
	}
	if fresh == nil {
		return apperror.InternalError(fmt.Errorf("payer account %s no longer exists", payment.FromAccount().ID()))
	}
	insufficient, err := fresh.Balance().LessThan(payment.DebitMoney())
	if err != nil {
		return apperror.ErrPaymentFailed(err)
	}
	if insufficient {
		return apperror.ErrPaymentFailed(fmt.Errorf(
			"%w: balance %s cannot cover debit of %s", domain.ErrInsufficientFunds, fresh.Balance(), payment.DebitMoney()))
	}

	if s.guard != nil {
		acquired, err := s.guard.Acquire(ctx, payment.ID(), executionGuardTTL)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("acquire execution guard: %w", err))
		}
		if !acquired {
			return apperror.ErrPaymentFailed(fmt.Errorf("%w: payment %s", domain.ErrAlreadyExecuted, payment.ID()))
		}
	}

	if err := payment.Execute(); err != nil {
		return apperror.ErrPaymentFailed(err)
	}

	if err := s.accountRepo.SavePayment(ctx, payment); err != nil {
		return apperror.InternalError(fmt.Errorf("save payment: %w", err))
	}

	s.log.Info().
		Str("payment_id", payment.ID().String()).
		Str("from_account", payment.FromAccount().ID().String()).
		Str("to_account", payment.ToAccount().ID().String()).
		Int64("debit", payment.DebitMoney().Amount()).
		Int64("credit", payment.CreditMoney().Amount()).
		Str("currency", payment.Money().Currency().String()).
		Msg("payment executed")

	return nil
}
