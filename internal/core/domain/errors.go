package domain

import "errors"

// Domain errors are pure sentinels with no infrastructure dependency. The
// service layer wraps them into the external error contract.
var (
	ErrInvalidIdentifier  = errors.New("identifier is not a valid UUID")
	ErrUnknownCurrency    = errors.New("unknown currency code")
	ErrCurrencyMismatch   = errors.New("currency mismatch")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrDailyLimitExceeded = errors.New("daily payments limit reached")
	ErrAlreadyExecuted    = errors.New("payment already executed")
)
