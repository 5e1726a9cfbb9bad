package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped cause (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps a cause with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Input validation (VAL) ----
// Raised by the application entry point before any domain object exists.

func ErrInvalidIdentifier(err error) *AppError {
	return Wrap("VAL_001", "Invalid identifier", http.StatusBadRequest, err)
}

func ErrAccountNotFound(accountID string) *AppError {
	return New("VAL_002", fmt.Sprintf("Account with ID %q does not exist", accountID), http.StatusNotFound)
}

func ErrSelfTransfer() *AppError {
	return New("VAL_003", "Payer and receiver must be different accounts", http.StatusBadRequest)
}

// Validation returns a malformed-request error (e.g. body binding).
func Validation(message string) *AppError {
	return New("VAL_004", message, http.StatusBadRequest)
}

// ---- Payment domain (PAY) ----

// ErrPaymentFailed normalizes any domain-level failure raised while
// making a payment into the single externally visible payment error,
// carrying the original message. The cause stays wrapped so errors.Is
// can still match the domain sentinel.
func ErrPaymentFailed(err error) *AppError {
	return Wrap("PAY_001", err.Error(), http.StatusUnprocessableEntity, err)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an infrastructure failure as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
