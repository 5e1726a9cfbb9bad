package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// AccountID uniquely identifies an account. Equality is by value.
type AccountID struct {
	value uuid.UUID
}

// NewAccountID generates a fresh account id.
func NewAccountID() AccountID {
	return AccountID{value: uuid.New()}
}

// ParseAccountID validates and wraps a string representation.
func ParseAccountID(s string) (AccountID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return AccountID{}, fmt.Errorf("%w: account id %q", ErrInvalidIdentifier, s)
	}
	return AccountID{value: u}, nil
}

func (id AccountID) String() string {
	return id.value.String()
}

// UUID exposes the underlying value for storage adapters.
func (id AccountID) UUID() uuid.UUID {
	return id.value
}

// PaymentID uniquely identifies a payment. Equality is by value.
type PaymentID struct {
	value uuid.UUID
}

// NewPaymentID generates a fresh payment id.
func NewPaymentID() PaymentID {
	return PaymentID{value: uuid.New()}
}

// ParsePaymentID validates and wraps a string representation.
func ParsePaymentID(s string) (PaymentID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return PaymentID{}, fmt.Errorf("%w: payment id %q", ErrInvalidIdentifier, s)
	}
	return PaymentID{value: u}, nil
}

func (id PaymentID) String() string {
	return id.value.String()
}

// UUID exposes the underlying value for storage adapters.
func (id PaymentID) UUID() uuid.UUID {
	return id.value
}
