package domain

import "math"

// PaymentFeePolicy adjusts the payer's debit amount. Implementations must
// be pure, deterministic, and return a value in the input currency.
// Multiple policies compose by sequential application, each consuming the
// output of the previous one, so fees compound.
type PaymentFeePolicy interface {
	Apply(money Money) (Money, error)
}

// PercentagePaymentFeePolicy adds a percentage fee on top of the amount.
// The fee is rounded half away from zero (math.Round), so 0.5% on 1000
// minor units yields 1005.
type PercentagePaymentFeePolicy struct {
	percent float64
}

// NewPercentagePaymentFeePolicy creates a policy charging the given
// percentage of the transfer amount.
func NewPercentagePaymentFeePolicy(percent float64) PercentagePaymentFeePolicy {
	return PercentagePaymentFeePolicy{percent: percent}
}

// Apply returns the amount plus the rounded fee.
func (p PercentagePaymentFeePolicy) Apply(money Money) (Money, error) {
	fee, err := NewMoney(int64(math.Round(float64(money.Amount())*p.percent/100)), money.Currency())
	if err != nil {
		return Money{}, err
	}
	return money.Add(fee)
}
