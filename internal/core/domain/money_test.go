package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64, currency Currency) Money {
	t.Helper()
	m, err := NewMoney(amount, currency)
	require.NoError(t, err)
	return m
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    Currency
		wantErr bool
	}{
		{"usd", "USD", USD, false},
		{"eur", "EUR", EUR, false},
		{"unsupported", "GBP", "", true},
		{"lowercase", "usd", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCurrency(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCurrency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewMoney_RejectsNegativeAmount(t *testing.T) {
	_, err := NewMoney(-1, USD)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	m, err := NewMoney(0, USD)
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.Amount())
}

func TestMoney_Add(t *testing.T) {
	a := mustMoney(t, 100, USD)
	b := mustMoney(t, 250, USD)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int64(350), sum.Amount())
	assert.Equal(t, USD, sum.Currency())

	// operands are untouched
	assert.Equal(t, int64(100), a.Amount())
	assert.Equal(t, int64(250), b.Amount())
}

func TestMoney_Add_CurrencyMismatch(t *testing.T) {
	a := mustMoney(t, 100, USD)
	b := mustMoney(t, 100, EUR)

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMoney_Subtract(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Money
		want    int64
		wantErr error
	}{
		{"plain", mustMoney(t, 300, USD), mustMoney(t, 100, USD), 200, nil},
		{"to zero", mustMoney(t, 100, USD), mustMoney(t, 100, USD), 0, nil},
		{"below zero", mustMoney(t, 100, USD), mustMoney(t, 101, USD), 0, ErrInsufficientFunds},
		{"cross currency", mustMoney(t, 100, USD), mustMoney(t, 100, EUR), 0, ErrCurrencyMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Subtract(tt.b)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Amount())
		})
	}
}

func TestMoney_AddSubtractRoundTrip(t *testing.T) {
	a := mustMoney(t, 1234, EUR)
	b := mustMoney(t, 567, EUR)

	sum, err := a.Add(b)
	require.NoError(t, err)
	back, err := sum.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, a, back)
}

func TestMoney_LessThan(t *testing.T) {
	a := mustMoney(t, 100, USD)
	b := mustMoney(t, 200, USD)

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	less, err = b.LessThan(a)
	require.NoError(t, err)
	assert.False(t, less)

	less, err = a.LessThan(a)
	require.NoError(t, err)
	assert.False(t, less)

	_, err = a.LessThan(mustMoney(t, 100, EUR))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}
