package dto

// MakePaymentRequest is the request body for making a payment.
// Identifier and amount validation stays with the domain, so the binding
// rules here only reject structurally broken bodies.
type MakePaymentRequest struct {
	PaymentID     string `json:"payment_id" binding:"required"`
	FromAccountID string `json:"from_account_id" binding:"required"`
	ToAccountID   string `json:"to_account_id" binding:"required"`
	Amount        int64  `json:"amount" binding:"required"`
	Currency      string `json:"currency" binding:"required,len=3"`
	Date          string `json:"date,omitempty"` // RFC 3339; empty means "now"
}

// MakePaymentResponse is the response body for an executed payment.
type MakePaymentResponse struct {
	PaymentID    string `json:"payment_id"`
	FromAccount  string `json:"from_account"`
	ToAccount    string `json:"to_account"`
	DebitAmount  int64  `json:"debit_amount"`
	CreditAmount int64  `json:"credit_amount"`
	Currency     string `json:"currency"`
	Date         string `json:"date"`
}

// CreateAccountRequest is the request body for opening an account.
type CreateAccountRequest struct {
	Currency       string `json:"currency" binding:"required,len=3"`
	InitialBalance int64  `json:"initial_balance" binding:"min=0"`
}

// AccountResponse is the response body for account queries.
type AccountResponse struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`
	Balance  int64  `json:"balance"`
}
