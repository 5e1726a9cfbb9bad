package handler

import (
	"time"

	"bank-payment-service/internal/adapter/http/dto"
	"bank-payment-service/internal/core/ports"
	"bank-payment-service/pkg/apperror"
	"bank-payment-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	makePaymentSvc ports.MakePaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(makePaymentSvc ports.MakePaymentService) *PaymentHandler {
	return &PaymentHandler{makePaymentSvc: makePaymentSvc}
}

// MakePayment handles POST /api/v1/payments.
func (h *PaymentHandler) MakePayment(c *gin.Context) {
	var req dto.MakePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			response.Error(c, apperror.Validation("date must be RFC 3339"))
			return
		}
		date = parsed
	}

	receipt, err := h.makePaymentSvc.MakePayment(c.Request.Context(), ports.MakePaymentRequest{
		PaymentID:     req.PaymentID,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		CurrencyCode:  req.Currency,
		Date:          date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.MakePaymentResponse{
		PaymentID:    receipt.PaymentID,
		FromAccount:  receipt.FromAccount,
		ToAccount:    receipt.ToAccount,
		DebitAmount:  receipt.DebitAmount,
		CreditAmount: receipt.CreditAmount,
		Currency:     receipt.Currency,
		Date:         receipt.Date.Format(time.RFC3339),
	})
}
