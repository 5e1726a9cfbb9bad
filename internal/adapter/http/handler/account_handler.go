package handler

import (
	"fmt"

	"bank-payment-service/internal/adapter/http/dto"
	"bank-payment-service/internal/core/domain"
	"bank-payment-service/internal/core/ports"
	"bank-payment-service/pkg/apperror"
	"bank-payment-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles account endpoints.
type AccountHandler struct {
	accountRepo    ports.AccountRepository
	accountCreator ports.AccountCreator
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountRepo ports.AccountRepository, accountCreator ports.AccountCreator) *AccountHandler {
	return &AccountHandler{accountRepo: accountRepo, accountCreator: accountCreator}
}

// CreateAccount handles POST /api/v1/accounts.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	balance, err := domain.NewMoney(req.InitialBalance, currency)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	account, err := domain.NewAccount(domain.NewAccountID(), currency, balance)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.accountCreator.CreateAccount(c.Request.Context(), account); err != nil {
		response.Error(c, apperror.InternalError(fmt.Errorf("create account: %w", err)))
		return
	}

	response.Created(c, dto.AccountResponse{
		ID:       account.ID().String(),
		Currency: account.Currency().String(),
		Balance:  account.Balance().Amount(),
	})
}

// GetAccount handles GET /api/v1/accounts/:id.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, err := domain.ParseAccountID(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier(err))
		return
	}

	account, err := h.accountRepo.FindAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.InternalError(fmt.Errorf("find account: %w", err)))
		return
	}
	if account == nil {
		response.Error(c, apperror.ErrAccountNotFound(id.String()))
		return
	}

	response.OK(c, dto.AccountResponse{
		ID:       account.ID().String(),
		Currency: account.Currency().String(),
		Balance:  account.Balance().Amount(),
	})
}
