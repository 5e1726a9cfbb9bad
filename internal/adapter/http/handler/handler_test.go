package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bank-payment-service/internal/adapter/http/dto"
	"bank-payment-service/internal/core/domain"
	"bank-payment-service/internal/core/ports"
	"bank-payment-service/internal/core/ports/mocks"
	"bank-payment-service/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, body any, path string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data envelope: %s", w.Body.String())
	return data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

// --- Payment Handler Tests ---

func TestMakePayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockMakePaymentService(ctrl)
	h := NewPaymentHandler(mockSvc)

	req := dto.MakePaymentRequest{
		PaymentID:     uuid.NewString(),
		FromAccountID: uuid.NewString(),
		ToAccountID:   uuid.NewString(),
		Amount:        1000,
		Currency:      "USD",
	}
	date := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	mockSvc.EXPECT().MakePayment(gomock.Any(), ports.MakePaymentRequest{
		PaymentID:     req.PaymentID,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        1000,
		CurrencyCode:  "USD",
	}).Return(&ports.MakePaymentReceipt{
		PaymentID:    req.PaymentID,
		FromAccount:  req.FromAccountID,
		ToAccount:    req.ToAccountID,
		DebitAmount:  1005,
		CreditAmount: 1000,
		Currency:     "USD",
		Date:         date,
	}, nil)

	w, c := postJSON(t, req, "/api/v1/payments")
	h.MakePayment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, req.PaymentID, data["payment_id"])
	assert.Equal(t, float64(1005), data["debit_amount"])
	assert.Equal(t, float64(1000), data["credit_amount"])
	assert.Equal(t, "2025-03-14T09:30:00Z", data["date"])
}

func TestMakePayment_BindingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewPaymentHandler(mocks.NewMockMakePaymentService(ctrl))

	w, c := postJSON(t, map[string]any{"amount": 100}, "/api/v1/payments")
	h.MakePayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_004", errorCode(t, w))
}

func TestMakePayment_BadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewPaymentHandler(mocks.NewMockMakePaymentService(ctrl))

	req := dto.MakePaymentRequest{
		PaymentID:     uuid.NewString(),
		FromAccountID: uuid.NewString(),
		ToAccountID:   uuid.NewString(),
		Amount:        1000,
		Currency:      "USD",
		Date:          "14/03/2025",
	}
	w, c := postJSON(t, req, "/api/v1/payments")
	h.MakePayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_004", errorCode(t, w))
}

func TestMakePayment_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockMakePaymentService(ctrl)
	h := NewPaymentHandler(mockSvc)

	mockSvc.EXPECT().MakePayment(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrPaymentFailed(domain.ErrDailyLimitExceeded))

	req := dto.MakePaymentRequest{
		PaymentID:     uuid.NewString(),
		FromAccountID: uuid.NewString(),
		ToAccountID:   uuid.NewString(),
		Amount:        1000,
		Currency:      "USD",
	}
	w, c := postJSON(t, req, "/api/v1/payments")
	h.MakePayment(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "PAY_001", errorCode(t, w))
}

// --- Account Handler Tests ---

func TestCreateAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreator := mocks.NewMockAccountCreator(ctrl)
	h := NewAccountHandler(mocks.NewMockAccountRepository(ctrl), mockCreator)

	var created *domain.Account
	mockCreator.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account *domain.Account) error {
			created = account
			return nil
		})

	w, c := postJSON(t, dto.CreateAccountRequest{Currency: "EUR", InitialBalance: 1200}, "/api/v1/accounts")
	h.CreateAccount(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, domain.EUR, created.Currency())
	assert.Equal(t, int64(1200), created.Balance().Amount())

	data := decodeData(t, w)
	assert.Equal(t, created.ID().String(), data["id"])
	assert.Equal(t, "EUR", data["currency"])
	assert.Equal(t, float64(1200), data["balance"])
}

func TestCreateAccount_UnknownCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAccountHandler(mocks.NewMockAccountRepository(ctrl), mocks.NewMockAccountCreator(ctrl))

	w, c := postJSON(t, dto.CreateAccountRequest{Currency: "XAU"}, "/api/v1/accounts")
	h.CreateAccount(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_004", errorCode(t, w))
}

func TestGetAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	h := NewAccountHandler(mockRepo, mocks.NewMockAccountCreator(ctrl))

	id := domain.NewAccountID()
	balance, err := domain.NewMoney(1200, domain.USD)
	require.NoError(t, err)
	account, err := domain.NewAccount(id, domain.USD, balance)
	require.NoError(t, err)

	mockRepo.EXPECT().FindAccount(gomock.Any(), id).Return(account, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetAccount(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, id.String(), data["id"])
	assert.Equal(t, float64(1200), data["balance"])
}

func TestGetAccount_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAccountHandler(mocks.NewMockAccountRepository(ctrl), mocks.NewMockAccountCreator(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/accounts/oops", nil)
	c.Params = gin.Params{{Key: "id", Value: "oops"}}

	h.GetAccount(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", errorCode(t, w))
}

func TestGetAccount_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	h := NewAccountHandler(mockRepo, mocks.NewMockAccountCreator(ctrl))

	id := domain.NewAccountID()
	mockRepo.EXPECT().FindAccount(gomock.Any(), id).Return(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetAccount(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "VAL_002", errorCode(t, w))
}

func TestGetAccount_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	h := NewAccountHandler(mockRepo, mocks.NewMockAccountCreator(ctrl))

	id := domain.NewAccountID()
	mockRepo.EXPECT().FindAccount(gomock.Any(), id).Return(nil, errors.New("connection reset"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetAccount(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "SYS_001", errorCode(t, w))
}

// --- Router Tests ---

func TestRouter_PaymentThroughStack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockMakePaymentService(ctrl)
	mockSvc.EXPECT().MakePayment(gomock.Any(), gomock.Any()).Return(&ports.MakePaymentReceipt{
		PaymentID: uuid.NewString(),
		Currency:  "USD",
		Date:      time.Now().UTC(),
	}, nil)

	r := SetupRouter(RouterDeps{
		MakePaymentSvc: mockSvc,
		AccountRepo:    mocks.NewMockAccountRepository(ctrl),
		AccountCreator: mocks.NewMockAccountCreator(ctrl),
		Logger:         zerolog.Nop(),
	})

	body, err := json.Marshal(dto.MakePaymentRequest{
		PaymentID:     uuid.NewString(),
		FromAccountID: uuid.NewString(),
		ToAccountID:   uuid.NewString(),
		Amount:        500,
		Currency:      "USD",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_Health(t *testing.T) {
	r := SetupRouter(RouterDeps{Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
