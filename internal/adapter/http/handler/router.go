package handler

import (
	"bank-payment-service/internal/adapter/http/middleware"
	"bank-payment-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	MakePaymentSvc ports.MakePaymentService
	AccountRepo    ports.AccountRepository
	AccountCreator ports.AccountCreator
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")

	paymentHandler := NewPaymentHandler(deps.MakePaymentSvc)
	payments := v1.Group("/payments")
	{
		payments.POST("", paymentHandler.MakePayment)
	}

	accountHandler := NewAccountHandler(deps.AccountRepo, deps.AccountCreator)
	accounts := v1.Group("/accounts")
	{
		accounts.POST("", accountHandler.CreateAccount)
		accounts.GET("/:id", accountHandler.GetAccount)
	}

	return r
}
