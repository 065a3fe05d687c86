package handler

import (
	"pix-withdrawal-service/internal/adapter/http/middleware"
	"pix-withdrawal-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WithdrawalSvc  ports.WithdrawalService
	AccountRepo    ports.AccountRepository
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	accountHandler := NewAccountHandler(deps.WithdrawalSvc, deps.AccountRepo)
	account := r.Group("/account/:accountId")
	{
		account.GET("/balance", accountHandler.GetBalance)
		account.POST("/balance/withdraw", accountHandler.Withdraw)
	}

	return r
}
