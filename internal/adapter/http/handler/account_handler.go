package handler

import (
	"net/http"
	"time"

	"pix-withdrawal-service/internal/adapter/http/dto"
	"pix-withdrawal-service/internal/core/ports"
	"pix-withdrawal-service/pkg/apperror"
	"pix-withdrawal-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler handles account balance endpoints.
type AccountHandler struct {
	withdrawalSvc ports.WithdrawalService
	accountRepo   ports.AccountRepository
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(withdrawalSvc ports.WithdrawalService, accountRepo ports.AccountRepository) *AccountHandler {
	return &AccountHandler{withdrawalSvc: withdrawalSvc, accountRepo: accountRepo}
}

// Withdraw handles POST /account/:accountId/balance/withdraw.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	accountID := c.Param("accountId")
	if _, err := uuid.Parse(accountID); err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	scheduleFor, err := req.ParseSchedule(time.Now())
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.withdrawalSvc.Withdraw(c.Request.Context(), ports.WithdrawRequest{
		AccountID:   accountID,
		Method:      req.Method,
		Pix:         ports.PixData{Type: req.Pix.Type, Key: req.Pix.Key},
		Amount:      req.DecimalAmount(),
		ScheduleFor: scheduleFor,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWithdrawResponse(result))
}

// GetBalance handles GET /account/:accountId/balance.
func (h *AccountHandler) GetBalance(c *gin.Context) {
	accountID := c.Param("accountId")
	if _, err := uuid.Parse(accountID); err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	account, err := h.accountRepo.GetByID(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if account == nil {
		response.Error(c, apperror.ErrAccountNotFound())
		return
	}

	response.OK(c, dto.BalanceResponse{
		AccountID: account.ID,
		Name:      account.Name,
		Balance:   account.Balance.StringFixed(2),
	})
}

// HealthCheck handles GET /health, verifying all external dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}

// toWithdrawResponse converts the service result to its DTO.
func toWithdrawResponse(r *ports.WithdrawResult) dto.WithdrawResponse {
	resp := dto.WithdrawResponse{
		Status:       r.Status,
		WithdrawalID: r.WithdrawalID,
		AccountID:    r.AccountID,
		Amount:       r.Amount.StringFixed(2),
		Balance:      r.Balance.StringFixed(2),
	}
	if r.ScheduledFor != nil {
		s := r.ScheduledFor.Format(time.RFC3339)
		resp.ScheduledFor = &s
	}
	if r.ProcessedAt != nil {
		s := r.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &s
	}
	return resp
}
