// Package dto defines the HTTP request and response shapes.
package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Schedule timestamps are accepted in either layout.
var scheduleLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// PixDTO is the destination block of a withdrawal request.
type PixDTO struct {
	Type string `json:"type" binding:"required"`
	Key  string `json:"key" binding:"required"`
}

// WithdrawRequest is the POST withdraw body.
// Schedule nil means settle immediately; a timestamp defers settlement.
type WithdrawRequest struct {
	Method   string  `json:"method" binding:"required"`
	Pix      PixDTO  `json:"pix" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Schedule *string `json:"schedule,omitempty"`
}

// ParseSchedule returns the schedule timestamp, or nil for immediate
// withdrawals. Past timestamps are rejected; a withdrawal scheduled for a
// moment already gone is a malformed request, not work for the sweep.
func (r *WithdrawRequest) ParseSchedule(now time.Time) (*time.Time, error) {
	if r.Schedule == nil || *r.Schedule == "" {
		return nil, nil
	}

	var ts time.Time
	var err error
	for _, layout := range scheduleLayouts {
		ts, err = time.Parse(layout, *r.Schedule)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("invalid schedule format, expected YYYY-MM-DD HH:MM:SS")
	}
	if !ts.After(now) {
		return nil, fmt.Errorf("schedule must be in the future")
	}
	return &ts, nil
}

// DecimalAmount converts the JSON float amount to the exact decimal used
// internally.
func (r *WithdrawRequest) DecimalAmount() decimal.Decimal {
	return decimal.NewFromFloat(r.Amount)
}

// WithdrawResponse is the success payload for a withdrawal request.
type WithdrawResponse struct {
	Status       string  `json:"status"`
	WithdrawalID string  `json:"withdrawal_id"`
	AccountID    string  `json:"account_id"`
	Amount       string  `json:"amount"`
	Balance      string  `json:"balance"`
	ScheduledFor *string `json:"scheduled_for,omitempty"`
	ProcessedAt  *string `json:"processed_at,omitempty"`
}

// BalanceResponse is the payload for a balance lookup.
type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Balance   string `json:"balance"`
}
