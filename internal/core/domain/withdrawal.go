package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdraw method tags. Currently only PIX.
const MethodPix = "PIX"

// PIX destination key kinds. Currently only email keys are supported.
const PixTypeEmail = "email"

// Withdrawal is a single withdrawal request against an account.
//
// A withdrawal transitions done=false -> done=true exactly once. Once done
// it is terminal: the sweep never picks it up again and it is never edited.
// Error and ErrorReason are set only on the terminal transition.
type Withdrawal struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"account_id"`
	Method       string          `json:"method"`
	Amount       decimal.Decimal `json:"amount"`
	Scheduled    bool            `json:"scheduled"`
	ScheduledFor *time.Time      `json:"scheduled_for,omitempty"`
	Done         bool            `json:"done"`
	Error        bool            `json:"error"`
	ErrorReason  *string         `json:"error_reason,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IsPending reports whether the withdrawal still awaits settlement.
func (w *Withdrawal) IsPending() bool {
	return !w.Done
}

// IsDue reports whether a scheduled withdrawal is due for settlement at t.
func (w *Withdrawal) IsDue(t time.Time) bool {
	return w.Scheduled && !w.Done && w.ScheduledFor != nil && !w.ScheduledFor.After(t)
}

// PixDestination is the PIX payment destination owned 1:1 by a withdrawal.
// It is created atomically with its withdrawal and never modified.
type PixDestination struct {
	WithdrawalID string `json:"withdrawal_id"`
	Type         string `json:"type"`
	Key          string `json:"key"`
}
