package ports

import (
	"context"
	"time"

	"pix-withdrawal-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

// PixData is the raw destination data attached to a withdrawal request,
// validated by the method registry before the engine runs.
type PixData struct {
	Type string
	Key  string
}

// WithdrawRequest is the engine's inbound contract.
// ScheduleFor nil means settle now; a non-nil (future) value defers
// settlement to the sweep.
type WithdrawRequest struct {
	AccountID   string
	Method      string
	Pix         PixData
	Amount      decimal.Decimal
	ScheduleFor *time.Time
}

// Withdrawal result statuses.
const (
	StatusProcessed = "processed"
	StatusScheduled = "scheduled"
)

// WithdrawResult is returned for an accepted withdrawal request.
type WithdrawResult struct {
	Status       string          `json:"status"`
	WithdrawalID string          `json:"withdrawal_id"`
	AccountID    string          `json:"account_id"`
	Amount       decimal.Decimal `json:"amount"`
	Balance      decimal.Decimal `json:"balance"`
	ScheduledFor *time.Time      `json:"scheduled_for,omitempty"`
	ProcessedAt  *time.Time      `json:"processed_at,omitempty"`
}

// WithdrawalService is the settlement engine.
type WithdrawalService interface {
	// Withdraw handles an inbound request: immediate settlement, or creation
	// of a scheduled withdrawal to be settled by the sweep.
	Withdraw(ctx context.Context, req WithdrawRequest) (*WithdrawResult, error)
	// SettleScheduled settles one due scheduled withdrawal. Business
	// failures (missing account, insufficient balance) are recorded on the
	// row and return nil; only infrastructure errors propagate.
	SettleScheduled(ctx context.Context, w *domain.Withdrawal) error
}

// WithdrawMethod validates destination data for one payment method.
type WithdrawMethod interface {
	Name() string
	Validate(pix PixData) error
}

// WithdrawMethodRegistry resolves a method by its canonical tag.
// Unknown methods yield a validation error.
type WithdrawMethodRegistry interface {
	Resolve(method string) (WithdrawMethod, error)
}

// SettlementNotification carries the data for a post-settlement notice.
type SettlementNotification struct {
	Email        string
	WithdrawalID string
	Amount       decimal.Decimal
	PixType      string
	PixKey       string
	ProcessedAt  time.Time
}

// SettlementNotifier delivers settlement notices. Calls are best-effort:
// the engine logs failures and never rolls back a committed settlement.
type SettlementNotifier interface {
	NotifySettlement(ctx context.Context, n SettlementNotification) error
}

// DistributedLock is a TTL-bounded cluster-wide advisory lock.
// TryAcquire is non-blocking: false means another holder owns the key.
type DistributedLock interface {
	TryAcquire(ctx context.Context, key string, ttl time.Duration, holder string) (bool, error)
	Release(ctx context.Context, key string) error
}

// HealthChecker reports liveness of an external dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
