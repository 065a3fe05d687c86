package ports

import (
	"context"
	"time"

	"pix-withdrawal-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepository defines persistence operations for ledger accounts.
// Methods accepting pgx.Tx run inside transaction blocks; GetByIDForUpdate
// takes an exclusive row lock for the transaction's duration.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, id string, balance decimal.Decimal) error
}

// WithdrawalRepository defines persistence operations for withdrawals.
type WithdrawalRepository interface {
	Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error
	GetByID(ctx context.Context, id string) (*domain.Withdrawal, error)
	// ListDue returns scheduled, not-yet-done withdrawals with
	// scheduled_for <= asOf. Order is not significant.
	ListDue(ctx context.Context, asOf time.Time) ([]domain.Withdrawal, error)
	// MarkSettled flips the withdrawal to its terminal state. reason must be
	// non-nil iff success is false.
	MarkSettled(ctx context.Context, tx pgx.Tx, id string, success bool, reason *string) error
}

// PixDestinationRepository defines persistence for PIX destinations.
type PixDestinationRepository interface {
	Create(ctx context.Context, tx pgx.Tx, d *domain.PixDestination) error
	GetByWithdrawalID(ctx context.Context, withdrawalID string) (*domain.PixDestination, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
