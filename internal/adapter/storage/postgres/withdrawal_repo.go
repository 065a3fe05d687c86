package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pix-withdrawal-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

const withdrawalColumns = `id, account_id, method, amount, scheduled, scheduled_for, done, error, error_reason, created_at, updated_at`

// Create inserts a withdrawal within a database transaction.
func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	query := `INSERT INTO account_withdraw (` + withdrawalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.AccountID, w.Method, w.Amount, w.Scheduled, w.ScheduledFor,
		w.Done, w.Error, w.ErrorReason, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

// GetByID fetches a withdrawal by id.
func (r *WithdrawalRepo) GetByID(ctx context.Context, id string) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM account_withdraw WHERE id = $1`

	w := &domain.Withdrawal{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.AccountID, &w.Method, &w.Amount, &w.Scheduled, &w.ScheduledFor,
		&w.Done, &w.Error, &w.ErrorReason, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal by id: %w", err)
	}
	return w, nil
}

// ListDue returns scheduled withdrawals that are pending and due as of asOf.
// Served by the idx_scheduled_pending index.
func (r *WithdrawalRepo) ListDue(ctx context.Context, asOf time.Time) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + `
		FROM account_withdraw
		WHERE scheduled = TRUE AND done = FALSE AND scheduled_for <= $1`

	rows, err := r.pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("list due withdrawals: %w", err)
	}
	defer rows.Close()

	var due []domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		if err := rows.Scan(
			&w.ID, &w.AccountID, &w.Method, &w.Amount, &w.Scheduled, &w.ScheduledFor,
			&w.Done, &w.Error, &w.ErrorReason, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan due withdrawal: %w", err)
		}
		due = append(due, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due withdrawals: %w", err)
	}
	return due, nil
}

// MarkSettled flips a pending withdrawal to its terminal state within a
// transaction. The done = FALSE guard makes the transition one-shot: an
// already-settled row is never flipped twice.
func (r *WithdrawalRepo) MarkSettled(ctx context.Context, tx pgx.Tx, id string, success bool, reason *string) error {
	query := `UPDATE account_withdraw
		SET done = TRUE, error = $1, error_reason = $2, updated_at = NOW()
		WHERE id = $3 AND done = FALSE`

	tag, err := tx.Exec(ctx, query, !success, reason, id)
	if err != nil {
		return fmt.Errorf("mark withdrawal settled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal not found or already settled: %s", id)
	}
	return nil
}
