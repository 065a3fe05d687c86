package postgres

import (
	"context"
	"errors"
	"fmt"

	"pix-withdrawal-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PixDestinationRepo implements ports.PixDestinationRepository.
type PixDestinationRepo struct {
	pool Pool
}

// NewPixDestinationRepo creates a new PixDestinationRepo.
func NewPixDestinationRepo(pool Pool) *PixDestinationRepo {
	return &PixDestinationRepo{pool: pool}
}

// Create inserts a PIX destination within the same transaction as its
// owning withdrawal.
func (r *PixDestinationRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.PixDestination) error {
	query := `INSERT INTO account_withdraw_pix (account_withdraw_id, type, key)
		VALUES ($1, $2, $3)`

	_, err := tx.Exec(ctx, query, d.WithdrawalID, d.Type, d.Key)
	if err != nil {
		return fmt.Errorf("insert pix destination: %w", err)
	}
	return nil
}

// GetByWithdrawalID fetches the destination owned by a withdrawal.
func (r *PixDestinationRepo) GetByWithdrawalID(ctx context.Context, withdrawalID string) (*domain.PixDestination, error) {
	query := `SELECT account_withdraw_id, type, key
		FROM account_withdraw_pix WHERE account_withdraw_id = $1`

	d := &domain.PixDestination{}
	err := r.pool.QueryRow(ctx, query, withdrawalID).Scan(&d.WithdrawalID, &d.Type, &d.Key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pix destination: %w", err)
	}
	return d, nil
}
