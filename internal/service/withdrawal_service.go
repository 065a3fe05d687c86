package service

import (
	"context"
	"fmt"
	"time"

	"pix-withdrawal-service/internal/core/domain"
	"pix-withdrawal-service/internal/core/ports"
	"pix-withdrawal-service/pkg/apperror"
	"pix-withdrawal-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Terminal failure reasons recorded on scheduled withdrawals.
const (
	reasonAccountNotFound     = "account not found"
	reasonInsufficientBalance = "insufficient balance"
)

// WithdrawalServiceImpl implements ports.WithdrawalService.
//
// All balance mutations happen inside a single database transaction with
// the account row locked first, so concurrent settlements against the same
// account serialize and cannot both pass the balance check on a stale read.
type WithdrawalServiceImpl struct {
	accountRepo    ports.AccountRepository
	withdrawalRepo ports.WithdrawalRepository
	pixRepo        ports.PixDestinationRepository
	registry       ports.WithdrawMethodRegistry
	notifier       ports.SettlementNotifier
	transactor     ports.DBTransactor
	log            zerolog.Logger
}

// NewWithdrawalService creates a new WithdrawalServiceImpl.
func NewWithdrawalService(
	accountRepo ports.AccountRepository,
	withdrawalRepo ports.WithdrawalRepository,
	pixRepo ports.PixDestinationRepository,
	registry ports.WithdrawMethodRegistry,
	notifier ports.SettlementNotifier,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		accountRepo:    accountRepo,
		withdrawalRepo: withdrawalRepo,
		pixRepo:        pixRepo,
		registry:       registry,
		notifier:       notifier,
		transactor:     transactor,
		log:            log,
	}
}

// Withdraw handles an inbound withdrawal request. Validation happens before
// any transaction is opened; a rejected request leaves no rows behind.
func (s *WithdrawalServiceImpl) Withdraw(ctx context.Context, req ports.WithdrawRequest) (*ports.WithdrawResult, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.Validation("amount must be greater than zero")
	}

	method, err := s.registry.Resolve(req.Method)
	if err != nil {
		return nil, err
	}
	if err := method.Validate(req.Pix); err != nil {
		return nil, err
	}

	if req.ScheduleFor != nil {
		return s.schedule(ctx, req, method.Name())
	}
	return s.withdrawNow(ctx, req, method.Name())
}

// withdrawNow settles immediately: the withdrawal and destination rows are
// created in the same transaction as the balance check, so an invalid or
// insufficient request never leaves a row behind.
func (s *WithdrawalServiceImpl) withdrawNow(ctx context.Context, req ports.WithdrawRequest, method string) (*ports.WithdrawResult, error) {
	log := logger.FromContext(ctx, s.log)

	log.Info().
		Str("account_id", req.AccountID).
		Str("method", method).
		Str("amount", req.Amount.String()).
		Str("pix_type", req.Pix.Type).
		Msg("processing immediate withdrawal")

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock & load the account
	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, req.AccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		log.Warn().Str("account_id", req.AccountID).Msg("account not found")
		return nil, apperror.ErrAccountNotFound()
	}

	// Business rule: sufficient funds
	if !account.CanCover(req.Amount) {
		log.Warn().
			Str("account_id", req.AccountID).
			Str("balance", account.Balance.String()).
			Str("requested_amount", req.Amount.String()).
			Msg("insufficient balance")
		return nil, apperror.ErrInsufficientBalance()
	}

	now := time.Now().UTC()
	w := &domain.Withdrawal{
		ID:        uuid.New().String(),
		AccountID: account.ID,
		Method:    method,
		Amount:    req.Amount,
		Scheduled: false,
		Done:      true,
		Error:     false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	dest := &domain.PixDestination{
		WithdrawalID: w.ID,
		Type:         req.Pix.Type,
		Key:          req.Pix.Key,
	}

	// Persist: withdrawal row + destination + new balance
	if err := s.withdrawalRepo.Create(ctx, dbTx, w); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create withdrawal: %w", err))
	}
	if err := s.pixRepo.Create(ctx, dbTx, dest); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create pix destination: %w", err))
	}

	oldBalance := account.Balance
	newBalance := account.Balance.Sub(req.Amount)
	if err := s.accountRepo.UpdateBalance(ctx, dbTx, account.ID, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	// Commit
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-commit: best-effort notification
	s.notify(ctx, w, dest, now)

	log.Info().
		Str("withdrawal_id", w.ID).
		Str("account_id", account.ID).
		Str("amount", req.Amount.String()).
		Str("old_balance", oldBalance.String()).
		Str("new_balance", newBalance.String()).
		Msg("withdrawal settled")

	return &ports.WithdrawResult{
		Status:       ports.StatusProcessed,
		WithdrawalID: w.ID,
		AccountID:    account.ID,
		Amount:       req.Amount,
		Balance:      newBalance,
		ProcessedAt:  &now,
	}, nil
}

// schedule creates a pending withdrawal to be settled by the sweep once
// due. No balance is moved here; funds are checked at settlement time.
func (s *WithdrawalServiceImpl) schedule(ctx context.Context, req ports.WithdrawRequest, method string) (*ports.WithdrawResult, error) {
	log := logger.FromContext(ctx, s.log)

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// The account must exist to accept a scheduled withdrawal, but its
	// balance is not reserved.
	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, req.AccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}

	now := time.Now().UTC()
	scheduledFor := req.ScheduleFor.UTC()
	w := &domain.Withdrawal{
		ID:           uuid.New().String(),
		AccountID:    account.ID,
		Method:       method,
		Amount:       req.Amount,
		Scheduled:    true,
		ScheduledFor: &scheduledFor,
		Done:         false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	dest := &domain.PixDestination{
		WithdrawalID: w.ID,
		Type:         req.Pix.Type,
		Key:          req.Pix.Key,
	}

	if err := s.withdrawalRepo.Create(ctx, dbTx, w); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create scheduled withdrawal: %w", err))
	}
	if err := s.pixRepo.Create(ctx, dbTx, dest); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create pix destination: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	log.Info().
		Str("withdrawal_id", w.ID).
		Str("account_id", account.ID).
		Str("amount", req.Amount.String()).
		Time("scheduled_for", scheduledFor).
		Msg("withdrawal scheduled")

	return &ports.WithdrawResult{
		Status:       ports.StatusScheduled,
		WithdrawalID: w.ID,
		AccountID:    account.ID,
		Amount:       req.Amount,
		Balance:      account.Balance,
		ScheduledFor: &scheduledFor,
	}, nil
}

// SettleScheduled settles one due scheduled withdrawal. The destination was
// validated and stored at creation time and is reused unchanged.
//
// Business failures flip the row to done+error inside the transaction and
// return nil so the sweep continues; only infrastructure errors propagate,
// leaving the row pending for the next tick.
func (s *WithdrawalServiceImpl) SettleScheduled(ctx context.Context, w *domain.Withdrawal) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, w.AccountID)
	if err != nil {
		return fmt.Errorf("lock account: %w", err)
	}
	if account == nil {
		return s.settleFailed(ctx, dbTx, w, reasonAccountNotFound)
	}

	if !account.CanCover(w.Amount) {
		s.log.Warn().
			Str("withdrawal_id", w.ID).
			Str("account_id", w.AccountID).
			Str("balance", account.Balance.String()).
			Str("requested_amount", w.Amount.String()).
			Msg("insufficient balance for scheduled withdrawal")
		return s.settleFailed(ctx, dbTx, w, reasonInsufficientBalance)
	}

	oldBalance := account.Balance
	newBalance := account.Balance.Sub(w.Amount)
	if err := s.accountRepo.UpdateBalance(ctx, dbTx, account.ID, newBalance); err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if err := s.withdrawalRepo.MarkSettled(ctx, dbTx, w.ID, true, nil); err != nil {
		return fmt.Errorf("mark settled: %w", err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	processedAt := time.Now().UTC()

	s.log.Debug().
		Str("withdrawal_id", w.ID).
		Str("account_id", w.AccountID).
		Str("old_balance", oldBalance.String()).
		Str("new_balance", newBalance.String()).
		Str("amount", w.Amount.String()).
		Msg("balance updated for scheduled withdrawal")

	// Post-commit: best-effort notification using the stored destination.
	dest, err := s.pixRepo.GetByWithdrawalID(ctx, w.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("withdrawal_id", w.ID).Msg("failed to load pix destination for notification")
		return nil
	}
	s.notify(ctx, w, dest, processedAt)

	return nil
}

// settleFailed records a terminal business failure on the withdrawal row.
// The balance is untouched; these conditions are not transient, so the row
// must not be retried.
func (s *WithdrawalServiceImpl) settleFailed(ctx context.Context, dbTx pgx.Tx, w *domain.Withdrawal, reason string) error {
	s.log.Warn().
		Str("withdrawal_id", w.ID).
		Str("account_id", w.AccountID).
		Str("reason", reason).
		Msg("scheduled withdrawal failed")

	if err := s.withdrawalRepo.MarkSettled(ctx, dbTx, w.ID, false, &reason); err != nil {
		return fmt.Errorf("mark settlement failure: %w", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// notify sends the settlement notice when the destination is an email key.
// Failures are logged and never affect the committed settlement.
func (s *WithdrawalServiceImpl) notify(ctx context.Context, w *domain.Withdrawal, dest *domain.PixDestination, processedAt time.Time) {
	if s.notifier == nil || dest == nil || dest.Type != domain.PixTypeEmail {
		return
	}
	n := ports.SettlementNotification{
		Email:        dest.Key,
		WithdrawalID: w.ID,
		Amount:       w.Amount,
		PixType:      dest.Type,
		PixKey:       dest.Key,
		ProcessedAt:  processedAt,
	}
	if err := s.notifier.NotifySettlement(ctx, n); err != nil {
		s.log.Warn().Err(err).Str("withdrawal_id", w.ID).Msg("settlement notification failed")
		return
	}
	s.log.Debug().Str("withdrawal_id", w.ID).Str("recipient", dest.Key).Msg("settlement notification sent")
}
