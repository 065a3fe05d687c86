package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pix-withdrawal-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// The in-memory store serializes transactions with a single mutex held from
// Begin to Commit/Rollback, mirroring how the row lock serializes concurrent
// settlements against one account. Mutations buffer in the tx and apply on
// commit, so a rolled-back withdrawal leaves no trace.

type inMemoryStore struct {
	mu          sync.Mutex
	txMu        sync.Mutex
	accounts    map[string]*domain.Account
	withdrawals map[string]*domain.Withdrawal
	pix         map[string]*domain.PixDestination
}

func newInMemoryStore() *inMemoryStore {
	return &inMemoryStore{
		accounts:    make(map[string]*domain.Account),
		withdrawals: make(map[string]*domain.Withdrawal),
		pix:         make(map[string]*domain.PixDestination),
	}
}

func (s *inMemoryStore) seedAccount(id, name, balance string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[id] = &domain.Account{
		ID:      id,
		Name:    name,
		Balance: decimal.RequireFromString(balance),
	}
}

func (s *inMemoryStore) accountBalance(id string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[id].Balance
}

func (s *inMemoryStore) withdrawal(id string) *domain.Withdrawal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.withdrawals[id]; ok {
		cp := *w
		return &cp
	}
	return nil
}

func (s *inMemoryStore) withdrawalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.withdrawals)
}

// --- Transactor ---

type inMemoryTransactor struct {
	store *inMemoryStore
}

func newInMemoryTransactor(store *inMemoryStore) *inMemoryTransactor {
	return &inMemoryTransactor{store: store}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.store.txMu.Lock()
	return &memTx{store: t.store, pending: nil}, nil
}

// memTx buffers mutations until Commit and holds the store's transaction
// lock for its lifetime.
type memTx struct {
	store   *inMemoryStore
	pending []func(*inMemoryStore)
	done    sync.Once
}

func (t *memTx) enqueue(fn func(*inMemoryStore)) {
	t.pending = append(t.pending, fn)
}

func (t *memTx) Commit(ctx context.Context) error {
	committed := false
	t.done.Do(func() {
		t.store.mu.Lock()
		for _, fn := range t.pending {
			fn(t.store)
		}
		t.store.mu.Unlock()
		t.store.txMu.Unlock()
		committed = true
	})
	if !committed {
		return pgx.ErrTxClosed
	}
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	rolledBack := false
	t.done.Do(func() {
		t.pending = nil
		t.store.txMu.Unlock()
		rolledBack = true
	})
	if !rolledBack {
		return pgx.ErrTxClosed
	}
	return nil
}

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *memTx) Conn() *pgx.Conn                                               { return nil }

// --- Account Repo ---

type inMemoryAccountRepo struct {
	store *inMemoryStore
}

func newInMemoryAccountRepo(store *inMemoryStore) *inMemoryAccountRepo {
	return &inMemoryAccountRepo{store: store}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.accounts[a.ID] = a
	return nil
}

func (r *inMemoryAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a, ok := r.store.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryAccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id string, balance decimal.Decimal) error {
	mtx, ok := tx.(*memTx)
	if !ok {
		return fmt.Errorf("unexpected tx type %T", tx)
	}
	mtx.enqueue(func(s *inMemoryStore) {
		if a, ok := s.accounts[id]; ok {
			a.Balance = balance
			a.UpdatedAt = time.Now()
		}
	})
	return nil
}

// --- Withdrawal Repo ---

type inMemoryWithdrawalRepo struct {
	store *inMemoryStore
}

func newInMemoryWithdrawalRepo(store *inMemoryStore) *inMemoryWithdrawalRepo {
	return &inMemoryWithdrawalRepo{store: store}
}

func (r *inMemoryWithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	mtx, ok := tx.(*memTx)
	if !ok {
		return fmt.Errorf("unexpected tx type %T", tx)
	}
	cp := *w
	mtx.enqueue(func(s *inMemoryStore) {
		s.withdrawals[cp.ID] = &cp
	})
	return nil
}

func (r *inMemoryWithdrawalRepo) GetByID(ctx context.Context, id string) (*domain.Withdrawal, error) {
	return r.store.withdrawal(id), nil
}

func (r *inMemoryWithdrawalRepo) ListDue(ctx context.Context, asOf time.Time) ([]domain.Withdrawal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var due []domain.Withdrawal
	for _, w := range r.store.withdrawals {
		if w.Scheduled && !w.Done && w.ScheduledFor != nil && !w.ScheduledFor.After(asOf) {
			due = append(due, *w)
		}
	}
	return due, nil
}

func (r *inMemoryWithdrawalRepo) MarkSettled(ctx context.Context, tx pgx.Tx, id string, success bool, reason *string) error {
	mtx, ok := tx.(*memTx)
	if !ok {
		return fmt.Errorf("unexpected tx type %T", tx)
	}
	mtx.enqueue(func(s *inMemoryStore) {
		w, ok := s.withdrawals[id]
		if !ok || w.Done {
			return
		}
		w.Done = true
		w.Error = !success
		w.ErrorReason = reason
		w.UpdatedAt = time.Now()
	})
	return nil
}

// --- Pix Destination Repo ---

type inMemoryPixRepo struct {
	store *inMemoryStore
}

func newInMemoryPixRepo(store *inMemoryStore) *inMemoryPixRepo {
	return &inMemoryPixRepo{store: store}
}

func (r *inMemoryPixRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.PixDestination) error {
	mtx, ok := tx.(*memTx)
	if !ok {
		return fmt.Errorf("unexpected tx type %T", tx)
	}
	cp := *d
	mtx.enqueue(func(s *inMemoryStore) {
		s.pix[cp.WithdrawalID] = &cp
	})
	return nil
}

func (r *inMemoryPixRepo) GetByWithdrawalID(ctx context.Context, withdrawalID string) (*domain.PixDestination, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	d, ok := r.store.pix[withdrawalID]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}
