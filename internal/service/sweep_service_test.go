package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pix-withdrawal-service/internal/core/domain"
	"pix-withdrawal-service/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newSweep(t *testing.T) (*SweepService, *mocks.MockWithdrawalRepository, *mocks.MockWithdrawalService, *mocks.MockDistributedLock) {
	t.Helper()
	ctrl := gomock.NewController(t)

	withdrawals := mocks.NewMockWithdrawalRepository(ctrl)
	engine := mocks.NewMockWithdrawalService(ctrl)
	lock := mocks.NewMockDistributedLock(ctrl)

	cfg := SweepConfig{
		Interval: time.Minute,
		LockKey:  "cron:scheduled_withdraws:lock",
		LockTTL:  time.Minute,
	}
	return NewSweepService(withdrawals, engine, lock, cfg, zerolog.Nop()), withdrawals, engine, lock
}

func dueBatch(n int) []domain.Withdrawal {
	due := time.Now().Add(-time.Hour)
	batch := make([]domain.Withdrawal, n)
	for i := range batch {
		batch[i] = domain.Withdrawal{
			ID:           "w-" + string(rune('a'+i)),
			AccountID:    testAccountID,
			Method:       domain.MethodPix,
			Amount:       decimal.RequireFromString("10.00"),
			Scheduled:    true,
			ScheduledFor: &due,
		}
	}
	return batch
}

func TestSweep_Run_SettlesAllDue(t *testing.T) {
	sweep, withdrawals, engine, lock := newSweep(t)
	ctx := context.Background()

	lock.EXPECT().TryAcquire(ctx, "cron:scheduled_withdraws:lock", time.Minute, gomock.Any()).Return(true, nil)
	lock.EXPECT().Release(ctx, "cron:scheduled_withdraws:lock").Return(nil)
	withdrawals.EXPECT().ListDue(ctx, gomock.Any()).Return(dueBatch(3), nil)
	engine.EXPECT().SettleScheduled(ctx, gomock.Any()).Return(nil).Times(3)

	stats := sweep.Run(ctx)
	assert.True(t, stats.Acquired)
	assert.Equal(t, 3, stats.Found)
	assert.Equal(t, 3, stats.Processed)
	assert.Equal(t, 0, stats.Errors)
}

func TestSweep_Run_LockHeldElsewhere_Skips(t *testing.T) {
	sweep, _, _, lock := newSweep(t)
	ctx := context.Background()

	// Denied lock is a normal outcome, not an error. Nothing is listed,
	// nothing is settled, and the lock is not released by a non-holder.
	lock.EXPECT().TryAcquire(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	stats := sweep.Run(ctx)
	assert.False(t, stats.Acquired)
	assert.Equal(t, 0, stats.Found)
}

func TestSweep_Run_OneFailureDoesNotStopBatch(t *testing.T) {
	sweep, withdrawals, engine, lock := newSweep(t)
	ctx := context.Background()
	batch := dueBatch(3)

	lock.EXPECT().TryAcquire(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	lock.EXPECT().Release(ctx, gomock.Any()).Return(nil)
	withdrawals.EXPECT().ListDue(ctx, gomock.Any()).Return(batch, nil)

	gomock.InOrder(
		engine.EXPECT().SettleScheduled(ctx, gomock.Any()).Return(nil),
		engine.EXPECT().SettleScheduled(ctx, gomock.Any()).Return(errors.New("connection reset by peer")),
		engine.EXPECT().SettleScheduled(ctx, gomock.Any()).Return(nil),
	)

	stats := sweep.Run(ctx)
	assert.Equal(t, 3, stats.Found)
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 1, stats.Errors)
}

func TestSweep_Run_PanicIsolatedToOneSettlement(t *testing.T) {
	sweep, withdrawals, engine, lock := newSweep(t)
	ctx := context.Background()

	lock.EXPECT().TryAcquire(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	lock.EXPECT().Release(ctx, gomock.Any()).Return(nil)
	withdrawals.EXPECT().ListDue(ctx, gomock.Any()).Return(dueBatch(2), nil)

	gomock.InOrder(
		engine.EXPECT().SettleScheduled(ctx, gomock.Any()).DoAndReturn(
			func(context.Context, *domain.Withdrawal) error { panic("poisoned row") },
		),
		engine.EXPECT().SettleScheduled(ctx, gomock.Any()).Return(nil),
	)

	stats := sweep.Run(ctx)
	assert.Equal(t, 1, stats.Processed)
	assert.Equal(t, 1, stats.Errors)
}

func TestSweep_Run_ListFailure_ReleasesLock(t *testing.T) {
	sweep, withdrawals, _, lock := newSweep(t)
	ctx := context.Background()

	lock.EXPECT().TryAcquire(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	withdrawals.EXPECT().ListDue(ctx, gomock.Any()).Return(nil, errors.New("connection reset by peer"))
	lock.EXPECT().Release(ctx, gomock.Any()).Return(nil)

	stats := sweep.Run(ctx)
	assert.True(t, stats.Acquired)
	assert.Equal(t, 0, stats.Found)
}

func TestSweep_Run_NothingDue(t *testing.T) {
	sweep, withdrawals, _, lock := newSweep(t)
	ctx := context.Background()

	lock.EXPECT().TryAcquire(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	withdrawals.EXPECT().ListDue(ctx, gomock.Any()).Return([]domain.Withdrawal{}, nil)
	lock.EXPECT().Release(ctx, gomock.Any()).Return(nil)

	stats := sweep.Run(ctx)
	assert.True(t, stats.Acquired)
	assert.Equal(t, 0, stats.Found)
	assert.Equal(t, 0, stats.Processed)
}
