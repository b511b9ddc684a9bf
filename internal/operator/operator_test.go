package operator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/teller/internal/operator/actions"
	"github.com/carson-networks/teller/internal/storage"
)

type failingAction struct {
	username string
}

func (f *failingAction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Account.UpdateBalance(ctx, f.username, decimal.NewFromInt(1_000_000)); err != nil {
		return err
	}
	return errors.New("boom")
}

// cancellingAction stages a deposit and then cancels its own context.
type cancellingAction struct {
	username string
	cancel   context.CancelFunc
}

func (c *cancellingAction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Account.UpdateBalance(ctx, c.username, decimal.NewFromInt(10)); err != nil {
		return err
	}
	c.cancel()
	return nil
}

func newStartedDelegator(t *testing.T) (*OperatorDelegator, *storage.Storage) {
	t.Helper()
	store := storage.NewStorage()
	d := NewOperatorDelegator(store, 1, 8)
	d.Start()
	t.Cleanup(d.Stop)
	return d, store
}

func TestProcess_CommitsAction(t *testing.T) {
	d, store := newStartedDelegator(t)

	create := &actions.CreateAccount{Username: "alice"}
	require.NoError(t, d.Process(context.Background(), create))
	assert.NotNil(t, create.Created)

	_, err := store.Accounts.FindByUsername(context.Background(), "alice")
	assert.NoError(t, err)
}

func TestProcess_RollsBackOnError(t *testing.T) {
	d, store := newStartedDelegator(t)
	require.NoError(t, d.Process(context.Background(), &actions.CreateAccount{Username: "alice"}))

	err := d.Process(context.Background(), &failingAction{username: "alice"})

	assert.EqualError(t, err, "boom")
	stored, err := store.Accounts.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, stored.Balance.IsZero())
}

func TestProcess_SerializesConcurrentDeposits(t *testing.T) {
	d, store := newStartedDelegator(t)
	require.NoError(t, d.Process(context.Background(), &actions.CreateAccount{Username: "alice"}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := d.Process(context.Background(), &actions.Deposit{Username: "alice", Amount: decimal.RequireFromString("0.10")})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := store.Accounts.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "5.00", stored.Balance.StringFixed(2))
}

func TestProcess_CancelledContext(t *testing.T) {
	store := storage.NewStorage()
	d := NewOperatorDelegator(store, 1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, &actions.CreateAccount{Username: "alice"})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_AfterStop(t *testing.T) {
	d, _ := newStartedDelegator(t)
	d.Stop()

	err := d.Process(context.Background(), &actions.CreateAccount{Username: "alice"})

	assert.ErrorIs(t, err, ErrStopped)
}

func TestProcess_CancelledWhileWaitingForWriter(t *testing.T) {
	d, store := newStartedDelegator(t)
	create := &actions.CreateAccount{Username: "alice"}
	require.NoError(t, d.Process(context.Background(), create))

	held, err := store.Write(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- d.Process(ctx, &actions.Deposit{Username: "alice", Amount: decimal.RequireFromString("50")})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
		t.Fatal("Process returned before the queued action was resolved")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, held.Rollback())
	assert.ErrorIs(t, <-done, context.Canceled)

	stored, err := store.Accounts.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, stored.Balance.IsZero())
	rows, err := store.Transactions.ListByAccount(context.Background(), create.Created.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestProcess_CancelledDuringPerformRollsBack(t *testing.T) {
	d, store := newStartedDelegator(t)
	require.NoError(t, d.Process(context.Background(), &actions.CreateAccount{Username: "alice"}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := d.Process(ctx, &cancellingAction{username: "alice", cancel: cancel})

	assert.ErrorIs(t, err, context.Canceled)
	stored, err := store.Accounts.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, stored.Balance.IsZero())
}
