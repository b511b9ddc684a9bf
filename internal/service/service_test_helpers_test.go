package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/teller/internal/logging"
	"github.com/carson-networks/teller/internal/operator"
	"github.com/carson-networks/teller/internal/operator/actions"
	"github.com/carson-networks/teller/internal/storage"
)

const (
	alicePassword = "Str0ngPwd!"
	alicePin      = "1234"
)

func newTestLogger() *logrus.Logger {
	return logging.SetupLogging(io.Discard, logrus.DebugLevel)
}

func newTestService(t *testing.T, policy ReloginPolicy) (*Service, *storage.Storage) {
	t.Helper()
	store := storage.NewStorage()
	delegator := operator.NewOperatorDelegator(store, 1, 16)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	svc := NewService(store, delegator, Options{
		Hasher:        NewBcryptHasher(bcrypt.MinCost),
		ReloginPolicy: policy,
		Logger:        newTestLogger(),
	})
	return svc, store
}

func newLoggedInService(t *testing.T) (*Service, *storage.Storage) {
	t.Helper()
	svc, store := newTestService(t, ReloginOverride)
	require.NoError(t, svc.Vault.CreateAccount(context.Background(), "alice", alicePassword, alicePin))
	require.NoError(t, svc.Vault.Login(context.Background(), "alice", alicePassword, alicePin))
	return svc, store
}

type stubProcessor struct {
	t     *testing.T
	err   error
	calls int
}

func (s *stubProcessor) Process(ctx context.Context, action actions.IAction) error {
	s.calls++
	if s.err == nil {
		s.t.Fatalf("unexpected action %T", action)
	}
	return s.err
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// cancelWhileWriterHeld runs call while another writer holds storage,
// cancels call's context, then releases storage and returns call's error.
func cancelWhileWriterHeld(t *testing.T, store *storage.Storage, call func(ctx context.Context) error) error {
	t.Helper()
	held, err := store.Write(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- call(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, held.Rollback())
	return <-done
}
