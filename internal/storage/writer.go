package storage

import (
	"context"
	"errors"

	"github.com/carson-networks/teller/internal/storage/account"
	"github.com/carson-networks/teller/internal/storage/transaction"
)

var ErrWriterClosed = errors.New("storage writer already committed or rolled back")

type Writer struct {
	release     func()
	closed      bool
	Account     *account.Writer
	Transaction *transaction.Writer
}

func newWriter(s *Storage, release func()) *Writer {
	return &Writer{
		release:     release,
		Account:     account.NewWriter(s.Accounts),
		Transaction: transaction.NewWriter(s.Transactions),
	}
}

// Commit applies account changes, then ledger appends, and releases the
// storage lock.
func (w *Writer) Commit() error {
	if w.closed {
		return ErrWriterClosed
	}
	defer w.close()

	ctx := context.Background()
	if err := w.Account.Commit(ctx); err != nil {
		return err
	}
	_, err := w.Transaction.Commit(ctx)
	return err
}

// Rollback discards staged changes and releases the storage lock.
func (w *Writer) Rollback() error {
	if w.closed {
		return ErrWriterClosed
	}
	defer w.close()

	w.Account.Discard()
	w.Transaction.Discard()
	return nil
}

func (w *Writer) close() {
	w.closed = true
	w.release()
}
