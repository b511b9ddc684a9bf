package transaction

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
)

var _ ITransactionTable = (*Table)(nil)

// Table is the in-memory transactions table. Each account's entries are
// kept in insertion order and numbered from 1.
type Table struct {
	mu   sync.RWMutex
	rows map[uuid.UUID][]*Transaction
}

func NewTable() *Table {
	return &Table{rows: make(map[uuid.UUID][]*Transaction)}
}

// Insert appends a transaction and returns the stored record.
func (t *Table) Insert(_ context.Context, create *TransactionCreate) (*Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	createdAt := create.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	row := &Transaction{
		ID:           id,
		AccountID:    create.AccountID,
		Sequence:     len(t.rows[create.AccountID]) + 1,
		Kind:         create.Kind,
		Amount:       create.Amount,
		BalanceAfter: create.BalanceAfter,
		CreatedAt:    createdAt,
	}
	t.rows[create.AccountID] = append(t.rows[create.AccountID], row)

	cp := *row
	return &cp, nil
}

// ListByAccount returns the account's transactions oldest first. The result
// is never nil.
func (t *Table) ListByAccount(_ context.Context, accountID uuid.UUID) ([]*Transaction, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := t.rows[accountID]
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		cp := *row
		result[i] = &cp
	}
	return result, nil
}
