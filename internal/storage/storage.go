package storage

import (
	"context"
	"sync"

	"github.com/carson-networks/teller/internal/storage/account"
	"github.com/carson-networks/teller/internal/storage/transaction"
)

// Storage owns every account record and ledger. Writers are exclusive:
// Write blocks until the previous Writer commits or rolls back.
type Storage struct {
	mu           sync.Mutex
	Accounts     account.IAccountTable
	Transactions transaction.ITransactionTable
}

func NewStorage() *Storage {
	return &Storage{
		Accounts:     account.NewTable(),
		Transactions: transaction.NewTable(),
	}
}

func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return newWriter(s, s.mu.Unlock), nil
}
