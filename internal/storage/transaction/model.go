package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Kind int8

const (
	KindDeposit Kind = iota
	KindWithdrawal
)

func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "Deposit"
	case KindWithdrawal:
		return "Withdrawal"
	default:
		return "Unknown"
	}
}

// Transaction represents an immutable ledger entry. Amount is signed:
// positive for deposits, negative for withdrawals.
type Transaction struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	Sequence     int
	Kind         Kind
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	CreatedAt    time.Time
}

// TransactionCreate is the input for appending a transaction.
type TransactionCreate struct {
	AccountID    uuid.UUID
	Kind         Kind
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	CreatedAt    time.Time // defaults to now if zero
}

// ITransactionTable defines the interface for transaction storage operations.
// The table is append-only.
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*Transaction, error)
}
