package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/teller/internal/storage/transaction"
)

// TransactionKind is the direction of a ledger entry.
type TransactionKind int8

const (
	TransactionKindDeposit TransactionKind = iota
	TransactionKindWithdrawal
)

func (k TransactionKind) String() string {
	return transaction.Kind(k).String()
}

// Transaction is an immutable ledger entry. Amount is signed.
type Transaction struct {
	ID           uuid.UUID
	Sequence     int
	Kind         TransactionKind
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	CreatedAt    time.Time
}

// String renders the entry the way the terminal prints history lines,
// e.g. "Deposit: +$100.00".
func (t Transaction) String() string {
	sign := "+"
	if t.Amount.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s: %s$%s", t.Kind, sign, t.Amount.Abs().StringFixed(2))
}

func transactionKindFromStorage(k transaction.Kind) TransactionKind {
	return TransactionKind(k)
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:           row.ID,
		Sequence:     row.Sequence,
		Kind:         transactionKindFromStorage(row.Kind),
		Amount:       row.Amount,
		BalanceAfter: row.BalanceAfter,
		CreatedAt:    row.CreatedAt,
	}
}
