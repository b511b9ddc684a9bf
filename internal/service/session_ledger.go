package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/teller/internal/operator/actions"
	"github.com/carson-networks/teller/internal/storage"
)

// SessionLedger runs balance operations against the account of the active
// session. Every method fails with ErrNoActiveSession when nobody is
// logged in.
type SessionLedger struct {
	vault    *CredentialVault
	storage  *storage.Storage
	operator ActionProcessor
	logger   *logrus.Logger
}

func NewSessionLedger(vault *CredentialVault, store *storage.Storage, op ActionProcessor, logger *logrus.Logger) *SessionLedger {
	return &SessionLedger{
		vault:    vault,
		storage:  store,
		operator: op,
		logger:   logger,
	}
}

func (l *SessionLedger) CheckBalance(ctx context.Context) (decimal.Decimal, error) {
	row, err := l.vault.activeRecord(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return row.Balance, nil
}

// Deposit adds amount exactly and records a Deposit entry. It returns the
// new balance.
func (l *SessionLedger) Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	row, err := l.vault.activeRecord(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrNonPositiveAmount
	}

	deposit := &actions.Deposit{Username: row.Username, Amount: amount}
	if err = l.operator.Process(ctx, deposit); err != nil {
		return decimal.Zero, err
	}

	l.logger.WithFields(logrus.Fields{
		"username": row.Username,
		"amount":   amount.String(),
		"balance":  deposit.NewBalance.String(),
	}).Info("Ledger.Deposit.Success")
	return deposit.NewBalance, nil
}

// Withdraw subtracts amount and records a Withdrawal entry. Withdrawing
// the whole balance is allowed; anything more fails with
// ErrInsufficientFunds and changes nothing.
func (l *SessionLedger) Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	row, err := l.vault.activeRecord(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrNonPositiveAmount
	}

	withdraw := &actions.Withdraw{Username: row.Username, Amount: amount}
	if err = l.operator.Process(ctx, withdraw); err != nil {
		l.logger.WithFields(logrus.Fields{
			"username": row.Username,
			"amount":   amount.String(),
		}).WithError(err).Warn("Ledger.Withdraw.Failed")
		return decimal.Zero, err
	}

	l.logger.WithFields(logrus.Fields{
		"username": row.Username,
		"amount":   amount.String(),
		"balance":  withdraw.NewBalance.String(),
	}).Info("Ledger.Withdraw.Success")
	return withdraw.NewBalance, nil
}

// TransactionHistory returns the active account's entries oldest first.
// An account without transactions yields an empty, non-nil slice.
func (l *SessionLedger) TransactionHistory(ctx context.Context) ([]Transaction, error) {
	row, err := l.vault.activeRecord(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := l.storage.Transactions.ListByAccount(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	history := make([]Transaction, len(rows))
	for i, r := range rows {
		history[i] = transactionFromStorage(r)
	}
	return history, nil
}
