package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/teller/internal/storage"
	"github.com/carson-networks/teller/internal/storage/transaction"
)

type Deposit struct {
	Username string
	Amount   decimal.Decimal

	NewBalance decimal.Decimal
}

func (d *Deposit) Perform(ctx context.Context, writer *storage.Writer) error {
	if !d.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	row, err := writer.Account.FindByUsername(ctx, d.Username)
	if err != nil {
		return err
	}

	newBalance := row.Balance.Add(d.Amount)
	if err = writer.Account.UpdateBalance(ctx, d.Username, newBalance); err != nil {
		return err
	}

	writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		AccountID:    row.ID,
		Kind:         transaction.KindDeposit,
		Amount:       d.Amount,
		BalanceAfter: newBalance,
	})

	d.NewBalance = newBalance
	return nil
}

type Withdraw struct {
	Username string
	Amount   decimal.Decimal

	NewBalance decimal.Decimal
}

func (w *Withdraw) Perform(ctx context.Context, writer *storage.Writer) error {
	if !w.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	row, err := writer.Account.FindByUsername(ctx, w.Username)
	if err != nil {
		return err
	}

	// Equal is allowed and empties the account.
	if w.Amount.GreaterThan(row.Balance) {
		return ErrInsufficientFunds
	}

	newBalance := row.Balance.Sub(w.Amount)
	if err = writer.Account.UpdateBalance(ctx, w.Username, newBalance); err != nil {
		return err
	}

	writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		AccountID:    row.ID,
		Kind:         transaction.KindWithdrawal,
		Amount:       w.Amount.Neg(),
		BalanceAfter: newBalance,
	})

	w.NewBalance = newBalance
	return nil
}
