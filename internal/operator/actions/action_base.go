package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/teller/internal/storage"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// IAction is one unit of work performed inside a single storage writer.
// Returning an error rolls back everything the action staged.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
