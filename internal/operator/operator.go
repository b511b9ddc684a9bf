package operator

import (
	"context"
	"fmt"

	"github.com/carson-networks/teller/internal/operator/actions"
	"github.com/carson-networks/teller/internal/storage"
)

// Operator is the ledger's writer goroutine. It owns the storage writer for
// the lifetime of one action and reports exactly one outcome per item.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
}

func NewOperator(s *storage.Storage, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run drains the queue until it is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.apply(item.ctx, item.action)}
	}
}

// apply runs action in its own writer. A caller that gave up while the item
// waited for the writer gets its context error and nothing is committed.
func (o *Operator) apply(ctx context.Context, action actions.IAction) error {
	writer, err := o.storage.Write(ctx)
	if err != nil {
		return err
	}

	if err = ctx.Err(); err != nil {
		return rollback(writer, err)
	}

	if err = action.Perform(ctx, writer); err != nil {
		return rollback(writer, err)
	}

	if err = ctx.Err(); err != nil {
		return rollback(writer, err)
	}

	if err = writer.Commit(); err != nil {
		return fmt.Errorf("commit %T: %w", action, err)
	}
	return nil
}

func rollback(writer *storage.Writer, cause error) error {
	if err := writer.Rollback(); err != nil {
		return fmt.Errorf("%w (rollback failed: %v)", cause, err)
	}
	return cause
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
