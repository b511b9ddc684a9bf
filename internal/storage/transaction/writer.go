package transaction

import (
	"context"
)

// Writer buffers appends until Commit.
type Writer struct {
	table   ITransactionTable
	pending []*TransactionCreate
}

func NewWriter(table ITransactionTable) *Writer {
	return &Writer{table: table}
}

func (w *Writer) Insert(_ context.Context, create *TransactionCreate) {
	cp := *create
	w.pending = append(w.pending, &cp)
}

func (w *Writer) Pending() int {
	return len(w.pending)
}

func (w *Writer) Commit(ctx context.Context) ([]*Transaction, error) {
	var inserted []*Transaction
	for _, create := range w.pending {
		row, err := w.table.Insert(ctx, create)
		if err != nil {
			return inserted, err
		}
		inserted = append(inserted, row)
	}
	w.pending = nil
	return inserted, nil
}

func (w *Writer) Discard() {
	w.pending = nil
}
