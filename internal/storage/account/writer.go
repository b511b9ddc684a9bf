package account

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Writer stages account mutations on top of a table. Reads through the
// Writer see staged state; nothing reaches the table until Commit.
type Writer struct {
	table    IAccountTable
	original map[string]*Account
	staged   map[string]*Account
	created  map[string]bool
	order    []string
}

func NewWriter(table IAccountTable) *Writer {
	return &Writer{
		table:    table,
		original: make(map[string]*Account),
		staged:   make(map[string]*Account),
		created:  make(map[string]bool),
	}
}

// FindByUsername returns the staged copy of the account, loading it from
// the table on first access.
func (w *Writer) FindByUsername(ctx context.Context, username string) (*Account, error) {
	row, err := w.load(ctx, username)
	if err != nil {
		return nil, err
	}
	return row.Clone(), nil
}

func (w *Writer) load(ctx context.Context, username string) (*Account, error) {
	if row, ok := w.staged[username]; ok {
		return row, nil
	}

	row, err := w.table.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	w.original[username] = row.Clone()
	w.staged[username] = row
	w.order = append(w.order, username)
	return row, nil
}

// Create stages a new account. The ID and creation time are fixed here so
// the committed row matches what the caller saw.
func (w *Writer) Create(ctx context.Context, username string, passwordDigest, pinDigest []byte) (*Account, error) {
	if _, err := w.load(ctx, username); err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	row := &Account{
		ID:             id,
		Username:       username,
		PasswordDigest: append([]byte(nil), passwordDigest...),
		PinDigest:      append([]byte(nil), pinDigest...),
		Balance:        decimal.Zero,
		CreatedAt:      time.Now().UTC(),
	}
	w.staged[username] = row
	w.created[username] = true
	w.order = append(w.order, username)
	return row.Clone(), nil
}

func (w *Writer) UpdateBalance(ctx context.Context, username string, balance decimal.Decimal) error {
	row, err := w.load(ctx, username)
	if err != nil {
		return err
	}
	row.Balance = balance
	return nil
}

func (w *Writer) SetLoggedIn(ctx context.Context, username string, loggedIn bool) error {
	row, err := w.load(ctx, username)
	if err != nil {
		return err
	}
	row.LoggedIn = loggedIn
	return nil
}

// Commit applies staged changes to the table in first-touch order.
func (w *Writer) Commit(ctx context.Context) error {
	for _, username := range w.order {
		row := w.staged[username]
		base := w.original[username]

		if w.created[username] {
			inserted, err := w.table.Insert(ctx, &AccountCreate{
				ID:             row.ID,
				Username:       row.Username,
				PasswordDigest: row.PasswordDigest,
				PinDigest:      row.PinDigest,
				CreatedAt:      row.CreatedAt,
			})
			if err != nil {
				return err
			}
			base = inserted
		}

		if !row.Balance.Equal(base.Balance) {
			if err := w.table.UpdateBalance(ctx, username, row.Balance); err != nil {
				return err
			}
		}
		if row.LoggedIn != base.LoggedIn {
			if err := w.table.SetLoggedIn(ctx, username, row.LoggedIn); err != nil {
				return err
			}
		}
	}
	w.reset()
	return nil
}

// Discard drops all staged changes.
func (w *Writer) Discard() {
	w.reset()
}

func (w *Writer) reset() {
	w.original = make(map[string]*Account)
	w.staged = make(map[string]*Account)
	w.created = make(map[string]bool)
	w.order = nil
}
