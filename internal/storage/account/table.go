package account

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Ensure Table implements IAccountTable at compile time.
var _ IAccountTable = (*Table)(nil)

// Table is the in-memory accounts table keyed by username.
type Table struct {
	mu   sync.RWMutex
	rows map[string]*Account
}

func NewTable() *Table {
	return &Table{rows: make(map[string]*Account)}
}

// FindByUsername retrieves an account by its exact, case-sensitive username.
func (t *Table) FindByUsername(_ context.Context, username string) (*Account, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[username]
	if !ok {
		return nil, ErrNotFound
	}
	return row.Clone(), nil
}

// Insert creates a new logged-out account with a zero balance.
func (t *Table) Insert(_ context.Context, create *AccountCreate) (*Account, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[create.Username]; ok {
		return nil, ErrDuplicateUsername
	}

	id := create.ID
	if id == uuid.Nil {
		var err error
		id, err = uuid.NewV4()
		if err != nil {
			return nil, err
		}
	}
	createdAt := create.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	row := &Account{
		ID:             id,
		Username:       create.Username,
		PasswordDigest: append([]byte(nil), create.PasswordDigest...),
		PinDigest:      append([]byte(nil), create.PinDigest...),
		Balance:        decimal.Zero,
		LoggedIn:       false,
		CreatedAt:      createdAt,
	}
	t.rows[row.Username] = row
	return row.Clone(), nil
}

// UpdateBalance replaces the balance for a given account.
func (t *Table) UpdateBalance(_ context.Context, username string, balance decimal.Decimal) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[username]
	if !ok {
		return ErrNotFound
	}
	row.Balance = balance
	return nil
}

// SetLoggedIn sets the session flag for a given account.
func (t *Table) SetLoggedIn(_ context.Context, username string, loggedIn bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[username]
	if !ok {
		return ErrNotFound
	}
	row.LoggedIn = loggedIn
	return nil
}

// ListLoggedIn returns every account whose session flag is set, ordered by username.
func (t *Table) ListLoggedIn(_ context.Context) ([]*Account, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var result []*Account
	for _, row := range t.rows {
		if row.LoggedIn {
			result = append(result, row.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Username < result[j].Username
	})
	return result, nil
}
