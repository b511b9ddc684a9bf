package account

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("account not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// Account represents an account record.
type Account struct {
	ID             uuid.UUID
	Username       string
	PasswordDigest []byte
	PinDigest      []byte
	Balance        decimal.Decimal
	LoggedIn       bool
	CreatedAt      time.Time
}

// Clone returns a deep copy so callers never share digest slices with the table.
func (a *Account) Clone() *Account {
	cp := *a
	cp.PasswordDigest = append([]byte(nil), a.PasswordDigest...)
	cp.PinDigest = append([]byte(nil), a.PinDigest...)
	return &cp
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	ID             uuid.UUID // generated if nil
	Username       string
	PasswordDigest []byte
	PinDigest      []byte
	CreatedAt      time.Time // defaults to now if zero
}

// IAccountTable defines the interface for account storage operations.
// Every returned *Account is a copy owned by the caller.
//
//go:generate mockery --name IAccountTable --output mock_IAccountTable.go
type IAccountTable interface {
	FindByUsername(ctx context.Context, username string) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	UpdateBalance(ctx context.Context, username string, balance decimal.Decimal) error
	SetLoggedIn(ctx context.Context, username string, loggedIn bool) error
	ListLoggedIn(ctx context.Context) ([]*Account, error)
}
