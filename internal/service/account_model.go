package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/teller/internal/storage/account"
)

// Account is the service-layer view of an account. Digests are not exposed.
type Account struct {
	ID        uuid.UUID
	Username  string
	Balance   decimal.Decimal
	LoggedIn  bool
	CreatedAt time.Time
}

func accountFromStorage(row *account.Account) *Account {
	return &Account{
		ID:        row.ID,
		Username:  row.Username,
		Balance:   row.Balance,
		LoggedIn:  row.LoggedIn,
		CreatedAt: row.CreatedAt,
	}
}
