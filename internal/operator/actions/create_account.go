package actions

import (
	"context"

	"github.com/carson-networks/teller/internal/storage"
	"github.com/carson-networks/teller/internal/storage/account"
)

type CreateAccount struct {
	Username       string
	PasswordDigest []byte
	PinDigest      []byte

	Created *account.Account
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Account.Create(ctx, c.Username, c.PasswordDigest, c.PinDigest)
	if err != nil {
		return err
	}

	c.Created = row
	return nil
}
