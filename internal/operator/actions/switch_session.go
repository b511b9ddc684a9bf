package actions

import (
	"context"

	"github.com/carson-networks/teller/internal/storage"
)

// SwitchSession moves the logged-in flag from one account to another in a
// single write. An empty From means no prior session; an empty To logs out.
type SwitchSession struct {
	From string
	To   string
}

func (s *SwitchSession) Perform(ctx context.Context, writer *storage.Writer) error {
	if s.From != "" {
		if err := writer.Account.SetLoggedIn(ctx, s.From, false); err != nil {
			return err
		}
	}

	if s.To != "" {
		if err := writer.Account.SetLoggedIn(ctx, s.To, true); err != nil {
			return err
		}
	}

	return nil
}
