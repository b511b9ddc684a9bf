package service

import (
	"errors"

	"github.com/carson-networks/teller/internal/operator/actions"
	"github.com/carson-networks/teller/internal/storage/account"
)

var (
	// Policy violations.
	ErrInvalidUsername = errors.New("invalid username")
	ErrWeakPassword    = errors.New("weak password")
	ErrInvalidPin      = errors.New("invalid PIN")

	// Identity and authentication failures.
	ErrDuplicateUsername = account.ErrDuplicateUsername
	ErrUnknownUser       = errors.New("unknown user")
	ErrBadPassword       = errors.New("incorrect password")
	ErrBadPin            = errors.New("incorrect PIN")

	// Session state misuse.
	ErrNoActiveSession = errors.New("no active session")
	ErrSessionActive   = errors.New("another session is already active")

	// Ledger rule violations.
	ErrNonPositiveAmount = actions.ErrNonPositiveAmount
	ErrInsufficientFunds = actions.ErrInsufficientFunds
)

// PolicyError reports the first credential rule an input failed.
type PolicyError struct {
	Err  error
	Rule string
}

func (e *PolicyError) Error() string {
	return e.Err.Error() + ": " + e.Rule
}

func (e *PolicyError) Unwrap() error {
	return e.Err
}

func IsPolicyViolation(err error) bool {
	return errors.Is(err, ErrInvalidUsername) ||
		errors.Is(err, ErrWeakPassword) ||
		errors.Is(err, ErrInvalidPin)
}

// IsAuthFailure reports identity and credential failures that user-facing
// text should not tell apart.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrUnknownUser) ||
		errors.Is(err, ErrBadPassword) ||
		errors.Is(err, ErrBadPin)
}
