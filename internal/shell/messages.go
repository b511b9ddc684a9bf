package shell

import (
	"errors"
	"strings"

	"github.com/carson-networks/teller/internal/service"
)

// describeError turns an engine error into the line shown to the user.
// Login failures share one message so the terminal never reveals which
// credential was wrong.
func describeError(err error) string {
	var policyErr *service.PolicyError

	switch {
	case errors.As(err, &policyErr):
		return policyMessage(policyErr)
	case service.IsAuthFailure(err):
		return "Invalid username, password, or PIN."
	case errors.Is(err, service.ErrDuplicateUsername):
		return "Username already exists."
	case errors.Is(err, service.ErrSessionActive):
		return "Another session is already active. Please log out first."
	case errors.Is(err, service.ErrNoActiveSession):
		return "Please login first."
	case errors.Is(err, service.ErrNonPositiveAmount):
		return "Amount must be greater than zero."
	case errors.Is(err, service.ErrInsufficientFunds):
		return "Insufficient funds."
	default:
		return "An error occurred: " + err.Error()
	}
}

func policyMessage(err *service.PolicyError) string {
	var subject string
	switch {
	case errors.Is(err, service.ErrWeakPassword):
		subject = "Password"
	case errors.Is(err, service.ErrInvalidPin):
		return "Invalid PIN. Please use 4 digits."
	case errors.Is(err, service.ErrInvalidUsername):
		subject = "Username"
	default:
		return "An error occurred: " + err.Error()
	}
	return subject + " " + strings.TrimSuffix(err.Rule, ".") + "."
}
