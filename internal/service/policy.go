package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8
	PinLength         = 4
	SpecialCharacters = "!@#$%^&*()_"
)

type passwordRule struct {
	description string
	satisfied   func(password string) bool
}

// Checked in order; the first unmet rule is reported.
var passwordRules = []passwordRule{
	{
		description: "must be at least 8 characters",
		satisfied: func(p string) bool {
			return utf8.RuneCountInString(p) >= MinPasswordLength
		},
	},
	{
		description: "must contain at least one uppercase letter",
		satisfied:   func(p string) bool { return strings.IndexFunc(p, unicode.IsUpper) >= 0 },
	},
	{
		description: "must contain at least one lowercase letter",
		satisfied:   func(p string) bool { return strings.IndexFunc(p, unicode.IsLower) >= 0 },
	},
	{
		description: "must contain at least one digit",
		satisfied:   func(p string) bool { return strings.IndexFunc(p, unicode.IsDigit) >= 0 },
	},
	{
		description: "must contain at least one special character (" + SpecialCharacters + ")",
		satisfied:   func(p string) bool { return strings.ContainsAny(p, SpecialCharacters) },
	},
}

// ValidatePassword returns a *PolicyError wrapping ErrWeakPassword for the
// first rule password breaks.
func ValidatePassword(password string) error {
	for _, rule := range passwordRules {
		if !rule.satisfied(password) {
			return &PolicyError{Err: ErrWeakPassword, Rule: rule.description}
		}
	}
	return nil
}

// ValidatePin accepts exactly four ASCII digits.
func ValidatePin(pin string) error {
	if len(pin) != PinLength {
		return &PolicyError{Err: ErrInvalidPin, Rule: "must be exactly 4 digits"}
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return &PolicyError{Err: ErrInvalidPin, Rule: "must contain only digits"}
		}
	}
	return nil
}

// ValidateUsername rejects names that are empty or padded with whitespace,
// so "alice" and "alice " can never be two accounts.
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return &PolicyError{Err: ErrInvalidUsername, Rule: "must not be empty"}
	}
	if trimmed != username {
		return &PolicyError{Err: ErrInvalidUsername, Rule: "must not begin or end with whitespace"}
	}
	return nil
}
