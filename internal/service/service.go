package service

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/teller/internal/storage"
)

// Service holds the session and the two components that share it.
type Service struct {
	Session *Session
	Vault   *CredentialVault
	Ledger  *SessionLedger
}

type Options struct {
	Hasher        SecretHasher
	ReloginPolicy ReloginPolicy
	Logger        *logrus.Logger
}

// NewService wires a CredentialVault and SessionLedger over one Session.
func NewService(store *storage.Storage, op ActionProcessor, opts Options) *Service {
	if opts.Hasher == nil {
		opts.Hasher = NewBcryptHasher(bcrypt.DefaultCost)
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	session := NewSession()
	vault := NewCredentialVault(store, op, opts.Hasher, session, opts.ReloginPolicy, opts.Logger)

	return &Service{
		Session: session,
		Vault:   vault,
		Ledger:  NewSessionLedger(vault, store, op, opts.Logger),
	}
}
