package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/teller/internal/logging"
	"github.com/carson-networks/teller/internal/operator/actions"
	"github.com/carson-networks/teller/internal/storage"
	"github.com/carson-networks/teller/internal/storage/account"
)

// ReloginPolicy decides what Login does while another session is active.
type ReloginPolicy int8

const (
	// ReloginOverride replaces the active session and clears the previous
	// account's flag.
	ReloginOverride ReloginPolicy = iota
	// ReloginReject fails with ErrSessionActive.
	ReloginReject
)

func ParseReloginPolicy(s string) (ReloginPolicy, error) {
	switch s {
	case "override":
		return ReloginOverride, nil
	case "reject":
		return ReloginReject, nil
	default:
		return ReloginOverride, fmt.Errorf("unknown relogin policy %q", s)
	}
}

// ActionProcessor runs a storage action to completion, committing it only
// when it succeeds.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CredentialVault owns account creation and the login/logout state machine.
type CredentialVault struct {
	storage  *storage.Storage
	operator ActionProcessor
	hasher   SecretHasher
	session  *Session
	policy   ReloginPolicy
	logger   *logrus.Logger
}

func NewCredentialVault(
	store *storage.Storage,
	op ActionProcessor,
	hasher SecretHasher,
	session *Session,
	policy ReloginPolicy,
	logger *logrus.Logger,
) *CredentialVault {
	return &CredentialVault{
		storage:  store,
		operator: op,
		hasher:   hasher,
		session:  session,
		policy:   policy,
		logger:   logger,
	}
}

// CreateAccount validates the credentials, then stores their digests with
// a zero balance. Password rules are checked before the PIN, and both
// before the username's availability.
func (v *CredentialVault) CreateAccount(ctx context.Context, username, password, pin string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if err := ValidatePin(pin); err != nil {
		return err
	}

	_, err := v.storage.Accounts.FindByUsername(ctx, username)
	if err == nil {
		return ErrDuplicateUsername
	}
	if !errors.Is(err, account.ErrNotFound) {
		return fmt.Errorf("lookup account: %w", err)
	}

	stopTimer := startTiming(ctx, "hashMs")
	passwordDigest, err := v.hasher.Digest(password)
	if err != nil {
		stopTimer()
		return fmt.Errorf("digest password: %w", err)
	}
	pinDigest, err := v.hasher.Digest(pin)
	stopTimer()
	if err != nil {
		return fmt.Errorf("digest PIN: %w", err)
	}

	create := &actions.CreateAccount{
		Username:       username,
		PasswordDigest: passwordDigest,
		PinDigest:      pinDigest,
	}
	if err = v.operator.Process(ctx, create); err != nil {
		return err
	}

	v.logger.WithFields(logrus.Fields{
		"username":  username,
		"accountID": create.Created.ID.String(),
	}).Info("Vault.CreateAccount.Success")
	return nil
}

// Login checks the password before the PIN; a wrong password is reported
// even when the PIN is right.
func (v *CredentialVault) Login(ctx context.Context, username, password, pin string) error {
	row, err := v.storage.Accounts.FindByUsername(ctx, username)
	if errors.Is(err, account.ErrNotFound) {
		v.logFailure(username, ErrUnknownUser)
		return ErrUnknownUser
	}
	if err != nil {
		return fmt.Errorf("lookup account: %w", err)
	}

	stopTimer := startTiming(ctx, "verifyMs")
	passwordOK := v.hasher.Matches(row.PasswordDigest, password)
	pinOK := passwordOK && v.hasher.Matches(row.PinDigest, pin)
	stopTimer()

	if !passwordOK {
		v.logFailure(username, ErrBadPassword)
		return ErrBadPassword
	}
	if !pinOK {
		v.logFailure(username, ErrBadPin)
		return ErrBadPin
	}

	current, active := v.session.Active()
	if active && v.policy == ReloginReject {
		return ErrSessionActive
	}

	switchSession := &actions.SwitchSession{To: username}
	if active && current != username {
		switchSession.From = current
	}
	if err = v.operator.Process(ctx, switchSession); err != nil {
		return err
	}
	v.session.activate(username)

	entry := v.logger.WithField("username", username)
	if switchSession.From != "" {
		entry = entry.WithField("replacedSession", switchSession.From)
	}
	entry.Info("Vault.Login.Success")
	return nil
}

func (v *CredentialVault) Logout(ctx context.Context) error {
	current, active := v.session.Active()
	if !active {
		return ErrNoActiveSession
	}

	if err := v.operator.Process(ctx, &actions.SwitchSession{From: current}); err != nil {
		return err
	}
	v.session.clear()

	v.logger.WithField("username", current).Info("Vault.Logout.Success")
	return nil
}

// ActiveAccount resolves the session to its account.
func (v *CredentialVault) ActiveAccount(ctx context.Context) (*Account, error) {
	row, err := v.activeRecord(ctx)
	if err != nil {
		return nil, err
	}
	return accountFromStorage(row), nil
}

func (v *CredentialVault) activeRecord(ctx context.Context) (*account.Account, error) {
	username, active := v.session.Active()
	if !active {
		return nil, ErrNoActiveSession
	}

	row, err := v.storage.Accounts.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("resolve session %q: %w", username, err)
	}
	return row, nil
}

// CheckSessionInvariant reports an error unless the session and the
// accounts' logged-in flags agree: one flagged account matching the
// session, or none at all.
func (v *CredentialVault) CheckSessionInvariant(ctx context.Context) error {
	loggedIn, err := v.storage.Accounts.ListLoggedIn(ctx)
	if err != nil {
		return err
	}

	username, active := v.session.Active()
	switch {
	case !active && len(loggedIn) == 0:
		return nil
	case active && len(loggedIn) == 1 && loggedIn[0].Username == username:
		return nil
	default:
		names := make([]string, len(loggedIn))
		for i, row := range loggedIn {
			names[i] = row.Username
		}
		return fmt.Errorf("session %q (active=%t) disagrees with logged-in accounts %v", username, active, names)
	}
}

func (v *CredentialVault) logFailure(username string, err error) {
	v.logger.WithField("username", username).WithError(err).Warn("Vault.Login.Failed")
}

func startTiming(ctx context.Context, name string) func() {
	logData := logging.GetLogData(ctx)
	if logData == nil {
		return func() {}
	}
	return logData.AddToExistingTiming(name)
}
