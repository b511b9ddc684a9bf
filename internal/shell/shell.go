package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/teller/internal/logging"
	"github.com/carson-networks/teller/internal/service"
)

var (
	errInputClosed   = errors.New("input closed")
	errInvalidAmount = errors.New("invalid amount")
)

// Prompter reads one line of input. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	PasswordPrompt(prompt string) (string, error)
}

type credentialVault interface {
	CreateAccount(ctx context.Context, username, password, pin string) error
	Login(ctx context.Context, username, password, pin string) error
	Logout(ctx context.Context) error
}

type sessionLedger interface {
	CheckBalance(ctx context.Context) (decimal.Decimal, error)
	Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	TransactionHistory(ctx context.Context) ([]service.Transaction, error)
}

type sessionState interface {
	Active() (string, bool)
}

// Shell is the interactive ATM menu. It owns all console I/O and turns
// engine errors into user-facing messages; it never retries on its own.
type Shell struct {
	BankName string
	Prompter Prompter
	Out      io.Writer
	Vault    credentialVault
	Ledger   sessionLedger
	Session  sessionState
	Logger   *logrus.Logger
}

func New(bankName string, prompter Prompter, out io.Writer, svc *service.Service, logger *logrus.Logger) *Shell {
	return &Shell{
		BankName: bankName,
		Prompter: prompter,
		Out:      out,
		Vault:    svc.Vault,
		Ledger:   svc.Ledger,
		Session:  svc.Session,
		Logger:   logger,
	}
}

// Run drives the main menu until the user exits or input ends. An active
// session is logged out before returning.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("Welcome to %s!\n", s.BankName)
	defer s.logoutOnExit(ctx)

	for {
		s.printf("\n%s ATM Simulator\n", s.BankName)
		s.printf("1. Create Account\n2. Login\n3. Exit\n")

		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case "1":
			err = s.runCommand(ctx, "CreateAccount", s.createAccount)
		case "2":
			err = s.runCommand(ctx, "Login", s.login)
			if err == nil && s.active() {
				err = s.sessionLoop(ctx)
			}
		case "3":
			s.printf("Thank you for banking with %s.\n", s.BankName)
			return nil
		default:
			s.printf("Invalid choice. Please try again.\n")
		}

		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Shell) sessionLoop(ctx context.Context) error {
	for s.active() {
		s.printf("\n%s ATM Menu:\n", s.BankName)
		s.printf("1. Logout\n2. Check Balance\n3. Withdraw\n4. Deposit\n5. Transaction History\n6. Exit\n")

		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.runCommand(ctx, "Logout", s.logout)
		case "2":
			err = s.runCommand(ctx, "CheckBalance", s.checkBalance)
		case "3":
			err = s.runCommand(ctx, "Withdraw", s.withdraw)
		case "4":
			err = s.runCommand(ctx, "Deposit", s.deposit)
		case "5":
			err = s.runCommand(ctx, "TransactionHistory", s.transactionHistory)
		case "6":
			s.printf("Thank you for banking with %s.\n", s.BankName)
			return s.runCommand(ctx, "Logout", s.logout)
		default:
			s.printf("Invalid choice. Please try again.\n")
		}

		if err != nil {
			return err
		}
	}
	return nil
}

// runCommand logs the command and swallows everything except closed input,
// which ends the shell.
func (s *Shell) runCommand(ctx context.Context, name string, command func(context.Context) error) error {
	wrapped := logging.CommandWrapper(name, s.Logger, func(logData *logging.LogData) error {
		return command(logging.WithLogData(ctx, logData))
	})

	err := wrapped()
	if errors.Is(err, errInputClosed) {
		return err
	}
	return nil
}

func (s *Shell) createAccount(ctx context.Context) error {
	username, password, pin, err := s.credentials()
	if err != nil {
		return err
	}

	err = s.Vault.CreateAccount(ctx, username, password, pin)
	if err != nil {
		s.printf("%s\n", describeError(err))
		return err
	}

	s.printf("Account created successfully.\n")
	return nil
}

func (s *Shell) login(ctx context.Context) error {
	username, password, pin, err := s.credentials()
	if err != nil {
		return err
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("username", username)
	}

	err = s.Vault.Login(ctx, username, password, pin)
	if err != nil {
		s.printf("%s\n", describeError(err))
		return err
	}

	s.printf("Login successful.\n")
	return nil
}

func (s *Shell) logout(ctx context.Context) error {
	if err := s.Vault.Logout(ctx); err != nil {
		s.printf("%s\n", describeError(err))
		return err
	}

	s.printf("You have been logged out.\n")
	return nil
}

func (s *Shell) checkBalance(ctx context.Context) error {
	balance, err := s.Ledger.CheckBalance(ctx)
	if err != nil {
		s.printf("%s\n", describeError(err))
		return err
	}

	s.printf("Your current balance is: $%s\n", balance.StringFixed(2))
	return nil
}

func (s *Shell) withdraw(ctx context.Context) error {
	amount, err := s.promptAmount(ctx, "Enter withdrawal amount: $")
	if err != nil {
		return err
	}

	balance, err := s.Ledger.Withdraw(ctx, amount)
	if err != nil {
		s.printf("%s\n", describeError(err))
		return err
	}

	s.printf("Withdrawal successful. New balance: $%s\n", balance.StringFixed(2))
	return nil
}

func (s *Shell) deposit(ctx context.Context) error {
	amount, err := s.promptAmount(ctx, "Enter deposit amount: $")
	if err != nil {
		return err
	}

	balance, err := s.Ledger.Deposit(ctx, amount)
	if err != nil {
		s.printf("%s\n", describeError(err))
		return err
	}

	s.printf("Deposit successful. New balance: $%s\n", balance.StringFixed(2))
	return nil
}

func (s *Shell) transactionHistory(ctx context.Context) error {
	history, err := s.Ledger.TransactionHistory(ctx)
	if err != nil {
		s.printf("%s\n", describeError(err))
		return err
	}

	s.printf("\nTransaction History:\n")
	if len(history) == 0 {
		s.printf("No transactions yet.\n")
	}
	for _, entry := range history {
		s.printf("%s\n", entry)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(history))
	}
	return nil
}

func (s *Shell) credentials() (username, password, pin string, err error) {
	if username, err = s.prompt("Enter your username: "); err != nil {
		return "", "", "", err
	}
	if password, err = s.promptPassword("Enter your password: "); err != nil {
		return "", "", "", err
	}
	if pin, err = s.prompt("Enter your 4-digit PIN: "); err != nil {
		return "", "", "", err
	}
	return username, password, pin, nil
}

// promptAmount parses the reply as an exact decimal. Malformed input is
// reported here and never reaches the ledger.
func (s *Shell) promptAmount(ctx context.Context, prompt string) (decimal.Decimal, error) {
	raw, err := s.prompt(prompt)
	if err != nil {
		return decimal.Zero, err
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		s.printf("Invalid amount. Please enter a number such as 25.00.\n")
		return decimal.Zero, fmt.Errorf("%w %q: %v", errInvalidAmount, raw, err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("amount", amount.String())
	}
	return amount, nil
}

func (s *Shell) prompt(prompt string) (string, error) {
	line, err := s.Prompter.Prompt(prompt)
	if err != nil {
		return "", inputError(err)
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) promptPassword(prompt string) (string, error) {
	line, err := s.Prompter.PasswordPrompt(prompt)
	if err != nil {
		return "", inputError(err)
	}
	return line, nil
}

func inputError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
		return errInputClosed
	}
	return err
}

func (s *Shell) active() bool {
	_, active := s.Session.Active()
	return active
}

func (s *Shell) logoutOnExit(ctx context.Context) {
	if !s.active() {
		return
	}
	if err := s.Vault.Logout(ctx); err != nil {
		s.Logger.WithError(err).Warn("Shell.Exit.LogoutFailed")
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		s.printf("\nGoodbye.\n")
		return nil
	}
	return err
}

func (s *Shell) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.Out, format, args...)
}
