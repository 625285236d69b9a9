// Package services contains the account flows of Tasklists: registering a
// new profile and authenticating an existing one against the users store.
package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"regexp"

	"github.com/dmitrijs2005/tasklists/internal/common"
	"github.com/dmitrijs2005/tasklists/internal/logging"
	"github.com/dmitrijs2005/tasklists/internal/users"
)

var (
	// UsernameForbidden matches characters a username may not contain.
	UsernameForbidden = regexp.MustCompile("[.\\[\\]'<>!*@/\\\\`,\"';:#~{}=+_|?]")

	// FullNameForbidden additionally forbids digits.
	FullNameForbidden = regexp.MustCompile("[0-9.\\[\\]'<>!*@/\\\\`,\"';:#~{}=+_|?]")
)

// Prompter collects input from the user. Every call blocks until the user
// answers.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(question string) (bool, error)
	// Text asks for a line that must not match forbidden. A nil pattern
	// accepts anything.
	Text(label string, forbidden *regexp.Regexp) (string, error)
	// Password asks for an unconstrained secret.
	Password(label string) (string, error)
}

// Reporter shows the outcome of a flow to the user.
type Reporter interface {
	ReportError(msg string)
	Announce(msg string)
}

// AccountService defines the account flows.
//
// Contract:
//   - Register: collect a new identity, reject duplicates, persist it.
//   - Authenticate: collect credentials and check them against the store,
//     marking the matching account as current on success.
//
// Errors matching common.IsFatal must end the process; all others leave the
// caller free to retry.
type AccountService interface {
	Register(ctx context.Context) (*users.User, error)
	Authenticate(ctx context.Context) (*users.User, error)
}

// accountService is the concrete AccountService over an in-memory store
// and an optional users file.
type accountService struct {
	store     *users.Store
	usersFile string
	prompt    Prompter
	report    Reporter
	log       logging.Logger
}

// NewAccountService binds the flows to store. When usersFile is empty new
// accounts are not persisted.
func NewAccountService(store *users.Store, usersFile string, p Prompter, r Reporter, log logging.Logger) AccountService {
	return &accountService{store: store, usersFile: usersFile, prompt: p, report: r, log: log}
}

// Register runs the registration flow. It does not add the new account to
// the store: callers reload from the users file, or add it themselves when
// nothing is persisted.
func (s *accountService) Register(ctx context.Context) (*users.User, error) {
	ok, err := s.prompt.Confirm("Would you like to create a new profile?")
	if err != nil {
		return nil, err
	}
	if !ok {
		s.report.ReportError("No profile was created. Run the command again when you are ready to register.")
		return nil, common.ErrRegistrationDeclined
	}

	username, err := s.prompt.Text("New Username", UsernameForbidden)
	if err != nil {
		return nil, err
	}
	password, err := s.prompt.Password("New Password")
	if err != nil {
		return nil, err
	}
	fullName, err := s.prompt.Text("Please write your full name", FullNameForbidden)
	if err != nil {
		return nil, err
	}

	if s.store.FindByUsername(username) != nil {
		s.log.Info(ctx, "registration rejected", "username", username, "reason", "duplicate")
		s.report.ReportError(fmt.Sprintf("Username %s already exists.\nPick another username and try again.", username))
		return nil, fmt.Errorf("register %q: %w", username, common.ErrDuplicateUser)
	}

	user, err := users.NewUser(fullName, username, password)
	if err != nil {
		return nil, fmt.Errorf("register %q: %w", username, err)
	}

	if s.usersFile != "" {
		if err := users.AppendFile(s.usersFile, user); err != nil {
			s.log.Error(ctx, "saving new user failed", "username", username, "file", s.usersFile, "err", err)
			return nil, fmt.Errorf("register %q: %w", username, err)
		}
		s.log.Info(ctx, "user saved", "username", username, "file", s.usersFile)
	} else {
		s.log.Warn(ctx, "no users file configured, new user is kept in memory only", "username", username)
	}

	s.report.Announce(fmt.Sprintf("User %s has been created. Welcome to %s!", username, common.AppName))
	return user, nil
}

// Authenticate runs the login flow. A record whose password cannot be
// decrypted is reported like a wrong password.
func (s *accountService) Authenticate(ctx context.Context) (*users.User, error) {
	if s.store.Len() == 0 {
		s.report.ReportError(`There are no users inside this Tasklists instance.
			To create the first user, include -n in your console command.`)
		return nil, common.ErrNoUsersConfigured
	}

	username, err := s.prompt.Text("Username", UsernameForbidden)
	if err != nil {
		return nil, err
	}
	password, err := s.prompt.Password("Password")
	if err != nil {
		return nil, err
	}

	user := s.store.FindByUsername(username)
	if user == nil {
		s.log.Info(ctx, "login failed", "username", username, "reason", "not found")
		s.report.ReportError(fmt.Sprintf(`User '%s' was not found.
			If you are trying to create a new profile,
			make sure to include -n in your console command.`, username))
		return nil, fmt.Errorf("login %q: %w", username, common.ErrUserNotFound)
	}

	stored, err := user.Password()
	if err != nil {
		s.log.Warn(ctx, "stored password cannot be decrypted", "username", username, "err", err)
		s.report.ReportError("Incorrect password.\nCheck the password and try again.")
		return nil, fmt.Errorf("login %q: %w: %w", username, common.ErrWrongPassword, err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		s.log.Info(ctx, "login failed", "username", username, "reason", "wrong password")
		s.report.ReportError("Incorrect password.\nCheck the password and try again.")
		return nil, fmt.Errorf("login %q: %w", username, common.ErrWrongPassword)
	}

	s.store.SetCurrent(user)
	s.log.Info(ctx, "login succeeded", "username", username)
	return user, nil
}
