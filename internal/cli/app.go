package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/tasklists/internal/common"
	"github.com/dmitrijs2005/tasklists/internal/config"
	"github.com/dmitrijs2005/tasklists/internal/logging"
	"github.com/dmitrijs2005/tasklists/internal/services"
	"github.com/dmitrijs2005/tasklists/internal/ui"
	"github.com/dmitrijs2005/tasklists/internal/users"
)

// App is the interactive client: one store, one console, one session.
type App struct {
	config   *config.Config
	logger   logging.Logger
	store    *users.Store
	accounts services.AccountService
	console  *Console
	out      io.Writer
}

// NewApp loads the users file named by c (if any) and binds the account
// flows to a console over in and out.
func NewApp(c *config.Config, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	ctx := context.Background()

	store := users.NewStore()
	if c.UsersFile != "" {
		if err := store.LoadFile(c.UsersFile); err != nil {
			logger.Error(ctx, "loading users file failed", "file", c.UsersFile, "err", err)
			return nil, err
		}
		logger.Debug(ctx, "users file loaded", "file", c.UsersFile, "users", store.Len())
	}

	console := NewConsole(in, out)
	accounts := services.NewAccountService(store, c.UsersFile, console, console, logger)

	return &App{
		config:   c,
		logger:   logger,
		store:    store,
		accounts: accounts,
		console:  console,
		out:      out,
	}, nil
}

// Run registers a new profile first when register is set, then asks the
// user to log in and finally serves the command loop. The returned error is
// nil on a normal exit.
func (a *App) Run(ctx context.Context, register bool) error {
	if register {
		if err := a.Register(ctx); err != nil && !errors.Is(err, common.ErrDuplicateUser) {
			return err
		}
	}

	if err := a.loginWithRetries(ctx); err != nil {
		return err
	}

	return runREPL(ctx, a, a.getStatus, a.console.reader)
}

// loginWithRetries repeats the login flow while the failure is one the user
// can fix by typing again.
func (a *App) loginWithRetries(ctx context.Context) error {
	for attempt := 1; attempt <= a.config.MaxLoginAttempts; attempt++ {
		err := a.Login(ctx)
		if err == nil {
			return nil
		}
		if common.IsFatal(err) {
			return err
		}
		if !errors.Is(err, common.ErrUserNotFound) && !errors.Is(err, common.ErrWrongPassword) {
			return err
		}
		a.logger.Debug(ctx, "login attempt failed", "attempt", attempt, "max", a.config.MaxLoginAttempts)
	}

	a.console.ReportError(fmt.Sprintf("Too many failed login attempts (%d).\nRun the command again to retry.",
		a.config.MaxLoginAttempts))
	return common.ErrTooManyAttempts
}

func (a *App) isLoggedIn() bool {
	return a.store.Current() != nil
}

func (a *App) getStatus() string {
	if u := a.store.Current(); u != nil {
		return u.Username()
	}
	return "guest"
}

// Register runs the registration flow and makes the new profile visible in
// the store: by reloading the users file, or by adding it directly when
// nothing is persisted.
func (a *App) Register(ctx context.Context) error {
	u, err := a.accounts.Register(ctx)
	if err != nil {
		return err
	}

	if a.config.UsersFile == "" {
		a.store.Add(u)
		return nil
	}
	return a.store.LoadFile(a.config.UsersFile)
}

// Login runs the authentication flow.
func (a *App) Login(ctx context.Context) error {
	u, err := a.accounts.Authenticate(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome back, %s!\n", u)
	return nil
}

// Logout forgets the current user.
func (a *App) Logout(ctx context.Context) error {
	u := a.store.Current()
	if u == nil {
		fmt.Fprintln(a.out, "You are not logged in.")
		return nil
	}
	a.store.ClearCurrent()
	a.logger.Info(ctx, "logged out", "username", u.Username())
	a.console.Announce(fmt.Sprintf("Logged out %s.", u.Username()))
	return nil
}

// WhoAmI prints the current user.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.store.Current()
	if u == nil {
		fmt.Fprintln(a.out, "You are not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s)\n", u.FullName(), ui.Highlight.Sprint(u.Username()))
	return nil
}

// ListUsers prints the usernames in store order, marking the current one.
func (a *App) ListUsers(ctx context.Context) error {
	if a.store.Len() == 0 {
		fmt.Fprintln(a.out, "No users.")
		return nil
	}
	current := a.store.Current()
	for _, u := range a.store.Users() {
		marker := " "
		if u == current {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s\t%s\n", marker, u.Username(), u.FullName())
	}
	return nil
}

// Reload reads the users file again, replacing the in-memory list.
func (a *App) Reload(ctx context.Context) error {
	if a.config.UsersFile == "" {
		fmt.Fprintln(a.out, "No users file configured.")
		return nil
	}
	if err := a.store.LoadFile(a.config.UsersFile); err != nil {
		a.logger.Error(ctx, "reloading users file failed", "file", a.config.UsersFile, "err", err)
		a.console.ReportError(fmt.Sprintf("Could not read %s.\n%s", a.config.UsersFile, err))
		return err
	}
	fmt.Fprintf(a.out, "Loaded %d users.\n", a.store.Len())
	return nil
}
