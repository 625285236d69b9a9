package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tasklists/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ListUsers(ctx context.Context) error
	Reload(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a.
//
// The prompt shows the current status (from statusFn) and accepts:
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create a profile
//	  - login          authenticate
//	  - users          list usernames
//	  - reload         re-read the users file
//	  - exit | quit    leave the program
//
//	Logged in, additionally:
//	  - whoami         show the current user
//	  - logout         forget the current user
//
// Command handlers report their own failures, so ordinary errors are dropped
// here. A fatal error ends the loop and is returned. End of input ends the
// loop with a nil error.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) error {
	for {
		printlnFn(fmt.Sprintf("tl> %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			if errors.Is(err, common.ErrInputClosed) {
				return nil
			}
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, users, register, logout, reload, exit")
			} else {
				printlnFn("Available commands: login, register, users, reload, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "users":
			err = a.ListUsers(ctx)

		case "reload":
			err = a.Reload(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return nil

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil && common.IsFatal(err) {
			if errors.Is(err, common.ErrInputClosed) {
				return nil
			}
			return err
		}
	}
}
