package common

import "errors"

// IsFatal reports whether err is one of the flow outcomes that must
// terminate the process instead of returning control to a retry loop.
func IsFatal(err error) bool {
	return errors.Is(err, ErrNoUsersConfigured) ||
		errors.Is(err, ErrRegistrationDeclined) ||
		errors.Is(err, ErrInputClosed)
}

// ExitCode maps an error that reached the entry point to a process exit code.
// A declined registration is the user's choice and exits cleanly.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrRegistrationDeclined):
		return 0
	default:
		return 1
	}
}
