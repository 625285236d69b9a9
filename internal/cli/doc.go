// Package cli provides the interactive Tasklists command-line client.
//
// It wires configuration, the users store and the account flows to the
// console: Console implements the prompts and the error/success display the
// flows need, App runs registration and login, and runREPL serves a small
// command loop once a user is logged in.
//
// Flow outcomes matching common.IsFatal are returned from App.Run so the
// entry point can end the process; everything else is reported on the
// console and the user may try again.
package cli
