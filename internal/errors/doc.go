// Package errors defines the failure taxonomy for the FriCAS session
// driver: typed errors for launch failures and prompt-wait timeouts,
// plus sentinel errors for usage mistakes.
package errors
