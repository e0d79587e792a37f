// Package client implements the game's account, quota, theme and
// payment flows on the client side. The local variant keeps all state
// in an injected Store; the networked variant holds only a session
// token and talks to the backend through APIClient.
package client

import "errors"

var (
	// ErrValidation reports bad input shape or length.
	ErrValidation = errors.New("invalid input")

	// ErrConflict reports a duplicate username on registration.
	ErrConflict = errors.New("username already taken")

	// ErrAuth covers bad credentials and invalid or expired sessions.
	// The unknown-user and wrong-password paths both return exactly
	// this value so the two cases cannot be told apart.
	ErrAuth = errors.New("invalid username or password")

	// ErrNotFound reports an unknown account or payment.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated reports an operation that needs an active
	// session when none is held.
	ErrUnauthenticated = errors.New("not logged in")

	// ErrConnectivity wraps transport-level failures in the networked
	// variant. Failures surface once; nothing retries.
	ErrConnectivity = errors.New("network error")
)
