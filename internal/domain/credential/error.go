package credential

import "errors"

var (
	// ErrNotConnected is the expected state for an integration the user
	// never connected (or disconnected); not an alarming failure.
	ErrNotConnected = errors.New("integration not connected")

	// ErrConflict means a credential already exists for (user, name);
	// callers can offer "update instead".
	ErrConflict = errors.New("credential already exists")

	// ErrInvalidInput covers a missing plaintext value or a malformed
	// envelope on connect/rotate.
	ErrInvalidInput = errors.New("invalid credential input")

	// ErrDecrypt means the stored envelope no longer authenticates,
	// typically after a server secret rotation. Recoverable by the user
	// reconnecting; never auto-retried with a different key.
	ErrDecrypt = errors.New("failed to decrypt credential")

	// ErrMissingSecret is a fatal configuration error: the server-side
	// base material for key derivation is absent. No flow may proceed
	// with a fallback key.
	ErrMissingSecret = errors.New("credential secret is not configured")
)
