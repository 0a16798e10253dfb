package credential

import "context"

// Repository persists credential envelopes keyed by (user, name).
// Every operation is scoped to the given user; an implementation must
// never allow cross-user reads.
type Repository interface {
	// Create fails with ErrConflict when (userID, name) already exists.
	Create(ctx context.Context, userID int, name string, env Envelope) error
	// Update replaces all envelope fields atomically; ErrNotConnected
	// when the credential is absent.
	Update(ctx context.Context, userID int, name string, env Envelope) error
	// Delete is idempotent: removing an absent credential is not an
	// error at this layer.
	Delete(ctx context.Context, userID int, name string) error
	Get(ctx context.Context, userID int, name string) (*Credential, error)
	List(ctx context.Context, userID int) ([]Credential, error)
}
