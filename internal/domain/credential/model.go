package credential

import (
	"time"
)

// Envelope is the complete set of fields required to decrypt one
// stored secret. The four byte fields are persisted together and never
// partially updated; without its salt, IV and tag the ciphertext is
// meaningless.
type Envelope struct {
	Ciphertext []byte
	Salt       []byte
	IV         []byte
	AuthTag    []byte
	// Iterations records the KDF parameter used at encryption time so
	// a later decrypt keeps working even if the default changes.
	Iterations int
}

// Validate rejects envelopes with any missing component.
func (e Envelope) Validate() error {
	if len(e.Ciphertext) == 0 || len(e.Salt) == 0 || len(e.IV) == 0 || len(e.AuthTag) == 0 {
		return ErrInvalidInput
	}
	if e.Iterations <= 0 {
		return ErrInvalidInput
	}
	return nil
}

// Credential ties an envelope to a user and a logical integration
// name such as "trading212". (UserID, Name) is unique.
type Credential struct {
	ID        int
	UserID    int
	Name      string
	Envelope  Envelope
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Input kinds for connect/rotate. An explicit discriminator instead of
// inspecting the request body shape at runtime.
const (
	KindPlaintext = "plaintext"
	KindEnvelope  = "envelope"
)

// SecretInput is the tagged union accepted by Connect and Rotate:
// either a plaintext secret the server encrypts, or a ready envelope
// produced under the same server secret (import/migration path).
type SecretInput struct {
	Kind      string
	Plaintext string
	Envelope  Envelope
}

// Integration is the caller-facing view of a connected credential; the
// envelope itself is withheld.
type Integration struct {
	Name        string    `json:"name"`
	ConnectedAt time.Time `json:"connected_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
