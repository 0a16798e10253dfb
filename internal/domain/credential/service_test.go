package credential

import (
	"context"
	"strconv"
	"testing"

	"fintrack/internal/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// memRepository is an in-memory Repository used to exercise full
// connect/use flows without a database.
type memRepository struct {
	creds map[string]*Credential
}

func newMemRepository() *memRepository {
	return &memRepository{creds: make(map[string]*Credential)}
}

func (r *memRepository) key(userID int, name string) string {
	return strconv.Itoa(userID) + "/" + name
}

func (r *memRepository) Create(_ context.Context, userID int, name string, env Envelope) error {
	k := r.key(userID, name)
	if _, ok := r.creds[k]; ok {
		return ErrConflict
	}
	r.creds[k] = &Credential{UserID: userID, Name: name, Envelope: env}
	return nil
}

func (r *memRepository) Update(_ context.Context, userID int, name string, env Envelope) error {
	k := r.key(userID, name)
	if _, ok := r.creds[k]; !ok {
		return ErrNotConnected
	}
	r.creds[k].Envelope = env
	return nil
}

func (r *memRepository) Delete(_ context.Context, userID int, name string) error {
	delete(r.creds, r.key(userID, name))
	return nil
}

func (r *memRepository) Get(_ context.Context, userID int, name string) (*Credential, error) {
	c, ok := r.creds[r.key(userID, name)]
	if !ok {
		return nil, ErrNotConnected
	}
	return c, nil
}

func (r *memRepository) List(_ context.Context, userID int) ([]Credential, error) {
	var out []Credential
	for _, c := range r.creds {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func newTestService(repo Repository, secret string) *Service {
	return NewService(repo, secret, slog.Default())
}

func TestConnectThenUse(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo, "server-secret")
	ctx := context.Background()

	err := service.Connect(ctx, 1, "trading212", SecretInput{Kind: KindPlaintext, Plaintext: "abc123"})
	require.NoError(t, err)

	plaintext, err := service.Use(ctx, 1, "trading212")
	require.NoError(t, err)
	assert.Equal(t, "abc123", plaintext)
}

func TestConnectTwiceConflicts(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo, "server-secret")
	ctx := context.Background()

	in := SecretInput{Kind: KindPlaintext, Plaintext: "abc123"}
	require.NoError(t, service.Connect(ctx, 1, "trading212", in))

	err := service.Connect(ctx, 1, "trading212", in)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUseNeverConnected(t *testing.T) {
	service := newTestService(newMemRepository(), "server-secret")

	_, err := service.Use(context.Background(), 1, "trading212")
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestConnectDisconnectUse(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo, "server-secret")
	ctx := context.Background()

	require.NoError(t, service.Connect(ctx, 1, "trading212", SecretInput{Kind: KindPlaintext, Plaintext: "abc123"}))
	require.NoError(t, service.Disconnect(ctx, 1, "trading212"))

	_, err := service.Use(ctx, 1, "trading212")
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestDisconnectIdempotent(t *testing.T) {
	service := newTestService(newMemRepository(), "server-secret")

	assert.NoError(t, service.Disconnect(context.Background(), 1, "trading212"))
}

func TestUserIsolation(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo, "server-secret")
	ctx := context.Background()

	require.NoError(t, service.Connect(ctx, 1, "trading212", SecretInput{Kind: KindPlaintext, Plaintext: "abc123"}))

	_, err := service.Use(ctx, 2, "trading212")
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestMissingSecretIsFatal(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo, "")
	ctx := context.Background()

	err := service.Connect(ctx, 1, "trading212", SecretInput{Kind: KindPlaintext, Plaintext: "abc123"})
	assert.ErrorIs(t, err, ErrMissingSecret)
	assert.Empty(t, repo.creds, "no record may be persisted without a configured secret")

	_, err = service.Use(ctx, 1, "trading212")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestConnectInvalidInput(t *testing.T) {
	service := newTestService(newMemRepository(), "server-secret")
	ctx := context.Background()

	tests := []struct {
		name string
		in   SecretInput
	}{
		{name: "empty plaintext", in: SecretInput{Kind: KindPlaintext}},
		{name: "unknown kind", in: SecretInput{Kind: "guess", Plaintext: "abc"}},
		{
			name: "envelope missing salt",
			in: SecretInput{Kind: KindEnvelope, Envelope: Envelope{
				Ciphertext: []byte{1}, IV: []byte{2}, AuthTag: []byte{3}, Iterations: 1,
			}},
		},
		{
			name: "envelope without iterations",
			in: SecretInput{Kind: KindEnvelope, Envelope: Envelope{
				Ciphertext: []byte{1}, Salt: []byte{4}, IV: []byte{2}, AuthTag: []byte{3},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Connect(ctx, 1, "trading212", tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestConnectWithPreSealedEnvelope(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo, "server-secret")
	ctx := context.Background()

	// Envelope produced under the same server secret, as in an
	// environment migration.
	salt, err := crypto.RandomBytes(crypto.SaltLength)
	require.NoError(t, err)
	key := crypto.DeriveKey([]byte("server-secret:1"), salt, crypto.DefaultIterations)
	ciphertext, iv, tag, err := crypto.Encrypt([]byte("imported-key"), key)
	require.NoError(t, err)

	env := Envelope{Ciphertext: ciphertext, Salt: salt, IV: iv, AuthTag: tag, Iterations: crypto.DefaultIterations}
	require.NoError(t, service.Connect(ctx, 1, "trading212", SecretInput{Kind: KindEnvelope, Envelope: env}))

	plaintext, err := service.Use(ctx, 1, "trading212")
	require.NoError(t, err)
	assert.Equal(t, "imported-key", plaintext)
}

func TestRotate(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo, "server-secret")
	ctx := context.Background()

	err := service.Rotate(ctx, 1, "trading212", SecretInput{Kind: KindPlaintext, Plaintext: "new"})
	assert.ErrorIs(t, err, ErrNotConnected)

	require.NoError(t, service.Connect(ctx, 1, "trading212", SecretInput{Kind: KindPlaintext, Plaintext: "old"}))
	require.NoError(t, service.Rotate(ctx, 1, "trading212", SecretInput{Kind: KindPlaintext, Plaintext: "new"}))

	plaintext, err := service.Use(ctx, 1, "trading212")
	require.NoError(t, err)
	assert.Equal(t, "new", plaintext)
}

func TestUseAfterSecretRotation(t *testing.T) {
	repo := newMemRepository()
	ctx := context.Background()

	require.NoError(t, newTestService(repo, "old-secret").
		Connect(ctx, 1, "trading212", SecretInput{Kind: KindPlaintext, Plaintext: "abc123"}))

	// Server secret rotated without re-encrypting stored credentials:
	// the user must be told to reconnect, never handed garbage.
	_, err := newTestService(repo, "new-secret").Use(ctx, 1, "trading212")
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestStatus(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo, "server-secret")
	ctx := context.Background()

	require.NoError(t, service.Connect(ctx, 1, "trading212", SecretInput{Kind: KindPlaintext, Plaintext: "a"}))
	require.NoError(t, service.Connect(ctx, 2, "trading212", SecretInput{Kind: KindPlaintext, Plaintext: "b"}))

	integrations, err := service.Status(ctx, 1)
	require.NoError(t, err)
	require.Len(t, integrations, 1)
	assert.Equal(t, "trading212", integrations[0].Name)
}
