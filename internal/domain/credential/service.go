package credential

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"fintrack/internal/crypto"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Connect(ctx context.Context, userID int, name string, in SecretInput) error
	Rotate(ctx context.Context, userID int, name string, in SecretInput) error
	Disconnect(ctx context.Context, userID int, name string) error
	Use(ctx context.Context, userID int, name string) (string, error)
	Status(ctx context.Context, userID int) ([]Integration, error)
}

// Service orchestrates derive -> encrypt -> store and
// store -> derive -> decrypt flows over the Repository. It holds no
// per-request state; decrypted secrets never outlive the call that
// requested them.
type Service struct {
	repo   Repository
	secret string
	log    *slog.Logger
}

func NewService(repo Repository, secret string, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		secret: secret,
		log:    log.With("component", "credential_service"),
	}
}

// Connect stores a new credential for (userID, name). A second connect
// for the same pair fails with ErrConflict rather than overwriting.
func (s *Service) Connect(ctx context.Context, userID int, name string, in SecretInput) error {
	env, err := s.seal(userID, in)
	if err != nil {
		return err
	}

	if err := s.repo.Create(ctx, userID, name, env); err != nil {
		if errors.Is(err, ErrConflict) {
			return ErrConflict
		}
		s.log.Error("failed to store credential", "user_id", userID, "name", name, "error", err)
		return fmt.Errorf("store credential: %w", err)
	}

	s.log.Info("credential connected", "user_id", userID, "name", name)
	return nil
}

// Rotate replaces the stored envelope for an existing credential; all
// four envelope fields are swapped atomically at the store layer.
func (s *Service) Rotate(ctx context.Context, userID int, name string, in SecretInput) error {
	env, err := s.seal(userID, in)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, userID, name, env); err != nil {
		if errors.Is(err, ErrNotConnected) {
			return ErrNotConnected
		}
		s.log.Error("failed to rotate credential", "user_id", userID, "name", name, "error", err)
		return fmt.Errorf("rotate credential: %w", err)
	}

	s.log.Info("credential rotated", "user_id", userID, "name", name)
	return nil
}

// Disconnect removes the credential. Deleting an integration that was
// never connected succeeds.
func (s *Service) Disconnect(ctx context.Context, userID int, name string) error {
	if err := s.repo.Delete(ctx, userID, name); err != nil {
		s.log.Error("failed to disconnect credential", "user_id", userID, "name", name, "error", err)
		return fmt.Errorf("disconnect credential: %w", err)
	}

	s.log.Info("credential disconnected", "user_id", userID, "name", name)
	return nil
}

// Use loads and decrypts the credential, returning the plaintext to
// the immediate caller only. The plaintext is never logged.
func (s *Service) Use(ctx context.Context, userID int, name string) (string, error) {
	if s.secret == "" {
		return "", ErrMissingSecret
	}

	cred, err := s.repo.Get(ctx, userID, name)
	if err != nil {
		if errors.Is(err, ErrNotConnected) {
			return "", ErrNotConnected
		}
		s.log.Error("failed to load credential", "user_id", userID, "name", name, "error", err)
		return "", fmt.Errorf("load credential: %w", err)
	}

	key := crypto.DeriveKey(s.material(userID), cred.Envelope.Salt, cred.Envelope.Iterations)
	defer crypto.Wipe(key)

	plaintext, err := crypto.Decrypt(cred.Envelope.Ciphertext, cred.Envelope.IV, cred.Envelope.AuthTag, key)
	if err != nil {
		// Usually a server secret rotated without re-encrypting stored
		// credentials. The user recovers by reconnecting.
		s.log.Error("credential decrypt failed", "user_id", userID, "name", name)
		return "", ErrDecrypt
	}

	return string(plaintext), nil
}

// Status lists the user's connected integrations without exposing
// envelope contents.
func (s *Service) Status(ctx context.Context, userID int) ([]Integration, error) {
	creds, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list credentials", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list credentials: %w", err)
	}

	integrations := make([]Integration, len(creds))
	for i, c := range creds {
		integrations[i] = Integration{
			Name:        c.Name,
			ConnectedAt: c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		}
	}
	return integrations, nil
}

// seal turns a SecretInput into a storable envelope. For plaintext
// input the server derives a fresh key and encrypts; for envelope
// input the shape is validated and stored as given.
func (s *Service) seal(userID int, in SecretInput) (Envelope, error) {
	if s.secret == "" {
		return Envelope{}, ErrMissingSecret
	}

	switch in.Kind {
	case KindPlaintext:
		if in.Plaintext == "" {
			return Envelope{}, ErrInvalidInput
		}
		return s.encrypt(userID, in.Plaintext)
	case KindEnvelope:
		if err := in.Envelope.Validate(); err != nil {
			return Envelope{}, err
		}
		return in.Envelope, nil
	default:
		return Envelope{}, ErrInvalidInput
	}
}

func (s *Service) encrypt(userID int, plaintext string) (Envelope, error) {
	salt, err := crypto.RandomBytes(crypto.SaltLength)
	if err != nil {
		return Envelope{}, fmt.Errorf("generate salt: %w", err)
	}

	key := crypto.DeriveKey(s.material(userID), salt, crypto.DefaultIterations)
	defer crypto.Wipe(key)

	ciphertext, iv, tag, err := crypto.Encrypt([]byte(plaintext), key)
	if err != nil {
		return Envelope{}, fmt.Errorf("encrypt credential: %w", err)
	}

	return Envelope{
		Ciphertext: ciphertext,
		Salt:       salt,
		IV:         iv,
		AuthTag:    tag,
		Iterations: crypto.DefaultIterations,
	}, nil
}

// material combines the server secret with the user identifier so two
// users never share a derived key even for identical salts.
func (s *Service) material(userID int) []byte {
	return []byte(s.secret + ":" + strconv.Itoa(userID))
}
