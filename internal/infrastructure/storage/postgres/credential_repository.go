package postgres

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"fintrack/internal/domain/credential"
)

type CredentialRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCredentialRepository(pool *pgxpool.Pool, log *slog.Logger) *CredentialRepository {
	return &CredentialRepository{
		pool: pool,
		log:  log.With("component", "credential_repository"),
	}
}

// Envelope fields travel as base64 text; the columns are TEXT so a dump
// stays greppable and the driver never has to guess at bytea encodings.
func (r *CredentialRepository) Create(ctx context.Context, userID int, name string, env credential.Envelope) error {
	const query = `
		INSERT INTO credentials (user_id, name, encrypted_value, salt, iv, auth_tag, kdf_iterations)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		userID, name,
		encodeField(env.Ciphertext), encodeField(env.Salt),
		encodeField(env.IV), encodeField(env.AuthTag),
		env.Iterations)
	if err != nil {
		if isUniqueViolation(err) {
			return credential.ErrConflict
		}
		r.log.Error("failed to create credential", "user_id", userID, "name", name, "error", err)
		return fmt.Errorf("create credential: %w", err)
	}
	return nil
}

func (r *CredentialRepository) Update(ctx context.Context, userID int, name string, env credential.Envelope) error {
	const query = `
		UPDATE credentials
		SET encrypted_value = $1, salt = $2, iv = $3, auth_tag = $4,
		    kdf_iterations = $5, updated_at = NOW()
		WHERE user_id = $6 AND name = $7`

	result, err := r.pool.Exec(ctx, query,
		encodeField(env.Ciphertext), encodeField(env.Salt),
		encodeField(env.IV), encodeField(env.AuthTag),
		env.Iterations, userID, name)
	if err != nil {
		r.log.Error("failed to update credential", "user_id", userID, "name", name, "error", err)
		return fmt.Errorf("update credential: %w", err)
	}
	if result.RowsAffected() == 0 {
		return credential.ErrNotConnected
	}
	return nil
}

func (r *CredentialRepository) Delete(ctx context.Context, userID int, name string) error {
	const query = `DELETE FROM credentials WHERE user_id = $1 AND name = $2`

	_, err := r.pool.Exec(ctx, query, userID, name)
	if err != nil {
		r.log.Error("failed to delete credential", "user_id", userID, "name", name, "error", err)
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

func (r *CredentialRepository) Get(ctx context.Context, userID int, name string) (*credential.Credential, error) {
	const query = `
		SELECT id, user_id, name, encrypted_value, salt, iv, auth_tag, kdf_iterations,
		       created_at, updated_at
		FROM credentials
		WHERE user_id = $1 AND name = $2`

	cred, err := r.scanCredential(r.pool.QueryRow(ctx, query, userID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, credential.ErrNotConnected
		}
		r.log.Error("failed to get credential", "user_id", userID, "name", name, "error", err)
		return nil, fmt.Errorf("get credential: %w", err)
	}
	return cred, nil
}

func (r *CredentialRepository) List(ctx context.Context, userID int) ([]credential.Credential, error) {
	const query = `
		SELECT id, user_id, name, encrypted_value, salt, iv, auth_tag, kdf_iterations,
		       created_at, updated_at
		FROM credentials
		WHERE user_id = $1
		ORDER BY name`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to list credentials", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	var creds []credential.Credential
	for rows.Next() {
		cred, err := r.scanCredential(rows)
		if err != nil {
			return nil, err
		}
		creds = append(creds, *cred)
	}
	return creds, rows.Err()
}

func (r *CredentialRepository) scanCredential(row interface {
	Scan(dest ...interface{}) error
}) (*credential.Credential, error) {
	var cred credential.Credential
	var ciphertext, salt, iv, tag string

	err := row.Scan(
		&cred.ID, &cred.UserID, &cred.Name,
		&ciphertext, &salt, &iv, &tag, &cred.Envelope.Iterations,
		&cred.CreatedAt, &cred.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, f := range []struct {
		dst *[]byte
		src string
	}{
		{&cred.Envelope.Ciphertext, ciphertext},
		{&cred.Envelope.Salt, salt},
		{&cred.Envelope.IV, iv},
		{&cred.Envelope.AuthTag, tag},
	} {
		raw, err := base64.StdEncoding.DecodeString(f.src)
		if err != nil {
			return nil, fmt.Errorf("decode envelope field: %w", err)
		}
		*f.dst = raw
	}
	return &cred, nil
}

func encodeField(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
