package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is recorded into every envelope so that a later
	// decrypt keeps working even if this default is raised.
	DefaultIterations = 100000

	KeyLength  = 32 // AES-256
	SaltLength = 16
)

// DeriveKey stretches the secret material and salt into a fixed-length
// AES key with PBKDF2-SHA256. Deterministic: the same inputs always
// produce the same key, which is what lets a stored salt reproduce the
// key for decryption.
func DeriveKey(secret, salt []byte, iterations int) []byte {
	return pbkdf2.Key(secret, salt, iterations, KeyLength, sha256.New)
}
