package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

const (
	IVLength  = 12
	TagLength = 16
)

// ErrDecrypt is returned when authentication fails on decrypt. Any
// tampering with ciphertext, IV or tag surfaces as this error, never
// as garbage plaintext.
var ErrDecrypt = errors.New("decryption failed")

// Encrypt seals plaintext with AES-256-GCM under key, generating a
// fresh random IV per call. Ciphertext and authentication tag are
// returned separately so the storage layer can persist them as
// distinct envelope fields.
func Encrypt(plaintext, key []byte) (ciphertext, iv, tag []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create GCM: %w", err)
	}

	iv = make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, nil, fmt.Errorf("generate iv: %w", err)
	}

	sealed := gcm.Seal(nil, iv, plaintext, nil)
	n := len(sealed) - gcm.Overhead()
	return sealed[:n], iv, sealed[n:], nil
}

// Decrypt reverses Encrypt. It fails closed with ErrDecrypt on any
// integrity violation.
func Decrypt(ciphertext, iv, tag, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	if len(iv) != gcm.NonceSize() || len(tag) != gcm.Overhead() {
		return nil, ErrDecrypt
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrDecrypt
	}

	return plaintext, nil
}
