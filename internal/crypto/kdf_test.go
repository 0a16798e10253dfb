package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKeyDeterministic(t *testing.T) {
	secret := []byte("server-secret:42")
	salt, err := RandomBytes(SaltLength)
	require.NoError(t, err)

	k1 := DeriveKey(secret, salt, DefaultIterations)
	k2 := DeriveKey(secret, salt, DefaultIterations)

	assert.Len(t, k1, KeyLength)
	assert.Equal(t, k1, k2)
}

func TestDeriveKeyVariesWithInputs(t *testing.T) {
	secret := []byte("server-secret:42")
	salt1, err := RandomBytes(SaltLength)
	require.NoError(t, err)
	salt2, err := RandomBytes(SaltLength)
	require.NoError(t, err)

	base := DeriveKey(secret, salt1, DefaultIterations)

	assert.NotEqual(t, base, DeriveKey(secret, salt2, DefaultIterations))
	assert.NotEqual(t, base, DeriveKey([]byte("server-secret:43"), salt1, DefaultIterations))
	assert.NotEqual(t, base, DeriveKey(secret, salt1, DefaultIterations+1))
}
