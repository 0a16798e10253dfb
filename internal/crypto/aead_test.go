package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := RandomBytes(KeyLength)
	require.NoError(t, err)
	return key
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := testKey(t)

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "api key", plaintext: "abc123"},
		{name: "empty string", plaintext: ""},
		{name: "unicode", plaintext: "ключ-απι-🔑"},
		{name: "long value", plaintext: string(make([]byte, 4096))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext, iv, tag, err := Encrypt([]byte(tt.plaintext), key)
			require.NoError(t, err)
			assert.Len(t, iv, IVLength)
			assert.Len(t, tag, TagLength)

			plaintext, err := Decrypt(ciphertext, iv, tag, key)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, string(plaintext))
		})
	}
}

func TestEncryptGeneratesFreshIV(t *testing.T) {
	key := testKey(t)
	plaintext := []byte("same plaintext")

	c1, iv1, _, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	c2, iv2, _, err := Encrypt(plaintext, key)
	require.NoError(t, err)

	assert.NotEqual(t, iv1, iv2)
	assert.NotEqual(t, c1, c2)
}

func TestDecryptFailsClosedOnTamper(t *testing.T) {
	key := testKey(t)
	ciphertext, iv, tag, err := Encrypt([]byte("sensitive"), key)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(c, i, g []byte) (ct, iv, tag []byte)
	}{
		{
			name: "flipped ciphertext bit",
			mutate: func(c, i, g []byte) ([]byte, []byte, []byte) {
				c[0] ^= 0x01
				return c, i, g
			},
		},
		{
			name: "flipped iv bit",
			mutate: func(c, i, g []byte) ([]byte, []byte, []byte) {
				i[0] ^= 0x01
				return c, i, g
			},
		},
		{
			name: "flipped tag bit",
			mutate: func(c, i, g []byte) ([]byte, []byte, []byte) {
				g[len(g)-1] ^= 0x01
				return c, i, g
			},
		},
		{
			name: "truncated tag",
			mutate: func(c, i, g []byte) ([]byte, []byte, []byte) {
				return c, i, g[:TagLength-1]
			},
		},
		{
			name: "wrong iv length",
			mutate: func(c, i, g []byte) ([]byte, []byte, []byte) {
				return c, i[:IVLength-1], g
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := append([]byte(nil), ciphertext...)
			i := append([]byte(nil), iv...)
			g := append([]byte(nil), tag...)

			ct, mi, mg := tt.mutate(c, i, g)
			plaintext, err := Decrypt(ct, mi, mg, key)
			assert.ErrorIs(t, err, ErrDecrypt)
			assert.Nil(t, plaintext)
		})
	}
}

func TestDecryptFailsWithWrongKey(t *testing.T) {
	ciphertext, iv, tag, err := Encrypt([]byte("sensitive"), testKey(t))
	require.NoError(t, err)

	_, err = Decrypt(ciphertext, iv, tag, testKey(t))
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestWipe(t *testing.T) {
	key := []byte{1, 2, 3, 4}
	Wipe(key)
	assert.Equal(t, []byte{0, 0, 0, 0}, key)
}
