package cipher

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

func testKey(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return hex.EncodeToString(key)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := testKey(t)

	cases := []string{
		"hello",
		"",
		"exactly sixteen!",                // one full block
		strings.Repeat("long message ", 100),
		"unicode: héllo wörld 你好",
	}
	for _, plaintext := range cases {
		ct, err := Encrypt(plaintext, key)
		require.NoError(t, err)

		got, err := Decrypt(ct, key)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestEncryptUsesFreshIV(t *testing.T) {
	key := testKey(t)

	first, err := Encrypt("same message", key)
	require.NoError(t, err)
	second, err := Encrypt("same message", key)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDecryptWrongKeyFails(t *testing.T) {
	ct, err := Encrypt("secret", testKey(t))
	require.NoError(t, err)

	got, err := Decrypt(ct, testKey(t))
	if err == nil {
		// CBC padding can validate by chance; the plaintext still must not survive.
		assert.NotEqual(t, "secret", got)
	} else {
		assert.Equal(t, apperrors.CodeDecryptionFailed, apperrors.CodeOf(err))
	}
}

func TestDecryptMalformedInput(t *testing.T) {
	key := testKey(t)

	cases := map[string]string{
		"not hex":    "zzzz",
		"empty":      "",
		"too short":  hex.EncodeToString([]byte("short")),
		"iv only":    strings.Repeat("00", 16),
		"misaligned": strings.Repeat("00", 33),
	}
	for name, input := range cases {
		_, err := Decrypt(input, key)
		require.Error(t, err, name)
		assert.Equal(t, apperrors.CodeDecryptionFailed, apperrors.CodeOf(err), name)
	}

	// Random blocks must never panic, whatever the padding works out to.
	assert.NotPanics(t, func() {
		_, _ = Decrypt(strings.Repeat("ab", 48), key)
	})
}

func TestBadKeyRejected(t *testing.T) {
	for _, badKey := range []string{"", "abcd", "not-hex-at-all", strings.Repeat("00", 16)} {
		_, err := Encrypt("x", badKey)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	}
}
