package auth

import (
	"strings"
	"testing"

	"github.com/phrazzld/bookmark-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Small cost parameters keep the suite fast.
func newTestHasher() *Argon2Hasher {
	return NewArgon2Hasher(config.AuthConfig{
		Argon2MemoryKiB:   8192,
		Argon2Iterations:  1,
		Argon2Parallelism: 1,
	})
}

func TestArgon2Hasher(t *testing.T) {
	t.Parallel()

	h := newTestHasher()

	t.Run("hash verifies against the same password", func(t *testing.T) {
		t.Parallel()
		encoded, err := h.Hash("123")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(encoded, "$argon2id$"), encoded)
		assert.NotContains(t, encoded, "123$")
		assert.True(t, h.Verify(encoded, "123"))
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		t.Parallel()
		encoded, err := h.Hash("correct horse")
		require.NoError(t, err)
		assert.False(t, h.Verify(encoded, "battery staple"))
	})

	t.Run("salts differ between hashes", func(t *testing.T) {
		t.Parallel()
		a, err := h.Hash("same")
		require.NoError(t, err)
		b, err := h.Hash("same")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("malformed digest is a mismatch", func(t *testing.T) {
		t.Parallel()
		assert.False(t, h.Verify("not-a-digest", "anything"))
		assert.False(t, h.Verify("", ""))
	})

	t.Run("cost parameters are encoded in the digest", func(t *testing.T) {
		t.Parallel()
		encoded, err := h.Hash("pw")
		require.NoError(t, err)
		assert.Contains(t, encoded, "m=8192,t=1,p=1")
	})
}
