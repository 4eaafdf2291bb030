package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	t.Run("hash and compare round trip", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)
		require.NotEmpty(t, hash)

		assert.NoError(t, hasher.Compare(hash, "secret1"))
	})

	t.Run("equal inputs produce distinct hashes", func(t *testing.T) {
		t.Parallel()
		first, err := hasher.Hash("secret1")
		require.NoError(t, err)
		second, err := hasher.Hash("secret1")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("mismatch returns error without panicking", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)

		assert.Error(t, hasher.Compare(hash, "other"))
		assert.Error(t, hasher.Compare("not-a-bcrypt-hash", "secret1"))
	})

	t.Run("uses configured cost", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(hash, "$2a$12$"), "hash should carry cost 12: %s", hash)
	})
}
