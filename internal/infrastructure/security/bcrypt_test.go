package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	// min cost keeps the suite fast; properties are cost-independent
	h := NewBcryptHasher(4)

	t.Run("hash_and_compare", func(t *testing.T) {
		hash, err := h.Hash("Secret123!")
		require.NoError(t, err)
		assert.NotEqual(t, "Secret123!", hash)

		assert.NoError(t, h.Compare(hash, "Secret123!"))
		assert.Error(t, h.Compare(hash, "Secret123?"))
	})

	t.Run("same_password_different_hashes", func(t *testing.T) {
		h1, err := h.Hash("Secret123!")
		require.NoError(t, err)
		h2, err := h.Hash("Secret123!")
		require.NoError(t, err)

		// the embedded salt makes every hash unique
		assert.NotEqual(t, h1, h2)
		assert.NoError(t, h.Compare(h1, "Secret123!"))
		assert.NoError(t, h.Compare(h2, "Secret123!"))
	})
}
