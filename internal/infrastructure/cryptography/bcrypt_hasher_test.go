//go:build unit
// +build unit

package cryptography

import (
	"strings"
	"testing"

	"github.com/MGTheTrain/auth-admin/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("HashAndCompare", func(t *testing.T) {
		hash, err := hasher.Hash("alohomora")
		require.NoError(t, err)
		assert.NotEqual(t, "alohomora", hash)
		assert.LessOrEqual(t, len(hash), 64)

		assert.NoError(t, hasher.Compare(hash, "alohomora"))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		hash, err := hasher.Hash("alohomora")
		require.NoError(t, err)

		assert.ErrorIs(t, hasher.Compare(hash, "expelliarmus"), users.ErrInvalidPassword)
	})

	t.Run("NotAHash", func(t *testing.T) {
		assert.ErrorIs(t, hasher.Compare("plain", "plain"), users.ErrInvalidPassword)
	})

	t.Run("PasswordOverByteLimit", func(t *testing.T) {
		_, err := hasher.Hash(strings.Repeat("€", 25))
		assert.ErrorIs(t, err, users.ErrPasswordTooLong)
	})

	t.Run("SaltedHashesDiffer", func(t *testing.T) {
		first, err := hasher.Hash("lumos")
		require.NoError(t, err)
		second, err := hasher.Hash("lumos")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestNewBcryptHasher_InvalidCost(t *testing.T) {
	_, err := NewBcryptHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}
