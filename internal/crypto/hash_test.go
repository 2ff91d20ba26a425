package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		errMsg   string
		cost     int
		wantErr  bool
	}{
		{
			name:     "successful hash",
			password: "secret1",
			cost:     bcrypt.MinCost,
		},
		{
			name:     "cost out of range falls back to default",
			password: "secret1",
			cost:     100,
		},
		{
			name:     "empty password",
			password: "",
			cost:     bcrypt.MinCost,
			wantErr:  true,
			errMsg:   "password cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, tt.cost)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Empty(t, hash)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			assert.True(t, strings.HasPrefix(hash, "$2a$"))
		})
	}
}

func TestHashPassword_DefaultCost(t *testing.T) {
	hash, err := HashPassword("secret1", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultPasswordCost, cost)
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "same password must produce different hashes")
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		assert.NoError(t, VerifyPassword("secret1", hash))
	})

	t.Run("wrong password", func(t *testing.T) {
		err := VerifyPassword("secret2", hash)
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("empty hash", func(t *testing.T) {
		err := VerifyPassword("secret1", "")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("garbage hash", func(t *testing.T) {
		err := VerifyPassword("secret1", "not-a-bcrypt-hash")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPasswordMismatch)
	})
}
