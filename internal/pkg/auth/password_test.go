package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	// The stored credential format is a deterministic SHA-256 hex digest.
	hash := HashPassword("admin123")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashPassword("admin123"))
	assert.NotEqual(t, hash, HashPassword("admin124"))
}

func TestCheckPassword(t *testing.T) {
	hash := HashPassword("secret")
	assert.True(t, CheckPassword(hash, "secret"))
	assert.False(t, CheckPassword(hash, "Secret"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestGeneratePassword(t *testing.T) {
	first, err := GeneratePassword()
	require.NoError(t, err)
	second, err := GeneratePassword()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	// 8 random bytes render to 11 unpadded base64 characters.
	assert.Len(t, first, 11)
}
