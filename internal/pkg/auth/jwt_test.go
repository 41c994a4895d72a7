package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "campusms-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestJWTService(time.Hour)

	token, expiresIn, err := service.GenerateToken("STU001", "Ali Veli", "student")
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "STU001", claims.PrincipalID)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "Ali Veli", claims.Name)
	assert.Equal(t, "campusms-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "every token carries a unique jti")
}

func TestValidateExpiredToken(t *testing.T) {
	service := newTestJWTService(-time.Minute)

	token, _, err := service.GenerateToken("TEA002", "Jane Doe", "teacher")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := newTestJWTService(time.Hour).GenerateToken("TEA002", "Jane Doe", "teacher")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campusms-test",
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateAndExtractClaims(t *testing.T) {
	service := newTestJWTService(time.Hour)

	_, err := service.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateAndExtractClaims("not.a.token")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
