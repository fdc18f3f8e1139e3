package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	pair, err := GenerateTokenPair(42, "ada@example.com")
	require.NoError(t, err)

	claims, err := ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)

	refreshClaims, err := ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), refreshClaims.UserID)
}

func TestTokenTypeEnforced(t *testing.T) {
	pair, err := GenerateTokenPair(1, "a@b.c")
	require.NoError(t, err)

	// Access tokens are not refresh tokens and vice versa
	_, err = ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)

	_, err = ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-jwt")
	assert.Error(t, err)
}
