package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")

	token, err := GenerateToken(UserInfo{UserID: "user-123", Role: 1}, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := GetUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, 1, role)
}

func TestGetUserIDFromTokenInvalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")

	_, _, err := GetUserIDFromToken("bukan.token.valid")
	assert.Error(t, err)
}

func TestGetUserIDFromTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")
	token, err := GenerateToken(UserInfo{UserID: "user-123", Role: 2}, 60)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rahasia-lain")
	_, _, err = GetUserIDFromToken(token)
	assert.Error(t, err)
}
