package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, 42, TypeAccess, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
}

func TestParseToken_Rejects(t *testing.T) {
	secret := []byte("test-secret")

	expired, err := GenerateToken(secret, 1, TypeAccess, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(secret, TypeAccess, expired)
	assert.Error(t, err)

	refresh, err := GenerateToken(secret, 1, "refresh", time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(secret, TypeAccess, refresh)
	assert.EqualError(t, err, "invalid token type")

	valid, err := GenerateToken(secret, 1, TypeAccess, time.Minute)
	require.NoError(t, err)
	_, err = ParseToken([]byte("other"), TypeAccess, valid)
	assert.Error(t, err)
}
