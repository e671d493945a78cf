package auth

import (
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueJWTRoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	signed, err := IssueJWT("uid-123", "an@example.com", "user", "Nguyễn Văn An")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		require.True(t, ok)
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "uid-123", claims["user_id"])
	assert.Equal(t, "an@example.com", claims["email"])
	assert.Equal(t, "user", claims["role"])
}

func TestIssueJWTRejectedWithWrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	signed, err := IssueJWT("uid-123", "an@example.com", "user", "An")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
