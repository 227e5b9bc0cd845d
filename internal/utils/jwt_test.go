package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	secret := []byte("test-secret")

	signed, err := GenerateJWT("a@x.com", secret)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", claims["email"])
	assert.NotEmpty(t, claims["jti"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(2*time.Hour).Unix(), int64(exp), 5)
}

func TestGenerateJWT_WrongSecretFailsVerification(t *testing.T) {
	signed, err := GenerateJWT("a@x.com", []byte("secret-one"))
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-two"), nil
	})
	assert.Error(t, err)
}
