package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", 10*time.Minute)
	bio := "hi"
	token, exp, err := issuer.Generate(TokenUser{ID: "u1", Name: "Ada", Email: "ada@example.com", Biography: &bio})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), exp, 5*time.Second)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.User.ID)
	assert.Equal(t, "ada@example.com", claims.User.Email)
	assert.Equal(t, "u1", claims.Subject)
	require.NotNil(t, claims.User.Biography)
	assert.Equal(t, "hi", *claims.User.Biography)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenIssuer("one", time.Minute).Generate(TokenUser{ID: "u1"})
	require.NoError(t, err)

	_, err = NewTokenIssuer("two", time.Minute).Parse(token)
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", -time.Minute)
	token, _, err := issuer.Generate(TokenUser{ID: "u1"})
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenRejectsOtherAlgorithms(t *testing.T) {
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{User: TokenUser{ID: "u1"}}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Minute).Parse(unsigned)
	assert.Error(t, err)
}
