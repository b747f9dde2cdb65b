package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewTokenWithSubject(jwtAuth, time.Hour, "user-1")
	assert.NoError(t, err)

	sub, err := VerifyToken(jwtAuth, tok)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", sub)

	expired, err := NewTokenWithSubject(jwtAuth, -time.Hour, "user-1")
	assert.NoError(t, err)
	_, err = VerifyToken(jwtAuth, expired)
	assert.Error(t, err)
}

func TestIssuer(t *testing.T) {
	i := NewIssuer("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	tokens, err := i.Issue("user-1")
	require.NoError(t, err)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)

	sub, err := i.VerifyRefresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)

	_, err = i.VerifyRefresh(tokens.AccessToken)
	assert.Error(t, err, "access tokens are not accepted as refresh tokens")

	sub, err = VerifyToken(i.Access(), tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}
