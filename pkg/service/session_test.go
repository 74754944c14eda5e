package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewSessionTokenService("secret-de-test", time.Hour, zap.NewNop())

	token, err := svc.GenerateToken("u1", "s1")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "s1", claims.SessionID)
}

func TestTokenWrongKeyRejected(t *testing.T) {
	issuer := NewSessionTokenService("clef-a", time.Hour, zap.NewNop())
	verifier := NewSessionTokenService("clef-b", time.Hour, zap.NewNop())

	token, err := issuer.GenerateToken("u1", "s1")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewSessionTokenService("secret-de-test", -time.Minute, zap.NewNop())

	token, err := svc.GenerateToken("u1", "s1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := NewSessionTokenService("secret-de-test", time.Hour, zap.NewNop())
	_, err := svc.ValidateToken("pas.un.jeton")
	require.Error(t, err)
}
