package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wsabol/oracle-moderation/pkg/config"
)

func TestJwtManager_RoundTrip(t *testing.T) {
	manager := NewJwtManager(&config.ServerConfig{SecretKey: "test-secret"})

	token, err := manager.CreateToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, manager.ValidateToken(token))
}

func TestJwtManager_WrongSecret(t *testing.T) {
	issuer := NewJwtManager(&config.ServerConfig{SecretKey: "secret-a"})
	validator := NewJwtManager(&config.ServerConfig{SecretKey: "secret-b"})

	token, err := issuer.CreateToken()
	require.NoError(t, err)

	assert.ErrorIs(t, validator.ValidateToken(token), ErrInvalidToken)
}

func TestJwtManager_MalformedToken(t *testing.T) {
	manager := NewJwtManager(&config.ServerConfig{SecretKey: "test-secret"})

	assert.ErrorIs(t, manager.ValidateToken("not.a.token"), ErrInvalidToken)
	assert.ErrorIs(t, manager.ValidateToken(""), ErrInvalidToken)
}
