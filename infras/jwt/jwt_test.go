package jwt_test

import (
	"ohanna/config"
	"ohanna/infras/jwt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "ohanna"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 5
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestService_GenerateAndValidate(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair("admin", "admin")
	require.NoError(t, err)

	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(300), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, jwt.AccessToken, claims.Type)
	assert.NotEmpty(t, claims.TokenID)
}

func TestService_ValidateTokenRejectsWrongType(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair("staff", "staff")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken, "refresh tokens are signed with another secret")

	_, err = svc.ValidateToken("not-a-token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestService_RefreshTokens(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair("staff", "staff")
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "staff", claims.Role)

	_, err = svc.RefreshTokens(pair.AccessToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)
}
