package service_test

import (
	"context"
	"errors"
	"net/http"
	"ohanna/config"
	"ohanna/infras/jwt"
	jwtMocks "ohanna/infras/jwt/mocks"
	"ohanna/infras/otel/mocks"
	"ohanna/internal/domains/auth/model"
	"ohanna/internal/domains/auth/model/dto"
	"ohanna/internal/domains/auth/service"
	"ohanna/shared/constant"
	"ohanna/shared/failure"
	"ohanna/shared/password"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig(t *testing.T) *config.Config {
	t.Helper()

	adminHash, err := password.Hash("admin-key")
	require.NoError(t, err)

	staffHash, err := password.Hash("staff-key")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "access"
	cfg.JWT.RefreshSecret = "refresh"
	cfg.App.APIKeys.AdminHash = adminHash
	cfg.App.APIKeys.StaffHash = staffHash

	return cfg
}

func TestAuthService_Token(t *testing.T) {
	cfg := newConfig(t)
	pair := &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", TokenType: "Bearer", ExpiresIn: 3600}

	tests := []struct {
		name     string
		apiKey   string
		wantRole string
		wantErr  error
	}{
		{name: "admin key", apiKey: "admin-key", wantRole: constant.RoleAdmin},
		{name: "staff key", apiKey: "staff-key", wantRole: constant.RoleStaff},
		{name: "unknown key", apiKey: "guess", wantErr: model.ErrInvalidAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockJWT := jwtMocks.NewMockJWT(ctrl)

			if tt.wantErr == nil {
				mockJWT.EXPECT().GenerateTokenPair(tt.wantRole, tt.wantRole).Return(pair, nil)
			}

			svc := service.New(cfg, mocks.NewOtel(), mockJWT)

			res, err := svc.Token(context.Background(), dto.TokenRequest{APIKey: tt.apiKey})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
			assert.Equal(t, tt.wantRole, res.Role)
		})
	}
}

func TestAuthService_Token_GenerateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockJWT.EXPECT().GenerateTokenPair(constant.RoleStaff, constant.RoleStaff).Return(nil, errors.New("boom"))

	svc := service.New(newConfig(t), mocks.NewOtel(), mockJWT)

	_, err := svc.Token(context.Background(), dto.TokenRequest{APIKey: "staff-key"})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestAuthService_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(&config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

	_, err := svc.Token(context.Background(), dto.TokenRequest{APIKey: "admin-key"})
	require.ErrorIs(t, err, model.ErrAuthDisabled)

	_, err = svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "token"})
	require.ErrorIs(t, err, model.ErrAuthDisabled)
}

func TestAuthService_RefreshToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "access"

	tests := []struct {
		name    string
		token   string
		setup   func(m *jwtMocks.MockJWT)
		wantErr error
	}{
		{
			name:  "valid refresh token",
			token: "valid",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().RefreshTokens("valid").Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)
			},
		},
		{
			name:  "rejected refresh token",
			token: "expired",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().RefreshTokens("expired").Return(nil, jwt.ErrExpiredToken)
			},
			wantErr: model.ErrInvalidRefreshToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockJWT := jwtMocks.NewMockJWT(ctrl)
			tt.setup(mockJWT)

			svc := service.New(cfg, mocks.NewOtel(), mockJWT)

			res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: tt.token})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "new-access", res.AccessToken)
			assert.Equal(t, "new-refresh", res.RefreshToken)
		})
	}
}
