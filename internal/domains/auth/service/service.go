package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"ohanna/config"
	"ohanna/infras/jwt"
	"ohanna/infras/otel"
	"ohanna/internal/domains/auth/model"
	"ohanna/internal/domains/auth/model/dto"
	"ohanna/shared/constant"
	"ohanna/shared/password"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Token(ctx context.Context, req dto.TokenRequest) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
}

type serviceImpl struct {
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

// Token checks the key against the configured admin hash, then the staff hash, and issues a
// token pair for the first role that matches.
func (s *serviceImpl) Token(ctx context.Context, req dto.TokenRequest) (res dto.TokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Token")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.cfg.AuthEnabled() {
		return res, model.ErrAuthDisabled
	}

	role, err := s.roleFor(req.APIKey)
	if err != nil {
		return res, err
	}

	scope.SetAttribute("auth.role", role)

	tokenPair, err := s.jwtService.GenerateTokenPair(role, role)
	if err != nil {
		log.Error().Err(err).Str("role", role).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.Role = role

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.cfg.AuthEnabled() {
		return res, model.ErrAuthDisabled
	}

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, model.ErrInvalidRefreshToken
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) roleFor(apiKey string) (string, error) {
	keys := []struct {
		role string
		hash string
	}{
		{role: constant.RoleAdmin, hash: s.cfg.App.APIKeys.AdminHash},
		{role: constant.RoleStaff, hash: s.cfg.App.APIKeys.StaffHash},
	}

	for _, key := range keys {
		if key.hash == "" {
			continue
		}

		err := password.Verify(apiKey, key.hash)
		if err == nil {
			return key.role, nil
		}

		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Str("role", key.role).Msg("configured api key hash is unusable")
		}
	}

	log.Warn().Msg("token requested with an unknown api key")

	return "", model.ErrInvalidAPIKey
}
