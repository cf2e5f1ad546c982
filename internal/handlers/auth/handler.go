package auth

import (
	"net/http"
	"ohanna/infras/otel"
	"ohanna/internal/domains/auth/model/dto"
	"ohanna/internal/domains/auth/service"
	"ohanna/shared/constant"
	"ohanna/shared/validator"
	"ohanna/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/token", handler.Token)
		r.Post("/refresh", handler.RefreshToken)
	})
}

// Token exchanges an API key for a token pair
// @Summary Exchange an API key
// @Description Issue an access and refresh token for the role owning the API key.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Token Request"
// @Success 200 {object} response.Data[dto.TokenResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/token [post]
func (handler *Handler) Token(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Token")
	defer scope.End()

	req := dto.TokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Token(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Token issued for role " + res.Role)

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken handles token refresh
// @Summary Refresh tokens
// @Description Issue a new token pair from a valid refresh token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.TokenResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
