package auth_test

import (
	"net/http"
	"net/http/httptest"
	"ohanna/infras/otel/mocks"
	"ohanna/internal/domains/auth/model"
	"ohanna/internal/domains/auth/model/dto"
	serviceMocks "ohanna/internal/domains/auth/service/mocks"
	"ohanna/internal/handlers/auth"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockAuth) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockAuth(ctrl)

	handler := auth.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, svc
}

func post(router http.Handler, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, strings.NewReader(body)))

	return rec
}

func TestHandler_Token(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *serviceMocks.MockAuth)
		wantStatus int
	}{
		{
			name: "valid key",
			body: `{"api_key":"secret"}`,
			setup: func(m *serviceMocks.MockAuth) {
				m.EXPECT().Token(gomock.Any(), dto.TokenRequest{APIKey: "secret"}).
					Return(dto.TokenResponse{AccessToken: "access", Role: "staff"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown key",
			body: `{"api_key":"guess"}`,
			setup: func(m *serviceMocks.MockAuth) {
				m.EXPECT().Token(gomock.Any(), gomock.Any()).Return(dto.TokenResponse{}, model.ErrInvalidAPIKey)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing key",
			body:       `{}`,
			setup:      func(_ *serviceMocks.MockAuth) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"api_key":`,
			setup:      func(_ *serviceMocks.MockAuth) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setup(svc)

			rec := post(router, "/v1/auth/token", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_RefreshToken(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().RefreshToken(gomock.Any(), dto.RefreshTokenRequest{RefreshToken: "refresh"}).
		Return(dto.TokenResponse{AccessToken: "new-access"}, nil)

	rec := post(router, "/v1/auth/refresh", `{"refresh_token":"refresh"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"new-access"`)
}
