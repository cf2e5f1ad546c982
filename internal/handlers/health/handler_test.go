package health_test

import (
	"net/http"
	"net/http/httptest"
	"ohanna/config"
	"ohanna/internal/domains/booking/ledger"
	"ohanna/internal/domains/booking/model"
	"ohanna/internal/handlers/health"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestHandler_Health(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverMemory

	handler := health.New(ledger.New(model.Booking{ID: "b-1"}), cfg)

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"status":"ok","storage":"memory","bookings":1}}`, rec.Body.String())
}
