package health

import (
	"net/http"
	"ohanna/config"
	"ohanna/internal/domains/booking/ledger"
	"ohanna/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Status struct {
	Status   string `json:"status"`
	Storage  string `json:"storage"`
	Bookings int    `json:"bookings"`
}

type Handler struct {
	ledger *ledger.Ledger
	cfg    *config.Config
}

func New(ledger *ledger.Ledger, cfg *config.Config) Handler {
	return Handler{
		ledger: ledger,
		cfg:    cfg,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health reports that the ledger is loaded
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Router /v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, Status{
		Status:   "ok",
		Storage:  h.cfg.Storage.Driver,
		Bookings: h.ledger.Len(),
	})
}
