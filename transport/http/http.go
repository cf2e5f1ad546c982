package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"ohanna/config"
	"ohanna/infras/kafka"
	"ohanna/infras/otel"
	"ohanna/transport/http/response"
	"ohanna/transport/http/router"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const shutdownTimeout = 10 * time.Second

type HTTP struct {
	Config *config.Config
	Router router.Router
	State  ServerState

	kafka   kafka.Client
	otel    otel.Otel
	handler http.Handler
	server  *http.Server
	once    sync.Once
}

func New(cfg *config.Config, r router.Router, kafka kafka.Client, otel otel.Otel) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		kafka:  kafka,
		otel:   otel,
	}
}

func (h *HTTP) Serve() {
	h.setup()
	h.setupGracefulShutdown()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the service run behind another server, e.g. a serverless entry point.
// New requests are refused once shutdown has started.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()

	if h.State != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	h.handler.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.handler = h.Router.Handler()
		h.State = ServerStateReady
	})
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer h.shutdown()

	if h.Config.Server.Env == "development" {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to shut down HTTP server")
		}
	}

	if err := h.kafka.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka writer")
	}

	if err := h.otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}
}
