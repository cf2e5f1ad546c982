package handler

import (
	"net/http"
	"ohanna/config"
	"ohanna/di"
	"ohanna/shared/logger"
	"sync"
)

var (
	service http.Handler
	once    sync.Once
)

// Handler is the serverless entry point. The ledger is loaded on the first request of each instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)

		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
