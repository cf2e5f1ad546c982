package main

import (
	"ohanna/config"
	"ohanna/di"
	"ohanna/helper"
	"ohanna/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Ohanna Bookings API
// @version 1.0
// @description Reservation ledger, pricing and calendar for a single rental property.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	if err := helper.AutoMigrate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	http := di.InitializeService()
	http.Serve()
}
