package di

import (
	"context"
	"ohanna/config"
	"ohanna/internal/domains/booking/ledger"
	bookingRepository "ohanna/internal/domains/booking/repository"
	"ohanna/internal/domains/share"
	"ohanna/internal/domains/tariff"

	"github.com/rs/zerolog/log"
)

// ProvideTariffTable loads the tariff file when one is configured, the built-in table otherwise.
func ProvideTariffTable(cfg *config.Config) *tariff.Table {
	if cfg.Property.TariffFile == "" {
		return tariff.DefaultTable()
	}

	table, err := tariff.LoadTable(cfg.Property.TariffFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Property.TariffFile).Msg("Failed to load tariff table")
	}

	log.Info().Str("file", cfg.Property.TariffFile).Msg("Tariff table loaded")

	return table
}

func ProvideFormatter(cfg *config.Config) *share.Formatter {
	return share.New(cfg.Property.Name, cfg.Property.RecipientName)
}

// ProvideLedger reads every stored booking once at startup.
func ProvideLedger(repo bookingRepository.Booking) *ledger.Ledger {
	l, err := ledger.Load(context.Background(), repo)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load bookings")
	}

	log.Info().Int("bookings", l.Len()).Msg("Ledger loaded")

	return l
}
