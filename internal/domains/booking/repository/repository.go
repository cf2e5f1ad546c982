package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"ohanna/config"
	"ohanna/infras/otel"
	"ohanna/infras/postgres"
	"ohanna/infras/s3"
	"ohanna/internal/domains/booking/model"

	"github.com/rs/zerolog/log"
)

// Booking persists the whole ledger. Load runs once at startup, Save after every mutation
// with every booking in ledger order.
type Booking interface {
	Load(ctx context.Context) ([]model.Booking, error)
	Save(ctx context.Context, bookings []model.Booking) error
}

// New picks the store for the configured storage driver.
func New(cfg *config.Config, db *postgres.Connection, storage s3.S3, otel otel.Otel) Booking {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		return NewPostgres(db, otel)
	case config.StorageDriverS3:
		return NewSnapshot(storage, cfg.External.S3.BucketName, cfg.Storage.SnapshotKey, otel)
	case config.StorageDriverMemory, "":
		return NewMemory()
	default:
		log.Warn().Str("driver", cfg.Storage.Driver).Msg("unknown storage driver, bookings are kept in memory")

		return NewMemory()
	}
}
