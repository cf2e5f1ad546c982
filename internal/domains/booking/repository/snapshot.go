package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"ohanna/infras/otel"
	"ohanna/infras/s3"
	"ohanna/internal/domains/booking/model"
	"ohanna/shared/constant"
	"path"

	"github.com/rs/zerolog/log"
)

type snapshotImpl struct {
	storage s3.S3
	bucket  string
	key     string
	otel    otel.Otel
}

// NewSnapshot keeps the ledger as one JSON document in object storage.
func NewSnapshot(storage s3.S3, bucket, key string, otel otel.Otel) Booking {
	return &snapshotImpl{
		storage: storage,
		bucket:  bucket,
		key:     key,
		otel:    otel,
	}
}

func (r *snapshotImpl) Load(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".snapshot.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	data, err := r.storage.Download(ctx, r.bucket, r.key)
	if errors.Is(err, s3.ErrObjectNotFound) {
		log.Info().Str("key", r.key).Msg("no booking snapshot yet, starting empty")

		return []model.Booking{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to download booking snapshot: %w", err)
	}

	var records []record
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode booking snapshot: %w", err)
	}

	bookings = make([]model.Booking, len(records))
	for i, rec := range records {
		bookings[i] = rec.toModel()
	}

	return bookings, nil
}

func (r *snapshotImpl) Save(ctx context.Context, bookings []model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".snapshot.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records := make([]record, len(bookings))
	for i, b := range bookings {
		records[i] = toRecord(i, b)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode booking snapshot: %w", err)
	}

	_, err = r.storage.UploadFileBytes(ctx, r.bucket, path.Dir(r.key), path.Base(r.key), constant.ContentTypeJSON, data)
	if err != nil {
		return fmt.Errorf("failed to upload booking snapshot: %w", err)
	}

	return nil
}
