package repository

import (
	"context"
	"fmt"
	"ohanna/infras/otel"
	"ohanna/infras/postgres"
	"ohanna/internal/domains/booking/model"
	"ohanna/shared/constant"
	gDto "ohanna/shared/dto"
	gRepo "ohanna/shared/repository"

	"github.com/jmoiron/sqlx"
)

type postgresImpl struct {
	gRepo.Repository[record]
	otel otel.Otel
}

// NewPostgres stores one row per booking, ordered by position.
func NewPostgres(db *postgres.Connection, otel otel.Otel) Booking {
	return &postgresImpl{
		Repository: gRepo.NewRepository[record](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *postgresImpl) Load(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldPosition, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	bookings = make([]model.Booking, len(records))
	for i, rec := range records {
		bookings[i] = rec.toModel()
	}

	return bookings, nil
}

// Save replaces every row in a single transaction.
func (r *postgresImpl) Save(ctx context.Context, bookings []model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records := make([]record, len(bookings))
	for i, b := range bookings {
		records[i] = toRecord(i, b)
	}

	all := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterIsNotNull},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	err = r.Transaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.DeleteTx(ctx, tx, all); err != nil {
			return err //nolint:wrapcheck
		}

		return r.InsertBulkTx(ctx, tx, records) //nolint:wrapcheck
	})
	if err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}

	return nil
}
