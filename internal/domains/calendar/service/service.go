package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"ohanna/config"
	"ohanna/infras/otel"
	"ohanna/internal/domains/booking/ledger"
	"ohanna/internal/domains/calendar"
	"ohanna/internal/domains/calendar/model/dto"
	"ohanna/internal/domains/calendar/report"
	"ohanna/internal/domains/tariff"
	"ohanna/shared"
	"ohanna/shared/cache"
	"ohanna/shared/constant"
	"ohanna/shared/failure"
	"ohanna/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

type Calendar interface {
	Month(ctx context.Context, year int, month time.Month) (dto.MonthResponse, error)
	Day(ctx context.Context, date string) (dto.DayResponse, error)
	Report(ctx context.Context, year int, month time.Month) ([]byte, error)
}

type serviceImpl struct {
	ledger *ledger.Ledger
	table  *tariff.Table
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(ledger *ledger.Ledger, table *tariff.Table, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Calendar {
	return &serviceImpl{
		ledger: ledger,
		table:  table,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

// Month builds the month view. Cached views are keyed by the ledger version, so a view computed
// from an older ledger is never served after a mutation.
func (s *serviceImpl) Month(ctx context.Context, year int, month time.Month) (res dto.MonthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Month")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = calendar.ValidateMonth(year, month); err != nil {
		return res, err
	}

	key := monthCacheKey(year, month, s.ledger.Version())

	err = s.cache.Get(ctx, key, &res)
	if err == nil {
		return res, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("key", key).Msg("failed to read cached month")
	}

	all, version := s.ledger.Snapshot()
	key = monthCacheKey(year, month, version)
	bookings := calendar.BookingsOverlapping(all, year, month)

	res = dto.MonthResponse{Year: year, Month: int(month)}
	res.FromModel(
		bookings,
		calendar.Summarize(bookings),
		calendar.Collect(all, year, month),
		calendar.MonthGrid(all, year, month, s.table),
	)

	if err = s.cache.Save(ctx, key, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to cache month")
	}

	return res, nil
}

func monthCacheKey(year int, month time.Month, version uint64) string {
	return shared.BuildCacheKey(constant.CacheKeyCalendarMonth, year, int(month), version)
}

func (s *serviceImpl) Day(ctx context.Context, date string) (res dto.DayResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Day")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := timezone.ParseDate(date)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	res.FromModel(calendar.Resolve(s.ledger.All(), day, s.table))

	return res, nil
}

// Report renders the bookings overlapping the month and the month's collections as a workbook.
func (s *serviceImpl) Report(ctx context.Context, year int, month time.Month) (res []byte, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Report")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = calendar.ValidateMonth(year, month); err != nil {
		return nil, err
	}

	all := s.ledger.All()

	res, err = report.Build(calendar.BookingsOverlapping(all, year, month), calendar.Collect(all, year, month))
	if err != nil {
		log.Error().Err(err).Int("year", year).Int("month", int(month)).Msg("failed to build month report")

		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	return res, nil
}
