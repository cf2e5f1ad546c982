package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"ohanna/config"
	"ohanna/infras/kafka"
	"ohanna/infras/otel"
	"ohanna/internal/domains/booking/ledger"
	"ohanna/internal/domains/booking/model"
	"ohanna/internal/domains/booking/model/dto"
	"ohanna/internal/domains/booking/repository"
	"ohanna/internal/domains/calendar"
	"ohanna/internal/domains/share"
	"ohanna/internal/domains/tariff"
	"ohanna/shared"
	"ohanna/shared/cache"
	"ohanna/shared/constant"
	gDto "ohanna/shared/dto"
	"ohanna/shared/timezone"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Save(ctx context.Context, req dto.SaveBookingRequest) (dto.SaveBookingResponse, error)
	SaveModel(ctx context.Context, booking model.Booking) (model.SaveResult, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Find(ctx context.Context, id string) (model.Booking, error)
	GetAll(ctx context.Context, filter dto.MonthFilter, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context, id string) (dto.ShareResponse, error)
	Export(ctx context.Context, id string) (share.Record, error)
}

type serviceImpl struct {
	// mu serializes mutations so the ledger and the store never diverge.
	mu        sync.Mutex
	ledger    *ledger.Ledger
	repo      repository.Booking
	table     *tariff.Table
	formatter *share.Formatter
	cfg       *config.Config
	cache     cache.RedisCache
	kafka     kafka.Client
	otel      otel.Otel
}

func New(
	ledger *ledger.Ledger,
	repo repository.Booking,
	table *tariff.Table,
	formatter *share.Formatter,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		ledger:    ledger,
		repo:      repo,
		table:     table,
		formatter: formatter,
		cfg:       cfg,
		cache:     cache,
		kafka:     kafka,
		otel:      otel,
	}
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := req.ToModel()
	if err != nil {
		return res, err
	}

	if err = booking.Validate(); err != nil {
		return res, fmt.Errorf("failed to validate quote: %w", err)
	}

	booking.Finalize(s.table)
	res.FromModel(booking, s.table)

	return res, nil
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveBookingRequest) (res dto.SaveBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := req.ToModel()
	if err != nil {
		return res, err
	}

	result, err := s.SaveModel(ctx, booking)
	if err != nil {
		return res, err
	}

	res.FromModel(result)

	return res, nil
}

// SaveModel creates the booking when it has no id, or replaces the stored booking with the
// same id. Derived fields are always recomputed.
func (s *serviceImpl) SaveModel(ctx context.Context, booking model.Booking) (res model.SaveResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveModel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	res.Created = booking.ID == ""
	if res.Created {
		booking.ID = uuid.NewString()
	} else if !s.ledger.Exists(booking.ID) {
		return res, model.ErrBookingNotFound.WithDetail("id %s", booking.ID)
	}

	scope.SetAttribute("booking.id", booking.ID)

	if err = booking.Validate(); err != nil {
		return res, fmt.Errorf("failed to validate booking: %w", err)
	}

	booking.Finalize(s.table)

	if s.cfg.Property.OverlapPolicy != config.OverlapPolicyAllow {
		res.Conflicts = s.ledger.Conflicts(booking)
	}

	if len(res.Conflicts) > 0 {
		ids := conflictIDs(res.Conflicts)

		if s.cfg.Property.OverlapPolicy == config.OverlapPolicyReject {
			return res, model.ErrBookingConflict.WithDetail("overlaps %s", strings.Join(ids, ", "))
		}

		log.Warn().Str("id", booking.ID).Strs("conflicts", ids).Msg("booking overlaps existing bookings")
	}

	before := s.ledger.All()
	s.ledger.Upsert(booking)

	if err = s.repo.Save(ctx, s.ledger.All()); err != nil {
		s.ledger.Replace(before)
		log.Error().Err(err).Str("id", booking.ID).Msg("failed to persist booking")

		return res, fmt.Errorf("failed to save booking: %w", err)
	}

	res.Booking = booking.Clone()

	var payload dto.BookingResponse
	payload.FromModel(booking)

	s.publish(ctx, dto.BookingEvent{Type: dto.EventBookingSaved, ID: booking.ID, Booking: &payload})
	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyCalendarMonth)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.Find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Find(ctx context.Context, id string) (booking model.Booking, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Find")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err = s.ledger.Get(id)
	if err != nil {
		return booking, fmt.Errorf("failed to find booking: %w", err)
	}

	return booking, nil
}

// GetAll lists bookings in ledger order, narrowed to a month when the filter is set.
// Sorting by start date is the only other order supported.
func (s *serviceImpl) GetAll(ctx context.Context, filter dto.MonthFilter, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings := s.ledger.All()
	if filter.Enabled() {
		bookings = calendar.BookingsOverlapping(bookings, filter.Year, filter.Month)
	}

	if params.SortBy == model.FieldStartDate {
		desc := params.SortDir == gDto.SortDirDesc

		slices.SortStableFunc(bookings, func(a, b model.Booking) int {
			if desc {
				return b.StartDate.Compare(a.StartDate)
			}

			return a.StartDate.Compare(b.StartDate)
		})
	}

	res.FromModels(shared.Paginate(bookings, params.Page, params.Limit), len(bookings), params.Limit)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.ledger.All()

	if err = s.ledger.RemoveByID(id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if err = s.repo.Save(ctx, s.ledger.All()); err != nil {
		s.ledger.Replace(before)
		log.Error().Err(err).Str("id", id).Msg("failed to persist booking removal")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.publish(ctx, dto.BookingEvent{Type: dto.EventBookingDeleted, ID: id})
	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyCalendarMonth)

	return nil
}

func (s *serviceImpl) Share(ctx context.Context, id string) (res dto.ShareResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Share")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.Find(ctx, id)
	if err != nil {
		return res, err
	}

	messages, err := s.formatter.All(booking)
	if err != nil {
		return res, fmt.Errorf("failed to render booking: %w", err)
	}

	return dto.ShareResponse(messages), nil
}

func (s *serviceImpl) Export(ctx context.Context, id string) (res share.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.Find(ctx, id)
	if err != nil {
		return res, err
	}

	return s.formatter.Record(booking), nil
}

// publish sends the event on a best effort basis; the ledger is already saved.
func (s *serviceImpl) publish(ctx context.Context, event dto.BookingEvent) {
	event.OccurredAt = timezone.Now()

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic, kafka.Message{Key: event.ID, Value: event})
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Str("id", event.ID).Msg("failed to publish booking event")
	}
}

func conflictIDs(conflicts []model.Booking) []string {
	ids := make([]string, len(conflicts))
	for i, c := range conflicts {
		ids[i] = c.ID
	}

	return ids
}
