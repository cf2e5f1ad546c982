package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"ohanna/infras/otel"
	bookingDto "ohanna/internal/domains/booking/model/dto"
	bookingService "ohanna/internal/domains/booking/service"
	"ohanna/internal/domains/draft/model"
	"ohanna/internal/domains/draft/model/dto"
	"ohanna/internal/domains/draft/repository"
	"ohanna/internal/domains/tariff"
	"ohanna/shared/constant"
	"ohanna/shared/failure"
	"ohanna/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Draft interface {
	Open(ctx context.Context, req dto.OpenDraftRequest) (dto.DraftResponse, error)
	Get(ctx context.Context, id string) (dto.DraftResponse, error)
	Execute(ctx context.Context, id string, req dto.CommandRequest) (dto.CommandResponse, error)
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Draft
	bookings bookingService.Booking
	table    *tariff.Table
	otel     otel.Otel
}

func New(repo repository.Draft, bookings bookingService.Booking, table *tariff.Table, otel otel.Otel) Draft {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		table:    table,
		otel:     otel,
	}
}

func (s *serviceImpl) Open(ctx context.Context, req dto.OpenDraftRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Draft.Open")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var draft model.Draft

	if req.BookingID != "" {
		booking, err := s.bookings.Find(ctx, req.BookingID)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		draft = model.FromBooking(uuid.NewString(), booking, timezone.Now())
	} else {
		date, err := timezone.ParseDate(req.Date)
		if err != nil {
			return res, failure.BadRequest(err) //nolint:wrapcheck
		}

		draft = model.NewForDate(uuid.NewString(), date, timezone.Now())
	}

	if err = s.repo.Save(ctx, draft); err != nil {
		log.Error().Err(err).Msg("failed to store draft")

		return res, fmt.Errorf("failed to open draft: %w", err)
	}

	res.FromModel(draft, draft.Booking.Price(s.table))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Draft.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	draft, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get draft: %w", err)
	}

	res.FromModel(draft, draft.Booking.Price(s.table))

	return res, nil
}

// Execute applies one command. Editing commands store the updated draft; save, delete and
// cancel close it.
func (s *serviceImpl) Execute(ctx context.Context, id string, req dto.CommandRequest) (res dto.CommandResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Draft.Execute")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("draft.command", req.Command)

	draft, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get draft: %w", err)
	}

	switch req.Command {
	case model.CommandSave:
		return s.save(ctx, draft)
	case model.CommandDelete:
		return s.delete(ctx, draft)
	case model.CommandCancel:
		return dto.CommandResponse{Closed: true}, s.Cancel(ctx, id)
	}

	if err = s.apply(&draft, req); err != nil {
		return res, err
	}

	if err = s.repo.Save(ctx, draft); err != nil {
		return res, fmt.Errorf("failed to store draft: %w", err)
	}

	res.Draft = &dto.DraftResponse{}
	res.Draft.FromModel(draft, draft.Booking.Price(s.table))

	return res, nil
}

func (s *serviceImpl) apply(draft *model.Draft, req dto.CommandRequest) error {
	switch req.Command {
	case model.CommandAddGuest:
		draft.AddGuest()
	case model.CommandUpdateGuest:
		fields := model.GuestFields{}
		if req.Guest != nil {
			fields = req.Guest.ToModel()
		}

		return draft.UpdateGuest(req.Position(), fields)
	case model.CommandRemoveGuest:
		return draft.RemoveGuest(req.Position())
	case model.CommandAddPayment:
		draft.AddPayment(uuid.NewString(), timezone.Today())
	case model.CommandUpdatePayment:
		fields := model.PaymentFields{}
		if req.Payment != nil {
			var err error
			if fields, err = req.Payment.ToModel(); err != nil {
				return err
			}
		}

		return draft.UpdatePayment(req.Position(), fields)
	case model.CommandRemovePayment:
		return draft.RemovePayment(req.Position())
	case model.CommandAddExpense:
		draft.AddExpense(uuid.NewString())
	case model.CommandUpdateExpense:
		fields := model.ExpenseFields{}
		if req.Expense != nil {
			fields = req.Expense.ToModel()
		}

		return draft.UpdateExpense(req.ExpenseID, fields)
	case model.CommandRemoveExpense:
		return draft.RemoveExpense(req.ExpenseID)
	case model.CommandSetFields:
		if req.Fields == nil {
			return nil
		}

		fields, err := req.Fields.ToModel()
		if err != nil {
			return err
		}

		draft.SetFields(fields)
	default:
		return model.ErrUnknownCommand.WithDetail("%q", req.Command)
	}

	return nil
}

func (s *serviceImpl) save(ctx context.Context, draft model.Draft) (res dto.CommandResponse, err error) {
	booking := draft.Booking
	if !draft.Editing {
		booking.ID = ""
	}

	result, err := s.bookings.SaveModel(ctx, booking)
	if err != nil {
		return res, fmt.Errorf("failed to save draft: %w", err)
	}

	if err = s.repo.Delete(ctx, draft.ID); err != nil {
		log.Error().Err(err).Str("draft", draft.ID).Msg("failed to discard saved draft")
	}

	res.Closed = true
	res.Saved = &bookingDto.SaveBookingResponse{}
	res.Saved.FromModel(result)

	return res, nil
}

func (s *serviceImpl) delete(ctx context.Context, draft model.Draft) (res dto.CommandResponse, err error) {
	if !draft.Editing {
		return res, model.ErrNotEditing
	}

	if err = s.bookings.Delete(ctx, draft.Booking.ID); err != nil {
		return res, fmt.Errorf("failed to delete booking: %w", err)
	}

	if err = s.repo.Delete(ctx, draft.ID); err != nil {
		log.Error().Err(err).Str("draft", draft.ID).Msg("failed to discard deleted draft")
	}

	res.Closed = true

	return res, nil
}

// Cancel discards the draft without touching the ledger.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Draft.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.Get(ctx, id); err != nil {
		return fmt.Errorf("failed to get draft: %w", err)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to cancel draft: %w", err)
	}

	return nil
}
