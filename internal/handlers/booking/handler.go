package booking

import (
	"net/http"
	"ohanna/infras/otel"
	"ohanna/internal/domains/booking/model/dto"
	"ohanna/internal/domains/booking/service"
	"ohanna/shared/constant"
	gDto "ohanna/shared/dto"
	"ohanna/shared/validator"
	"ohanna/transport/http/request"
	"ohanna/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/quotes", handler.Quote)

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SaveBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
		routerGroup.Get("/{id}/share", handler.ShareBooking)
		routerGroup.Get("/{id}/export", handler.ExportBooking)
	})
}

// Quote prices a booking without saving it.
// @Summary Quote a booking
// @Description Compute the total and the per-night breakdown for a prospective booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Router /v1/quotes [post]
// @Security BearerAuth
func (handler *Handler) Quote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SaveBooking creates a booking, or replaces the one named by the body id.
// @Summary Save a booking
// @Description Create a booking. Price, deposit and schedule are recomputed from the request.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SaveBookingRequest true "Save Booking Request"
// @Success 201 {object} response.Data[dto.SaveBookingResponse] "Booking created"
// @Success 200 {object} response.Data[dto.SaveBookingResponse] "Booking replaced"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) SaveBooking(writer http.ResponseWriter, request *http.Request) {
	handler.save(writer, request, "")
}

// UpdateBooking replaces a stored booking.
// @Summary Update a booking
// @Description Replace the booking with the given id, keeping its position in the ledger.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.SaveBookingRequest true "Save Booking Request"
// @Success 200 {object} response.Data[dto.SaveBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	handler.save(writer, request, chi.URLParam(request, constant.RequestParamID))
}

func (handler *Handler) save(writer http.ResponseWriter, request *http.Request, id string) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveBooking")
	defer scope.End()

	req := dto.SaveBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if id != "" {
		req.ID = id
	}

	res, err := handler.service.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", req.ID).Msg("failed to save booking")

		response.WithError(writer, err)

		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}

	scope.AddEvent("Booking saved " + res.Booking.ID)

	response.WithJSON(writer, status, res)
}

// GetBookings lists bookings in ledger order.
// @Summary Get all bookings
// @Description List bookings, optionally only those overlapping a month.
// @Tags Booking
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	year, month, _, err := request.QueryMonth(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	res, err := handler.service.GetAll(ctx, dto.MonthFilter{Year: year, Month: month}, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteBooking removes a booking.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking deleted successfully")
}

// ShareBooking renders the messages sent to the guest, the gatekeeper and the owner.
// @Summary Share a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.ShareResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/share [get]
// @Security BearerAuth
func (handler *Handler) ShareBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ShareBooking")
	defer scope.End()

	res, err := handler.service.Share(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ExportBooking returns the booking as an export record.
// @Summary Export a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[share.Record]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/export [get]
// @Security BearerAuth
func (handler *Handler) ExportBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBooking")
	defer scope.End()

	res, err := handler.service.Export(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
