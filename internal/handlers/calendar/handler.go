package calendar

import (
	"fmt"
	"net/http"
	"ohanna/infras/otel"
	"ohanna/internal/domains/calendar/service"
	"ohanna/shared/constant"
	"ohanna/transport/http/request"
	"ohanna/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const reportFileName = "reservas-%04d-%02d.xlsx"

type Handler struct {
	service service.Calendar
	otel    otel.Otel
}

func New(service service.Calendar, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/calendar", func(routerGroup chi.Router) {
		routerGroup.Get("/days/{date}", handler.GetDay)
		routerGroup.Get("/{year}/{month}", handler.GetMonth)
		routerGroup.Get("/{year}/{month}/report", handler.GetReport)
	})
}

// GetMonth returns the month grid with its summary and collections.
// @Summary Get a calendar month
// @Tags Calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} response.Data[dto.MonthResponse]
// @Failure 400 {object} response.Error
// @Router /v1/calendar/{year}/{month} [get]
// @Security BearerAuth
func (handler *Handler) GetMonth(writer http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonth")
	defer scope.End()

	year, month, err := request.PathMonth(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Month(ctx, year, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("year", year).Int("month", int(month)).Msg("failed to build month")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetReport downloads the month as a spreadsheet.
// @Summary Download the month report
// @Tags Calendar
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Router /v1/calendar/{year}/{month}/report [get]
// @Security BearerAuth
func (handler *Handler) GetReport(writer http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReport")
	defer scope.End()

	year, month, err := request.PathMonth(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	data, err := handler.service.Report(ctx, year, month)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithFile(writer, constant.ContentTypeXLSX, fmt.Sprintf(reportFileName, year, int(month)), data)
}

// GetDay returns who holds the property on a date, or the rack rate when it is free.
// @Summary Get one day
// @Tags Calendar
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.DayResponse]
// @Failure 400 {object} response.Error
// @Router /v1/calendar/days/{date} [get]
// @Security BearerAuth
func (handler *Handler) GetDay(writer http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDay")
	defer scope.End()

	res, err := handler.service.Day(ctx, chi.URLParam(r, constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
