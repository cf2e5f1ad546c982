package draft

import (
	"net/http"
	"ohanna/infras/otel"
	"ohanna/internal/domains/draft/model/dto"
	"ohanna/internal/domains/draft/service"
	"ohanna/shared/constant"
	"ohanna/shared/validator"
	"ohanna/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Draft
	otel    otel.Otel
}

func New(service service.Draft, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/drafts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.OpenDraft)
		routerGroup.Get("/{id}", handler.GetDraft)
		routerGroup.Delete("/{id}", handler.CancelDraft)
		routerGroup.Post("/{id}/commands", handler.ExecuteCommand)
	})
}

// OpenDraft starts editing a new booking on a date, or an existing booking.
// @Summary Open a draft
// @Tags Draft
// @Accept json
// @Produce json
// @Param request body dto.OpenDraftRequest true "Open Draft Request"
// @Success 201 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/drafts [post]
// @Security BearerAuth
func (handler *Handler) OpenDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenDraft")
	defer scope.End()

	req := dto.OpenDraftRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Open(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open draft")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetDraft returns a draft and its current quote.
// @Summary Get a draft
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelDraft discards a draft. The ledger is untouched.
// @Summary Cancel a draft
// @Tags Draft
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelDraft")
	defer scope.End()

	if err := handler.service.Cancel(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Draft cancelled")
}

// ExecuteCommand applies one edit to a draft, or saves, deletes or cancels it.
// @Summary Run a draft command
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.CommandRequest true "Command"
// @Success 200 {object} response.Data[dto.CommandResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/drafts/{id}/commands [post]
// @Security BearerAuth
func (handler *Handler) ExecuteCommand(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExecuteCommand")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.CommandRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("draft.command", req.Command)

	res, err := handler.service.Execute(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Str("command", req.Command).Msg("failed to execute draft command")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
