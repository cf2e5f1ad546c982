package calendar_test

import (
	"net/http"
	"net/http/httptest"
	"ohanna/infras/otel/mocks"
	"ohanna/internal/domains/calendar/model/dto"
	serviceMocks "ohanna/internal/domains/calendar/service/mocks"
	"ohanna/internal/handlers/calendar"
	"ohanna/shared/constant"
	"ohanna/shared/failure"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockCalendar) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockCalendar(ctrl)

	handler := calendar.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, svc
}

func serve(router http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestHandler_GetMonth(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Month(gomock.Any(), 2025, time.March).Return(dto.MonthResponse{Year: 2025, Month: 3}, nil)

	rec := serve(router, "/v1/calendar/2025/3")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"month":3`)

	rec = serve(router, "/v1/calendar/2025/13")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetReport(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Report(gomock.Any(), 2025, time.March).Return([]byte("xlsx"), nil)

	rec := serve(router, "/v1/calendar/2025/3/report")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeXLSX, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="reservas-2025-03.xlsx"`, rec.Header().Get(constant.RequestHeaderContentDisposition))
	assert.Equal(t, "xlsx", rec.Body.String())
}

func TestHandler_GetDay(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Day(gomock.Any(), "2025-03-08").Return(dto.DayResponse{Date: "2025-03-08", BookingID: "b-1", Label: "Ana"}, nil)
	svc.EXPECT().Day(gomock.Any(), "tomorrow").Return(dto.DayResponse{}, failure.BadRequestFromString("bad date"))

	rec := serve(router, "/v1/calendar/days/2025-03-08")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"booking_id":"b-1"`)

	rec = serve(router, "/v1/calendar/days/tomorrow")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
