package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"ohanna/infras/otel/mocks"
	"ohanna/internal/domains/booking/model"
	"ohanna/internal/domains/booking/model/dto"
	serviceMocks "ohanna/internal/domains/booking/service/mocks"
	"ohanna/internal/domains/share"
	"ohanna/internal/handlers/booking"
	gDto "ohanna/shared/dto"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const saveBody = `{"kind":"Hospedaje","start_date":"2025-03-07","end_date":"2025-03-09","num_people":2,"num_children":0,"guests":[{"name":"Ana"}],"payments":[],"expenses":[]}`

func newRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockBooking(ctrl)

	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}

func TestHandler_Quote(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Quote(gomock.Any(), dto.QuoteRequest{
		Kind:      model.KindOvernight,
		StartDate: "2025-03-07",
		EndDate:   "2025-03-08",
		NumPeople: 2,
	}).Return(dto.QuoteResponse{Total: 380000}, nil)

	rec := serve(router, http.MethodPost, "/v1/quotes", `{"kind":"Hospedaje","start_date":"2025-03-07","end_date":"2025-03-08","num_people":2}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":380000`)
}

func TestHandler_Quote_InvalidBody(t *testing.T) {
	router, _ := newRouter(t)

	rec := serve(router, http.MethodPost, "/v1/quotes", `{"kind":"Camping","start_date":"2025-03-07","num_people":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decodeError(t, rec))
}

func TestHandler_SaveBooking(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantID     string
		created    bool
		wantStatus int
	}{
		{name: "create", method: http.MethodPost, target: "/v1/bookings", created: true, wantStatus: http.StatusCreated},
		{name: "replace", method: http.MethodPut, target: "/v1/bookings/b-1", wantID: "b-1", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().Save(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req dto.SaveBookingRequest) (dto.SaveBookingResponse, error) {
					assert.Equal(t, tt.wantID, req.ID)
					assert.Equal(t, "Ana", req.Guests[0].Name)

					return dto.SaveBookingResponse{Booking: dto.BookingResponse{ID: "b-1"}, Created: tt.created, Conflicts: []string{}}, nil
				})

			rec := serve(router, tt.method, tt.target, saveBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"id":"b-1"`)
		})
	}
}

func TestHandler_SaveBooking_Conflict(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(dto.SaveBookingResponse{}, model.ErrBookingConflict.WithDetail("overlaps b-2"))

	rec := serve(router, http.MethodPost, "/v1/bookings", saveBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "dates overlap an existing booking: overlaps b-2", decodeError(t, rec))
}

func TestHandler_GetBookings(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantFilter dto.MonthFilter
		wantParams gDto.QueryParams
		wantStatus int
	}{
		{
			name:       "all",
			target:     "/v1/bookings",
			wantStatus: http.StatusOK,
		},
		{
			name:       "month and page",
			target:     "/v1/bookings?year=2025&month=3&page=2&limit=10",
			wantFilter: dto.MonthFilter{Year: 2025, Month: time.March},
			wantParams: gDto.QueryParams{Page: 2, Limit: 10},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad month",
			target:     "/v1/bookings?year=2025&month=13",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			if tt.wantStatus == http.StatusOK {
				svc.EXPECT().GetAll(gomock.Any(), tt.wantFilter, tt.wantParams).
					Return(dto.GetBookingsResponse{Bookings: []dto.BookingResponse{}, TotalPage: 1}, nil)
			}

			rec := serve(router, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_GetBookingByID(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "b-1").Return(dto.BookingResponse{ID: "b-1"}, nil)
	svc.EXPECT().Get(gomock.Any(), "ghost").Return(dto.BookingResponse{}, model.ErrBookingNotFound)

	rec := serve(router, http.MethodGet, "/v1/bookings/b-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodGet, "/v1/bookings/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "booking not found", decodeError(t, rec))
}

func TestHandler_DeleteBooking(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

	rec := serve(router, http.MethodDelete, "/v1/bookings/b-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking deleted successfully")
}

func TestHandler_ShareAndExport(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Share(gomock.Any(), "b-1").Return(dto.ShareResponse{GuestConfirmation: "Hola"}, nil)
	svc.EXPECT().Export(gomock.Any(), "b-1").Return(share.Record{Client: "Ana", Total: 830000}, nil)

	rec := serve(router, http.MethodGet, "/v1/bookings/b-1/share", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"guest_confirmation":"Hola"`)

	rec = serve(router, http.MethodGet, "/v1/bookings/b-1/export", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cliente":"Ana"`)
}
