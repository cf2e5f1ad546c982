package dto_test

import (
	"net/http"
	"ohanna/internal/domains/booking/model"
	"ohanna/internal/domains/booking/model/dto"
	"ohanna/internal/domains/tariff"
	"ohanna/shared/failure"
	"ohanna/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveBookingRequest_ToModel(t *testing.T) {
	req := dto.SaveBookingRequest{
		Kind:      model.KindOvernight,
		StartDate: "2025-03-07",
		EndDate:   "2025-03-09",
		NumPeople: 2,
		Guests:    []dto.GuestRequest{{Name: "Ana", Document: "123"}},
		Payments: []dto.PaymentRequest{
			{Amount: 100000, Method: model.MethodCash, Date: "2025-03-01"},
			{ID: "p-2", Amount: 50000, Method: model.MethodBankA, Date: "2025-03-02"},
		},
		Expenses: []dto.ExpenseRequest{{Description: "Leña", Amount: 20000}},
	}

	booking, err := req.ToModel()
	require.NoError(t, err)

	assert.Empty(t, booking.ID, "ids are assigned on save")
	assert.Equal(t, timezone.Date(2025, 3, 7), booking.StartDate)
	assert.Equal(t, timezone.Date(2025, 3, 9), booking.EndDate)
	assert.Equal(t, []model.Guest{{Name: "Ana", Document: "123"}}, booking.Guests)

	require.Len(t, booking.Payments, 2)
	assert.NotEmpty(t, booking.Payments[0].ID)
	assert.Equal(t, "p-2", booking.Payments[1].ID)
	assert.Equal(t, timezone.Date(2025, 3, 2), booking.Payments[1].Date)

	require.Len(t, booking.Expenses, 1)
	assert.NotEmpty(t, booking.Expenses[0].ID)
}

func TestSaveBookingRequest_ToModelDefaultsEndDate(t *testing.T) {
	req := dto.SaveBookingRequest{Kind: model.KindDayVisit, StartDate: "2025-03-09", NumPeople: 4}

	booking, err := req.ToModel()
	require.NoError(t, err)

	assert.Equal(t, booking.StartDate, booking.EndDate)
	assert.Empty(t, booking.Guests)
	assert.Empty(t, booking.Payments)
}

func TestSaveBookingRequest_ToModelRejectsBadDates(t *testing.T) {
	tests := []struct {
		name string
		req  dto.SaveBookingRequest
	}{
		{name: "start", req: dto.SaveBookingRequest{StartDate: "07/03/2025"}},
		{name: "end", req: dto.SaveBookingRequest{StartDate: "2025-03-07", EndDate: "2025-13-01"}},
		{
			name: "payment",
			req: dto.SaveBookingRequest{
				StartDate: "2025-03-07",
				Payments:  []dto.PaymentRequest{{Amount: 1, Method: model.MethodCash, Date: "yesterday"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToModel()
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestQuoteResponse_FromModel(t *testing.T) {
	req := dto.QuoteRequest{Kind: model.KindOvernight, StartDate: "2025-03-07", EndDate: "2025-03-09", NumPeople: 2}

	booking, err := req.ToModel()
	require.NoError(t, err)

	var res dto.QuoteResponse
	res.FromModel(booking, tariff.DefaultTable())

	assert.Equal(t, 830000, res.Total)
	assert.Equal(t, tariff.DefaultReimbursableDeposit, res.ReimbursableDeposit)
	assert.Equal(t, []dto.NightResponse{
		{Date: "2025-03-07", Price: 380000},
		{Date: "2025-03-08", Price: 450000},
	}, res.Nights)

	visit := dto.QuoteRequest{Kind: model.KindDayVisit, StartDate: "2025-03-09", NumPeople: 2}

	booking, err = visit.ToModel()
	require.NoError(t, err)

	res = dto.QuoteResponse{}
	res.FromModel(booking, tariff.DefaultTable())

	assert.Empty(t, res.Nights)
	assert.Equal(t, "2025-03-09", res.EndDate)
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:              "b-1",
		Kind:            model.KindDayVisit,
		StartDate:       timezone.Date(2025, 3, 9),
		EndDate:         timezone.Date(2025, 3, 9),
		NumPeople:       4,
		TotalPrice:      400000,
		Discount:        20000,
		Deposit:         100000,
		Payments:        []model.Payment{{ID: "p", Amount: 100000, Method: model.MethodCash, Date: timezone.Date(2025, 3, 1)}},
		PaymentMethod:   model.MethodCash,
		Schedule:        model.ScheduleAfternoon,
		CleaningTotal:   60000,
		CleaningDeposit: 10000,
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, 280000, res.Balance)
	assert.Equal(t, 50000, res.CleaningBalance)
	assert.Equal(t, "2:00 PM", res.CheckIn)
	assert.Equal(t, "10:30 PM", res.CheckOut)
	assert.Equal(t, []dto.PaymentResponse{{ID: "p", Amount: 100000, Method: "Efectivo", Date: "2025-03-01"}}, res.Payments)
	assert.Empty(t, res.Guests)
	assert.NotNil(t, res.Guests)
}

func TestMonthFilter_Enabled(t *testing.T) {
	assert.True(t, dto.MonthFilter{Year: 2025, Month: time.March}.Enabled())
	assert.False(t, dto.MonthFilter{}.Enabled())
	assert.False(t, dto.MonthFilter{Year: 2025, Month: 13}.Enabled())
	assert.False(t, dto.MonthFilter{Month: time.March}.Enabled())
}
