package calendar_test

import (
	"testing"
	"time"

	"ohanna/internal/domains/booking/model"
	"ohanna/internal/domains/calendar"
	"ohanna/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overnight(id string, start, end time.Time) model.Booking {
	return model.Booking{ID: id, Kind: model.KindOvernight, StartDate: start, EndDate: end, NumPeople: 2}
}

func dayVisit(id string, date time.Time) model.Booking {
	return model.Booking{ID: id, Kind: model.KindDayVisit, StartDate: date, EndDate: date, NumPeople: 2}
}

func bookingIDs(bookings []model.Booking) []string {
	out := []string{}
	for _, b := range bookings {
		out = append(out, b.ID)
	}

	return out
}

func TestBookingsOverlapping(t *testing.T) {
	tests := []struct {
		name    string
		booking model.Booking
		want    bool
	}{
		{
			name:    "entirely before the month",
			booking: overnight("x", timezone.Date(2025, 2, 20), timezone.Date(2025, 2, 28)),
			want:    false,
		},
		{
			name:    "checks out on the first of the month",
			booking: overnight("x", timezone.Date(2025, 2, 27), timezone.Date(2025, 3, 1)),
			want:    true,
		},
		{
			name:    "starts on the last day of the month",
			booking: overnight("x", timezone.Date(2025, 3, 31), timezone.Date(2025, 4, 2)),
			want:    true,
		},
		{
			name:    "starts the day after the month",
			booking: overnight("x", timezone.Date(2025, 4, 1), timezone.Date(2025, 4, 3)),
			want:    false,
		},
		{
			name:    "spans the whole month",
			booking: overnight("x", timezone.Date(2025, 2, 15), timezone.Date(2025, 4, 15)),
			want:    true,
		},
		{
			name:    "same month of another year",
			booking: overnight("x", timezone.Date(2024, 3, 10), timezone.Date(2024, 3, 12)),
			want:    false,
		},
		{
			name:    "day visit inside the month",
			booking: dayVisit("x", timezone.Date(2025, 3, 15)),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.BookingsOverlapping([]model.Booking{tt.booking}, 2025, time.March)

			assert.Equal(t, tt.want, len(got) == 1)
		})
	}
}

func TestBookingsOverlapping_KeepsOrder(t *testing.T) {
	all := []model.Booking{
		dayVisit("c", timezone.Date(2025, 3, 20)),
		overnight("out", timezone.Date(2025, 1, 1), timezone.Date(2025, 1, 3)),
		overnight("a", timezone.Date(2025, 3, 2), timezone.Date(2025, 3, 4)),
	}

	assert.Equal(t, []string{"c", "a"}, bookingIDs(calendar.BookingsOverlapping(all, 2025, time.March)))
}

func TestSummarize(t *testing.T) {
	a := overnight("a", timezone.Date(2025, 3, 1), timezone.Date(2025, 3, 3))
	a.TotalPrice = 830000
	a.Deposit = 300000
	a.CleaningTotal = 80000
	a.CleaningDeposit = 20000

	b := dayVisit("b", timezone.Date(2025, 3, 8))
	b.TotalPrice = 400000
	b.Discount = 500000

	s := calendar.Summarize([]model.Booking{a, b})

	assert.Equal(t, 2, s.TotalCount)
	assert.Equal(t, 1, s.CountByKind[model.KindOvernight])
	assert.Equal(t, 1, s.CountByKind[model.KindDayVisit])
	assert.Equal(t, 530000-100000, s.SumBalance)
	assert.Equal(t, 60000, s.SumCleaningBalance)

	empty := calendar.Summarize(nil)
	assert.Equal(t, 0, empty.TotalCount)
	assert.Equal(t, 0, empty.CountByKind[model.KindDayVisit])
}

func TestCollect(t *testing.T) {
	itemized := overnight("a", timezone.Date(2025, 4, 10), timezone.Date(2025, 4, 12))
	itemized.Payments = []model.Payment{
		{ID: "p1", Amount: 200000, Method: model.MethodNequiA, Date: timezone.Date(2025, 3, 5)},
		{ID: "p2", Amount: 50000, Method: model.MethodCash, Date: timezone.Date(2025, 3, 28)},
		{ID: "p3", Amount: 300000, Method: model.MethodCash, Date: timezone.Date(2025, 4, 10)},
	}
	itemized.Deposit = 550000

	legacy := overnight("b", timezone.Date(2025, 3, 14), timezone.Date(2025, 3, 15))
	legacy.Deposit = 100000
	legacy.PaymentMethod = model.MethodCash

	unnamed := dayVisit("c", timezone.Date(2025, 3, 20))
	unnamed.Deposit = 40000

	otherMonth := overnight("d", timezone.Date(2025, 2, 14), timezone.Date(2025, 2, 15))
	otherMonth.Deposit = 999999
	otherMonth.PaymentMethod = model.MethodBankA

	c := calendar.Collect([]model.Booking{itemized, legacy, unnamed, otherMonth}, 2025, time.March)

	assert.Equal(t, 390000, c.Total)
	assert.Equal(t, map[model.PaymentMethod]int{
		model.MethodNequiA:      200000,
		model.MethodCash:        150000,
		model.MethodUnspecified: 40000,
	}, c.ByMethod)
}

func TestCollect_LegacyDepositOnly(t *testing.T) {
	b := overnight("a", timezone.Date(2025, 3, 14), timezone.Date(2025, 3, 15))
	b.Deposit = 100000
	b.PaymentMethod = model.MethodCash

	c := calendar.Collect([]model.Booking{b}, 2025, time.March)

	assert.Equal(t, 100000, c.ByMethod[model.MethodCash])
	assert.Equal(t, 100000, c.Total)
}

func TestCollections_Ranked(t *testing.T) {
	c := calendar.Collections{
		Total: 300000,
		ByMethod: map[model.PaymentMethod]int{
			model.MethodCash:   100000,
			model.MethodNequiA: 150000,
			model.MethodBankB:  50000,
		},
	}

	ranked := c.Ranked()
	require.Len(t, ranked, 3)

	assert.Equal(t, calendar.MethodTotal{Method: model.MethodNequiA, Amount: 150000, Percent: 50}, ranked[0])
	assert.Equal(t, calendar.MethodTotal{Method: model.MethodCash, Amount: 100000, Percent: 33.3}, ranked[1])
	assert.Equal(t, calendar.MethodTotal{Method: model.MethodBankB, Amount: 50000, Percent: 16.7}, ranked[2])

	tie := calendar.Collections{Total: 0, ByMethod: map[model.PaymentMethod]int{model.MethodOther: 0, model.MethodBankA: 0}}
	tied := tie.Ranked()
	require.Len(t, tied, 2)
	assert.Equal(t, model.MethodBankA, tied[0].Method)
	assert.Zero(t, tied[0].Percent)
}
