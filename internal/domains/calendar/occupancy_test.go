package calendar_test

import (
	"testing"
	"time"

	"ohanna/internal/domains/booking/model"
	"ohanna/internal/domains/calendar"
	"ohanna/internal/domains/tariff"
	"ohanna/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	table := tariff.DefaultTable()
	stay := overnight("a", timezone.Date(2025, 3, 7), timezone.Date(2025, 3, 10))
	stay.Guests = []model.Guest{{Name: "Ana"}}

	bookings := []model.Booking{stay}

	t.Run("night before checkout is occupied", func(t *testing.T) {
		occ := calendar.Resolve(bookings, timezone.Date(2025, 3, 9), table)

		require.False(t, occ.Vacant())
		assert.Equal(t, "a", occ.Booking.ID)
		assert.Equal(t, "Ana", occ.Label())
		assert.Zero(t, occ.RackRate)
	})

	t.Run("checkout day is vacant with rack rate", func(t *testing.T) {
		occ := calendar.Resolve(bookings, timezone.Date(2025, 3, 10), table)

		assert.True(t, occ.Vacant())
		assert.Equal(t, 380000, occ.RackRate)
	})

	t.Run("vacant saturday shows the elevated rack rate", func(t *testing.T) {
		occ := calendar.Resolve(nil, timezone.Date(2025, 3, 15), table)

		assert.Equal(t, 450000, occ.RackRate)
	})

	t.Run("vacant sunday keeps the weekday rack rate", func(t *testing.T) {
		occ := calendar.Resolve(nil, timezone.Date(2025, 3, 16), table)

		assert.Equal(t, 380000, occ.RackRate)
	})

	t.Run("first booking in order wins", func(t *testing.T) {
		visit := dayVisit("v", timezone.Date(2025, 3, 8))
		occ := calendar.Resolve([]model.Booking{visit, stay}, timezone.Date(2025, 3, 8), table)

		assert.Equal(t, "v", occ.Booking.ID)
		assert.Equal(t, calendar.OccupiedLabel, occ.Label())
	})
}

func TestMonthGrid(t *testing.T) {
	table := tariff.DefaultTable()
	bookings := []model.Booking{overnight("a", timezone.Date(2025, 2, 27), timezone.Date(2025, 3, 2))}

	// March 2025 starts on a Saturday.
	cells := calendar.MonthGrid(bookings, 2025, time.March, table)
	require.Len(t, cells, calendar.GridSize)

	for i := range 5 {
		assert.False(t, cells[i].InMonth, "cell %d should be padding", i)
	}

	first := cells[5]
	assert.True(t, first.InMonth)
	assert.Equal(t, timezone.Date(2025, 3, 1), first.Date)
	assert.True(t, first.Weekend)
	assert.False(t, first.Occupancy.Vacant())

	second := cells[6]
	assert.True(t, second.Occupancy.Vacant(), "checkout day is free")
	assert.Equal(t, 380000, second.Occupancy.RackRate)

	last := cells[5+30]
	assert.Equal(t, timezone.Date(2025, 3, 31), last.Date)
	assert.False(t, cells[36].InMonth)
	assert.False(t, cells[41].InMonth)
}

func TestMonthGrid_StartsOnMonday(t *testing.T) {
	// September 2025 starts on a Monday.
	cells := calendar.MonthGrid(nil, 2025, time.September, tariff.DefaultTable())

	assert.True(t, cells[0].InMonth)
	assert.Equal(t, 1, cells[0].Date.Day())
	assert.Equal(t, time.Monday, cells[0].Date.Weekday())
}
