package calendar

import (
	"ohanna/internal/domains/booking/model"
	"ohanna/internal/domains/tariff"
	"ohanna/shared/timezone"
	"time"
)

// OccupiedLabel is shown when the occupying booking has no named guest.
const OccupiedLabel = "Ocupado"

// GridSize is six Monday-first weeks.
const GridSize = 42

type Occupancy struct {
	Date     time.Time
	Booking  *model.Booking
	RackRate int
}

func (o Occupancy) Vacant() bool {
	return o.Booking == nil
}

// Label is the first guest's name, or OccupiedLabel.
func (o Occupancy) Label() string {
	if o.Booking == nil {
		return ""
	}

	if len(o.Booking.Guests) > 0 && o.Booking.Guests[0].Name != "" {
		return o.Booking.Guests[0].Name
	}

	return OccupiedLabel
}

// Resolve finds the first booking holding the property on date. A vacant day carries the rack
// rate instead. Overlapping bookings never merge: the earliest in the list wins.
func Resolve(bookings []model.Booking, date time.Time, table *tariff.Table) Occupancy {
	for i := range bookings {
		if bookings[i].Occupies(date) {
			b := bookings[i]

			return Occupancy{Date: date, Booking: &b}
		}
	}

	return Occupancy{Date: date, RackRate: table.RackRate(date)}
}

// Cell is one square of the month grid. Padding cells have a zero Date.
type Cell struct {
	Date      time.Time
	InMonth   bool
	Weekend   bool
	Occupancy Occupancy
}

// MonthGrid lays the month out as GridSize Monday-first cells, resolving occupancy against the
// bookings that overlap the month.
func MonthGrid(all []model.Booking, year int, month time.Month, table *tariff.Table) []Cell {
	bookings := BookingsOverlapping(all, year, month)
	first := timezone.FirstOfMonth(year, month)
	last := timezone.LastOfMonth(year, month)

	// Monday is column zero.
	padding := (int(first.Weekday()) + 6) % 7

	cells := make([]Cell, GridSize)

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		weekday := day.Weekday()

		cells[padding+day.Day()-1] = Cell{
			Date:      day,
			InMonth:   true,
			Weekend:   weekday == time.Saturday || weekday == time.Sunday,
			Occupancy: Resolve(bookings, day, table),
		}
	}

	return cells
}
