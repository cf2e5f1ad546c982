// Package tariff prices overnight stays and day visits from the property's rate sheet.
package tariff

import (
	"time"
)

// NightPrice is one priced night of an overnight stay.
type NightPrice struct {
	Date  time.Time
	Price int
}

// IsSpecialDay reports Saturday, Sunday or a flagged holiday. It selects the extra-person rate.
func IsSpecialDay(date time.Time, isHoliday bool) bool {
	day := date.Weekday()

	return day == time.Saturday || day == time.Sunday || isHoliday
}

// elevatedBase selects the overnight base column. Only Saturday or a holiday count, not Sunday.
func elevatedBase(date time.Time, isHoliday bool) bool {
	return date.Weekday() == time.Saturday || isHoliday
}

// OvernightNight prices a single night starting on date.
func (t *Table) OvernightNight(people, children int, date time.Time, isHoliday bool) int {
	effective := min(people, t.BaseCapacity)
	if effective < 2 {
		effective = 2
	}

	base := t.OvernightBase[effective].pick(elevatedBase(date, isHoliday))

	return base + t.surcharge(people, children, IsSpecialDay(date, isHoliday))
}

// DayVisit prices a day visit on date.
func (t *Table) DayVisit(people, children int, date time.Time, isHoliday bool) int {
	special := IsSpecialDay(date, isHoliday)

	return t.DayVisitBase.pick(special) + t.surcharge(people, children, special)
}

// Nights prices every night in [start, end). The holiday flag applies to all of them.
func (t *Table) Nights(people, children int, start, end time.Time, isHoliday bool) []NightPrice {
	var nights []NightPrice

	for night := start; night.Before(end); night = night.AddDate(0, 0, 1) {
		nights = append(nights, NightPrice{
			Date:  night,
			Price: t.OvernightNight(people, children, night, isHoliday),
		})
	}

	return nights
}

// Stay sums the nightly prices of an overnight stay.
func (t *Table) Stay(people, children int, start, end time.Time, isHoliday bool) int {
	total := 0
	for _, night := range t.Nights(people, children, start, end, isHoliday) {
		total += night.Price
	}

	return total
}

// RackRate is the price shown on a vacant calendar day: two adults, no children, no holiday flag.
func (t *Table) RackRate(date time.Time) int {
	return t.OvernightNight(2, 0, date, false)
}

func (t *Table) surcharge(people, children int, special bool) int {
	extra := max(0, people-t.BaseCapacity)

	return extra*t.ExtraPerson.pick(special) + children*t.Child
}
