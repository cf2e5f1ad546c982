package model

import (
	"ohanna/internal/domains/tariff"
	"slices"
	"time"
)

// PaymentsTotal is the sum of the itemized payments.
func (b *Booking) PaymentsTotal() int {
	total := 0
	for _, p := range b.Payments {
		total += p.Amount
	}

	return total
}

// Balance is what the guest still owes. It goes negative when discount and payments exceed the price.
func (b *Booking) Balance() int {
	return b.TotalPrice - b.Discount - b.Deposit
}

// DiscountedTotal is the price after discount.
func (b *Booking) DiscountedTotal() int {
	return b.TotalPrice - b.Discount
}

func (b *Booking) CleaningBalance() int {
	return b.CleaningTotal - b.CleaningDeposit
}

// Occupants counts adults and children.
func (b *Booking) Occupants() int {
	return b.NumPeople + b.NumChildren
}

// Nights is the number of nights of an overnight stay. A day visit counts as one day.
func (b *Booking) Nights() int {
	if b.Kind == KindDayVisit {
		return 1
	}

	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}

// CheckIn and CheckOut are the arrival and departure times shown to guests.
func (b *Booking) CheckIn() string {
	in, _ := b.window()

	return in
}

func (b *Booking) CheckOut() string {
	_, out := b.window()

	return out
}

func (b *Booking) window() (string, string) {
	if b.Kind == KindOvernight {
		return OvernightCheckIn, OvernightCheckOut
	}

	in, out, found := cutTrim(b.Schedule, "-")
	if !found {
		return in, ""
	}

	return in, out
}

// Occupies reports whether the booking holds the property on date. Overnight stays hold
// [StartDate, EndDate); the checkout day is free.
func (b *Booking) Occupies(date time.Time) bool {
	if b.Kind == KindDayVisit {
		return b.StartDate.Equal(date)
	}

	return !date.Before(b.StartDate) && date.Before(b.EndDate)
}

// Overlaps reports whether two bookings hold the property on a common date.
func (b *Booking) Overlaps(other *Booking) bool {
	aStart, aEnd := b.heldRange()
	bStart, bEnd := other.heldRange()

	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// heldRange is the half-open range of held dates.
func (b *Booking) heldRange() (time.Time, time.Time) {
	if b.Kind == KindDayVisit {
		return b.StartDate, b.StartDate.AddDate(0, 0, 1)
	}

	return b.StartDate, b.EndDate
}

// Price computes the total from the tariff.
func (b *Booking) Price(table *tariff.Table) int {
	if b.Kind == KindDayVisit {
		return table.DayVisit(b.NumPeople, b.NumChildren, b.StartDate, b.IsHoliday)
	}

	return table.Stay(b.NumPeople, b.NumChildren, b.StartDate, b.EndDate, b.IsHoliday)
}

// Validate checks the structural rules of a booking.
func (b *Booking) Validate() error {
	if !b.Kind.Valid() {
		return ErrUnknownKind.WithDetail("%q", b.Kind)
	}

	if b.StartDate.IsZero() {
		return ErrMissingDates
	}

	switch b.Kind {
	case KindOvernight:
		if !b.EndDate.After(b.StartDate) {
			return ErrInvalidDateRange
		}
	case KindDayVisit:
		if b.Schedule != "" && !slices.Contains(Schedules, b.Schedule) {
			return ErrInvalidSchedule.WithDetail("%q", b.Schedule)
		}
	}

	if b.NumPeople < 1 || b.NumChildren < 0 {
		return ErrInvalidOccupancy
	}

	if b.Discount < 0 || b.CleaningTotal < 0 || b.CleaningDeposit < 0 {
		return ErrNegativeAmount
	}

	for _, p := range b.Payments {
		if !p.Method.Valid() {
			return ErrUnknownPaymentMethod.WithDetail("%q", p.Method)
		}

		if p.Amount < 0 {
			return ErrNegativeAmount
		}
	}

	return nil
}

// Finalize derives every computed field right before the booking is stored: the end date of a
// day visit, the total from the tariff, the deposit from the payments and the principal method.
func (b *Booking) Finalize(table *tariff.Table) {
	if b.Kind == KindDayVisit {
		b.EndDate = b.StartDate

		if b.Schedule == "" {
			b.Schedule = ScheduleMorning
		}
	}

	b.TotalPrice = b.Price(table)
	b.Deposit = b.PaymentsTotal()

	b.PaymentMethod = MethodCash
	if len(b.Payments) > 0 {
		b.PaymentMethod = b.Payments[0].Method
	}

	if b.Guests == nil {
		b.Guests = []Guest{}
	}

	if b.Payments == nil {
		b.Payments = []Payment{}
	}

	if b.Expenses == nil {
		b.Expenses = []Expense{}
	}
}

// Clone returns a copy that shares no slices with b.
func (b Booking) Clone() Booking {
	b.Guests = slices.Clone(b.Guests)
	b.Payments = slices.Clone(b.Payments)
	b.Expenses = slices.Clone(b.Expenses)

	return b
}
