package model

import (
	bookingModel "ohanna/internal/domains/booking/model"
	"slices"
	"time"
)

// NewForDate opens a blank booking starting on date: two adults, one unnamed guest and a
// checkout on the next day.
func NewForDate(id string, date, now time.Time) Draft {
	return Draft{
		ID: id,
		Booking: bookingModel.Booking{
			Kind:      bookingModel.KindOvernight,
			StartDate: date,
			EndDate:   date.AddDate(0, 0, 1),
			NumPeople: DefaultPeople,
			Guests:    []bookingModel.Guest{{}},
			Payments:  []bookingModel.Payment{},
			Expenses:  []bookingModel.Expense{},
			Schedule:  bookingModel.ScheduleMorning,
		},
		OpenedAt: now,
	}
}

// FromBooking opens an existing booking for editing. A deposit stored without itemized payments
// becomes a single payment dated on the start date so it survives the next save.
func FromBooking(id string, booking bookingModel.Booking, now time.Time) Draft {
	b := booking.Clone()

	if len(b.Payments) == 0 && b.Deposit > 0 {
		method := b.PaymentMethod
		if !method.Valid() {
			method = bookingModel.MethodCash
		}

		b.Payments = []bookingModel.Payment{{
			ID:     LegacyPaymentID,
			Amount: b.Deposit,
			Method: method,
			Date:   b.StartDate,
		}}
	}

	if b.Guests == nil {
		b.Guests = []bookingModel.Guest{}
	}

	if b.Payments == nil {
		b.Payments = []bookingModel.Payment{}
	}

	if b.Expenses == nil {
		b.Expenses = []bookingModel.Expense{}
	}

	return Draft{ID: id, Editing: true, Booking: b, OpenedAt: now}
}

func (d *Draft) AddGuest() {
	d.Booking.Guests = append(d.Booking.Guests, bookingModel.Guest{})
}

func (d *Draft) UpdateGuest(index int, fields GuestFields) error {
	if index < 0 || index >= len(d.Booking.Guests) {
		return ErrGuestIndexOutOfRange.WithDetail("index %d", index)
	}

	g := &d.Booking.Guests[index]
	if fields.Name != nil {
		g.Name = *fields.Name
	}

	if fields.Document != nil {
		g.Document = *fields.Document
	}

	return nil
}

func (d *Draft) RemoveGuest(index int) error {
	if index < 0 || index >= len(d.Booking.Guests) {
		return ErrGuestIndexOutOfRange.WithDetail("index %d", index)
	}

	d.Booking.Guests = slices.Delete(d.Booking.Guests, index, index+1)

	return nil
}

// AddPayment appends an empty cash payment dated today.
func (d *Draft) AddPayment(id string, today time.Time) {
	d.Booking.Payments = append(d.Booking.Payments, bookingModel.Payment{
		ID:     id,
		Method: bookingModel.MethodCash,
		Date:   today,
	})
}

func (d *Draft) UpdatePayment(index int, fields PaymentFields) error {
	if index < 0 || index >= len(d.Booking.Payments) {
		return ErrPaymentIndexOutOfRange.WithDetail("index %d", index)
	}

	p := &d.Booking.Payments[index]
	if fields.Amount != nil {
		p.Amount = *fields.Amount
	}

	if fields.Method != nil {
		p.Method = *fields.Method
	}

	if fields.Date != nil {
		p.Date = *fields.Date
	}

	return nil
}

func (d *Draft) RemovePayment(index int) error {
	if index < 0 || index >= len(d.Booking.Payments) {
		return ErrPaymentIndexOutOfRange.WithDetail("index %d", index)
	}

	d.Booking.Payments = slices.Delete(d.Booking.Payments, index, index+1)

	return nil
}

func (d *Draft) AddExpense(id string) {
	d.Booking.Expenses = append(d.Booking.Expenses, bookingModel.Expense{ID: id})
}

func (d *Draft) UpdateExpense(id string, fields ExpenseFields) error {
	i := d.expenseIndex(id)
	if i < 0 {
		return ErrExpenseNotFound.WithDetail("id %s", id)
	}

	e := &d.Booking.Expenses[i]
	if fields.Description != nil {
		e.Description = *fields.Description
	}

	if fields.Amount != nil {
		e.Amount = *fields.Amount
	}

	return nil
}

func (d *Draft) RemoveExpense(id string) error {
	i := d.expenseIndex(id)
	if i < 0 {
		return ErrExpenseNotFound.WithDetail("id %s", id)
	}

	d.Booking.Expenses = slices.Delete(d.Booking.Expenses, i, i+1)

	return nil
}

func (d *Draft) expenseIndex(id string) int {
	return slices.IndexFunc(d.Booking.Expenses, func(e bookingModel.Expense) bool {
		return e.ID == id
	})
}

// SetFields applies a partial update. A day visit always ends on its start date; an overnight
// stay whose checkout is not after check-in is moved to the next day.
func (d *Draft) SetFields(fields Fields) {
	b := &d.Booking

	if fields.Kind != nil {
		b.Kind = *fields.Kind
	}

	if fields.StartDate != nil {
		b.StartDate = *fields.StartDate
	}

	if fields.EndDate != nil {
		b.EndDate = *fields.EndDate
	}

	if fields.NumPeople != nil {
		b.NumPeople = *fields.NumPeople
	}

	if fields.NumChildren != nil {
		b.NumChildren = *fields.NumChildren
	}

	if fields.Discount != nil {
		b.Discount = *fields.Discount
	}

	if fields.Schedule != nil {
		b.Schedule = *fields.Schedule
	}

	if fields.IsHoliday != nil {
		b.IsHoliday = *fields.IsHoliday
	}

	if fields.CleaningTotal != nil {
		b.CleaningTotal = *fields.CleaningTotal
	}

	if fields.CleaningDeposit != nil {
		b.CleaningDeposit = *fields.CleaningDeposit
	}

	switch b.Kind {
	case bookingModel.KindDayVisit:
		b.EndDate = b.StartDate
	case bookingModel.KindOvernight:
		if !b.EndDate.After(b.StartDate) {
			b.EndDate = b.StartDate.AddDate(0, 0, 1)
		}
	}
}
