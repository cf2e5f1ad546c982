package repository

import (
	"ohanna/internal/domains/booking/model"
	gRepo "ohanna/shared/repository"
	"ohanna/shared/timezone"
	"time"
)

// record is the stored shape of a booking, shared by the table and the snapshot object.
type record struct {
	ID              string                      `db:"id"               json:"id"`
	Position        int                         `db:"position"         json:"-"`
	Kind            string                      `db:"kind"             json:"kind"`
	StartDate       time.Time                   `db:"start_date"       json:"start_date"`
	EndDate         time.Time                   `db:"end_date"         json:"end_date"`
	NumPeople       int                         `db:"num_people"       json:"num_people"`
	NumChildren     int                         `db:"num_children"     json:"num_children"`
	Guests          gRepo.JSON[[]model.Guest]   `db:"guests"           json:"guests"`
	TotalPrice      int                         `db:"total_price"      json:"total_price"`
	Discount        int                         `db:"discount"         json:"discount"`
	Deposit         int                         `db:"deposit"          json:"deposit"`
	Payments        gRepo.JSON[[]model.Payment] `db:"payments"         json:"payments"`
	PaymentMethod   string                      `db:"payment_method"   json:"payment_method"`
	Expenses        gRepo.JSON[[]model.Expense] `db:"expenses"         json:"expenses"`
	Schedule        string                      `db:"schedule"         json:"schedule"`
	IsHoliday       bool                        `db:"is_holiday"       json:"is_holiday"`
	CleaningTotal   int                         `db:"cleaning_total"   json:"cleaning_total"`
	CleaningDeposit int                         `db:"cleaning_deposit" json:"cleaning_deposit"`
}

func toRecord(position int, b model.Booking) record {
	return record{
		ID:              b.ID,
		Position:        position,
		Kind:            string(b.Kind),
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		NumPeople:       b.NumPeople,
		NumChildren:     b.NumChildren,
		Guests:          gRepo.NewJSON(b.Guests),
		TotalPrice:      b.TotalPrice,
		Discount:        b.Discount,
		Deposit:         b.Deposit,
		Payments:        gRepo.NewJSON(b.Payments),
		PaymentMethod:   string(b.PaymentMethod),
		Expenses:        gRepo.NewJSON(b.Expenses),
		Schedule:        b.Schedule,
		IsHoliday:       b.IsHoliday,
		CleaningTotal:   b.CleaningTotal,
		CleaningDeposit: b.CleaningDeposit,
	}
}

func (r record) toModel() model.Booking {
	b := model.Booking{
		ID:              r.ID,
		Kind:            model.Kind(r.Kind),
		StartDate:       timezone.TruncateDate(r.StartDate),
		EndDate:         timezone.TruncateDate(r.EndDate),
		NumPeople:       r.NumPeople,
		NumChildren:     r.NumChildren,
		Guests:          r.Guests.Data,
		TotalPrice:      r.TotalPrice,
		Discount:        r.Discount,
		Deposit:         r.Deposit,
		Payments:        r.Payments.Data,
		PaymentMethod:   model.PaymentMethod(r.PaymentMethod),
		Expenses:        r.Expenses.Data,
		Schedule:        r.Schedule,
		IsHoliday:       r.IsHoliday,
		CleaningTotal:   r.CleaningTotal,
		CleaningDeposit: r.CleaningDeposit,
	}

	for i, p := range b.Payments {
		b.Payments[i].Date = timezone.TruncateDate(p.Date)
	}

	if b.Guests == nil {
		b.Guests = []model.Guest{}
	}

	if b.Payments == nil {
		b.Payments = []model.Payment{}
	}

	if b.Expenses == nil {
		b.Expenses = []model.Expense{}
	}

	return b
}
