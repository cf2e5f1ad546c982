// Package calendar derives the month view of the ledger: which bookings touch a month, the
// month statistics, the money collected per payment method and the occupancy of each day.
package calendar

import (
	"cmp"
	"math"
	"ohanna/internal/domains/booking/model"
	"ohanna/shared/timezone"
	"slices"
	"time"
)

// BookingsOverlapping keeps the bookings that touch the month, in ledger order. Unlike occupancy
// the end date counts here, so a stay checking out on the 1st shows up in that month.
func BookingsOverlapping(all []model.Booking, year int, month time.Month) []model.Booking {
	first := timezone.FirstOfMonth(year, month)
	last := timezone.LastOfMonth(year, month)

	out := []model.Booking{}

	for _, b := range all {
		switch {
		case timezone.SameMonth(b.StartDate, year, month), timezone.SameMonth(b.EndDate, year, month):
			out = append(out, b)
		case !b.StartDate.After(last) && !b.EndDate.Before(first):
			out = append(out, b)
		}
	}

	return out
}

type Summary struct {
	TotalCount         int
	CountByKind        map[model.Kind]int
	SumBalance         int
	SumCleaningBalance int
}

// Summarize computes the month statistics over an already filtered set of bookings.
func Summarize(bookings []model.Booking) Summary {
	s := Summary{
		TotalCount:  len(bookings),
		CountByKind: make(map[model.Kind]int, len(model.Kinds)),
	}

	for _, kind := range model.Kinds {
		s.CountByKind[kind] = 0
	}

	for _, b := range bookings {
		s.CountByKind[b.Kind]++
		s.SumBalance += b.Balance()
		s.SumCleaningBalance += b.CleaningBalance()
	}

	return s
}

type MethodTotal struct {
	Method  model.PaymentMethod
	Amount  int
	Percent float64
}

type Collections struct {
	Total    int
	ByMethod map[model.PaymentMethod]int
}

// Collect sums the money received during the month per payment method. Itemized payments count
// by their own date. A booking without payments but with a stored deposit counts that deposit
// under its recorded method in the month it starts.
//
// It takes every booking, not just those overlapping the month: a payment can arrive months
// before the stay.
func Collect(all []model.Booking, year int, month time.Month) Collections {
	c := Collections{ByMethod: map[model.PaymentMethod]int{}}

	for _, b := range all {
		if len(b.Payments) > 0 {
			for _, p := range b.Payments {
				if timezone.SameMonth(p.Date, year, month) {
					c.add(p.Method, p.Amount)
				}
			}

			continue
		}

		if b.Deposit > 0 && timezone.SameMonth(b.StartDate, year, month) {
			method := b.PaymentMethod
			if method == "" {
				method = model.MethodUnspecified
			}

			c.add(method, b.Deposit)
		}
	}

	return c
}

func (c *Collections) add(method model.PaymentMethod, amount int) {
	c.ByMethod[method] += amount
	c.Total += amount
}

// Ranked orders the methods by amount, largest first, with their share of the total as a
// percentage rounded to one decimal.
func (c *Collections) Ranked() []MethodTotal {
	out := make([]MethodTotal, 0, len(c.ByMethod))

	for method, amount := range c.ByMethod {
		percent := 0.0
		if c.Total > 0 {
			percent = math.Round(float64(amount)*1000/float64(c.Total)) / 10
		}

		out = append(out, MethodTotal{Method: method, Amount: amount, Percent: percent})
	}

	slices.SortFunc(out, func(a, b MethodTotal) int {
		if a.Amount != b.Amount {
			return cmp.Compare(b.Amount, a.Amount)
		}

		return cmp.Compare(a.Method, b.Method)
	})

	return out
}
