package dto

import (
	bookingModel "ohanna/internal/domains/booking/model"
	bookingDto "ohanna/internal/domains/booking/model/dto"
	"ohanna/internal/domains/calendar"
	"ohanna/shared/timezone"
)

type SummaryResponse struct {
	TotalCount         int            `json:"total_count"`
	CountByKind        map[string]int `json:"count_by_kind"`
	SumBalance         int            `json:"sum_balance"`
	SumCleaningBalance int            `json:"sum_cleaning_balance"`
}

func (r *SummaryResponse) FromModel(summary calendar.Summary) {
	r.TotalCount = summary.TotalCount
	r.SumBalance = summary.SumBalance
	r.SumCleaningBalance = summary.SumCleaningBalance

	r.CountByKind = make(map[string]int, len(summary.CountByKind))
	for kind, count := range summary.CountByKind {
		r.CountByKind[string(kind)] = count
	}
}

type MethodTotalResponse struct {
	Method  string  `json:"method"`
	Amount  int     `json:"amount"`
	Percent float64 `json:"percent"`
}

type CollectionsResponse struct {
	Total   int                   `json:"total"`
	Methods []MethodTotalResponse `json:"methods"`
}

func (r *CollectionsResponse) FromModel(collections calendar.Collections) {
	r.Total = collections.Total

	ranked := collections.Ranked()

	r.Methods = make([]MethodTotalResponse, len(ranked))
	for i, m := range ranked {
		r.Methods[i] = MethodTotalResponse{Method: string(m.Method), Amount: m.Amount, Percent: m.Percent}
	}
}

// DayResponse is the occupancy of one date. Vacant days carry the rack rate, occupied days
// the booking.
type DayResponse struct {
	Date      string                      `json:"date"`
	Vacant    bool                        `json:"vacant"`
	Label     string                      `json:"label,omitempty"`
	BookingID string                      `json:"booking_id,omitempty"`
	RackRate  int                         `json:"rack_rate,omitempty"`
	Booking   *bookingDto.BookingResponse `json:"booking,omitempty"`
}

func (r *DayResponse) FromModel(occupancy calendar.Occupancy) {
	r.Date = timezone.FormatDate(occupancy.Date)
	r.Vacant = occupancy.Vacant()
	r.Label = occupancy.Label()
	r.RackRate = occupancy.RackRate

	if occupancy.Booking != nil {
		r.BookingID = occupancy.Booking.ID
		r.Booking = &bookingDto.BookingResponse{}
		r.Booking.FromModel(*occupancy.Booking)
	}
}

// CellResponse is one grid square. Padding cells only carry InMonth=false.
type CellResponse struct {
	Date      string `json:"date,omitempty"`
	InMonth   bool   `json:"in_month"`
	Weekend   bool   `json:"weekend"`
	Vacant    bool   `json:"vacant"`
	Label     string `json:"label,omitempty"`
	BookingID string `json:"booking_id,omitempty"`
	RackRate  int    `json:"rack_rate,omitempty"`
}

func (r *CellResponse) FromModel(cell calendar.Cell) {
	if !cell.InMonth {
		return
	}

	r.Date = timezone.FormatDate(cell.Date)
	r.InMonth = true
	r.Weekend = cell.Weekend
	r.Vacant = cell.Occupancy.Vacant()
	r.Label = cell.Occupancy.Label()
	r.RackRate = cell.Occupancy.RackRate

	if cell.Occupancy.Booking != nil {
		r.BookingID = cell.Occupancy.Booking.ID
	}
}

type MonthResponse struct {
	Year        int                          `json:"year"`
	Month       int                          `json:"month"`
	Summary     SummaryResponse              `json:"summary"`
	Collections CollectionsResponse          `json:"collections"`
	Bookings    []bookingDto.BookingResponse `json:"bookings"`
	Cells       []CellResponse               `json:"cells"`
}

func (r *MonthResponse) FromModel(bookings []bookingModel.Booking, summary calendar.Summary, collections calendar.Collections, cells []calendar.Cell) {
	r.Summary.FromModel(summary)
	r.Collections.FromModel(collections)

	r.Bookings = make([]bookingDto.BookingResponse, len(bookings))
	for i, b := range bookings {
		r.Bookings[i].FromModel(b)
	}

	r.Cells = make([]CellResponse, len(cells))
	for i, c := range cells {
		r.Cells[i].FromModel(c)
	}
}
