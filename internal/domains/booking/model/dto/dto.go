package dto

import (
	"ohanna/internal/domains/booking/model"
	"ohanna/internal/domains/tariff"
	"ohanna/shared"
	"ohanna/shared/failure"
	"ohanna/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type GuestRequest struct {
	Name     string `json:"name"     validate:"omitempty,max=100"`
	Document string `json:"document" validate:"omitempty,max=30"`
}

type PaymentRequest struct {
	ID     string              `json:"id"     validate:"omitempty,max=64"`
	Amount int                 `json:"amount" validate:"gte=0"`
	Method model.PaymentMethod `json:"method" validate:"required,valid"`
	Date   string              `json:"date"   validate:"required,date"`
}

type ExpenseRequest struct {
	ID          string `json:"id"          validate:"omitempty,max=64"`
	Description string `json:"description" validate:"omitempty,max=200"`
	Amount      int    `json:"amount"      validate:"gte=0"`
}

// SaveBookingRequest creates a booking, or replaces one when the id is set.
type SaveBookingRequest struct {
	ID              string           `json:"id,omitempty"     validate:"omitempty,max=64"`
	Kind            model.Kind       `json:"kind"             validate:"required,valid"`
	StartDate       string           `json:"start_date"       validate:"required,date"`
	EndDate         string           `json:"end_date"         validate:"omitempty,date"`
	NumPeople       int              `json:"num_people"       validate:"gte=1"`
	NumChildren     int              `json:"num_children"     validate:"gte=0"`
	Guests          []GuestRequest   `json:"guests"           validate:"omitempty,dive"`
	Discount        int              `json:"discount"         validate:"gte=0"`
	Payments        []PaymentRequest `json:"payments"         validate:"omitempty,dive"`
	Expenses        []ExpenseRequest `json:"expenses"         validate:"omitempty,dive"`
	Schedule        string           `json:"schedule"         validate:"omitempty"`
	IsHoliday       bool             `json:"is_holiday"`
	CleaningTotal   int              `json:"cleaning_total"   validate:"gte=0"`
	CleaningDeposit int              `json:"cleaning_deposit" validate:"gte=0"`
}

// ToModel builds the booking. Payments and expenses without ids get fresh ones; the booking id
// is left as sent.
func (r *SaveBookingRequest) ToModel() (model.Booking, error) {
	start, err := timezone.ParseDate(r.StartDate)
	if err != nil {
		return model.Booking{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	end := start
	if r.EndDate != "" {
		end, err = timezone.ParseDate(r.EndDate)
		if err != nil {
			return model.Booking{}, failure.BadRequest(err) //nolint:wrapcheck
		}
	}

	booking := model.Booking{
		ID:              r.ID,
		Kind:            r.Kind,
		StartDate:       start,
		EndDate:         end,
		NumPeople:       r.NumPeople,
		NumChildren:     r.NumChildren,
		Guests:          make([]model.Guest, len(r.Guests)),
		Discount:        r.Discount,
		Payments:        make([]model.Payment, len(r.Payments)),
		Expenses:        make([]model.Expense, len(r.Expenses)),
		Schedule:        r.Schedule,
		IsHoliday:       r.IsHoliday,
		CleaningTotal:   r.CleaningTotal,
		CleaningDeposit: r.CleaningDeposit,
	}

	for i, g := range r.Guests {
		booking.Guests[i] = model.Guest{Name: g.Name, Document: g.Document}
	}

	for i, p := range r.Payments {
		date, err := timezone.ParseDate(p.Date)
		if err != nil {
			return model.Booking{}, failure.BadRequest(err) //nolint:wrapcheck
		}

		paymentID := p.ID
		if paymentID == "" {
			paymentID = uuid.NewString()
		}

		booking.Payments[i] = model.Payment{ID: paymentID, Amount: p.Amount, Method: p.Method, Date: date}
	}

	for i, e := range r.Expenses {
		expenseID := e.ID
		if expenseID == "" {
			expenseID = uuid.NewString()
		}

		booking.Expenses[i] = model.Expense{ID: expenseID, Description: e.Description, Amount: e.Amount}
	}

	return booking, nil
}

type QuoteRequest struct {
	Kind        model.Kind `json:"kind"         validate:"required,valid"`
	StartDate   string     `json:"start_date"   validate:"required,date"`
	EndDate     string     `json:"end_date"     validate:"omitempty,date"`
	NumPeople   int        `json:"num_people"   validate:"gte=1"`
	NumChildren int        `json:"num_children" validate:"gte=0"`
	IsHoliday   bool       `json:"is_holiday"`
}

// ToModel returns a throwaway booking carrying only the fields that affect the price.
func (r *QuoteRequest) ToModel() (model.Booking, error) {
	save := SaveBookingRequest{
		Kind:        r.Kind,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		NumPeople:   r.NumPeople,
		NumChildren: r.NumChildren,
		IsHoliday:   r.IsHoliday,
	}

	return save.ToModel()
}

type NightResponse struct {
	Date  string `json:"date"`
	Price int    `json:"price"`
}

type QuoteResponse struct {
	Kind                string          `json:"kind"`
	StartDate           string          `json:"start_date"`
	EndDate             string          `json:"end_date"`
	Total               int             `json:"total"`
	Nights              []NightResponse `json:"nights"`
	ReimbursableDeposit int             `json:"reimbursable_deposit"`
}

func (r *QuoteResponse) FromModel(booking model.Booking, table *tariff.Table) {
	r.Kind = string(booking.Kind)
	r.StartDate = timezone.FormatDate(booking.StartDate)
	r.EndDate = timezone.FormatDate(booking.EndDate)
	r.Total = booking.Price(table)
	r.ReimbursableDeposit = tariff.DefaultReimbursableDeposit
	r.Nights = []NightResponse{}

	if booking.Kind != model.KindOvernight {
		return
	}

	for _, night := range table.Nights(booking.NumPeople, booking.NumChildren, booking.StartDate, booking.EndDate, booking.IsHoliday) {
		r.Nights = append(r.Nights, NightResponse{Date: timezone.FormatDate(night.Date), Price: night.Price})
	}
}

type GuestResponse struct {
	Name     string `json:"name"`
	Document string `json:"document"`
}

type PaymentResponse struct {
	ID     string `json:"id"`
	Amount int    `json:"amount"`
	Method string `json:"method"`
	Date   string `json:"date"`
}

type ExpenseResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      int    `json:"amount"`
}

type BookingResponse struct {
	ID              string            `json:"id"`
	Kind            string            `json:"kind"`
	StartDate       string            `json:"start_date"`
	EndDate         string            `json:"end_date"`
	NumPeople       int               `json:"num_people"`
	NumChildren     int               `json:"num_children"`
	Guests          []GuestResponse   `json:"guests"`
	TotalPrice      int               `json:"total_price"`
	Discount        int               `json:"discount"`
	Deposit         int               `json:"deposit"`
	Balance         int               `json:"balance"`
	Payments        []PaymentResponse `json:"payments"`
	PaymentMethod   string            `json:"payment_method"`
	Expenses        []ExpenseResponse `json:"expenses"`
	Schedule        string            `json:"schedule"`
	CheckIn         string            `json:"check_in"`
	CheckOut        string            `json:"check_out"`
	IsHoliday       bool              `json:"is_holiday"`
	CleaningTotal   int               `json:"cleaning_total"`
	CleaningDeposit int               `json:"cleaning_deposit"`
	CleaningBalance int               `json:"cleaning_balance"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.Kind = string(booking.Kind)
	r.StartDate = timezone.FormatDate(booking.StartDate)
	r.EndDate = timezone.FormatDate(booking.EndDate)
	r.NumPeople = booking.NumPeople
	r.NumChildren = booking.NumChildren
	r.TotalPrice = booking.TotalPrice
	r.Discount = booking.Discount
	r.Deposit = booking.Deposit
	r.Balance = booking.Balance()
	r.PaymentMethod = string(booking.PaymentMethod)
	r.Schedule = booking.Schedule
	r.CheckIn = booking.CheckIn()
	r.CheckOut = booking.CheckOut()
	r.IsHoliday = booking.IsHoliday
	r.CleaningTotal = booking.CleaningTotal
	r.CleaningDeposit = booking.CleaningDeposit
	r.CleaningBalance = booking.CleaningBalance()

	r.Guests = make([]GuestResponse, len(booking.Guests))
	for i, g := range booking.Guests {
		r.Guests[i] = GuestResponse(g)
	}

	r.Payments = make([]PaymentResponse, len(booking.Payments))
	for i, p := range booking.Payments {
		r.Payments[i] = PaymentResponse{ID: p.ID, Amount: p.Amount, Method: string(p.Method), Date: timezone.FormatDate(p.Date)}
	}

	r.Expenses = make([]ExpenseResponse, len(booking.Expenses))
	for i, e := range booking.Expenses {
		r.Expenses[i] = ExpenseResponse(e)
	}
}

type SaveBookingResponse struct {
	Booking   BookingResponse `json:"booking"`
	Created   bool            `json:"created"`
	Conflicts []string        `json:"conflicts"`
}

func (r *SaveBookingResponse) FromModel(result model.SaveResult) {
	r.Booking.FromModel(result.Booking)
	r.Created = result.Created

	r.Conflicts = make([]string, len(result.Conflicts))
	for i, c := range result.Conflicts {
		r.Conflicts[i] = c.ID
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// MonthFilter narrows a listing to bookings overlapping a month. Zero values mean no filter.
type MonthFilter struct {
	Year  int
	Month time.Month
}

func (f MonthFilter) Enabled() bool {
	return f.Year > 0 && f.Month >= time.January && f.Month <= time.December
}

// ShareResponse carries the four renderings of a booking.
type ShareResponse struct {
	GuestConfirmation string `json:"guest_confirmation"`
	GatekeeperList    string `json:"gatekeeper_list"`
	AdminSummary      string `json:"admin_summary"`
	Export            string `json:"export"`
}

const (
	EventBookingSaved   = "booking.saved"
	EventBookingDeleted = "booking.deleted"
)

// BookingEvent is published after every ledger mutation. Booking is empty on deletes.
type BookingEvent struct {
	Type       string           `json:"type"`
	ID         string           `json:"id"`
	Booking    *BookingResponse `json:"booking,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
