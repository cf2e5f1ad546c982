package dto

import (
	bookingModel "ohanna/internal/domains/booking/model"
	bookingDto "ohanna/internal/domains/booking/model/dto"
	"ohanna/internal/domains/draft/model"
	"ohanna/shared/failure"
	"ohanna/shared/timezone"
	"time"
)

// OpenDraftRequest opens a blank booking on Date, or an existing booking by id.
type OpenDraftRequest struct {
	Date      string `json:"date"       validate:"required_without=BookingID,omitempty,date"`
	BookingID string `json:"booking_id" validate:"omitempty,max=64"`
}

type FieldsRequest struct {
	Kind            *bookingModel.Kind `json:"kind"             validate:"omitempty,valid"`
	StartDate       *string            `json:"start_date"       validate:"omitempty,date"`
	EndDate         *string            `json:"end_date"         validate:"omitempty,date"`
	NumPeople       *int               `json:"num_people"       validate:"omitempty,gte=1"`
	NumChildren     *int               `json:"num_children"     validate:"omitempty,gte=0"`
	Discount        *int               `json:"discount"         validate:"omitempty,gte=0"`
	Schedule        *string            `json:"schedule"`
	IsHoliday       *bool              `json:"is_holiday"`
	CleaningTotal   *int               `json:"cleaning_total"   validate:"omitempty,gte=0"`
	CleaningDeposit *int               `json:"cleaning_deposit" validate:"omitempty,gte=0"`
}

func (r *FieldsRequest) ToModel() (model.Fields, error) {
	fields := model.Fields{
		Kind:            r.Kind,
		NumPeople:       r.NumPeople,
		NumChildren:     r.NumChildren,
		Discount:        r.Discount,
		Schedule:        r.Schedule,
		IsHoliday:       r.IsHoliday,
		CleaningTotal:   r.CleaningTotal,
		CleaningDeposit: r.CleaningDeposit,
	}

	var err error

	if fields.StartDate, err = parseOptionalDate(r.StartDate); err != nil {
		return fields, err
	}

	if fields.EndDate, err = parseOptionalDate(r.EndDate); err != nil {
		return fields, err
	}

	return fields, nil
}

type GuestFieldsRequest struct {
	Name     *string `json:"name"     validate:"omitempty,max=100"`
	Document *string `json:"document" validate:"omitempty,max=30"`
}

func (r *GuestFieldsRequest) ToModel() model.GuestFields {
	return model.GuestFields{Name: r.Name, Document: r.Document}
}

type PaymentFieldsRequest struct {
	Amount *int                       `json:"amount" validate:"omitempty,gte=0"`
	Method *bookingModel.PaymentMethod `json:"method" validate:"omitempty,valid"`
	Date   *string                    `json:"date"   validate:"omitempty,date"`
}

func (r *PaymentFieldsRequest) ToModel() (model.PaymentFields, error) {
	date, err := parseOptionalDate(r.Date)
	if err != nil {
		return model.PaymentFields{}, err
	}

	return model.PaymentFields{Amount: r.Amount, Method: r.Method, Date: date}, nil
}

type ExpenseFieldsRequest struct {
	Description *string `json:"description" validate:"omitempty,max=200"`
	Amount      *int    `json:"amount"      validate:"omitempty,gte=0"`
}

func (r *ExpenseFieldsRequest) ToModel() model.ExpenseFields {
	return model.ExpenseFields{Description: r.Description, Amount: r.Amount}
}

// CommandRequest is one edit of a draft. Index addresses guests and payments, ExpenseID
// addresses expenses.
type CommandRequest struct {
	Command   string                `json:"command"    validate:"required"`
	Index     *int                  `json:"index"      validate:"omitempty,gte=0"`
	ExpenseID string                `json:"expense_id" validate:"omitempty,max=64"`
	Fields    *FieldsRequest        `json:"fields"     validate:"omitempty"`
	Guest     *GuestFieldsRequest   `json:"guest"      validate:"omitempty"`
	Payment   *PaymentFieldsRequest `json:"payment"    validate:"omitempty"`
	Expense   *ExpenseFieldsRequest `json:"expense"    validate:"omitempty"`
}

// Position returns the addressed index, or -1 when none was sent.
func (r *CommandRequest) Position() int {
	if r.Index == nil {
		return -1
	}

	return *r.Index
}

type DraftResponse struct {
	ID       string                     `json:"id"`
	Editing  bool                       `json:"editing"`
	OpenedAt time.Time                  `json:"opened_at"`
	Booking  bookingDto.BookingResponse `json:"booking"`
	Quote    int                        `json:"quote"`
}

func (r *DraftResponse) FromModel(draft model.Draft, quote int) {
	r.ID = draft.ID
	r.Editing = draft.Editing
	r.OpenedAt = draft.OpenedAt
	r.Booking.FromModel(draft.Booking)
	r.Quote = quote
}

// CommandResponse reports the draft after the command. Closed is set once the draft no longer
// exists (saved, deleted or cancelled); Saved carries the stored booking after a save.
type CommandResponse struct {
	Draft  *DraftResponse                  `json:"draft,omitempty"`
	Closed bool                            `json:"closed"`
	Saved  *bookingDto.SaveBookingResponse `json:"saved,omitempty"`
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil //nolint:nilnil
	}

	date, err := timezone.ParseDate(*value)
	if err != nil {
		return nil, failure.BadRequest(err) //nolint:wrapcheck
	}

	return &date, nil
}
