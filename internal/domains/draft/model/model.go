package model

import (
	bookingModel "ohanna/internal/domains/booking/model"
	"time"
)

const (
	EntityName = "draft"

	// LegacyPaymentID marks the payment synthesized from a deposit recorded before itemized payments.
	LegacyPaymentID = "legacy"

	DefaultPeople = 2
)

// Draft is an editing session over a booking. Nothing reaches the ledger until it is saved.
type Draft struct {
	ID       string               `json:"id"`
	Editing  bool                 `json:"editing"`
	Booking  bookingModel.Booking `json:"booking"`
	OpenedAt time.Time            `json:"opened_at"`
}

// Command names accepted by a draft.
const (
	CommandAddGuest      = "add_guest"
	CommandUpdateGuest   = "update_guest"
	CommandRemoveGuest   = "remove_guest"
	CommandAddPayment    = "add_payment"
	CommandUpdatePayment = "update_payment"
	CommandRemovePayment = "remove_payment"
	CommandAddExpense    = "add_expense"
	CommandUpdateExpense = "update_expense"
	CommandRemoveExpense = "remove_expense"
	CommandSetFields     = "set_fields"
	CommandSave          = "save"
	CommandDelete        = "delete"
	CommandCancel        = "cancel"
)

var Commands = []string{
	CommandAddGuest, CommandUpdateGuest, CommandRemoveGuest,
	CommandAddPayment, CommandUpdatePayment, CommandRemovePayment,
	CommandAddExpense, CommandUpdateExpense, CommandRemoveExpense,
	CommandSetFields, CommandSave, CommandDelete, CommandCancel,
}

// Fields is a partial update of the booking's scalar fields. Nil means unchanged.
type Fields struct {
	Kind            *bookingModel.Kind
	StartDate       *time.Time
	EndDate         *time.Time
	NumPeople       *int
	NumChildren     *int
	Discount        *int
	Schedule        *string
	IsHoliday       *bool
	CleaningTotal   *int
	CleaningDeposit *int
}

type GuestFields struct {
	Name     *string
	Document *string
}

type PaymentFields struct {
	Amount *int
	Method *bookingModel.PaymentMethod
	Date   *time.Time
}

type ExpenseFields struct {
	Description *string
	Amount      *int
}
