package model

import (
	"slices"
	"time"
)

const (
	EntityName = "booking"

	TableName = "bookings"

	FieldID        = "id"
	FieldPosition  = "position"
	FieldStartDate = "start_date"
)

// Kind is the type of reservation.
type Kind string

const (
	KindOvernight Kind = "Hospedaje"
	KindDayVisit  Kind = "Pasadía"
)

// Kinds lists the valid kinds in display order.
var Kinds = []Kind{KindOvernight, KindDayVisit}

func (k Kind) Valid() bool {
	return slices.Contains(Kinds, k)
}

// PaymentMethod is where a payment was received.
type PaymentMethod string

const (
	MethodNequiA PaymentMethod = "Nequi Hernan"
	MethodNequiB PaymentMethod = "Nequi Lady"
	MethodBankA  PaymentMethod = "Davivienda"
	MethodBankB  PaymentMethod = "DaviPlata"
	MethodCash   PaymentMethod = "Efectivo"
	MethodOther  PaymentMethod = "Otro"

	// MethodUnspecified labels legacy deposits recorded without a method. It is never accepted as input.
	MethodUnspecified PaymentMethod = "No especificado"
)

// PaymentMethods lists the accepted methods in display order.
var PaymentMethods = []PaymentMethod{MethodNequiA, MethodNequiB, MethodBankA, MethodBankB, MethodCash, MethodOther}

func (m PaymentMethod) Valid() bool {
	return slices.Contains(PaymentMethods, m)
}

// Day visit windows and the fixed overnight check-in and check-out times.
const (
	ScheduleMorning   = "9:00 AM - 5:30 PM"
	ScheduleAfternoon = "2:00 PM - 10:30 PM"

	OvernightCheckIn  = "3:00 PM"
	OvernightCheckOut = "1:00 PM"
)

var Schedules = []string{ScheduleMorning, ScheduleAfternoon}

type Guest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
}

type Payment struct {
	ID     string        `json:"id"`
	Amount int           `json:"amount"`
	Method PaymentMethod `json:"method"`
	Date   time.Time     `json:"date"`
}

// Expense is carried along with the booking and never interpreted.
type Expense struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      int    `json:"amount"`
}

// Booking is a reservation of the whole property.
//
// Deposit is the sum of Payments once the booking has been finalized. Records saved before
// payments were itemized only carry Deposit and PaymentMethod.
type Booking struct {
	ID              string
	Kind            Kind
	StartDate       time.Time
	EndDate         time.Time
	NumPeople       int
	NumChildren     int
	Guests          []Guest
	TotalPrice      int
	Discount        int
	Deposit         int
	Payments        []Payment
	PaymentMethod   PaymentMethod
	Expenses        []Expense
	Schedule        string
	IsHoliday       bool
	CleaningTotal   int
	CleaningDeposit int
}

// SaveResult describes a stored booking.
type SaveResult struct {
	Booking   Booking
	Created   bool
	Conflicts []Booking
}
