package model

import (
	"net/http"
	"ohanna/shared/failure"
)

var (
	ErrInvalidDateRange     = failure.New(http.StatusBadRequest, "end date must be after start date for an overnight stay")
	ErrUnknownPaymentMethod = failure.New(http.StatusBadRequest, "unknown payment method")
	ErrUnknownKind          = failure.New(http.StatusBadRequest, "unknown booking kind")
	ErrInvalidSchedule      = failure.New(http.StatusBadRequest, "unknown day visit schedule")
	ErrInvalidOccupancy     = failure.New(http.StatusBadRequest, "a booking needs at least one adult and no negative counts")
	ErrNegativeAmount       = failure.New(http.StatusBadRequest, "amounts must not be negative")
	ErrMissingDates         = failure.New(http.StatusBadRequest, "start date is required")
	ErrBookingNotFound      = failure.New(http.StatusNotFound, "booking not found")
	ErrBookingConflict      = failure.New(http.StatusConflict, "dates overlap an existing booking")
)
