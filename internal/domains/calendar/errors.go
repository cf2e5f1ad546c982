package calendar

import (
	"net/http"
	"ohanna/shared/failure"
	"time"
)

var ErrInvalidMonth = failure.New(http.StatusBadRequest, "month must be between 1 and 12 and year between 1 and 9999")

// ValidateMonth rejects months the calendar cannot lay out.
func ValidateMonth(year int, month time.Month) error {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return ErrInvalidMonth
	}

	return nil
}
