package timezone

import (
	"fmt"
	"ohanna/config"
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format of every civil date.
const DateLayout = "2006-01-02"

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Date builds a civil date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateDate drops the time of day, keeping the calendar day as seen in t's own location.
func TruncateDate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Today is the current civil date in the application timezone.
func Today() time.Time {
	return TruncateDate(Now())
}

// ParseDate parses a YYYY-MM-DD civil date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return t, nil
}

// FormatDate renders a civil date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FirstOfMonth and LastOfMonth bound a calendar month.
func FirstOfMonth(year int, month time.Month) time.Time {
	return Date(year, month, 1)
}

func LastOfMonth(year int, month time.Month) time.Time {
	return Date(year, month+1, 0)
}

// SameMonth reports whether t falls in the given year and month.
func SameMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}
