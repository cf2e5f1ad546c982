// Package timezone provides the application clock and calendar-date helpers.
//
// The wall clock (Now, ToAppTime, Format) follows the APP_TIMEZONE location,
// America/Bogota unless configured otherwise.
//
// Booking dates are civil dates without a time of day. They are represented as
// time.Time values at midnight UTC so that two dates compare with Equal and
// Before regardless of the host location:
//
//	d, err := timezone.ParseDate("2025-03-08")  // 2025-03-08 00:00 UTC
//	timezone.FormatDate(d)                      // "2025-03-08"
//	timezone.Today()                            // today in the app location, as a civil date
package timezone
