// Package duration maps the service duration labels used across the
// application ("1 month", "5 years", ...) to calendar month counts and
// computes service end dates from them.
package duration

import "time"

// Months returns the number of calendar months a duration label stands for.
// An unrecognized label falls back to one month; this mirrors how services
// were priced historically and is deliberately not an error.
func Months(label string) int {
	switch label {
	case "1 month":
		return 1
	case "3 months":
		return 3
	case "6 months":
		return 6
	case "1 year":
		return 12
	case "2 years":
		return 24
	case "5 years":
		return 60
	default:
		return 1
	}
}

// EndDate returns the expiration date for a service started at start with
// the given duration label. Month-end overflow follows time.AddDate
// normalization (Jan 31 + 1 month = Mar 2/3).
func EndDate(start time.Time, label string) time.Time {
	return start.AddDate(0, Months(label), 0)
}
