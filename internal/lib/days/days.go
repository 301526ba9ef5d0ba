// Package days computes whole-day distances between dates for the
// expiration check. The caller supplies "now" so the calculation stays
// deterministic in tests.
package days

import (
	"math"
	"time"
)

// Until returns the number of whole days from now until end. Both values
// are truncated to midnight before subtracting, so a service expiring
// today yields 0 regardless of time of day, and an already expired
// service yields a negative count.
func Until(end, now time.Time) int {
	end = truncateToDay(end)
	now = truncateToDay(now)
	diff := end.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
