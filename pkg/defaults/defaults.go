// Package defaults provides the generators behind every scaffolded field
// default: fresh identifiers, clock reads, the "never" sentinel, and
// calendar-aware timestamp arithmetic.
//
// All functions are pure except Now, which reads the system clock.
// Timestamps are UTC unix seconds throughout.
package defaults

import (
	"time"

	"github.com/google/uuid"
)

// neverDTM is the unix timestamp for 9999-12-31T23:59:59Z.
const neverDTM int64 = 253402261199

// NewID returns a random UUID v4 in its 36-character textual form.
func NewID() string {
	return uuid.NewString()
}

// Now returns the current time as UTC unix seconds.
func Now() int64 {
	return time.Now().Unix()
}

// Never returns the sentinel timestamp for "does not happen":
// 9999-12-31 23:59:59 UTC.
func Never() int64 {
	return neverDTM
}

// AddDays returns the timestamp days after dtm. Negative values subtract.
func AddDays(dtm int64, days int) int64 {
	return time.Unix(dtm, 0).UTC().Add(time.Duration(days) * 24 * time.Hour).Unix()
}

// AddMonths returns the timestamp months after dtm. The day of month is
// clamped to the last valid day of the target month, so Jan 29 plus one
// month lands on Feb 28 (or Feb 29 in a leap year) rather than rolling
// into March. Negative values subtract.
func AddMonths(dtm int64, months int) int64 {
	t := time.Unix(dtm, 0).UTC()
	year, month, day := t.Date()

	m := int(month) - 1 + months
	year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		year--
	}
	target := time.Month(m + 1)

	if last := daysIn(year, target); day > last {
		day = last
	}
	return time.Date(year, target, day, t.Hour(), t.Minute(), t.Second(), 0, time.UTC).Unix()
}

// AddYears returns the timestamp years after dtm, with the same day
// clamping as AddMonths (Feb 29 plus one year lands on Feb 28).
func AddYears(dtm int64, years int) int64 {
	return AddMonths(dtm, years*12)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
