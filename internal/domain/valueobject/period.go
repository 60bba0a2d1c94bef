// Package valueobject contains domain value objects for the finance dashboard.
package valueobject

import (
	"fmt"
	"time"
)

// PeriodLayout is the textual form of a period used in query strings and cache keys.
const PeriodLayout = "2006-01"

// Period is a calendar month of a specific year, the unit every dashboard view filters by.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod creates a Period. Months outside 1..12 are kept as given so
// that PreviousInYear of January stays an empty period.
func NewPeriod(year int, month time.Month) Period {
	return Period{Year: year, Month: month}
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod parses a "YYYY-MM" string.
func ParsePeriod(value string) (Period, error) {
	t, err := time.Parse(PeriodLayout, value)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: expected YYYY-MM", value)
	}
	return PeriodOf(t), nil
}

// Valid reports whether the month is a real calendar month.
func (p Period) Valid() bool {
	return p.Month >= time.January && p.Month <= time.December
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// PreviousInYear returns the month before p within the same year.
// For January this yields month 0, which contains no dates: month-over-month
// comparisons for January deliberately have no previous total.
func (p Period) PreviousInYear() Period {
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Start returns the first instant of the period in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant after the period in UTC.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// String formats the period as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay returns the date (year, month, day) with day clamped to [1, last day of month].
func ClampDay(year int, month time.Month, day int) time.Time {
	last := DaysIn(year, month)
	if day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
