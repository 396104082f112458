package models

import "time"

// DayFormat is the calendar-day layout used everywhere dates are stored.
// The fixed-width zero-padded format makes lexical comparison of day
// strings equivalent to chronological comparison; code throughout the
// module relies on that.
const DayFormat = "2006-01-02"

// FormatDay renders t as a YYYY-MM-DD day string.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD day string.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// AddDays shifts a day string by n calendar days. Invalid input is
// returned unchanged.
func AddDays(day string, n int) string {
	t, err := ParseDay(day)
	if err != nil {
		return day
	}
	return FormatDay(t.AddDate(0, 0, n))
}

// YearOf returns the calendar year parsed from a day string, or 0 when the
// string is not a valid day.
func YearOf(day string) int {
	t, err := ParseDay(day)
	if err != nil {
		return 0
	}
	return t.Year()
}
