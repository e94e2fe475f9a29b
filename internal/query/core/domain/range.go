package domain

import "time"

// DayRange lists every UTC calendar day in [from, to] as "YYYY-MM-DD",
// both endpoints included, ignoring the time-of-day of either bound.
// from after to yields an empty range.
func DayRange(from, to time.Time) []string {
	start := truncateToDay(from)
	end := truncateToDay(to)

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format("2006-01-02"))
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
