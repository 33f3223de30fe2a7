package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// TotalDays returns the trip length in days, inclusive of both endpoints:
// 2024-06-01..2024-06-03 is 3 days. The difference is rounded up so a
// timestamped range never undercounts.
func TotalDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	diff := end.Sub(start)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days + 1
}
