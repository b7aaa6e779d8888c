package utils

import "time"

// DateLayout is the textual form reviews carry their date in. The year
// prefix of this layout is what qualifier-year filtering matches against.
const DateLayout = "2006-01-02"

// TodayDate returns the current date in the review date layout
func TodayDate() string {
	return time.Now().UTC().Format(DateLayout)
}

// ParseDate parses a date string in the review date layout
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// NowRFC3339 returns the current time in RFC3339 format
func NowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}
