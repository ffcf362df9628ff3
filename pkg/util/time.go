package util

import "time"

const DateFormat = "2006-01-02"

// DateToStr formats a time as a calendar-day bucket key.
func DateToStr(dt time.Time) string {
	return dt.Format(DateFormat)
}
