package util

import "time"

const (
	DateLayout        = "2006-01-02"
	TimeLayout        = "15:04"
	DisplayDateLayout = "02.01.2006"
)

// FormatDate renders a backend calendar date (yyyy-MM-dd) for display
// (dd.MM.yyyy). Unparsable input is returned as-is.
func FormatDate(date string) string {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format(DisplayDateLayout)
}

// FormatTime trims a backend wall time (HH:mm:ss) to HH:mm.
func FormatTime(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}

// FormatDateTime renders a date and time pair for display.
func FormatDateTime(date, t string) string {
	return FormatDate(date) + " в " + FormatTime(t)
}
