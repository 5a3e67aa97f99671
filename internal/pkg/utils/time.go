package utils

import (
	"fmt"
	"time"
)

// FormatDateTime renders an appointment instant for message templates,
// e.g. "2025-01-21" and "09:15 AM".
func FormatDateTime(t time.Time, location *time.Location) (formattedDate, formattedTime string) {
	local := t.In(location)
	return local.Format("2006-01-02"), local.Format("03:04 PM")
}

// FormatDateTimeForSMS renders the long human-readable form used by SMS
// templates, e.g. "21st January 2025" and "09:15 AM".
func FormatDateTimeForSMS(t time.Time, location *time.Location) (formattedDate, formattedTime string) {
	local := t.In(location)
	day := local.Day()
	formattedDate = fmt.Sprintf("%d%s %s %d", day, daySuffix(day), local.Month().String(), local.Year())
	formattedTime = local.Format("03:04 PM")
	return formattedDate, formattedTime
}

func daySuffix(day int) string {
	if day > 3 && day < 21 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
