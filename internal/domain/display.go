package domain

import (
	"strconv"
	"time"
)

// FormatDisplayDate renders t in loc for users, e.g. "Sat, Mar 2nd 2024 9:00am EST".
func FormatDisplayDate(t time.Time, loc *time.Location) string {
	local := t.In(loc)
	day := local.Day()
	return local.Format("Mon, Jan ") + strconv.Itoa(day) + ordinalSuffix(day) + local.Format(" 2006 3:04pm MST")
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
