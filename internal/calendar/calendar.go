// internal/calendar/calendar.go
//
// Calendar rules for a game played inside a single fixed year.
// Responsibilities:
//   - Month lengths (leap-year aware) and the validity predicate for a date.
//   - Month names and day display, with or without ordinal suffixes.
//
// Notes:
//   - Month arithmetic is delegated to cloudeng.io/datetime.
//   - Ordinal suffixes come from go-humanize ("1st", "22nd", "13th").

package calendar

import (
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/datetime"
	"github.com/dustin/go-humanize"
)

const (
	MonthMin = 1
	MonthMax = 12
	DayMin   = 1
)

// DaysInMonth returns the number of days in month for year.
// Months outside 1..12 have no days.
func DaysInMonth(year, month int) int {
	if month < MonthMin || month > MonthMax {
		return 0
	}
	return datetime.DaysInMonth(year, datetime.Month(month))
}

// IsValid reports whether (year, month, day) names a real calendar date.
func IsValid(year, month, day int) bool {
	return day >= DayMin && day <= DaysInMonth(year, month)
}

// Date builds a CalendarDate, returning an error if it does not exist.
func Date(year, month, day int) (datetime.CalendarDate, error) {
	if month < MonthMin || month > MonthMax {
		return datetime.CalendarDate{}, fmt.Errorf("month %d out of range %d-%d", month, MonthMin, MonthMax)
	}
	if !IsValid(year, month, day) {
		return datetime.CalendarDate{}, fmt.Errorf("day %d out of range for %s %d (1-%d)",
			day, MonthName(month), year, DaysInMonth(year, month))
	}
	return datetime.CalendarDate{Year: year, Month: datetime.Month(month), Day: day}, nil
}

// LastDay returns December 31st of year.
func LastDay(year int) datetime.CalendarDate {
	return datetime.CalendarDate{Year: year, Month: datetime.Month(MonthMax), Day: DaysInMonth(year, MonthMax)}
}

// MonthName returns the full English name, e.g. "January".
func MonthName(month int) string {
	return time.Month(month).String()
}

// FormatDay renders a day of the month, optionally with its ordinal suffix.
func FormatDay(day int, ordinal bool) string {
	if ordinal {
		return humanize.Ordinal(day)
	}
	return strconv.Itoa(day)
}

// Format renders d as "<day> of <Month>", e.g. "3rd of March".
func Format(d datetime.CalendarDate, ordinal bool) string {
	return FormatDay(d.Day, ordinal) + " of " + MonthName(int(d.Month))
}
