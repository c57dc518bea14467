package timemath

import (
	"strings"
	"time"
)

// Buffer keeps "right now" reminders from racing the current instant: a
// candidate must be strictly more than this far in the future, otherwise the
// next day (or week) is used instead.
const Buffer = time.Second

// NextAtTime returns the next occurrence of hour:minute relative to from.
// Seconds and sub-seconds are zeroed. If today's hour:minute is not more than
// Buffer after from, the same time tomorrow is returned.
func NextAtTime(hour, minute int, from time.Time) time.Time {
	next := time.Date(from.Year(), from.Month(), from.Day(), hour, minute, 0, 0, from.Location())
	if next.Sub(from) <= Buffer {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// NextWeekday returns the next occurrence of the given weekday at hour:minute
// relative to from. When from already is that weekday and the time has passed
// (within Buffer), the same weekday next week is returned.
func NextWeekday(weekday time.Weekday, hour, minute int, from time.Time) time.Time {
	days := (int(weekday) - int(from.Weekday()) + 7) % 7
	next := time.Date(from.Year(), from.Month(), from.Day()+days, hour, minute, 0, 0, from.Location())
	if next.Sub(from) <= Buffer {
		next = next.AddDate(0, 0, 7)
	}
	return next
}

// EndOfDay returns 23:59:59.999 on the calendar day of t.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), t.Location())
}

// weekdayNames maps lowercase weekday names and common abbreviations to Go
// weekdays (Sunday=0 .. Saturday=6). Shared with the quick-add parser.
var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// WeekdayFromName resolves a weekday name or abbreviation, case-insensitive.
func WeekdayFromName(name string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}
