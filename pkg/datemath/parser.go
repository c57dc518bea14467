package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser finds and resolves natural-language date/time phrases inside free
// text ("tomorrow", "next monday", "june 6th", "at 2:30pm", "in 3 days").
// It is deliberately narrow: one best-effort match per call, no grammar.
type Parser struct {
	location *time.Location
}

// NewParser creates a phrase parser for the given IANA timezone string,
// e.g. "Europe/Amsterdam".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	reClockAMPM = regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	reClock24   = regexp.MustCompile(`(?i)\bat\s+(\d{1,2}):(\d{2})\b`)

	reRelativeDay = regexp.MustCompile(`(?i)\b(today|tonight|tomorrow|yesterday)\b`)
	reInDuration  = regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(days?|weeks?|months?)\b`)
	reNextWeekday = regexp.MustCompile(`(?i)\bnext\s+(sunday|sun|monday|mon|tuesday|tues|tue|wednesday|wed|thursday|thurs|thu|friday|fri|saturday|sat)\b`)
	reWeekday     = regexp.MustCompile(`(?i)\b(sunday|sun|monday|mon|tuesday|tues|tue|wednesday|wed|thursday|thurs|thu|friday|fri|saturday|sat)\b`)
	reMonthDay    = regexp.MustCompile(`(?i)\b(january|jan|february|feb|march|mar|april|apr|may|june|jun|july|jul|august|aug|september|sept|sep|october|oct|november|nov|december|dec)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
)

var weekdayByName = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tues": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thurs": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var monthByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Interpret scans text for a date and/or clock-time phrase relative to base.
// The second return value is false when nothing date-like was found.
func (p *Parser) Interpret(text string, base time.Time) (Result, bool) {
	base = base.In(p.location)

	var res Result

	day, daySpan, dayOK := p.matchDay(text, base)

	hour, minute, clockSpan, clockOK := matchClock(text)

	if !dayOK && !clockOK {
		return Result{}, false
	}

	if !dayOK {
		day = p.startOfDay(base)
	}
	if daySpan != "" {
		res.Spans = append(res.Spans, daySpan)
	}

	if clockOK {
		res.At = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
		res.HasClockTime = true
		res.Spans = append(res.Spans, clockSpan)
	} else {
		res.At = day
	}

	return res, true
}

// matchDay resolves the first date-ish phrase in text to the start of a day.
func (p *Parser) matchDay(text string, base time.Time) (time.Time, string, bool) {
	if m := reRelativeDay.FindString(text); m != "" {
		switch strings.ToLower(m) {
		case "today", "tonight":
			return p.startOfDay(base), m, true
		case "tomorrow":
			return p.startOfDay(base.AddDate(0, 0, 1)), m, true
		case "yesterday":
			return p.startOfDay(base.AddDate(0, 0, -1)), m, true
		}
	}

	if m := reInDuration.FindStringSubmatch(text); m != nil {
		amount, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(strings.ToLower(m[2]), "day"):
			return p.startOfDay(base.AddDate(0, 0, amount)), m[0], true
		case strings.HasPrefix(strings.ToLower(m[2]), "week"):
			return p.startOfDay(base.AddDate(0, 0, amount*7)), m[0], true
		default:
			return p.startOfDay(base.AddDate(0, amount, 0)), m[0], true
		}
	}

	if m := reNextWeekday.FindStringSubmatch(text); m != nil {
		target := weekdayByName[strings.ToLower(m[1])]
		days := int(target - base.Weekday())
		if days <= 0 {
			days += 7
		}
		return p.startOfDay(base.AddDate(0, 0, days)), m[0], true
	}

	if m := reMonthDay.FindStringSubmatch(text); m != nil {
		month := monthByName[strings.ToLower(m[1])]
		day, _ := strconv.Atoi(m[2])
		candidate := time.Date(base.Year(), month, day, 0, 0, 0, 0, p.location)
		// Nearest future occurrence of that calendar date.
		if candidate.Before(p.startOfDay(base)) {
			candidate = candidate.AddDate(1, 0, 0)
		}
		return candidate, m[0], true
	}

	if m := reWeekday.FindStringSubmatch(text); m != nil {
		target := weekdayByName[strings.ToLower(m[1])]
		days := (int(target) - int(base.Weekday()) + 7) % 7
		return p.startOfDay(base.AddDate(0, 0, days)), m[0], true
	}

	return time.Time{}, "", false
}

// matchClock finds an explicit clock time ("at 2:30pm", "9am", "at 14:30").
func matchClock(text string) (hour, minute int, span string, ok bool) {
	if m := reClockAMPM.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour > 12 {
			return 0, 0, "", false
		}
		if strings.EqualFold(m[3], "pm") && hour != 12 {
			hour += 12
		}
		if strings.EqualFold(m[3], "am") && hour == 12 {
			hour = 0
		}
		return hour, minute, m[0], true
	}

	if m := reClock24.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return 0, 0, "", false
		}
		return hour, minute, m[0], true
	}

	return 0, 0, "", false
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
