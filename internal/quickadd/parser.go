package quickadd

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/JellyPork/bunflow/internal/model"
	"github.com/JellyPork/bunflow/pkg/datemath"
	"github.com/JellyPork/bunflow/pkg/timemath"
)

// PhraseInterpreter resolves a natural-language date/time phrase found in
// free text. pkg/datemath provides the real one.
type PhraseInterpreter interface {
	Interpret(text string, base time.Time) (datemath.Result, bool)
}

// Parser turns one free-text quick-add line into a ParsedTask. Each
// extraction pass records the substrings it claimed; the claimed spans are
// stripped from the input in a single cleanup pass at the end, so the
// passes stay independent of each other.
type Parser struct {
	dates PhraseInterpreter
	now   func() time.Time
}

func New(dates PhraseInterpreter) *Parser {
	return &Parser{dates: dates, now: time.Now}
}

// NewWithClock is New with an injectable clock.
func NewWithClock(dates PhraseInterpreter, now func() time.Time) *Parser {
	return &Parser{dates: dates, now: now}
}

var (
	reTag          = regexp.MustCompile(`[#@]\w+`)
	reHighPriority = regexp.MustCompile(`(?i)\b(?:urgent|high\s*priority|important|critical)\b`)
	reLowPriority  = regexp.MustCompile(`(?i)\b(?:low\s*priority|minor|trivial)\b`)

	reWeekdayName = regexp.MustCompile(`(?i)\b(?:monday|mon|tuesday|tues|tue|wednesday|wed|thursday|thurs|thu|friday|fri|saturday|sat|sunday|sun)\b`)
	reEveryNDays  = regexp.MustCompile(`(?i)\bevery\s+(\d+)\s+days?\b`)
	reEveryNWeeks = regexp.MustCompile(`(?i)\bevery\s+(\d+)\s+weeks?\b`)
	reEveryDay    = regexp.MustCompile(`(?i)\bevery\s+day\b|\bdaily\b`)
	reEveryWeek   = regexp.MustCompile(`(?i)\bevery\s+week\b|\bweekly\b`)

	reEndClause = regexp.MustCompile(`(?i)\b(?:until|through|ending|till)\s+(.+)$`)
	reOrdinal   = regexp.MustCompile(`(?i)\b\d+(?:st|nd|rd|th)\b`)

	reWhitespace = regexp.MustCompile(`\s+`)
)

// Ordered; the first word present in the text decides the inferred time.
var contextTimes = []struct {
	re   *regexp.Regexp
	hour int
}{
	{regexp.MustCompile(`(?i)\bmorning\b`), 9},
	{regexp.MustCompile(`(?i)\bafternoon\b`), 14},
	{regexp.MustCompile(`(?i)\bevening\b`), 18},
	{regexp.MustCompile(`(?i)\bnight\b`), 21},
}

// Parse extracts tags, priority, recurrence, end date and time from input.
// It never fails; anything it cannot read stays in the title.
func (p *Parser) Parse(input string) ParsedTask {
	now := p.now()
	parsed := ParsedTask{Recurrence: model.RecurrenceNone}
	var consumed []string

	for _, m := range reTag.FindAllString(input, -1) {
		parsed.Tags = append(parsed.Tags, m[1:])
		consumed = append(consumed, m)
	}

	// High-priority keywords outrank low-priority ones.
	if m := reHighPriority.FindString(input); m != "" {
		parsed.Priority = model.PriorityHigh
		consumed = append(consumed, m)
	} else if m := reLowPriority.FindString(input); m != "" {
		parsed.Priority = model.PriorityLow
		consumed = append(consumed, m)
	}

	consumed = append(consumed, p.matchRecurrence(input, &parsed)...)

	// The end-date clause comes off the working copy before time extraction,
	// otherwise the date interpreter would absorb it as the task's timing.
	working := input
	if m := reEndClause.FindStringSubmatch(input); m != nil {
		phrase := strings.TrimSpace(m[1])
		if r, ok := p.dates.Interpret(phrase, now); ok {
			end := timemath.EndOfDay(r.At)
			parsed.EndDate = &end
			consumed = append(consumed, m[0])
			consumed = append(consumed, r.Spans...)
			// The interpreter's span may spell the day without its ordinal
			// suffix, so claim those separately.
			consumed = append(consumed, reOrdinal.FindAllString(phrase, -1)...)
			working = strings.Replace(working, m[0], " ", 1)
		}
	}

	recurring := parsed.Recurrence != model.RecurrenceNone
	if r, ok := p.dates.Interpret(working, now); ok {
		consumed = append(consumed, r.Spans...)
		if r.HasClockTime {
			parsed.Hour, parsed.Minute = r.At.Hour(), r.At.Minute()
			parsed.HasTime = true
		} else if hour, span, found := contextTime(working); found {
			parsed.Hour, parsed.Minute = hour, 0
			parsed.HasTime = true
			consumed = append(consumed, span)
		}
	} else if hour, span, found := contextTime(working); found {
		parsed.Hour, parsed.Minute = hour, 0
		parsed.HasTime = true
		consumed = append(consumed, span)
	}
	if parsed.HasTime && !recurring {
		parsed.Recurrence = model.RecurrenceOnce
	}

	parsed.Title = removeConsumed(input, consumed)
	if parsed.Title == "" {
		parsed.Title = strings.TrimSpace(input)
	}

	// Recurring tasks without an explicit time fall back to 09:00.
	if parsed.Recurrence != model.RecurrenceNone && !parsed.HasTime {
		parsed.Hour, parsed.Minute = model.DefaultHour, model.DefaultMinute
		parsed.HasTime = true
	}

	return parsed
}

// matchRecurrence applies the recurrence passes in precedence order: an
// explicit weekday list beats every other phrasing, then interval phrases,
// then the bare daily/weekly keywords.
func (p *Parser) matchRecurrence(input string, parsed *ParsedTask) []string {
	if names := reWeekdayName.FindAllString(input, -1); len(names) > 0 {
		seen := make(map[time.Weekday]bool)
		consumed := make([]string, 0, len(names)+2)
		for _, name := range names {
			consumed = append(consumed, name)
			wd, ok := timemath.WeekdayFromName(name)
			if !ok || seen[wd] {
				continue
			}
			seen[wd] = true
			parsed.Weekdays = append(parsed.Weekdays, wd)
		}
		sort.Slice(parsed.Weekdays, func(i, j int) bool {
			return parsed.Weekdays[i] < parsed.Weekdays[j]
		})
		parsed.Recurrence = model.RecurrenceWeekly
		// "every" and "and" are connective words around a weekday list, not
		// part of the title.
		return append(consumed, "every", "and")
	}

	// An interval below 1 is not a recurrence; the later phrasings still
	// get a look.
	if m := reEveryNDays.FindStringSubmatch(input); m != nil {
		if n, _ := strconv.Atoi(m[1]); n >= 1 {
			parsed.Recurrence = model.RecurrenceCustom
			parsed.Interval = n
			parsed.Unit = model.UnitDays
			return []string{m[0]}
		}
	}

	if m := reEveryNWeeks.FindStringSubmatch(input); m != nil {
		if n, _ := strconv.Atoi(m[1]); n >= 1 {
			parsed.Recurrence = model.RecurrenceCustom
			parsed.Interval = n
			parsed.Unit = model.UnitWeeks
			return []string{m[0]}
		}
	}

	if m := reEveryDay.FindString(input); m != "" {
		parsed.Recurrence = model.RecurrenceDaily
		return []string{m}
	}

	if m := reEveryWeek.FindString(input); m != "" {
		// No weekday list; the scheduler treats this as incomplete and
		// schedules nothing.
		parsed.Recurrence = model.RecurrenceWeekly
		return []string{m}
	}

	return nil
}

// contextTime infers a clock time from a standalone time-of-day word. Words
// that merely contain one ("overnight", "knight") do not count.
func contextTime(text string) (hour int, span string, found bool) {
	for _, ct := range contextTimes {
		if m := ct.re.FindString(text); m != "" {
			return ct.hour, m, true
		}
	}
	return 0, "", false
}

// removeConsumed strips every claimed span from the original input as a
// case-insensitive literal, then collapses whitespace.
func removeConsumed(input string, consumed []string) string {
	result := input
	for _, span := range consumed {
		if span == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(span))
		if err != nil {
			continue
		}
		result = re.ReplaceAllString(result, "")
	}
	return strings.TrimSpace(reWhitespace.ReplaceAllString(result, " "))
}
