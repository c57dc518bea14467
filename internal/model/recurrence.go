package model

import "time"

// RecurrenceKind discriminates the recurrence rule variants.
type RecurrenceKind string

const (
	RecurrenceNone   RecurrenceKind = "none"
	RecurrenceOnce   RecurrenceKind = "once"
	RecurrenceDaily  RecurrenceKind = "daily"
	RecurrenceWeekly RecurrenceKind = "weekly"
	RecurrenceCustom RecurrenceKind = "custom"
)

// IntervalUnit is the unit of a custom recurrence interval.
type IntervalUnit string

const (
	UnitDays  IntervalUnit = "days"
	UnitWeeks IntervalUnit = "weeks"
)

// Default reminder time used when a recurring rule carries no explicit time.
const (
	DefaultHour   = 9
	DefaultMinute = 0
)

// RecurrenceRule describes how often and when a task repeats. Construct via
// the per-kind constructors so each variant only carries its own fields.
type RecurrenceRule struct {
	Kind     RecurrenceKind `json:"kind"`
	Hour     int            `json:"hour"`
	Minute   int            `json:"minute"`
	Weekdays []time.Weekday `json:"weekdays,omitempty"` // weekly only, Sunday=0..Saturday=6
	Interval int            `json:"interval,omitempty"` // custom only, >= 1
	Unit     IntervalUnit   `json:"unit,omitempty"`     // custom only
	EndDate  *time.Time     `json:"end_date,omitempty"` // no occurrence may land strictly after this
}

// NoRecurrence is the zero rule: nothing is ever scheduled.
func NoRecurrence() RecurrenceRule {
	return RecurrenceRule{Kind: RecurrenceNone}
}

// OnceAt builds a one-shot rule at hour:minute.
func OnceAt(hour, minute int) RecurrenceRule {
	return RecurrenceRule{Kind: RecurrenceOnce, Hour: hour, Minute: minute}
}

// DailyAt builds a daily rule at hour:minute.
func DailyAt(hour, minute int) RecurrenceRule {
	return RecurrenceRule{Kind: RecurrenceDaily, Hour: hour, Minute: minute}
}

// WeeklyOn builds a weekly rule firing on the given weekdays at hour:minute.
func WeeklyOn(weekdays []time.Weekday, hour, minute int) RecurrenceRule {
	return RecurrenceRule{Kind: RecurrenceWeekly, Weekdays: weekdays, Hour: hour, Minute: minute}
}

// EveryInterval builds a custom rule firing every interval days or weeks.
func EveryInterval(interval int, unit IntervalUnit, hour, minute int) RecurrenceRule {
	return RecurrenceRule{Kind: RecurrenceCustom, Interval: interval, Unit: unit, Hour: hour, Minute: minute}
}

// WithEndDate returns a copy of the rule truncated at end of the given day.
func (r RecurrenceRule) WithEndDate(end time.Time) RecurrenceRule {
	r.EndDate = &end
	return r
}

// Complete reports whether the rule carries everything needed to expand it.
// An incomplete weekly or custom rule schedules nothing; that is a policy,
// not an error.
func (r RecurrenceRule) Complete() bool {
	switch r.Kind {
	case RecurrenceWeekly:
		return len(r.Weekdays) > 0
	case RecurrenceCustom:
		return r.Interval >= 1 && (r.Unit == UnitDays || r.Unit == UnitWeeks)
	default:
		return true
	}
}
