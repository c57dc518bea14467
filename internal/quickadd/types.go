package quickadd

import (
	"time"

	"github.com/JellyPork/bunflow/internal/model"
)

// ParsedTask is the structured read of one quick-add line. Fields that a
// pass did not extract keep their zero value; Title always holds something.
type ParsedTask struct {
	Title      string
	Recurrence model.RecurrenceKind
	Hour       int
	Minute     int
	HasTime    bool
	Weekdays   []time.Weekday
	Interval   int
	Unit       model.IntervalUnit
	EndDate    *time.Time
	Tags       []string
	Priority   model.Priority
}

// Rule assembles the recurrence rule the scheduler consumes.
func (t ParsedTask) Rule() model.RecurrenceRule {
	hour, minute := t.Hour, t.Minute
	if !t.HasTime {
		hour, minute = model.DefaultHour, model.DefaultMinute
	}

	var rule model.RecurrenceRule
	switch t.Recurrence {
	case model.RecurrenceOnce:
		rule = model.OnceAt(hour, minute)
	case model.RecurrenceDaily:
		rule = model.DailyAt(hour, minute)
	case model.RecurrenceWeekly:
		rule = model.WeeklyOn(t.Weekdays, hour, minute)
	case model.RecurrenceCustom:
		rule = model.EveryInterval(t.Interval, t.Unit, hour, minute)
	default:
		return model.NoRecurrence()
	}

	if t.EndDate != nil {
		rule = rule.WithEndDate(*t.EndDate)
	}
	return rule
}
