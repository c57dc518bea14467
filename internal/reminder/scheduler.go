package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/JellyPork/bunflow/internal/model"
	pkgLog "github.com/JellyPork/bunflow/pkg/log"
	"github.com/JellyPork/bunflow/pkg/timemath"
)

// MarkerPrefix is prepended to every reminder title so delivered
// notifications are recognizable as task reminders.
const MarkerPrefix = "\U0001F4CC "

const (
	dailyCap  = 30  // occurrences for daily rules without an end date
	weeklyCap = 12  // week windows for weekly rules
	customCap = 100 // hard ceiling for custom rules, end date or not
)

type implScheduler struct {
	l        pkgLog.Logger
	notifier Notifier
	clock    func() time.Time
}

// New creates a new reminder Scheduler instance.
func New(l pkgLog.Logger, notifier Notifier) *implScheduler {
	return &implScheduler{l: l, notifier: notifier, clock: time.Now}
}

// NewWithClock is New with an injectable clock.
func NewWithClock(l pkgLog.Logger, notifier Notifier, clock func() time.Time) *implScheduler {
	return &implScheduler{l: l, notifier: notifier, clock: clock}
}

func (s *implScheduler) Schedule(ctx context.Context, input ScheduleInput) ([]string, error) {
	rule := input.Rule
	if rule.Kind == model.RecurrenceNone || !rule.Complete() {
		// Nothing to schedule. An incomplete weekly or custom rule is a
		// silent no-op, not an error.
		return nil, nil
	}

	instants := expand(rule, s.clock())
	if len(instants) == 0 {
		return nil, nil
	}

	handles := make([]string, 0, len(instants))
	for _, at := range instants {
		handle, err := s.notifier.Schedule(ctx, Request{
			TaskID: input.TaskID,
			Title:  MarkerPrefix + input.Title,
			Body:   input.Body,
			At:     at,
		})
		if err != nil {
			// Abort the remainder but hand back what was issued; the caller
			// owns the decision to cancel those.
			s.l.Errorf(ctx, "Schedule: task=%s occurrence at %s failed after %d scheduled: %v",
				input.TaskID, at.Format(time.RFC3339), len(handles), err)
			return handles, err
		}
		handles = append(handles, handle)
	}

	s.l.Infof(ctx, "Schedule: task=%s kind=%s scheduled %d occurrences", input.TaskID, rule.Kind, len(handles))
	return handles, nil
}

func (s *implScheduler) CancelAll(ctx context.Context, handles []string) {
	if len(handles) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, handle := range handles {
		wg.Add(1)
		go func(h string) {
			defer wg.Done()
			if err := s.notifier.Cancel(ctx, h); err != nil {
				s.l.Warnf(ctx, "CancelAll: cancel %s failed (non-fatal): %v", h, err)
			}
		}(handle)
	}
	wg.Wait()
}

// expand turns a complete rule into the future instants to notify at, in
// generation order.
func expand(rule model.RecurrenceRule, now time.Time) []time.Time {
	switch rule.Kind {
	case model.RecurrenceOnce:
		at := timemath.NextAtTime(rule.Hour, rule.Minute, now)
		if rule.EndDate != nil && at.After(*rule.EndDate) {
			return nil
		}
		return []time.Time{at}

	case model.RecurrenceDaily:
		first := timemath.NextAtTime(rule.Hour, rule.Minute, now)
		count := dailyCap
		if rule.EndDate != nil {
			if d := daySpan(first, *rule.EndDate); d < count {
				count = d
			}
		}
		out := make([]time.Time, 0, count)
		for i := 0; i < count; i++ {
			at := first.AddDate(0, 0, i)
			if rule.EndDate != nil && at.After(*rule.EndDate) {
				break
			}
			out = append(out, at)
		}
		return out

	case model.RecurrenceWeekly:
		weeks := weeklyCap
		if rule.EndDate != nil {
			if w := weekSpan(now, *rule.EndDate); w < weeks {
				weeks = w
			}
		}
		var out []time.Time
		for week := 0; week < weeks; week++ {
			base := now.AddDate(0, 0, week*7)
			for _, wd := range rule.Weekdays {
				at := timemath.NextWeekday(wd, rule.Hour, rule.Minute, base)
				if !at.After(now) {
					continue
				}
				if rule.EndDate != nil && at.After(*rule.EndDate) {
					continue
				}
				out = append(out, at)
			}
		}
		return out

	case model.RecurrenceCustom:
		first := timemath.NextAtTime(rule.Hour, rule.Minute, now)
		step := time.Duration(rule.Interval) * 24 * time.Hour
		count := dailyCap
		if rule.Unit == model.UnitWeeks {
			step = time.Duration(rule.Interval) * 7 * 24 * time.Hour
			count = weeklyCap
		}
		if rule.EndDate != nil {
			span := rule.EndDate.Sub(first)
			if span < 0 {
				return nil
			}
			count = int(span/step) + 1
		}
		if count > customCap {
			count = customCap
		}
		out := make([]time.Time, 0, count)
		for i := 0; i < count; i++ {
			at := first.Add(time.Duration(i) * step)
			if rule.EndDate != nil && at.After(*rule.EndDate) {
				break
			}
			out = append(out, at)
		}
		return out

	default:
		return nil
	}
}

// daySpan counts calendar occurrences between first and end inclusive, one
// per day.
func daySpan(first, end time.Time) int {
	d := end.Sub(first)
	if d < 0 {
		return 0
	}
	return int(d/(24*time.Hour)) + 1
}

// weekSpan counts 7-day windows from now until end, rounding up.
func weekSpan(now, end time.Time) int {
	d := end.Sub(now)
	if d <= 0 {
		return 0
	}
	const week = 7 * 24 * time.Hour
	w := int(d / week)
	if d%week != 0 {
		w++
	}
	return w
}
