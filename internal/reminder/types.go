package reminder

import (
	"time"

	"github.com/JellyPork/bunflow/internal/model"
)

// Request is one notification hand-off to the Notifier.
type Request struct {
	TaskID string
	Title  string
	Body   string
	At     time.Time
}

// ScheduleInput describes the reminders wanted for one task. Title is the
// raw task title; the scheduler prepends the marker prefix itself.
type ScheduleInput struct {
	TaskID string
	Title  string
	Body   string
	Rule   model.RecurrenceRule
}
