package gcal

import (
	"context"
	"time"

	"github.com/JellyPork/bunflow/internal/reminder"
	"github.com/JellyPork/bunflow/pkg/gcalendar"
	pkgLog "github.com/JellyPork/bunflow/pkg/log"
)

// eventLength is the calendar block reserved per reminder.
const eventLength = 30 * time.Minute

// CalendarAPI is the slice of *gcalendar.Client the notifier needs.
type CalendarAPI interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Notifier schedules reminders as Google Calendar events with a popup at
// the event start. Handles are calendar event IDs.
type Notifier struct {
	l          pkgLog.Logger
	api        CalendarAPI
	calendarID string
	timezone   string
}

// New creates a new calendar-backed Notifier instance.
func New(l pkgLog.Logger, api CalendarAPI, calendarID, timezone string) *Notifier {
	return &Notifier{l: l, api: api, calendarID: calendarID, timezone: timezone}
}

func (n *Notifier) Schedule(ctx context.Context, req reminder.Request) (string, error) {
	event, err := n.api.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  n.calendarID,
		Summary:     req.Title,
		Description: req.Body,
		StartTime:   req.At,
		EndTime:     req.At.Add(eventLength),
		Timezone:    n.timezone,
	})
	if err != nil {
		return "", err
	}

	n.l.Debugf(ctx, "calendar reminder created: task=%s event=%s at=%s", req.TaskID, event.ID, req.At.Format(time.RFC3339))
	return event.ID, nil
}

func (n *Notifier) Cancel(ctx context.Context, handle string) error {
	return n.api.DeleteEvent(ctx, n.calendarID, handle)
}
