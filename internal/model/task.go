package model

import "time"

// Priority is the task priority tier. Zero means unset.
type Priority int

const (
	PriorityNone   Priority = 0
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return ""
	}
}

// ParsePriority maps a priority name to its tier. Unknown names map to
// PriorityNone.
func ParsePriority(s string) Priority {
	switch s {
	case "low":
		return PriorityLow
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	default:
		return PriorityNone
	}
}

// Task is a stored task record. NotificationIDs holds the opaque handles of
// the task's currently scheduled reminders; a task owns at most one active
// set at a time.
type Task struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Notes           string         `json:"notes,omitempty"`
	Done            bool           `json:"done"`
	Priority        Priority       `json:"priority"`
	TagIDs          []string       `json:"tag_ids,omitempty"`
	Recurrence      RecurrenceRule `json:"recurrence"`
	NotificationIDs []string       `json:"notification_ids,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Tag is a named label shared across tasks. Names are reused
// case-insensitively by the tag registry.
type Tag struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	UsageCount int    `json:"usage_count"`
}
