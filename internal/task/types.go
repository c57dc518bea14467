package task

import "github.com/JellyPork/bunflow/internal/model"

// QuickAddInput is one free-text quick-add line.
type QuickAddInput struct {
	Text string `json:"text"`
	Body string `json:"body,omitempty"` // reminder body override
}

// CreateInput is the structured form of a new task. Tags holds names, not
// IDs; the registry resolves or creates them case-insensitively.
type CreateInput struct {
	Title    string               `json:"title"`
	Notes    string               `json:"notes,omitempty"`
	Priority model.Priority       `json:"priority,omitempty"`
	Tags     []string             `json:"tags,omitempty"`
	Rule     model.RecurrenceRule `json:"recurrence"`
	Body     string               `json:"body,omitempty"`
}

// UpdateInput fully replaces a task's editable content.
type UpdateInput = CreateInput

// ListInput filters the task listing.
type ListInput struct {
	TagID  string
	Done   *bool
	Limit  int
	Offset int
}
