package http

import (
	"time"

	"github.com/JellyPork/bunflow/internal/model"
	"github.com/JellyPork/bunflow/internal/task"
)

// --- Request DTOs ---

type quickAddReq struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
	Body string `json:"body" binding:"max=1000"`
}

func (r quickAddReq) toInput() task.QuickAddInput {
	return task.QuickAddInput{
		Text: r.Text,
		Body: r.Body,
	}
}

// ---

type createReq struct {
	Title      string               `json:"title"      binding:"required,min=1,max=255"`
	Notes      string               `json:"notes"      binding:"max=2000"`
	Priority   string               `json:"priority"   binding:"omitempty,oneof=low medium high"`
	Tags       []string             `json:"tags"`
	Recurrence model.RecurrenceRule `json:"recurrence"`
	Body       string               `json:"body"       binding:"max=1000"`
}

func (r createReq) toInput() task.CreateInput {
	rule := r.Recurrence
	if rule.Kind == "" {
		rule = model.NoRecurrence()
	}
	return task.CreateInput{
		Title:    r.Title,
		Notes:    r.Notes,
		Priority: model.ParsePriority(r.Priority),
		Tags:     r.Tags,
		Rule:     rule,
		Body:     r.Body,
	}
}

// ---

type listReq struct {
	TagID  string `form:"tag_id"`
	Done   *bool  `form:"done"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListInput{
		TagID:  r.TagID,
		Done:   r.Done,
		Limit:  limit,
		Offset: r.Offset,
	}
}

// ---

type renameTagReq struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// --- Response DTOs ---

type taskResp struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Notes           string               `json:"notes,omitempty"`
	Done            bool                 `json:"done"`
	Priority        string               `json:"priority,omitempty"`
	TagIDs          []string             `json:"tag_ids,omitempty"`
	Recurrence      model.RecurrenceRule `json:"recurrence"`
	NotificationIDs []string             `json:"notification_ids,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Notes:           t.Notes,
		Done:            t.Done,
		Priority:        t.Priority.String(),
		TagIDs:          t.TagIDs,
		Recurrence:      t.Recurrence,
		NotificationIDs: t.NotificationIDs,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

type taskDetailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskDetailResp(t model.Task) taskDetailResp {
	return taskDetailResp{Task: newTaskResp(t)}
}

type taskListResp struct {
	Tasks  []taskResp `json:"tasks"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newTaskListResp(tasks []model.Task, input task.ListInput) taskListResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return taskListResp{
		Tasks:  out,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
}

type tagResp struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	UsageCount int    `json:"usage_count"`
}

func newTagResp(t model.Tag) tagResp {
	return tagResp{
		ID:         t.ID,
		Name:       t.Name,
		Color:      t.Color,
		UsageCount: t.UsageCount,
	}
}

type tagListResp struct {
	Tags []tagResp `json:"tags"`
}

func (h *handler) newTagListResp(tags []model.Tag) tagListResp {
	out := make([]tagResp, len(tags))
	for i, t := range tags {
		out[i] = newTagResp(t)
	}
	return tagListResp{Tags: out}
}
