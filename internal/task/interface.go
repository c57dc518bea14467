package task

import (
	"context"

	"github.com/JellyPork/bunflow/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// QuickAdd parses one free-text line into a task, schedules its
	// reminders and stores it.
	QuickAdd(ctx context.Context, sc model.Scope, input QuickAddInput) (model.Task, error)

	// Create stores a task built from structured input (a UI form).
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// Update replaces a task's content and reschedules its reminders:
	// old handles are cancelled unconditionally before the new rule is
	// expanded, and the record is written once at the end.
	Update(ctx context.Context, sc model.Scope, id string, input UpdateInput) (model.Task, error)

	// Toggle flips the done flag. Reminders are left untouched.
	Toggle(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// Delete cancels the task's reminders and removes the record.
	Delete(ctx context.Context, sc model.Scope, id string) error

	Get(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Task, error)

	ListTags(ctx context.Context, sc model.Scope) ([]model.Tag, error)
	RenameTag(ctx context.Context, sc model.Scope, id, name string) (model.Tag, error)
	DeleteTag(ctx context.Context, sc model.Scope, id string) error
}
