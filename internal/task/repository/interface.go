package repository

import (
	"context"
	"errors"

	"github.com/JellyPork/bunflow/internal/model"
)

// ErrNotFound is returned by lookups for records that do not exist.
var ErrNotFound = errors.New("record not found")

// TaskRepository is the interface for task data access operations.
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) error
	Get(ctx context.Context, id string) (model.Task, error)
	Update(ctx context.Context, t model.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}

// TagRegistry resolves tag names to stored tags, reusing names
// case-insensitively, and tracks per-tag usage.
type TagRegistry interface {
	// ResolveOrCreate returns the existing tag whose name matches
	// case-insensitively, or creates one with the next palette color.
	ResolveOrCreate(ctx context.Context, name string) (model.Tag, error)
	Get(ctx context.Context, id string) (model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
	IncrementUsage(ctx context.Context, ids []string) error
	Rename(ctx context.Context, id, name string) (model.Tag, error)
	// Delete removes the tag and detaches it from every task.
	Delete(ctx context.Context, id string) error
}
