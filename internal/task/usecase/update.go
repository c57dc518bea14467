package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/JellyPork/bunflow/internal/model"
	"github.com/JellyPork/bunflow/internal/reminder"
	"github.com/JellyPork/bunflow/internal/task"
	"github.com/JellyPork/bunflow/internal/task/repository"
)

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, id string, input task.UpdateInput) (model.Task, error) {
	existing, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		return model.Task{}, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	// Old handles are stale the moment the rule may have changed.
	uc.scheduler.CancelAll(ctx, existing.NotificationIDs)

	tagIDs, err := uc.resolveTags(ctx, input.Tags)
	if err != nil {
		return model.Task{}, err
	}

	handles, err := uc.scheduler.Schedule(ctx, reminder.ScheduleInput{
		TaskID: existing.ID,
		Title:  title,
		Body:   reminderBody(input.Body),
		Rule:   input.Rule,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Update: scheduling reminders for %q failed (non-fatal): %v", title, err)
	}

	existing.Title = title
	existing.Notes = input.Notes
	existing.Priority = input.Priority
	existing.TagIDs = tagIDs
	existing.Recurrence = input.Rule
	existing.NotificationIDs = handles
	existing.UpdatedAt = uc.clock()

	if err := uc.repo.Update(ctx, existing); err != nil {
		uc.scheduler.CancelAll(ctx, handles)
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		return model.Task{}, err
	}

	if err := uc.tags.IncrementUsage(ctx, existing.TagIDs); err != nil {
		uc.l.Warnf(ctx, "Update: tag usage update failed (non-fatal): %v", err)
	}

	uc.l.Infof(ctx, "Update: user=%s task=%s kind=%s reminders=%d", sc.UserID, existing.ID, existing.Recurrence.Kind, len(handles))
	return existing, nil
}
