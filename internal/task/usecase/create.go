package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/JellyPork/bunflow/internal/model"
	"github.com/JellyPork/bunflow/internal/reminder"
	"github.com/JellyPork/bunflow/internal/task"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	tagIDs, err := uc.resolveTags(ctx, input.Tags)
	if err != nil {
		return model.Task{}, err
	}

	now := uc.clock()
	t := model.Task{
		ID:         uuid.NewString(),
		Title:      title,
		Notes:      input.Notes,
		Priority:   input.Priority,
		TagIDs:     tagIDs,
		Recurrence: input.Rule,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	handles, err := uc.scheduler.Schedule(ctx, reminder.ScheduleInput{
		TaskID: t.ID,
		Title:  t.Title,
		Body:   reminderBody(input.Body),
		Rule:   t.Recurrence,
	})
	if err != nil {
		// The task is still saved; its reminders may not all fire.
		uc.l.Warnf(ctx, "Create: scheduling reminders for %q failed (non-fatal): %v", t.Title, err)
	}
	t.NotificationIDs = handles

	if err := uc.repo.Create(ctx, t); err != nil {
		// Do not leave orphaned reminders behind a failed insert.
		uc.scheduler.CancelAll(ctx, handles)
		return model.Task{}, err
	}

	if err := uc.tags.IncrementUsage(ctx, t.TagIDs); err != nil {
		uc.l.Warnf(ctx, "Create: tag usage update failed (non-fatal): %v", err)
	}

	uc.l.Infof(ctx, "Create: user=%s task=%s kind=%s reminders=%d", sc.UserID, t.ID, t.Recurrence.Kind, len(handles))
	return t, nil
}
