package usecase

import (
	"context"
	"errors"

	"github.com/JellyPork/bunflow/internal/model"
	"github.com/JellyPork/bunflow/internal/task"
	"github.com/JellyPork/bunflow/internal/task/repository"
)

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		return err
	}

	uc.scheduler.CancelAll(ctx, existing.NotificationIDs)

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		return err
	}

	uc.l.Infof(ctx, "Delete: user=%s task=%s", sc.UserID, id)
	return nil
}
