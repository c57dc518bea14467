package usecase

import (
	"context"
	"errors"

	"github.com/JellyPork/bunflow/internal/model"
	"github.com/JellyPork/bunflow/internal/task"
	"github.com/JellyPork/bunflow/internal/task/repository"
)

func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	existing, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		return model.Task{}, err
	}

	existing.Done = !existing.Done
	existing.UpdatedAt = uc.clock()

	if err := uc.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "Toggle: user=%s task=%s done=%t", sc.UserID, existing.ID, existing.Done)
	return existing, nil
}
