package usecase

import (
	"context"
	"errors"

	"github.com/JellyPork/bunflow/internal/model"
	"github.com/JellyPork/bunflow/internal/task"
	"github.com/JellyPork/bunflow/internal/task/repository"
)

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		return model.Task{}, err
	}
	return t, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]model.Task, error) {
	tasks, err := uc.repo.List(ctx, repository.ListTasksOptions{
		TagID:  input.TagID,
		Done:   input.Done,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
