package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/JellyPork/bunflow/internal/model"
	"github.com/JellyPork/bunflow/internal/task"
	"github.com/JellyPork/bunflow/internal/task/repository"
)

func (uc *implUseCase) ListTags(ctx context.Context, sc model.Scope) ([]model.Tag, error) {
	return uc.tags.List(ctx)
}

func (uc *implUseCase) RenameTag(ctx context.Context, sc model.Scope, id, name string) (model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Tag{}, task.ErrEmptyTagName
	}

	renamed, err := uc.tags.Rename(ctx, id, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Tag{}, task.ErrTagNotFound
		}
		return model.Tag{}, err
	}

	uc.l.Infof(ctx, "RenameTag: user=%s tag=%s name=%q", sc.UserID, id, name)
	return renamed, nil
}

func (uc *implUseCase) DeleteTag(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.tags.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTagNotFound
		}
		return err
	}

	uc.l.Infof(ctx, "DeleteTag: user=%s tag=%s", sc.UserID, id)
	return nil
}
