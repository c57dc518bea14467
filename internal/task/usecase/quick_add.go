package usecase

import (
	"context"
	"strings"

	"github.com/JellyPork/bunflow/internal/model"
	"github.com/JellyPork/bunflow/internal/task"
)

func (uc *implUseCase) QuickAdd(ctx context.Context, sc model.Scope, input task.QuickAddInput) (model.Task, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Task{}, task.ErrEmptyInput
	}

	parsed := uc.parser.Parse(text)
	uc.l.Infof(ctx, "QuickAdd: user=%s kind=%s tags=%d", sc.UserID, parsed.Recurrence, len(parsed.Tags))

	return uc.Create(ctx, sc, task.CreateInput{
		Title:    parsed.Title,
		Priority: parsed.Priority,
		Tags:     parsed.Tags,
		Rule:     parsed.Rule(),
		Body:     input.Body,
	})
}
