package usecase

import (
	"context"
	"strings"
)

// resolveTags maps tag names to registry IDs, trimming blanks and
// collapsing duplicates while preserving first-seen order. Duplicate names
// that differ only in case resolve to the same tag.
func (uc *implUseCase) resolveTags(ctx context.Context, names []string) ([]string, error) {
	var ids []string
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, err := uc.tags.ResolveOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		if seen[tag.ID] {
			continue
		}
		seen[tag.ID] = true
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

func reminderBody(body string) string {
	if strings.TrimSpace(body) == "" {
		return defaultReminderBody
	}
	return body
}
