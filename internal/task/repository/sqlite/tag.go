package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JellyPork/bunflow/internal/model"
	"github.com/JellyPork/bunflow/internal/task/repository"
)

// tagPalette is cycled through for new tags, in creation order.
var tagPalette = []string{
	"#7aa2ff", // blue
	"#8b5cf6", // violet
	"#34d399", // green
	"#f59e0b", // amber
	"#f43f5e", // rose
	"#06b6d4", // cyan
}

func (s *TagStore) ResolveOrCreate(ctx context.Context, name string) (model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Tag{}, errors.New("tag name is empty")
	}

	if id, ok := s.tagCache.Get(strings.ToLower(name)); ok {
		if tag, err := s.Get(ctx, id); err == nil {
			return tag, nil
		}
		// Stale entry; fall through to the DB.
		s.tagCache.Remove(strings.ToLower(name))
	}

	tag, err := s.tagByName(ctx, name)
	if err == nil {
		s.tagCache.Add(strings.ToLower(name), tag.ID)
		return tag, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return model.Tag{}, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tags`).Scan(&count); err != nil {
		return model.Tag{}, err
	}

	tag = model.Tag{
		ID:    uuid.NewString(),
		Name:  name,
		Color: tagPalette[count%len(tagPalette)],
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO tags(id, name, color, usage_count) VALUES(?,?,?,0)`,
		tag.ID, tag.Name, tag.Color); err != nil {
		return model.Tag{}, err
	}
	s.tagCache.Add(strings.ToLower(name), tag.ID)
	return tag, nil
}

func (s *TagStore) Get(ctx context.Context, id string) (model.Tag, error) {
	var tag model.Tag
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, color, usage_count FROM tags WHERE id = ?`, id).
		Scan(&tag.ID, &tag.Name, &tag.Color, &tag.UsageCount)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Tag{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Tag{}, err
	}
	return tag, nil
}

func (s *TagStore) List(ctx context.Context) ([]model.Tag, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, color, usage_count FROM tags ORDER BY usage_count DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Color, &tag.UsageCount); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (s *TagStore) IncrementUsage(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := s.db.ExecContext(ctx,
			`UPDATE tags SET usage_count = usage_count + 1 WHERE id = ?`, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *TagStore) Rename(ctx context.Context, id, name string) (model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Tag{}, errors.New("tag name is empty")
	}

	old, err := s.Get(ctx, id)
	if err != nil {
		return model.Tag{}, err
	}

	if _, err := s.db.ExecContext(ctx, `UPDATE tags SET name = ? WHERE id = ?`, name, id); err != nil {
		return model.Tag{}, err
	}
	s.tagCache.Remove(strings.ToLower(old.Name))
	s.tagCache.Add(strings.ToLower(name), id)

	old.Name = name
	return old, nil
}

func (s *TagStore) Delete(ctx context.Context, id string) error {
	tag, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Touch tasks losing the tag so their updated_at reflects the change.
	if _, err := tx.ExecContext(ctx,
		`UPDATE tasks SET updated_at = ? WHERE id IN (SELECT task_id FROM task_tags WHERE tag_id = ?)`,
		time.Now().UnixMilli(), id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM task_tags WHERE tag_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.tagCache.Remove(strings.ToLower(tag.Name))
	return nil
}

func (s *TagStore) tagByName(ctx context.Context, name string) (model.Tag, error) {
	var tag model.Tag
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, color, usage_count FROM tags WHERE name = ? COLLATE NOCASE`, name).
		Scan(&tag.ID, &tag.Name, &tag.Color, &tag.UsageCount)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Tag{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Tag{}, err
	}
	return tag, nil
}
