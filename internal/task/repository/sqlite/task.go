package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/JellyPork/bunflow/internal/model"
	"github.com/JellyPork/bunflow/internal/task/repository"
)

func (s *TaskStore) Create(ctx context.Context, t model.Task) error {
	recurrence, err := json.Marshal(t.Recurrence)
	if err != nil {
		return fmt.Errorf("marshal recurrence: %w", err)
	}
	handles, err := json.Marshal(t.NotificationIDs)
	if err != nil {
		return fmt.Errorf("marshal notification ids: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO tasks(id, title, notes, done, priority, recurrence, notification_ids, created_at, updated_at)
		 VALUES(?,?,?,?,?,?,?,?,?)`,
		t.ID, t.Title, t.Notes, t.Done, int(t.Priority), string(recurrence), string(handles),
		t.CreatedAt.UnixMilli(), t.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return err
	}
	if err := replaceTaskTags(ctx, tx, t.ID, t.TagIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *TaskStore) Get(ctx context.Context, id string) (model.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, notes, done, priority, recurrence, notification_ids, created_at, updated_at
		 FROM tasks WHERE id = ?`, id)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Task{}, err
	}

	t.TagIDs, err = s.taskTagIDs(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (s *TaskStore) Update(ctx context.Context, t model.Task) error {
	recurrence, err := json.Marshal(t.Recurrence)
	if err != nil {
		return fmt.Errorf("marshal recurrence: %w", err)
	}
	handles, err := json.Marshal(t.NotificationIDs)
	if err != nil {
		return fmt.Errorf("marshal notification ids: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE tasks SET title=?, notes=?, done=?, priority=?, recurrence=?, notification_ids=?, updated_at=?
		 WHERE id=?`,
		t.Title, t.Notes, t.Done, int(t.Priority), string(recurrence), string(handles),
		t.UpdatedAt.UnixMilli(), t.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM task_tags WHERE task_id = ?`, t.ID); err != nil {
		return err
	}
	if err := replaceTaskTags(ctx, tx, t.ID, t.TagIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *TaskStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM task_tags WHERE task_id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *TaskStore) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	query := `SELECT t.id, t.title, t.notes, t.done, t.priority, t.recurrence, t.notification_ids, t.created_at, t.updated_at
	          FROM tasks t`
	var args []any
	var where []string

	if opt.TagID != "" {
		query += ` JOIN task_tags tt ON tt.task_id = t.id`
		where = append(where, `tt.tag_id = ?`)
		args = append(args, opt.TagID)
	}
	if opt.Done != nil {
		where = append(where, `t.done = ?`)
		args = append(args, *opt.Done)
	}
	for i, w := range where {
		if i == 0 {
			query += ` WHERE ` + w
		} else {
			query += ` AND ` + w
		}
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 50
	}
	query += ` ORDER BY t.created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, opt.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tasks {
		tasks[i].TagIDs, err = s.taskTagIDs(ctx, tasks[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

func (s *TaskStore) taskTagIDs(ctx context.Context, taskID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT tag_id FROM task_tags WHERE task_id = ? ORDER BY tag_id`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func replaceTaskTags(ctx context.Context, tx *sql.Tx, taskID string, tagIDs []string) error {
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO task_tags(task_id, tag_id) VALUES(?,?)`, taskID, tagID); err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t          model.Task
		priority   int
		recurrence string
		handles    string
		createdMs  int64
		updatedMs  int64
	)
	err := row.Scan(&t.ID, &t.Title, &t.Notes, &t.Done, &priority, &recurrence, &handles, &createdMs, &updatedMs)
	if err != nil {
		return model.Task{}, err
	}

	t.Priority = model.Priority(priority)
	if err := json.Unmarshal([]byte(recurrence), &t.Recurrence); err != nil {
		return model.Task{}, fmt.Errorf("unmarshal recurrence for task %s: %w", t.ID, err)
	}
	if err := json.Unmarshal([]byte(handles), &t.NotificationIDs); err != nil {
		return model.Task{}, fmt.Errorf("unmarshal notification ids for task %s: %w", t.ID, err)
	}
	t.CreatedAt = time.UnixMilli(createdMs)
	t.UpdatedAt = time.UnixMilli(updatedMs)
	return t, nil
}
