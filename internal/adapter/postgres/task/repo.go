// Package task implements the Task repository using PostgreSQL: task and
// subtask rows, recurrence rules, and the bulk sweep operations. Simple
// operations use raw SQL; the listing path builds its WHERE clause with
// squirrel.
package task

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres"
	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const taskColumns = `id, user_id, title, description, priority, due_date, reminder,
	is_completed, completed_at, expired, is_recurring, parent_recurring_task,
	category_id, created_at, updated_at`

const getByIDSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = $1 AND user_id = $2`

const createSQL = `
INSERT INTO tasks (id, user_id, title, description, priority, due_date, reminder,
	is_completed, completed_at, expired, is_recurring, parent_recurring_task,
	category_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

const setCompletedSQL = `
UPDATE tasks
SET is_completed = $3, completed_at = $4, updated_at = $5
WHERE id = $1 AND user_id = $2`

const deleteSQL = `
DELETE FROM tasks WHERE id = $1 AND user_id = $2`

const tagIDsSQL = `
SELECT tag_id FROM task_tags WHERE task_id = $1`

const setTagsDeleteSQL = `DELETE FROM task_tags WHERE task_id = $1`

const setTagsInsertSQL = `
INSERT INTO task_tags (task_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

// GetByID returns a task by primary key, scoped to its owner. Tag IDs are
// loaded with it.
func (r *Repo) GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(q.QueryRow(ctx, getByIDSQL, taskID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}

	tags, err := r.loadTagIDs(ctx, taskID)
	if err != nil {
		return nil, err
	}
	t.TagIDs = tags
	return t, nil
}

// Create inserts a new task and its tag links.
func (r *Repo) Create(ctx context.Context, t *domain.Task) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL,
		t.ID, t.UserID, t.Title, t.Description, string(t.Priority), t.DueDate, t.Reminder,
		t.IsCompleted, t.CompletedAt, t.Expired, t.IsRecurring, t.ParentRecurringTask,
		t.CategoryID, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "task", t.ID)
	}

	for _, tagID := range t.TagIDs {
		if _, err := q.Exec(ctx, setTagsInsertSQL, t.ID, tagID); err != nil {
			return postgres.MapError(err, "task_tag", t.ID)
		}
	}
	return nil
}

// SetCompleted flips the completion flag. CompletedAt is set when
// completing and cleared when un-completing.
func (r *Repo) SetCompleted(ctx context.Context, userID, taskID uuid.UUID, completed bool, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var completedAt *time.Time
	if completed {
		completedAt = &now
	}

	tag, err := q.Exec(ctx, setCompletedSQL, taskID, userID, completed, completedAt, now)
	if err != nil {
		return postgres.MapError(err, "task", taskID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "task", taskID)
	}
	return nil
}

// Delete removes a task; subtasks, tag links and any recurrence rule go
// with it via cascade.
func (r *Repo) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, taskID, userID)
	if err != nil {
		return postgres.MapError(err, "task", taskID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "task", taskID)
	}
	return nil
}

// SetTags replaces the task's tag links.
func (r *Repo) SetTags(ctx context.Context, taskID uuid.UUID, tagIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, setTagsDeleteSQL, taskID); err != nil {
		return postgres.MapError(err, "task_tag", taskID)
	}
	for _, tagID := range tagIDs {
		if _, err := q.Exec(ctx, setTagsInsertSQL, taskID, tagID); err != nil {
			return postgres.MapError(err, "task_tag", taskID)
		}
	}
	return nil
}

func (r *Repo) loadTagIDs(ctx context.Context, taskID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, tagIDsSQL, taskID)
	if err != nil {
		return nil, postgres.MapError(err, "task_tag", taskID)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, postgres.MapError(err, "task_tag", taskID)
		}
		ids = append(ids, id)
	}
	return ids, postgres.MapError(rows.Err(), "task_tag", taskID)
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		t        domain.Task
		priority string
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &priority, &t.DueDate, &t.Reminder,
		&t.IsCompleted, &t.CompletedAt, &t.Expired, &t.IsRecurring, &t.ParentRecurringTask,
		&t.CategoryID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Priority = domain.Priority(priority)
	return &t, nil
}
