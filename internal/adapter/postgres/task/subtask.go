package task

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres"
	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

const listSubtasksSQL = `
SELECT id, parent_task_id, title, is_completed
FROM subtasks
WHERE parent_task_id = $1
ORDER BY id`

const createSubtaskSQL = `
INSERT INTO subtasks (id, parent_task_id, title, is_completed)
VALUES ($1, $2, $3, $4)`

const setSubtaskCompletedSQL = `
UPDATE subtasks SET is_completed = $2 WHERE id = $1`

const cloneSubtasksSQL = `
INSERT INTO subtasks (id, parent_task_id, title, is_completed)
SELECT gen_random_uuid(), $2, title, FALSE
FROM subtasks
WHERE parent_task_id = $1`

const countSubtasksSQL = `
SELECT count(*), count(*) FILTER (WHERE is_completed)
FROM subtasks
WHERE parent_task_id = $1`

// ListSubtasks returns a task's subtasks.
func (r *Repo) ListSubtasks(ctx context.Context, taskID uuid.UUID) ([]domain.SubTask, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSubtasksSQL, taskID)
	if err != nil {
		return nil, postgres.MapError(err, "subtask", taskID)
	}
	defer rows.Close()

	var subtasks []domain.SubTask
	for rows.Next() {
		var s domain.SubTask
		if err := rows.Scan(&s.ID, &s.ParentTaskID, &s.Title, &s.IsCompleted); err != nil {
			return nil, postgres.MapError(err, "subtask", taskID)
		}
		subtasks = append(subtasks, s)
	}
	return subtasks, postgres.MapError(rows.Err(), "subtask", taskID)
}

// CreateSubtask inserts a subtask under a task.
func (r *Repo) CreateSubtask(ctx context.Context, s *domain.SubTask) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSubtaskSQL, s.ID, s.ParentTaskID, s.Title, s.IsCompleted)
	return postgres.MapError(err, "subtask", s.ID)
}

// SetSubtaskCompleted flips a subtask's completion flag.
func (r *Repo) SetSubtaskCompleted(ctx context.Context, subtaskID uuid.UUID, completed bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setSubtaskCompletedSQL, subtaskID, completed)
	if err != nil {
		return postgres.MapError(err, "subtask", subtaskID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "subtask", subtaskID)
	}
	return nil
}

// CloneSubtasks copies the source task's subtasks onto the destination
// task, resetting them to incomplete.
func (r *Repo) CloneSubtasks(ctx context.Context, fromTaskID, toTaskID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, cloneSubtasksSQL, fromTaskID, toTaskID)
	return postgres.MapError(err, "subtask", toTaskID)
}

// CountSubtasks returns the total and completed subtask counts for a task.
func (r *Repo) CountSubtasks(ctx context.Context, taskID uuid.UUID) (total, completed int, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if err := q.QueryRow(ctx, countSubtasksSQL, taskID).Scan(&total, &completed); err != nil {
		return 0, 0, postgres.MapError(err, "subtask", taskID)
	}
	return total, completed, nil
}
