package task

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres"
	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalize applies listing defaults and clamps values.
func normalize(f domain.TaskFilter) domain.TaskFilter {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// List returns a user's tasks matching the filter, newest-due first with
// NULL due dates last. Templates are excluded: a template is recurring
// with no parent, so the listing keeps everything else.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.TaskFilter) ([]domain.Task, error) {
	f = normalize(f)

	qb := squirrel.Select(
		"id", "user_id", "title", "description", "priority", "due_date", "reminder",
		"is_completed", "completed_at", "expired", "is_recurring", "parent_recurring_task",
		"category_id", "created_at", "updated_at",
	).
		From("tasks").
		Where(squirrel.Eq{"user_id": userID}).
		Where("NOT (is_recurring AND parent_recurring_task IS NULL)").
		OrderBy("due_date ASC NULLS LAST", "created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		PlaceholderFormat(squirrel.Dollar)

	if f.Completed != nil {
		qb = qb.Where(squirrel.Eq{"is_completed": *f.Completed})
	}
	if f.Expired != nil {
		qb = qb.Where(squirrel.Eq{"expired": *f.Expired})
	}
	if f.Priority != nil {
		qb = qb.Where(squirrel.Eq{"priority": string(*f.Priority)})
	}
	if f.CategoryID != nil {
		qb = qb.Where(squirrel.Eq{"category_id": *f.CategoryID})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build task list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "task", userID)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, postgres.MapError(err, "task", userID)
		}
		tasks = append(tasks, *t)
	}
	return tasks, postgres.MapError(rows.Err(), "task", userID)
}
