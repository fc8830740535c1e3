package task

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres"
	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

const markExpiredSQL = `
UPDATE tasks
SET expired = TRUE, updated_at = $1
WHERE NOT is_completed
  AND NOT expired
  AND due_date IS NOT NULL
  AND due_date < $1
  AND NOT (is_recurring AND parent_recurring_task IS NULL)`

const purgeExpiredSQL = `
DELETE FROM tasks
WHERE expired
  AND NOT is_completed
  AND due_date < $1`

const hasCompletedOnSQL = `
SELECT EXISTS (
	SELECT 1 FROM tasks
	WHERE user_id = $1
	  AND is_completed
	  AND completed_at >= $2
	  AND completed_at < $3
)`

const listDueRemindersSQL = `
SELECT t.id, t.user_id, t.title, t.description, t.priority, t.due_date, t.reminder,
	t.is_completed, t.completed_at, t.expired, t.is_recurring, t.parent_recurring_task,
	t.category_id, t.created_at, t.updated_at, u.email
FROM tasks t
JOIN users u ON u.id = t.user_id
WHERE t.reminder IS NOT NULL
  AND t.reminder <= $1
  AND NOT t.is_completed
  AND NOT t.expired
  AND u.is_active
ORDER BY t.reminder`

const clearReminderSQL = `
UPDATE tasks SET reminder = NULL, updated_at = $2 WHERE id = $1`

const countDueBetweenSQL = `
SELECT count(*) FROM tasks
WHERE user_id = $1
  AND NOT is_completed
  AND NOT (is_recurring AND parent_recurring_task IS NULL)
  AND due_date >= $2
  AND due_date < $3`

const countCompletedSinceSQL = `
SELECT count(*) FROM tasks
WHERE user_id = $1
  AND is_completed
  AND completed_at >= $2`

const countCreatedSinceSQL = `
SELECT count(*) FROM tasks
WHERE user_id = $1
  AND created_at >= $2
  AND NOT (is_recurring AND parent_recurring_task IS NULL)`

// MarkExpired flags incomplete tasks whose due date has passed. It
// returns the number of tasks flagged.
func (r *Repo) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markExpiredSQL, now)
	if err != nil {
		return 0, postgres.MapError(err, "task", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

// PurgeExpired deletes expired, incomplete tasks whose due date is
// older than the threshold. It returns the number of tasks removed.
func (r *Repo) PurgeExpired(ctx context.Context, threshold time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, purgeExpiredSQL, threshold)
	if err != nil {
		return 0, postgres.MapError(err, "task", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

// HasCompletedOn reports whether the user completed at least one task
// during the day starting at dayStart.
func (r *Repo) HasCompletedOn(ctx context.Context, userID uuid.UUID, dayStart time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var ok bool
	err := q.QueryRow(ctx, hasCompletedOnSQL, userID, dayStart, dayStart.Add(24*time.Hour)).Scan(&ok)
	if err != nil {
		return false, postgres.MapError(err, "task", userID)
	}
	return ok, nil
}

// ListDueReminders returns tasks whose reminder time has passed,
// together with the owner's email address.
func (r *Repo) ListDueReminders(ctx context.Context, now time.Time) ([]domain.DueReminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listDueRemindersSQL, now)
	if err != nil {
		return nil, postgres.MapError(err, "task", uuid.Nil)
	}
	defer rows.Close()

	var reminders []domain.DueReminder
	for rows.Next() {
		var rem domain.DueReminder
		var priority string
		if err := rows.Scan(
			&rem.Task.ID, &rem.Task.UserID, &rem.Task.Title, &rem.Task.Description,
			&priority, &rem.Task.DueDate, &rem.Task.Reminder,
			&rem.Task.IsCompleted, &rem.Task.CompletedAt, &rem.Task.Expired,
			&rem.Task.IsRecurring, &rem.Task.ParentRecurringTask, &rem.Task.CategoryID,
			&rem.Task.CreatedAt, &rem.Task.UpdatedAt,
			&rem.Email,
		); err != nil {
			return nil, postgres.MapError(err, "task", uuid.Nil)
		}
		rem.Task.Priority = domain.Priority(priority)
		reminders = append(reminders, rem)
	}
	return reminders, postgres.MapError(rows.Err(), "task", uuid.Nil)
}

// ClearReminder unsets a task's reminder so it fires once.
func (r *Repo) ClearReminder(ctx context.Context, taskID uuid.UUID, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, clearReminderSQL, taskID, now)
	return postgres.MapError(err, "task", taskID)
}

// CountDueBetween counts a user's incomplete tasks due in [from, to).
func (r *Repo) CountDueBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	return r.countRows(ctx, countDueBetweenSQL, userID, from, to)
}

// CountCompletedSince counts a user's tasks completed at or after since.
func (r *Repo) CountCompletedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	return r.countRows(ctx, countCompletedSinceSQL, userID, since)
}

// CountCreatedSince counts a user's tasks created at or after since.
func (r *Repo) CountCreatedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	return r.countRows(ctx, countCreatedSinceSQL, userID, since)
}

func (r *Repo) countRows(ctx context.Context, sql string, args ...any) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "task", uuid.Nil)
	}
	return n, nil
}
