package task

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/tasksphere/tasksphere-backend/internal/adapter/postgres"
	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

const listDueTemplatesSQL = `
SELECT t.id, t.user_id, t.title, t.description, t.priority, t.due_date, t.reminder,
	t.is_completed, t.completed_at, t.expired, t.is_recurring, t.parent_recurring_task,
	t.category_id, t.created_at, t.updated_at,
	r.id, r.task_id, r.frequency, r.interval, r.next_occurrence
FROM tasks t
JOIN recurrence_rules r ON r.task_id = t.id
WHERE t.is_recurring
  AND t.parent_recurring_task IS NULL
  AND r.next_occurrence <= $1
ORDER BY r.next_occurrence`

const createRuleSQL = `
INSERT INTO recurrence_rules (id, task_id, frequency, interval, next_occurrence)
VALUES ($1, $2, $3, $4, $5)`

const getRuleByTaskSQL = `
SELECT id, task_id, frequency, interval, next_occurrence
FROM recurrence_rules
WHERE task_id = $1`

// advanceRuleSQL guards against rewinds: the update applies only when the
// new occurrence is strictly ahead of the stored one.
const advanceRuleSQL = `
UPDATE recurrence_rules
SET next_occurrence = $2
WHERE id = $1 AND next_occurrence < $2`

// ListDueTemplates returns every recurring template whose next occurrence
// is at or before now, with its rule.
func (r *Repo) ListDueTemplates(ctx context.Context, now time.Time) ([]domain.RecurringTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listDueTemplatesSQL, now)
	if err != nil {
		return nil, postgres.MapError(err, "recurrence_rule", uuid.Nil)
	}
	defer rows.Close()

	var templates []domain.RecurringTemplate
	for rows.Next() {
		var (
			tpl       domain.RecurringTemplate
			priority  string
			frequency string
		)
		err := rows.Scan(
			&tpl.Task.ID, &tpl.Task.UserID, &tpl.Task.Title, &tpl.Task.Description,
			&priority, &tpl.Task.DueDate, &tpl.Task.Reminder,
			&tpl.Task.IsCompleted, &tpl.Task.CompletedAt, &tpl.Task.Expired,
			&tpl.Task.IsRecurring, &tpl.Task.ParentRecurringTask,
			&tpl.Task.CategoryID, &tpl.Task.CreatedAt, &tpl.Task.UpdatedAt,
			&tpl.Rule.ID, &tpl.Rule.TaskID, &frequency, &tpl.Rule.Interval, &tpl.Rule.NextOccurrence,
		)
		if err != nil {
			return nil, postgres.MapError(err, "recurrence_rule", uuid.Nil)
		}
		tpl.Task.Priority = domain.Priority(priority)
		tpl.Rule.Frequency = domain.Frequency(frequency)
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "recurrence_rule", uuid.Nil)
	}
	rows.Close()

	for i := range templates {
		tagIDs, err := r.loadTagIDs(ctx, templates[i].Task.ID)
		if err != nil {
			return nil, err
		}
		templates[i].Task.TagIDs = tagIDs
	}
	return templates, nil
}

// CreateRule inserts a recurrence rule for a template.
func (r *Repo) CreateRule(ctx context.Context, rule *domain.RecurrenceRule) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createRuleSQL,
		rule.ID, rule.TaskID, string(rule.Frequency), rule.Interval, rule.NextOccurrence)
	return postgres.MapError(err, "recurrence_rule", rule.ID)
}

// GetRuleByTask returns the recurrence rule owned by the given template.
func (r *Repo) GetRuleByTask(ctx context.Context, taskID uuid.UUID) (*domain.RecurrenceRule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		rule      domain.RecurrenceRule
		frequency string
	)
	err := q.QueryRow(ctx, getRuleByTaskSQL, taskID).Scan(
		&rule.ID, &rule.TaskID, &frequency, &rule.Interval, &rule.NextOccurrence)
	if err != nil {
		return nil, postgres.MapError(err, "recurrence_rule", taskID)
	}
	rule.Frequency = domain.Frequency(frequency)
	return &rule, nil
}

// AdvanceRule moves the rule's next occurrence forward. A next value that
// does not advance the rule is rejected with domain.ErrConflict, which
// keeps a stalled or rewound pointer from ever being stored.
func (r *Repo) AdvanceRule(ctx context.Context, ruleID uuid.UUID, next time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, advanceRuleSQL, ruleID, next)
	if err != nil {
		return postgres.MapError(err, "recurrence_rule", ruleID)
	}
	if tag.RowsAffected() == 0 {
		// Either the rule vanished or next does not move it forward.
		if _, getErr := r.getRuleByID(ctx, ruleID); getErr != nil {
			return getErr
		}
		return postgres.MapError(domain.ErrConflict, "recurrence_rule", ruleID)
	}
	return nil
}

const getRuleByIDSQL = `
SELECT id, task_id, frequency, interval, next_occurrence
FROM recurrence_rules
WHERE id = $1`

func (r *Repo) getRuleByID(ctx context.Context, ruleID uuid.UUID) (*domain.RecurrenceRule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		rule      domain.RecurrenceRule
		frequency string
	)
	err := q.QueryRow(ctx, getRuleByIDSQL, ruleID).Scan(
		&rule.ID, &rule.TaskID, &frequency, &rule.Interval, &rule.NextOccurrence)
	if err != nil {
		return nil, postgres.MapError(err, "recurrence_rule", ruleID)
	}
	rule.Frequency = domain.Frequency(frequency)
	return &rule, nil
}
