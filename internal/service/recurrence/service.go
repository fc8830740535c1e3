package recurrence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type taskRepo interface {
	ListDueTemplates(ctx context.Context, now time.Time) ([]domain.RecurringTemplate, error)
	Create(ctx context.Context, t *domain.Task) error
	CloneSubtasks(ctx context.Context, fromTaskID, toTaskID uuid.UUID) error
	AdvanceRule(ctx context.Context, ruleID uuid.UUID, next time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Result summarizes one generation pass.
type Result struct {
	Due       int
	Generated int
	Failed    int
}

// Service materializes task instances from recurring templates.
type Service struct {
	tasks taskRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new recurrence service.
func NewService(log *slog.Logger, tasks taskRepo, tx txManager) *Service {
	return &Service{
		tasks: tasks,
		tx:    tx,
		log:   log.With("service", "recurrence"),
	}
}

// Run selects every template whose next occurrence is due and, per
// template in one transaction, creates a fresh instance, copies the
// template's tags and subtasks, and advances the rule. A template that
// fails rolls back alone; the rest of the batch continues.
func (s *Service) Run(ctx context.Context, now time.Time) (Result, error) {
	templates, err := s.tasks.ListDueTemplates(ctx, now)
	if err != nil {
		return Result{}, fmt.Errorf("list due templates: %w", err)
	}

	res := Result{Due: len(templates)}
	for i := range templates {
		tpl := templates[i]
		err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			return s.generate(ctx, tpl, now)
		})
		if err != nil {
			res.Failed++
			s.log.ErrorContext(ctx, "template generation failed",
				"template_id", tpl.Task.ID, "error", err)
			continue
		}
		res.Generated++
	}

	s.log.InfoContext(ctx, "recurrence run finished",
		"due", res.Due, "generated", res.Generated, "failed", res.Failed)
	return res, nil
}

func (s *Service) generate(ctx context.Context, tpl domain.RecurringTemplate, now time.Time) error {
	instance := domain.Task{
		ID:                  uuid.New(),
		UserID:              tpl.Task.UserID,
		Title:               tpl.Task.Title,
		Description:         tpl.Task.Description,
		Priority:            tpl.Task.Priority,
		DueDate:             instanceDueDate(tpl.Task.DueDate, now),
		CategoryID:          tpl.Task.CategoryID,
		TagIDs:              tpl.Task.TagIDs,
		ParentRecurringTask: &tpl.Task.ID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.tasks.Create(ctx, &instance); err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	if err := s.tasks.CloneSubtasks(ctx, tpl.Task.ID, instance.ID); err != nil {
		return fmt.Errorf("clone subtasks: %w", err)
	}

	next := NextOccurrence(tpl.Rule, tpl.Rule.NextOccurrence)
	if err := s.tasks.AdvanceRule(ctx, tpl.Rule.ID, next); err != nil {
		return fmt.Errorf("advance rule: %w", err)
	}
	return nil
}

// instanceDueDate is today's date carrying the template's due
// time-of-day, seconds zeroed. Templates without a due date produce
// instances without one.
func instanceDueDate(templateDue *time.Time, now time.Time) *time.Time {
	if templateDue == nil {
		return nil
	}
	year, month, day := now.Date()
	due := time.Date(year, month, day,
		templateDue.Hour(), templateDue.Minute(), 0, 0, templateDue.Location())
	return &due
}
