package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tasksphere/tasksphere-backend/internal/config"
	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type taskRepo interface {
	GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	SetCompleted(ctx context.Context, userID, taskID uuid.UUID, completed bool, now time.Time) error
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, f domain.TaskFilter) ([]domain.Task, error)
	CreateRule(ctx context.Context, rule *domain.RecurrenceRule) error
	ListSubtasks(ctx context.Context, taskID uuid.UUID) ([]domain.SubTask, error)
	CreateSubtask(ctx context.Context, s *domain.SubTask) error
	SetSubtaskCompleted(ctx context.Context, subtaskID uuid.UUID, completed bool) error
	CountSubtasks(ctx context.Context, taskID uuid.UUID) (total, completed int, err error)
}

type karmaAwarder interface {
	Award(ctx context.Context, userID uuid.UUID, amount int, reason string) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements task CRUD and the completion flow that feeds the
// karma engine.
type Service struct {
	tasks taskRepo
	karma karmaAwarder
	tx    txManager
	log   *slog.Logger
	cfg   config.KarmaConfig
	now   func() time.Time
}

// NewService creates a new task service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	karma karmaAwarder,
	tx txManager,
	cfg config.KarmaConfig,
) *Service {
	return &Service{
		tasks: tasks,
		karma: karma,
		tx:    tx,
		log:   log.With("service", "task"),
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// MutationResult reports a state change together with the per-user
// cache keys the caller must invalidate.
type MutationResult struct {
	Task            *domain.Task
	InvalidatedKeys []string
}

// InvalidatedKeys lists the task-list cache keys that any task mutation
// for the user makes stale.
func InvalidatedKeys(userID uuid.UUID) []string {
	return []string{
		fmt.Sprintf("tasks_all_user_%s", userID),
		fmt.Sprintf("tasks_active_user_%s", userID),
		fmt.Sprintf("tasks_completed_user_%s", userID),
	}
}

// Get returns a single task owned by the user.
func (s *Service) Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, userID, taskID)
}

// List returns the user's tasks. Recurring templates never show up
// here, only the instances generated from them.
func (s *Service) List(ctx context.Context, userID uuid.UUID, f domain.TaskFilter) ([]domain.Task, error) {
	return s.tasks.List(ctx, userID, f)
}

// Create validates and stores a task, with its recurrence rule when one
// is requested, in a single transaction.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateTaskInput) (*MutationResult, error) {
	now := s.now()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	t := domain.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Reminder:    input.Reminder,
		IsRecurring: input.Recurrence != nil,
		CategoryID:  input.CategoryID,
		TagIDs:      input.TagIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tasks.Create(ctx, &t); err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		if input.Recurrence == nil {
			return nil
		}

		rule := domain.RecurrenceRule{
			ID:             uuid.New(),
			TaskID:         t.ID,
			Frequency:      input.Recurrence.Frequency,
			Interval:       input.Recurrence.Interval,
			NextOccurrence: input.Recurrence.NextOccurrence,
		}
		if err := s.tasks.CreateRule(ctx, &rule); err != nil {
			return fmt.Errorf("create recurrence rule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "task created",
		"task_id", t.ID, "user_id", userID, "recurring", t.IsRecurring)
	return &MutationResult{Task: &t, InvalidatedKeys: InvalidatedKeys(userID)}, nil
}

// Delete removes a task. Subtasks, tag links, generated instances and
// the recurrence rule go with it.
func (s *Service) Delete(ctx context.Context, userID, taskID uuid.UUID) (*MutationResult, error) {
	if err := s.tasks.Delete(ctx, userID, taskID); err != nil {
		return nil, err
	}
	return &MutationResult{InvalidatedKeys: InvalidatedKeys(userID)}, nil
}
