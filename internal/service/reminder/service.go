package reminder

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
	ListDueReminders(ctx context.Context, now time.Time) ([]domain.DueReminder, error)
	ClearReminder(ctx context.Context, taskID uuid.UUID, now time.Time) error
}

type notifier interface {
	Notify(ctx context.Context, email, subject, body string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service fires one-shot task reminders.
type Service struct {
	tasks    taskRepo
	notifier notifier
	log      *slog.Logger
}

// NewService creates a new reminder service.
func NewService(log *slog.Logger, tasks taskRepo, notifier notifier) *Service {
	return &Service{
		tasks:    tasks,
		notifier: notifier,
		log:      log.With("service", "reminder"),
	}
}

// Run sends a reminder for every incomplete, unexpired task whose
// reminder time has passed, then clears the reminder so it fires once.
// The clear happens regardless of delivery outcome; a notifier that
// reports failure only gets logged.
func (s *Service) Run(ctx context.Context, now time.Time) (int, error) {
	due, err := s.tasks.ListDueReminders(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list due reminders: %w", err)
	}

	sent := 0
	for _, rem := range due {
		body := reminderBody(rem.Task, now)
		if err := s.notifier.Notify(ctx, rem.Email, "Reminder", body); err != nil {
			s.log.ErrorContext(ctx, "reminder delivery failed",
				"task_id", rem.Task.ID, "error", err)
		}

		if err := s.tasks.ClearReminder(ctx, rem.Task.ID, now); err != nil {
			s.log.ErrorContext(ctx, "clear reminder failed",
				"task_id", rem.Task.ID, "error", err)
			continue
		}
		sent++
	}

	if sent > 0 {
		s.log.InfoContext(ctx, "reminders sent", "count", sent)
	}
	return sent, nil
}

func reminderBody(t domain.Task, now time.Time) string {
	if t.DueDate == nil {
		return fmt.Sprintf("Do not forget to complete %q task.", t.Title)
	}
	left := t.DueDate.Sub(now).Round(time.Minute)
	return fmt.Sprintf("Do not forget to complete %q task. Time left: %s", t.Title, left)
}
