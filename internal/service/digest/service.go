package digest

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

type userRepo interface {
	ListActive(ctx context.Context) ([]domain.User, error)
}

type taskRepo interface {
	CountDueBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)
	CountCompletedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CountCreatedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

type notifier interface {
	Notify(ctx context.Context, email, subject, body string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service sends periodic task summaries to active users.
type Service struct {
	users    userRepo
	tasks    taskRepo
	notifier notifier
	log      *slog.Logger
}

// NewService creates a new digest service.
func NewService(log *slog.Logger, users userRepo, tasks taskRepo, notifier notifier) *Service {
	return &Service{
		users:    users,
		tasks:    tasks,
		notifier: notifier,
		log:      log.With("service", "digest"),
	}
}

// Morning tells every active user how many tasks are due today. Users
// with an empty day get a message too.
func (s *Service) Morning(ctx context.Context, now time.Time) (int, error) {
	return s.forEachActive(ctx, "morning", func(ctx context.Context, u domain.User) error {
		dayStart := now.UTC().Truncate(24 * time.Hour)
		count, err := s.tasks.CountDueBetween(ctx, u.ID, dayStart, dayStart.Add(24*time.Hour))
		if err != nil {
			return fmt.Errorf("count due today: %w", err)
		}

		var body string
		if count > 0 {
			body = fmt.Sprintf("Hello %s! You have %d tasks for today.\n\nHave a productive day!", u.Username, count)
		} else {
			body = fmt.Sprintf("Hello %s! You have no task for today.\n\nHave a nice day!", u.Username)
		}
		return s.notifier.Notify(ctx, u.Email, "TaskSphere", body)
	})
}

// Evening nudges users who still have incomplete tasks due today.
// Nothing is sent when the count is zero.
func (s *Service) Evening(ctx context.Context, now time.Time) (int, error) {
	return s.forEachActive(ctx, "evening", func(ctx context.Context, u domain.User) error {
		dayStart := now.UTC().Truncate(24 * time.Hour)
		count, err := s.tasks.CountDueBetween(ctx, u.ID, dayStart, dayStart.Add(24*time.Hour))
		if err != nil {
			return fmt.Errorf("count due today: %w", err)
		}
		if count == 0 {
			return errSkipped
		}

		body := fmt.Sprintf("%s, the day is nearing its end! You have %d incompleted tasks left for today.", u.Username, count)
		return s.notifier.Notify(ctx, u.Email, "TaskSphere", body)
	})
}

// Weekly reports each user's completion rate over the last 7 days.
// Users who created no tasks in the window are skipped.
func (s *Service) Weekly(ctx context.Context, now time.Time) (int, error) {
	weekAgo := now.Add(-7 * 24 * time.Hour)

	return s.forEachActive(ctx, "weekly", func(ctx context.Context, u domain.User) error {
		completed, err := s.tasks.CountCompletedSince(ctx, u.ID, weekAgo)
		if err != nil {
			return fmt.Errorf("count completed: %w", err)
		}
		created, err := s.tasks.CountCreatedSince(ctx, u.ID, weekAgo)
		if err != nil {
			return fmt.Errorf("count created: %w", err)
		}
		if created == 0 {
			return errSkipped
		}

		rate := float64(completed) / float64(created) * 100
		body := fmt.Sprintf("Hello %s!\n\nTasks completed this week: %d/%d (%.1f%%)\nKeep up the good work!",
			u.Username, completed, created, rate)
		return s.notifier.Notify(ctx, u.Email, "Your weekly progress report", body)
	})
}

// errSkipped marks a user that the digest intentionally omits.
var errSkipped = fmt.Errorf("digest skipped")

func (s *Service) forEachActive(ctx context.Context, kind string, fn func(ctx context.Context, u domain.User) error) (int, error) {
	users, err := s.users.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active users: %w", err)
	}

	sent := 0
	for _, u := range users {
		switch err := fn(ctx, u); {
		case err == nil:
			sent++
		case err == errSkipped:
		default:
			s.log.ErrorContext(ctx, "digest failed",
				"kind", kind, "user_id", u.ID, "error", err)
		}
	}

	s.log.InfoContext(ctx, "digest run finished", "kind", kind, "sent", sent, "users", len(users))
	return sent, nil
}
