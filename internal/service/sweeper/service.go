package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tasksphere/tasksphere-backend/internal/config"
)

type taskRepo interface {
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
	PurgeExpired(ctx context.Context, threshold time.Time) (int64, error)
}

// Service flags overdue tasks and purges old expired ones.
type Service struct {
	tasks taskRepo
	log   *slog.Logger
	cfg   config.RetentionConfig
}

// NewService creates a new sweeper service.
func NewService(log *slog.Logger, tasks taskRepo, cfg config.RetentionConfig) *Service {
	return &Service{
		tasks: tasks,
		log:   log.With("service", "sweeper"),
		cfg:   cfg,
	}
}

// MarkExpired flags every incomplete, unexpired task whose due date has
// passed. One set-based statement; running it twice in a row is a
// no-op.
func (s *Service) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.tasks.MarkExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("mark expired: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "tasks marked expired", "count", n)
	}
	return n, nil
}

// Purge permanently deletes expired, incomplete tasks whose due date
// fell outside the retention window. Deletion is final; purged tasks
// leave no trace.
func (s *Service) Purge(ctx context.Context, now time.Time) (int64, error) {
	threshold := now.AddDate(0, 0, -s.cfg.ExpiredTaskDays)

	n, err := s.tasks.PurgeExpired(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("purge expired: %w", err)
	}
	s.log.InfoContext(ctx, "expired tasks purged", "count", n, "threshold", threshold)
	return n, nil
}
