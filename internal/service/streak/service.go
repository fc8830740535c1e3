package streak

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

type userRepo interface {
	ListActive(ctx context.Context) ([]domain.User, error)
	UpdateStreak(ctx context.Context, id uuid.UUID, current, highest int) error
}

type taskRepo interface {
	HasCompletedOn(ctx context.Context, userID uuid.UUID, dayStart time.Time) (bool, error)
}

type karmaAwarder interface {
	AwardInTx(ctx context.Context, userID uuid.UUID, amount int, reason string) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Result summarizes one streak run.
type Result struct {
	Processed int
	Extended  int
	Reset     int
	Failed    int
}

// Service extends or resets daily completion streaks.
type Service struct {
	users userRepo
	tasks taskRepo
	karma karmaAwarder
	tx    txManager
	log   *slog.Logger
	cfg   config.KarmaConfig
}

// NewService creates a new streak service.
func NewService(log *slog.Logger, users userRepo, tasks taskRepo, karma karmaAwarder, tx txManager, cfg config.KarmaConfig) *Service {
	return &Service{
		users: users,
		tasks: tasks,
		karma: karma,
		tx:    tx,
		log:   log.With("service", "streak"),
		cfg:   cfg,
	}
}

// Run walks every active user and checks whether they completed at
// least one task during the previous UTC day. A completion extends the
// streak and pays the daily reward, plus week and month bonuses when
// the new length is divisible by 7 or 30 (both can fire on the same
// day). A miss captures the highest streak and resets the counter.
// The streak write and its karma awards commit in one transaction per
// user, so a failed award never leaves an extension behind.
// A failure for one user is logged and does not stop the run.
func (s *Service) Run(ctx context.Context, now time.Time) (Result, error) {
	users, err := s.users.ListActive(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list active users: %w", err)
	}

	yesterday := now.UTC().Truncate(24 * time.Hour).Add(-24 * time.Hour)

	var res Result
	for i := range users {
		res.Processed++
		extended, err := s.processUser(ctx, &users[i], yesterday)
		if err != nil {
			res.Failed++
			s.log.ErrorContext(ctx, "streak update failed",
				"user_id", users[i].ID, "error", err)
			continue
		}
		if extended {
			res.Extended++
		} else {
			res.Reset++
		}
	}

	s.log.InfoContext(ctx, "streak run finished",
		"processed", res.Processed, "extended", res.Extended,
		"reset", res.Reset, "failed", res.Failed)
	return res, nil
}

func (s *Service) processUser(ctx context.Context, user *domain.User, yesterday time.Time) (bool, error) {
	completed, err := s.tasks.HasCompletedOn(ctx, user.ID, yesterday)
	if err != nil {
		return false, fmt.Errorf("check completions: %w", err)
	}

	if !completed {
		highest := user.HighestStreak
		if user.CurrentStreak > highest {
			highest = user.CurrentStreak
		}
		if err := s.users.UpdateStreak(ctx, user.ID, 0, highest); err != nil {
			return false, fmt.Errorf("reset streak: %w", err)
		}
		return false, nil
	}

	streak := user.CurrentStreak + 1
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.UpdateStreak(ctx, user.ID, streak, user.HighestStreak); err != nil {
			return fmt.Errorf("extend streak: %w", err)
		}

		if _, err := s.karma.AwardInTx(ctx, user.ID, s.cfg.StreakDaily, domain.KarmaReasonStreakDaily); err != nil {
			return fmt.Errorf("daily reward: %w", err)
		}
		if streak%7 == 0 {
			if _, err := s.karma.AwardInTx(ctx, user.ID, s.cfg.StreakWeekBonus, domain.KarmaReasonStreakWeekBonus); err != nil {
				return fmt.Errorf("week bonus: %w", err)
			}
		}
		if streak%30 == 0 {
			if _, err := s.karma.AwardInTx(ctx, user.ID, s.cfg.StreakMonthBonus, domain.KarmaReasonStreakMonthBonus); err != nil {
				return fmt.Errorf("month bonus: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
