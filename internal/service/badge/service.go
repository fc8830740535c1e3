package badge

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

type badgeRepo interface {
	ListCatalog(ctx context.Context) ([]domain.Badge, error)
	ListEarned(ctx context.Context, userID uuid.UUID) ([]domain.Badge, error)
	ListEarnedIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error)
	Award(ctx context.Context, userID, badgeID uuid.UUID, awardedAt time.Time) (bool, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service assigns and reports karma badges.
type Service struct {
	badges badgeRepo
	users  userRepo
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new badge service.
func NewService(log *slog.Logger, badges badgeRepo, users userRepo) *Service {
	return &Service{
		badges: badges,
		users:  users,
		log:    log.With("service", "badge"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Reconcile grants the user every badge their karma total entitles them
// to: all badges whose range lies entirely below the total, plus the
// badge whose range contains it. Already-earned badges are kept even if
// karma has since dropped below their range. Safe to call repeatedly.
func (s *Service) Reconcile(ctx context.Context, userID uuid.UUID, karma int) error {
	catalog, err := s.badges.ListCatalog(ctx)
	if err != nil {
		return fmt.Errorf("list badge catalog: %w", err)
	}

	earned, err := s.badges.ListEarnedIDs(ctx, userID)
	if err != nil {
		return fmt.Errorf("list earned badges: %w", err)
	}

	awardedAt := s.now()
	for _, b := range catalog {
		if earned[b.ID] {
			continue
		}
		if karma <= b.KarmaMax && !b.Contains(karma) {
			continue
		}

		created, err := s.badges.Award(ctx, userID, b.ID, awardedAt)
		if err != nil {
			return fmt.Errorf("award badge %s: %w", b.Level, err)
		}
		if created {
			s.log.InfoContext(ctx, "badge awarded",
				"user_id", userID, "level", b.Level, "karma", karma)
		}
	}
	return nil
}

// Progress reports the user's current badge level, how far they are
// into it and what remains until the next level.
func (s *Service) Progress(ctx context.Context, userID uuid.UUID) (*domain.BadgeProgress, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	catalog, err := s.badges.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("list badge catalog: %w", err)
	}

	earned, err := s.badges.ListEarned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list earned badges: %w", err)
	}

	progress := &domain.BadgeProgress{
		Karma:  user.Karma,
		Earned: earned,
	}

	for i := range catalog {
		b := catalog[i]
		if !b.Contains(user.Karma) {
			continue
		}

		progress.CurrentLevel = &b
		if b.KarmaMax > b.KarmaMin {
			progress.PercentIntoLevel = float64(user.Karma-b.KarmaMin) / float64(b.KarmaMax-b.KarmaMin) * 100
		} else {
			progress.PercentIntoLevel = 100
		}
		progress.KarmaToNextLevel = max(0, b.KarmaMax+1-user.Karma)
		break
	}
	return progress, nil
}
