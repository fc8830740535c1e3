package user

import (
	"context"
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
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

type badgeAssigner interface {
	Reconcile(ctx context.Context, userID uuid.UUID, karma int) error
	Progress(ctx context.Context, userID uuid.UUID) (*domain.BadgeProgress, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements registration and the profile view.
type Service struct {
	users  userRepo
	badges badgeAssigner
	tx     txManager
	log    *slog.Logger
	cfg    config.UserConfig
	now    func() time.Time
}

// NewService creates a new user service.
func NewService(
	log *slog.Logger,
	users userRepo,
	badges badgeAssigner,
	tx txManager,
	cfg config.UserConfig,
) *Service {
	return &Service{
		users:  users,
		badges: badges,
		tx:     tx,
		log:    log.With("service", "user"),
		cfg:    cfg,
		now:    func() time.Time { return time.Now().UTC() },
	}
}
