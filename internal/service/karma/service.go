package karma

import (
	"context"
	"errors"
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
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateKarma(ctx context.Context, id uuid.UUID, karma int) error
}

type ledgerRepo interface {
	Create(ctx context.Context, tx *domain.KarmaTransaction) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.KarmaTransaction, int, error)
}

type badgeAssigner interface {
	Reconcile(ctx context.Context, userID uuid.UUID, karma int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service maintains per-user karma totals and the transaction ledger.
type Service struct {
	users  userRepo
	ledger ledgerRepo
	badges badgeAssigner
	tx     txManager
	log    *slog.Logger
	cfg    config.KarmaConfig
	now    func() time.Time
	sleep  func(time.Duration)
}

// NewService creates a new karma service.
func NewService(
	log *slog.Logger,
	users userRepo,
	ledger ledgerRepo,
	badges badgeAssigner,
	tx txManager,
	cfg config.KarmaConfig,
) *Service {
	return &Service{
		users:  users,
		ledger: ledger,
		badges: badges,
		tx:     tx,
		log:    log.With("service", "karma"),
		cfg:    cfg,
		now:    func() time.Time { return time.Now().UTC() },
		sleep:  time.Sleep,
	}
}

// Award applies a signed karma amount to the user's total, records the
// raw amount in the ledger and reconciles badges, all in one
// transaction. The stored total never goes below zero; the ledger keeps
// the amount as passed. A zero amount is a no-op. Concurrent awards for
// the same user serialize on a row lock; lock conflicts are retried
// with backoff before surfacing domain.ErrConflict.
func (s *Service) Award(ctx context.Context, userID uuid.UUID, amount int, reason string) (int, error) {
	if amount == 0 {
		s.log.DebugContext(ctx, "zero karma award skipped", "user_id", userID, "reason", reason)
		return 0, nil
	}
	if reason == "" {
		return 0, domain.NewValidationError("reason", "must not be empty")
	}

	var (
		total int
		err   error
	)
	for try := 0; try < s.cfg.AwardMaxRetries; try++ {
		if try > 0 {
			s.sleep(s.cfg.AwardRetryBackoff * time.Duration(try))
		}

		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			var applyErr error
			total, applyErr = s.apply(ctx, userID, amount, reason)
			return applyErr
		})
		if err == nil {
			s.log.InfoContext(ctx, "karma awarded",
				"user_id", userID, "amount", amount, "reason", reason, "total", total)
			return total, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return 0, err
		}

		s.log.WarnContext(ctx, "karma award conflict, retrying",
			"user_id", userID, "attempt", try+1)
	}
	return 0, err
}

// AwardInTx applies an award inside the caller's already-open
// transaction, so the award commits or rolls back together with the
// caller's own writes. The caller owns retries; lock conflicts surface
// as domain.ErrConflict without backoff. Zero amounts and empty
// reasons behave as in Award.
func (s *Service) AwardInTx(ctx context.Context, userID uuid.UUID, amount int, reason string) (int, error) {
	if amount == 0 {
		s.log.DebugContext(ctx, "zero karma award skipped", "user_id", userID, "reason", reason)
		return 0, nil
	}
	if reason == "" {
		return 0, domain.NewValidationError("reason", "must not be empty")
	}
	return s.apply(ctx, userID, amount, reason)
}

// apply performs the read-modify-write, ledger insert and badge
// reconcile. It must run inside a transaction.
func (s *Service) apply(ctx context.Context, userID uuid.UUID, amount int, reason string) (int, error) {
	user, err := s.users.GetByIDForUpdate(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("lock user: %w", err)
	}

	total := user.Karma + amount
	if total < 0 {
		total = 0
	}

	if err := s.users.UpdateKarma(ctx, userID, total); err != nil {
		return 0, fmt.Errorf("update karma: %w", err)
	}

	entry := domain.KarmaTransaction{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: s.now(),
	}
	if err := s.ledger.Create(ctx, &entry); err != nil {
		return 0, fmt.Errorf("record transaction: %w", err)
	}

	if err := s.badges.Reconcile(ctx, userID, total); err != nil {
		return 0, fmt.Errorf("reconcile badges: %w", err)
	}
	return total, nil
}

// History returns the user's karma transactions newest-first, along
// with the total count.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.KarmaTransaction, int, error) {
	if limit < 0 || offset < 0 {
		return nil, 0, domain.NewValidationError("pagination", "limit and offset must not be negative")
	}
	return s.ledger.ListByUser(ctx, userID, limit, offset)
}
