package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

// Register creates a new user and seeds their starting badge. Returns
// ErrAlreadyExists if the email or username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("user.Register hash password: %w", err)
	}

	// Email and username uniqueness are enforced by DB constraints.
	u := domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		IsActive:     true,
		RegisteredAt: s.now(),
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Create(txCtx, &u); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		// A fresh account starts at zero karma, which lands inside the
		// first catalog level, so reconciling here hands out the
		// starting badge.
		if err := s.badges.Reconcile(txCtx, u.ID, 0); err != nil {
			return fmt.Errorf("seed badges: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("user.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", "user_id", u.ID, "username", u.Username)
	return &u, nil
}
