package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

// Profile is the gamification summary shown on a user's page.
type Profile struct {
	User          domain.User
	BadgeProgress domain.BadgeProgress
}

// GetProfile returns the user together with their karma standing,
// streak counters and badge progress.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	progress, err := s.badges.Progress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("badge progress: %w", err)
	}

	return &Profile{User: *u, BadgeProgress: *progress}, nil
}
