package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

// Complete sets the completion state of a task and settles the karma
// reward for the change. Completing awards the configured amount;
// un-completing takes it back.
func (s *Service) Complete(ctx context.Context, userID, taskID uuid.UUID, completed bool) (*MutationResult, error) {
	t, err := s.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	if t.IsTemplate() {
		return nil, domain.NewValidationError("task_id", "recurring templates cannot be completed")
	}

	if t.IsCompleted == completed {
		return &MutationResult{Task: t, InvalidatedKeys: InvalidatedKeys(userID)}, nil
	}

	now := s.now()
	if err := s.tasks.SetCompleted(ctx, userID, taskID, completed, now); err != nil {
		return nil, fmt.Errorf("set completed: %w", err)
	}

	amount := s.cfg.CompletionReward
	reason := domain.KarmaReasonTaskCompleted
	if !completed {
		amount = -s.cfg.CompletionReward
		reason = domain.KarmaReasonTaskUncompleted
	}
	if _, err := s.karma.Award(ctx, userID, amount, reason); err != nil {
		return nil, fmt.Errorf("award karma: %w", err)
	}

	t.IsCompleted = completed
	if completed {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
	t.UpdatedAt = now

	s.log.InfoContext(ctx, "task completion changed",
		"task_id", taskID, "user_id", userID, "completed", completed)
	return &MutationResult{Task: t, InvalidatedKeys: InvalidatedKeys(userID)}, nil
}
