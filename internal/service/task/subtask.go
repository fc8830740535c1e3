package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

// Subtasks returns the checklist items of a task the user owns.
func (s *Service) Subtasks(ctx context.Context, userID, taskID uuid.UUID) ([]domain.SubTask, error) {
	if _, err := s.tasks.GetByID(ctx, userID, taskID); err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return s.tasks.ListSubtasks(ctx, taskID)
}

// AddSubtask appends a checklist item to a task the user owns.
func (s *Service) AddSubtask(ctx context.Context, userID uuid.UUID, input AddSubtaskInput) (*domain.SubTask, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.tasks.GetByID(ctx, userID, input.TaskID); err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	sub := domain.SubTask{
		ID:           uuid.New(),
		ParentTaskID: input.TaskID,
		Title:        input.Title,
	}
	if err := s.tasks.CreateSubtask(ctx, &sub); err != nil {
		return nil, fmt.Errorf("create subtask: %w", err)
	}
	return &sub, nil
}

// CompleteSubtask sets the completion state of a single checklist item.
// Subtask toggles never move karma, only the parent task does.
func (s *Service) CompleteSubtask(ctx context.Context, userID, taskID, subtaskID uuid.UUID, completed bool) (*MutationResult, error) {
	if _, err := s.tasks.GetByID(ctx, userID, taskID); err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	if err := s.tasks.SetSubtaskCompleted(ctx, subtaskID, completed); err != nil {
		return nil, fmt.Errorf("set subtask completed: %w", err)
	}
	return &MutationResult{InvalidatedKeys: InvalidatedKeys(userID)}, nil
}

// SubtaskCompletionPercent reports how much of the task's checklist is
// done, as a percentage. A task with no subtasks is at 0%.
func (s *Service) SubtaskCompletionPercent(ctx context.Context, userID, taskID uuid.UUID) (float64, error) {
	if _, err := s.tasks.GetByID(ctx, userID, taskID); err != nil {
		return 0, fmt.Errorf("get task: %w", err)
	}

	total, done, err := s.tasks.CountSubtasks(ctx, taskID)
	if err != nil {
		return 0, fmt.Errorf("count subtasks: %w", err)
	}
	if total == 0 {
		return 0, nil
	}
	return float64(done) / float64(total) * 100, nil
}

// AllSubtasksDone reports whether every checklist item of the task is
// completed. A task with no subtasks is never "all done".
func (s *Service) AllSubtasksDone(ctx context.Context, userID, taskID uuid.UUID) (bool, error) {
	if _, err := s.tasks.GetByID(ctx, userID, taskID); err != nil {
		return false, fmt.Errorf("get task: %w", err)
	}

	total, done, err := s.tasks.CountSubtasks(ctx, taskID)
	if err != nil {
		return false, fmt.Errorf("count subtasks: %w", err)
	}
	return total > 0 && done == total, nil
}
