package task

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	GetByIDFunc             func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	CreateFunc              func(ctx context.Context, t *domain.Task) error
	SetCompletedFunc        func(ctx context.Context, userID, taskID uuid.UUID, completed bool, now time.Time) error
	DeleteFunc              func(ctx context.Context, userID, taskID uuid.UUID) error
	ListFunc                func(ctx context.Context, userID uuid.UUID, f domain.TaskFilter) ([]domain.Task, error)
	CreateRuleFunc          func(ctx context.Context, rule *domain.RecurrenceRule) error
	ListSubtasksFunc        func(ctx context.Context, taskID uuid.UUID) ([]domain.SubTask, error)
	CreateSubtaskFunc       func(ctx context.Context, s *domain.SubTask) error
	SetSubtaskCompletedFunc func(ctx context.Context, subtaskID uuid.UUID, completed bool) error
	CountSubtasksFunc       func(ctx context.Context, taskID uuid.UUID) (total, completed int, err error)

	calls struct {
		GetByID []struct {
			UserID uuid.UUID
			TaskID uuid.UUID
		}
		Create       []struct{ Task domain.Task }
		SetCompleted []struct {
			UserID    uuid.UUID
			TaskID    uuid.UUID
			Completed bool
			Now       time.Time
		}
		Delete []struct {
			UserID uuid.UUID
			TaskID uuid.UUID
		}
		List []struct {
			UserID uuid.UUID
			Filter domain.TaskFilter
		}
		CreateRule          []struct{ Rule domain.RecurrenceRule }
		ListSubtasks        []struct{ TaskID uuid.UUID }
		CreateSubtask       []struct{ Subtask domain.SubTask }
		SetSubtaskCompleted []struct {
			SubtaskID uuid.UUID
			Completed bool
		}
		CountSubtasks []struct{ TaskID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *taskRepoMock) GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	if mock.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		UserID uuid.UUID
		TaskID uuid.UUID
	}{userID, taskID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID, taskID)
}

func (mock *taskRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	TaskID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *taskRepoMock) Create(ctx context.Context, t *domain.Task) error {
	if mock.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Task domain.Task }{*t})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *taskRepoMock) CreateCalls() []struct{ Task domain.Task } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *taskRepoMock) SetCompleted(ctx context.Context, userID, taskID uuid.UUID, completed bool, now time.Time) error {
	if mock.SetCompletedFunc == nil {
		panic("taskRepoMock.SetCompletedFunc: method is nil but taskRepo.SetCompleted was just called")
	}
	mock.lock.Lock()
	mock.calls.SetCompleted = append(mock.calls.SetCompleted, struct {
		UserID    uuid.UUID
		TaskID    uuid.UUID
		Completed bool
		Now       time.Time
	}{userID, taskID, completed, now})
	mock.lock.Unlock()
	return mock.SetCompletedFunc(ctx, userID, taskID, completed, now)
}

func (mock *taskRepoMock) SetCompletedCalls() []struct {
	UserID    uuid.UUID
	TaskID    uuid.UUID
	Completed bool
	Now       time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetCompleted
}

func (mock *taskRepoMock) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("taskRepoMock.DeleteFunc: method is nil but taskRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID uuid.UUID
		TaskID uuid.UUID
	}{userID, taskID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, taskID)
}

func (mock *taskRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	TaskID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *taskRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.TaskFilter) ([]domain.Task, error) {
	if mock.ListFunc == nil {
		panic("taskRepoMock.ListFunc: method is nil but taskRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		UserID uuid.UUID
		Filter domain.TaskFilter
	}{userID, f})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, userID, f)
}

func (mock *taskRepoMock) ListCalls() []struct {
	UserID uuid.UUID
	Filter domain.TaskFilter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *taskRepoMock) CreateRule(ctx context.Context, rule *domain.RecurrenceRule) error {
	if mock.CreateRuleFunc == nil {
		panic("taskRepoMock.CreateRuleFunc: method is nil but taskRepo.CreateRule was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateRule = append(mock.calls.CreateRule, struct{ Rule domain.RecurrenceRule }{*rule})
	mock.lock.Unlock()
	return mock.CreateRuleFunc(ctx, rule)
}

func (mock *taskRepoMock) CreateRuleCalls() []struct{ Rule domain.RecurrenceRule } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateRule
}

func (mock *taskRepoMock) ListSubtasks(ctx context.Context, taskID uuid.UUID) ([]domain.SubTask, error) {
	if mock.ListSubtasksFunc == nil {
		panic("taskRepoMock.ListSubtasksFunc: method is nil but taskRepo.ListSubtasks was just called")
	}
	mock.lock.Lock()
	mock.calls.ListSubtasks = append(mock.calls.ListSubtasks, struct{ TaskID uuid.UUID }{taskID})
	mock.lock.Unlock()
	return mock.ListSubtasksFunc(ctx, taskID)
}

func (mock *taskRepoMock) ListSubtasksCalls() []struct{ TaskID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListSubtasks
}

func (mock *taskRepoMock) CreateSubtask(ctx context.Context, s *domain.SubTask) error {
	if mock.CreateSubtaskFunc == nil {
		panic("taskRepoMock.CreateSubtaskFunc: method is nil but taskRepo.CreateSubtask was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateSubtask = append(mock.calls.CreateSubtask, struct{ Subtask domain.SubTask }{*s})
	mock.lock.Unlock()
	return mock.CreateSubtaskFunc(ctx, s)
}

func (mock *taskRepoMock) CreateSubtaskCalls() []struct{ Subtask domain.SubTask } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateSubtask
}

func (mock *taskRepoMock) SetSubtaskCompleted(ctx context.Context, subtaskID uuid.UUID, completed bool) error {
	if mock.SetSubtaskCompletedFunc == nil {
		panic("taskRepoMock.SetSubtaskCompletedFunc: method is nil but taskRepo.SetSubtaskCompleted was just called")
	}
	mock.lock.Lock()
	mock.calls.SetSubtaskCompleted = append(mock.calls.SetSubtaskCompleted, struct {
		SubtaskID uuid.UUID
		Completed bool
	}{subtaskID, completed})
	mock.lock.Unlock()
	return mock.SetSubtaskCompletedFunc(ctx, subtaskID, completed)
}

func (mock *taskRepoMock) SetSubtaskCompletedCalls() []struct {
	SubtaskID uuid.UUID
	Completed bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetSubtaskCompleted
}

func (mock *taskRepoMock) CountSubtasks(ctx context.Context, taskID uuid.UUID) (int, int, error) {
	if mock.CountSubtasksFunc == nil {
		panic("taskRepoMock.CountSubtasksFunc: method is nil but taskRepo.CountSubtasks was just called")
	}
	mock.lock.Lock()
	mock.calls.CountSubtasks = append(mock.calls.CountSubtasks, struct{ TaskID uuid.UUID }{taskID})
	mock.lock.Unlock()
	return mock.CountSubtasksFunc(ctx, taskID)
}

func (mock *taskRepoMock) CountSubtasksCalls() []struct{ TaskID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountSubtasks
}

var _ karmaAwarder = &karmaAwarderMock{}

type karmaAwarderMock struct {
	AwardFunc func(ctx context.Context, userID uuid.UUID, amount int, reason string) (int, error)

	calls struct {
		Award []struct {
			UserID uuid.UUID
			Amount int
			Reason string
		}
	}
	lock sync.RWMutex
}

func (mock *karmaAwarderMock) Award(ctx context.Context, userID uuid.UUID, amount int, reason string) (int, error) {
	if mock.AwardFunc == nil {
		panic("karmaAwarderMock.AwardFunc: method is nil but karmaAwarder.Award was just called")
	}
	mock.lock.Lock()
	mock.calls.Award = append(mock.calls.Award, struct {
		UserID uuid.UUID
		Amount int
		Reason string
	}{userID, amount, reason})
	mock.lock.Unlock()
	return mock.AwardFunc(ctx, userID, amount, reason)
}

func (mock *karmaAwarderMock) AwardCalls() []struct {
	UserID uuid.UUID
	Amount int
	Reason string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Award
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
