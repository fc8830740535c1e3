package recurrence

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	ListDueTemplatesFunc func(ctx context.Context, now time.Time) ([]domain.RecurringTemplate, error)
	CreateFunc           func(ctx context.Context, t *domain.Task) error
	CloneSubtasksFunc    func(ctx context.Context, fromTaskID, toTaskID uuid.UUID) error
	AdvanceRuleFunc      func(ctx context.Context, ruleID uuid.UUID, next time.Time) error

	calls struct {
		ListDueTemplates []struct{ Now time.Time }
		Create           []struct{ Task domain.Task }
		CloneSubtasks    []struct {
			FromTaskID uuid.UUID
			ToTaskID   uuid.UUID
		}
		AdvanceRule []struct {
			RuleID uuid.UUID
			Next   time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *taskRepoMock) ListDueTemplates(ctx context.Context, now time.Time) ([]domain.RecurringTemplate, error) {
	if mock.ListDueTemplatesFunc == nil {
		panic("taskRepoMock.ListDueTemplatesFunc: method is nil but taskRepo.ListDueTemplates was just called")
	}
	mock.lock.Lock()
	mock.calls.ListDueTemplates = append(mock.calls.ListDueTemplates, struct{ Now time.Time }{now})
	mock.lock.Unlock()
	return mock.ListDueTemplatesFunc(ctx, now)
}

func (mock *taskRepoMock) ListDueTemplatesCalls() []struct{ Now time.Time } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListDueTemplates
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

func (mock *taskRepoMock) CloneSubtasks(ctx context.Context, fromTaskID, toTaskID uuid.UUID) error {
	if mock.CloneSubtasksFunc == nil {
		panic("taskRepoMock.CloneSubtasksFunc: method is nil but taskRepo.CloneSubtasks was just called")
	}
	mock.lock.Lock()
	mock.calls.CloneSubtasks = append(mock.calls.CloneSubtasks, struct {
		FromTaskID uuid.UUID
		ToTaskID   uuid.UUID
	}{fromTaskID, toTaskID})
	mock.lock.Unlock()
	return mock.CloneSubtasksFunc(ctx, fromTaskID, toTaskID)
}

func (mock *taskRepoMock) CloneSubtasksCalls() []struct {
	FromTaskID uuid.UUID
	ToTaskID   uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CloneSubtasks
}

func (mock *taskRepoMock) AdvanceRule(ctx context.Context, ruleID uuid.UUID, next time.Time) error {
	if mock.AdvanceRuleFunc == nil {
		panic("taskRepoMock.AdvanceRuleFunc: method is nil but taskRepo.AdvanceRule was just called")
	}
	mock.lock.Lock()
	mock.calls.AdvanceRule = append(mock.calls.AdvanceRule, struct {
		RuleID uuid.UUID
		Next   time.Time
	}{ruleID, next})
	mock.lock.Unlock()
	return mock.AdvanceRuleFunc(ctx, ruleID, next)
}

func (mock *taskRepoMock) AdvanceRuleCalls() []struct {
	RuleID uuid.UUID
	Next   time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AdvanceRule
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
