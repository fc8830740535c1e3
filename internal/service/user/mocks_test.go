package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateFunc  func(ctx context.Context, u *domain.User) error

	calls struct {
		GetByID []struct{ ID uuid.UUID }
		Create  []struct{ User domain.User }
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) error {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ User domain.User }{*u})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct{ User domain.User } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

var _ badgeAssigner = &badgeAssignerMock{}

type badgeAssignerMock struct {
	ReconcileFunc func(ctx context.Context, userID uuid.UUID, karma int) error
	ProgressFunc  func(ctx context.Context, userID uuid.UUID) (*domain.BadgeProgress, error)

	calls struct {
		Reconcile []struct {
			UserID uuid.UUID
			Karma  int
		}
		Progress []struct{ UserID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *badgeAssignerMock) Reconcile(ctx context.Context, userID uuid.UUID, karma int) error {
	if mock.ReconcileFunc == nil {
		panic("badgeAssignerMock.ReconcileFunc: method is nil but badgeAssigner.Reconcile was just called")
	}
	mock.lock.Lock()
	mock.calls.Reconcile = append(mock.calls.Reconcile, struct {
		UserID uuid.UUID
		Karma  int
	}{userID, karma})
	mock.lock.Unlock()
	return mock.ReconcileFunc(ctx, userID, karma)
}

func (mock *badgeAssignerMock) ReconcileCalls() []struct {
	UserID uuid.UUID
	Karma  int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Reconcile
}

func (mock *badgeAssignerMock) Progress(ctx context.Context, userID uuid.UUID) (*domain.BadgeProgress, error) {
	if mock.ProgressFunc == nil {
		panic("badgeAssignerMock.ProgressFunc: method is nil but badgeAssigner.Progress was just called")
	}
	mock.lock.Lock()
	mock.calls.Progress = append(mock.calls.Progress, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.ProgressFunc(ctx, userID)
}

func (mock *badgeAssignerMock) ProgressCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Progress
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
