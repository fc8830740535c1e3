package streak

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ListActiveFunc   func(ctx context.Context) ([]domain.User, error)
	UpdateStreakFunc func(ctx context.Context, id uuid.UUID, current, highest int) error

	calls struct {
		ListActive   []struct{}
		UpdateStreak []struct {
			ID      uuid.UUID
			Current int
			Highest int
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) ListActive(ctx context.Context) ([]domain.User, error) {
	if mock.ListActiveFunc == nil {
		panic("userRepoMock.ListActiveFunc: method is nil but userRepo.ListActive was just called")
	}
	mock.lock.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, struct{}{})
	mock.lock.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *userRepoMock) ListActiveCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListActive
}

func (mock *userRepoMock) UpdateStreak(ctx context.Context, id uuid.UUID, current, highest int) error {
	if mock.UpdateStreakFunc == nil {
		panic("userRepoMock.UpdateStreakFunc: method is nil but userRepo.UpdateStreak was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateStreak = append(mock.calls.UpdateStreak, struct {
		ID      uuid.UUID
		Current int
		Highest int
	}{id, current, highest})
	mock.lock.Unlock()
	return mock.UpdateStreakFunc(ctx, id, current, highest)
}

func (mock *userRepoMock) UpdateStreakCalls() []struct {
	ID      uuid.UUID
	Current int
	Highest int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateStreak
}

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	HasCompletedOnFunc func(ctx context.Context, userID uuid.UUID, dayStart time.Time) (bool, error)

	calls struct {
		HasCompletedOn []struct {
			UserID   uuid.UUID
			DayStart time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *taskRepoMock) HasCompletedOn(ctx context.Context, userID uuid.UUID, dayStart time.Time) (bool, error) {
	if mock.HasCompletedOnFunc == nil {
		panic("taskRepoMock.HasCompletedOnFunc: method is nil but taskRepo.HasCompletedOn was just called")
	}
	mock.lock.Lock()
	mock.calls.HasCompletedOn = append(mock.calls.HasCompletedOn, struct {
		UserID   uuid.UUID
		DayStart time.Time
	}{userID, dayStart})
	mock.lock.Unlock()
	return mock.HasCompletedOnFunc(ctx, userID, dayStart)
}

func (mock *taskRepoMock) HasCompletedOnCalls() []struct {
	UserID   uuid.UUID
	DayStart time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.HasCompletedOn
}

var _ karmaAwarder = &karmaAwarderMock{}

type karmaAwarderMock struct {
	AwardInTxFunc func(ctx context.Context, userID uuid.UUID, amount int, reason string) (int, error)

	calls struct {
		AwardInTx []struct {
			UserID uuid.UUID
			Amount int
			Reason string
		}
	}
	lock sync.RWMutex
}

func (mock *karmaAwarderMock) AwardInTx(ctx context.Context, userID uuid.UUID, amount int, reason string) (int, error) {
	if mock.AwardInTxFunc == nil {
		panic("karmaAwarderMock.AwardInTxFunc: method is nil but karmaAwarder.AwardInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.AwardInTx = append(mock.calls.AwardInTx, struct {
		UserID uuid.UUID
		Amount int
		Reason string
	}{userID, amount, reason})
	mock.lock.Unlock()
	return mock.AwardInTxFunc(ctx, userID, amount, reason)
}

func (mock *karmaAwarderMock) AwardInTxCalls() []struct {
	UserID uuid.UUID
	Amount int
	Reason string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AwardInTx
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
