package badge

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

var _ badgeRepo = &badgeRepoMock{}

type badgeRepoMock struct {
	ListCatalogFunc   func(ctx context.Context) ([]domain.Badge, error)
	ListEarnedFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.Badge, error)
	ListEarnedIDsFunc func(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error)
	AwardFunc         func(ctx context.Context, userID, badgeID uuid.UUID, awardedAt time.Time) (bool, error)

	calls struct {
		ListCatalog   []struct{}
		ListEarned    []struct{ UserID uuid.UUID }
		ListEarnedIDs []struct{ UserID uuid.UUID }
		Award         []struct {
			UserID  uuid.UUID
			BadgeID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *badgeRepoMock) ListCatalog(ctx context.Context) ([]domain.Badge, error) {
	if mock.ListCatalogFunc == nil {
		panic("badgeRepoMock.ListCatalogFunc: method is nil but badgeRepo.ListCatalog was just called")
	}
	mock.lock.Lock()
	mock.calls.ListCatalog = append(mock.calls.ListCatalog, struct{}{})
	mock.lock.Unlock()
	return mock.ListCatalogFunc(ctx)
}

func (mock *badgeRepoMock) ListCatalogCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListCatalog
}

func (mock *badgeRepoMock) ListEarned(ctx context.Context, userID uuid.UUID) ([]domain.Badge, error) {
	if mock.ListEarnedFunc == nil {
		panic("badgeRepoMock.ListEarnedFunc: method is nil but badgeRepo.ListEarned was just called")
	}
	mock.lock.Lock()
	mock.calls.ListEarned = append(mock.calls.ListEarned, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.ListEarnedFunc(ctx, userID)
}

func (mock *badgeRepoMock) ListEarnedCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListEarned
}

func (mock *badgeRepoMock) ListEarnedIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	if mock.ListEarnedIDsFunc == nil {
		panic("badgeRepoMock.ListEarnedIDsFunc: method is nil but badgeRepo.ListEarnedIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.ListEarnedIDs = append(mock.calls.ListEarnedIDs, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.ListEarnedIDsFunc(ctx, userID)
}

func (mock *badgeRepoMock) ListEarnedIDsCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListEarnedIDs
}

func (mock *badgeRepoMock) Award(ctx context.Context, userID, badgeID uuid.UUID, awardedAt time.Time) (bool, error) {
	if mock.AwardFunc == nil {
		panic("badgeRepoMock.AwardFunc: method is nil but badgeRepo.Award was just called")
	}
	mock.lock.Lock()
	mock.calls.Award = append(mock.calls.Award, struct {
		UserID  uuid.UUID
		BadgeID uuid.UUID
	}{userID, badgeID})
	mock.lock.Unlock()
	return mock.AwardFunc(ctx, userID, badgeID, awardedAt)
}

func (mock *badgeRepoMock) AwardCalls() []struct {
	UserID  uuid.UUID
	BadgeID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Award
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct{ ID uuid.UUID }
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
