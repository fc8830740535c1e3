package karma

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateKarmaFunc      func(ctx context.Context, id uuid.UUID, karma int) error

	calls struct {
		GetByIDForUpdate []struct{ ID uuid.UUID }
		UpdateKarma      []struct {
			ID    uuid.UUID
			Karma int
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("userRepoMock.GetByIDForUpdateFunc: method is nil but userRepo.GetByIDForUpdate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDForUpdateCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByIDForUpdate
}

func (mock *userRepoMock) UpdateKarma(ctx context.Context, id uuid.UUID, karma int) error {
	if mock.UpdateKarmaFunc == nil {
		panic("userRepoMock.UpdateKarmaFunc: method is nil but userRepo.UpdateKarma was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateKarma = append(mock.calls.UpdateKarma, struct {
		ID    uuid.UUID
		Karma int
	}{id, karma})
	mock.lock.Unlock()
	return mock.UpdateKarmaFunc(ctx, id, karma)
}

func (mock *userRepoMock) UpdateKarmaCalls() []struct {
	ID    uuid.UUID
	Karma int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateKarma
}

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	CreateFunc     func(ctx context.Context, tx *domain.KarmaTransaction) error
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.KarmaTransaction, int, error)

	calls struct {
		Create     []struct{ Tx domain.KarmaTransaction }
		ListByUser []struct {
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lock sync.RWMutex
}

func (mock *ledgerRepoMock) Create(ctx context.Context, tx *domain.KarmaTransaction) error {
	if mock.CreateFunc == nil {
		panic("ledgerRepoMock.CreateFunc: method is nil but ledgerRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Tx domain.KarmaTransaction }{*tx})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, tx)
}

func (mock *ledgerRepoMock) CreateCalls() []struct{ Tx domain.KarmaTransaction } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *ledgerRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.KarmaTransaction, int, error) {
	if mock.ListByUserFunc == nil {
		panic("ledgerRepoMock.ListByUserFunc: method is nil but ledgerRepo.ListByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct {
		UserID uuid.UUID
		Limit  int
		Offset int
	}{userID, limit, offset})
	mock.lock.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *ledgerRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByUser
}

var _ badgeAssigner = &badgeAssignerMock{}

type badgeAssignerMock struct {
	ReconcileFunc func(ctx context.Context, userID uuid.UUID, karma int) error

	calls struct {
		Reconcile []struct {
			UserID uuid.UUID
			Karma  int
		}
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
