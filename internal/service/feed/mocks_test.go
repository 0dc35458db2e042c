package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/thepole/flyerboard-backend/internal/domain"
)

var _ flyerRepo = &flyerRepoMock{}

type flyerRepoMock struct {
	QueryFunc   func(ctx context.Context, pred domain.FlyerPredicate, limit int, cursor *domain.FeedCursor) ([]domain.Flyer, error)
	GetByIDFunc func(ctx context.Context, flyerID uuid.UUID) (*domain.Flyer, error)

	calls struct {
		Query []struct {
			Pred   domain.FlyerPredicate
			Limit  int
			Cursor *domain.FeedCursor
		}
		GetByID []struct {
			FlyerID uuid.UUID
		}
	}
	lockQuery   sync.RWMutex
	lockGetByID sync.RWMutex
}

func (mock *flyerRepoMock) Query(ctx context.Context, pred domain.FlyerPredicate, limit int, cursor *domain.FeedCursor) ([]domain.Flyer, error) {
	if mock.QueryFunc == nil {
		panic("flyerRepoMock.QueryFunc: method is nil but flyerRepo.Query was just called")
	}
	callInfo := struct {
		Pred   domain.FlyerPredicate
		Limit  int
		Cursor *domain.FeedCursor
	}{Pred: pred, Limit: limit, Cursor: cursor}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, pred, limit, cursor)
}

func (mock *flyerRepoMock) QueryCalls() []struct {
	Pred   domain.FlyerPredicate
	Limit  int
	Cursor *domain.FeedCursor
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}

func (mock *flyerRepoMock) GetByID(ctx context.Context, flyerID uuid.UUID) (*domain.Flyer, error) {
	if mock.GetByIDFunc == nil {
		panic("flyerRepoMock.GetByIDFunc: method is nil but flyerRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ FlyerID uuid.UUID }{FlyerID: flyerID})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, flyerID)
}

var _ savedRepo = &savedRepoMock{}

type savedRepoMock struct {
	FilterSavedIDsFunc func(ctx context.Context, userID uuid.UUID, flyerIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	calls struct {
		FilterSavedIDs []struct {
			UserID   uuid.UUID
			FlyerIDs []uuid.UUID
		}
	}
	lockFilterSavedIDs sync.RWMutex
}

func (mock *savedRepoMock) FilterSavedIDs(ctx context.Context, userID uuid.UUID, flyerIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if mock.FilterSavedIDsFunc == nil {
		panic("savedRepoMock.FilterSavedIDsFunc: method is nil but savedRepo.FilterSavedIDs was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		FlyerIDs []uuid.UUID
	}{UserID: userID, FlyerIDs: flyerIDs}
	mock.lockFilterSavedIDs.Lock()
	mock.calls.FilterSavedIDs = append(mock.calls.FilterSavedIDs, callInfo)
	mock.lockFilterSavedIDs.Unlock()
	return mock.FilterSavedIDsFunc(ctx, userID, flyerIDs)
}

func (mock *savedRepoMock) FilterSavedIDsCalls() []struct {
	UserID   uuid.UUID
	FlyerIDs []uuid.UUID
} {
	mock.lockFilterSavedIDs.RLock()
	calls := mock.calls.FilterSavedIDs
	mock.lockFilterSavedIDs.RUnlock()
	return calls
}

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
}

func (mock *profileRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID)
}

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.Category, error)
}

func (mock *categoryRepoMock) List(ctx context.Context) ([]domain.Category, error) {
	if mock.ListFunc == nil {
		panic("categoryRepoMock.ListFunc: method is nil but categoryRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}
