package swipe

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/thepole/flyerboard-backend/internal/domain"
)

var _ candidateSource = &candidateSourceMock{}

type candidateSourceMock struct {
	CandidatesFunc func(ctx context.Context, viewer domain.Viewer, pred domain.FlyerPredicate, cursor *domain.FeedCursor, limit int) ([]domain.Flyer, error)

	calls struct {
		Candidates []struct {
			Viewer domain.Viewer
			Pred   domain.FlyerPredicate
			Cursor *domain.FeedCursor
			Limit  int
		}
	}
	lockCandidates sync.RWMutex
}

func (mock *candidateSourceMock) Candidates(ctx context.Context, viewer domain.Viewer, pred domain.FlyerPredicate, cursor *domain.FeedCursor, limit int) ([]domain.Flyer, error) {
	if mock.CandidatesFunc == nil {
		panic("candidateSourceMock.CandidatesFunc: method is nil but candidateSource.Candidates was just called")
	}
	callInfo := struct {
		Viewer domain.Viewer
		Pred   domain.FlyerPredicate
		Cursor *domain.FeedCursor
		Limit  int
	}{Viewer: viewer, Pred: pred, Cursor: cursor, Limit: limit}
	mock.lockCandidates.Lock()
	mock.calls.Candidates = append(mock.calls.Candidates, callInfo)
	mock.lockCandidates.Unlock()
	return mock.CandidatesFunc(ctx, viewer, pred, cursor, limit)
}

func (mock *candidateSourceMock) CandidatesCalls() []struct {
	Viewer domain.Viewer
	Pred   domain.FlyerPredicate
	Cursor *domain.FeedCursor
	Limit  int
} {
	mock.lockCandidates.RLock()
	calls := mock.calls.Candidates
	mock.lockCandidates.RUnlock()
	return calls
}

var _ edgeWriter = &edgeWriterMock{}

type edgeWriterMock struct {
	UpsertFunc func(ctx context.Context, userID, flyerID uuid.UUID) error

	calls struct {
		Upsert []struct {
			UserID  uuid.UUID
			FlyerID uuid.UUID
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *edgeWriterMock) Upsert(ctx context.Context, userID, flyerID uuid.UUID) error {
	if mock.UpsertFunc == nil {
		panic("edgeWriterMock.UpsertFunc: method is nil but edgeWriter.Upsert was just called")
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct {
		UserID  uuid.UUID
		FlyerID uuid.UUID
	}{UserID: userID, FlyerID: flyerID})
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, userID, flyerID)
}

func (mock *edgeWriterMock) UpsertCalls() []struct {
	UserID  uuid.UUID
	FlyerID uuid.UUID
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

var _ viewerResolver = &viewerResolverMock{}

type viewerResolverMock struct {
	ResolveViewerFunc func(ctx context.Context) (domain.Viewer, error)
}

func (mock *viewerResolverMock) ResolveViewer(ctx context.Context) (domain.Viewer, error) {
	if mock.ResolveViewerFunc == nil {
		panic("viewerResolverMock.ResolveViewerFunc: method is nil but viewerResolver.ResolveViewer was just called")
	}
	return mock.ResolveViewerFunc(ctx)
}
