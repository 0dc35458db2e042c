package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/thepole/flyerboard-backend/internal/domain"
	"github.com/thepole/flyerboard-backend/internal/service/feed"
	"github.com/thepole/flyerboard-backend/internal/service/swipe"
)

var _ feedService = &feedServiceMock{}

type feedServiceMock struct {
	ListFunc       func(ctx context.Context, in feed.ListInput) (*feed.ListResult, error)
	CategoriesFunc func(ctx context.Context) ([]domain.Category, error)
	GetFlyerFunc   func(ctx context.Context, flyerID uuid.UUID) (*domain.Flyer, error)
}

func (m *feedServiceMock) List(ctx context.Context, in feed.ListInput) (*feed.ListResult, error) {
	if m.ListFunc == nil {
		panic("feedServiceMock.ListFunc: method is nil but feedService.List was just called")
	}
	return m.ListFunc(ctx, in)
}

func (m *feedServiceMock) Categories(ctx context.Context) ([]domain.Category, error) {
	if m.CategoriesFunc == nil {
		panic("feedServiceMock.CategoriesFunc: method is nil but feedService.Categories was just called")
	}
	return m.CategoriesFunc(ctx)
}

func (m *feedServiceMock) GetFlyer(ctx context.Context, flyerID uuid.UUID) (*domain.Flyer, error) {
	if m.GetFlyerFunc == nil {
		panic("feedServiceMock.GetFlyerFunc: method is nil but feedService.GetFlyer was just called")
	}
	return m.GetFlyerFunc(ctx, flyerID)
}

var _ swipeService = &swipeServiceMock{}

type swipeServiceMock struct {
	StartFunc  func(ctx context.Context, input swipe.StartInput) (swipe.Snapshot, error)
	StateFunc  func(ctx context.Context) (swipe.Snapshot, error)
	DecideFunc func(ctx context.Context, direction swipe.Direction) (*swipe.DecideResult, error)
	ResetFunc  func(ctx context.Context, policy swipe.ResetPolicy) (swipe.Snapshot, error)
	EndFunc    func(ctx context.Context) error
}

func (m *swipeServiceMock) Start(ctx context.Context, input swipe.StartInput) (swipe.Snapshot, error) {
	if m.StartFunc == nil {
		panic("swipeServiceMock.StartFunc: method is nil but swipeService.Start was just called")
	}
	return m.StartFunc(ctx, input)
}

func (m *swipeServiceMock) State(ctx context.Context) (swipe.Snapshot, error) {
	if m.StateFunc == nil {
		panic("swipeServiceMock.StateFunc: method is nil but swipeService.State was just called")
	}
	return m.StateFunc(ctx)
}

func (m *swipeServiceMock) Decide(ctx context.Context, direction swipe.Direction) (*swipe.DecideResult, error) {
	if m.DecideFunc == nil {
		panic("swipeServiceMock.DecideFunc: method is nil but swipeService.Decide was just called")
	}
	return m.DecideFunc(ctx, direction)
}

func (m *swipeServiceMock) Reset(ctx context.Context, policy swipe.ResetPolicy) (swipe.Snapshot, error) {
	if m.ResetFunc == nil {
		panic("swipeServiceMock.ResetFunc: method is nil but swipeService.Reset was just called")
	}
	return m.ResetFunc(ctx, policy)
}

func (m *swipeServiceMock) End(ctx context.Context) error {
	if m.EndFunc == nil {
		panic("swipeServiceMock.EndFunc: method is nil but swipeService.End was just called")
	}
	return m.EndFunc(ctx)
}

var _ savedService = &savedServiceMock{}

type savedServiceMock struct {
	SaveFunc   func(ctx context.Context, flyerID uuid.UUID) error
	UnsaveFunc func(ctx context.Context, flyerID uuid.UUID) error
	ListFunc   func(ctx context.Context) ([]domain.Flyer, error)
}

func (m *savedServiceMock) Save(ctx context.Context, flyerID uuid.UUID) error {
	if m.SaveFunc == nil {
		panic("savedServiceMock.SaveFunc: method is nil but savedService.Save was just called")
	}
	return m.SaveFunc(ctx, flyerID)
}

func (m *savedServiceMock) Unsave(ctx context.Context, flyerID uuid.UUID) error {
	if m.UnsaveFunc == nil {
		panic("savedServiceMock.UnsaveFunc: method is nil but savedService.Unsave was just called")
	}
	return m.UnsaveFunc(ctx, flyerID)
}

func (m *savedServiceMock) List(ctx context.Context) ([]domain.Flyer, error) {
	if m.ListFunc == nil {
		panic("savedServiceMock.ListFunc: method is nil but savedService.List was just called")
	}
	return m.ListFunc(ctx)
}
