// Package feed implements feed composition: resolving the viewer, turning
// filter criteria into the eligibility predicate, and producing pages of
// flyers annotated with the viewer's save status.
package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/thepole/flyerboard-backend/internal/config"
	"github.com/thepole/flyerboard-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type flyerRepo interface {
	Query(ctx context.Context, pred domain.FlyerPredicate, limit int, cursor *domain.FeedCursor) ([]domain.Flyer, error)
	GetByID(ctx context.Context, flyerID uuid.UUID) (*domain.Flyer, error)
}

type savedRepo interface {
	FilterSavedIDs(ctx context.Context, userID uuid.UUID, flyerIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

type profileRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the feed business logic.
type Service struct {
	flyers     flyerRepo
	saved      savedRepo
	profiles   profileRepo
	categories categoryRepo
	cfg        config.FeedConfig
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new feed service.
func NewService(
	log *slog.Logger,
	flyers flyerRepo,
	saved savedRepo,
	profiles profileRepo,
	categories categoryRepo,
	cfg config.FeedConfig,
) *Service {
	return &Service{
		flyers:     flyers,
		saved:      saved,
		profiles:   profiles,
		categories: categories,
		cfg:        cfg,
		log:        log.With("service", "feed"),
		now:        time.Now,
	}
}

// Categories returns all flyer categories ordered by name.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}
