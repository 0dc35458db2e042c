// Package saved implements explicit save/unsave of flyers and listing of
// a viewer's saved flyers. The swipe session's accept decisions write the
// same saved edge through the same repository.
package saved

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/thepole/flyerboard-backend/internal/domain"
	"github.com/thepole/flyerboard-backend/pkg/ctxutil"
)

type savedRepo interface {
	Upsert(ctx context.Context, userID, flyerID uuid.UUID) error
	Delete(ctx context.Context, userID, flyerID uuid.UUID) error
	ListSavedFlyers(ctx context.Context, userID uuid.UUID) ([]domain.Flyer, error)
}

// Service implements the saved-flyers business logic.
type Service struct {
	edges savedRepo
	log   *slog.Logger
}

// NewService creates a new saved service.
func NewService(log *slog.Logger, edges savedRepo) *Service {
	return &Service{
		edges: edges,
		log:   log.With("service", "saved"),
	}
}

// Save records the viewer's interest in a flyer. Saving an already-saved
// flyer is a no-op, not an error.
func (s *Service) Save(ctx context.Context, flyerID uuid.UUID) error {
	viewerID, ok := ctxutil.ViewerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if flyerID == uuid.Nil {
		return domain.NewValidationError("flyer_id", "required")
	}

	if err := s.edges.Upsert(ctx, viewerID, flyerID); err != nil {
		return fmt.Errorf("save flyer: %w", err)
	}
	return nil
}

// Unsave removes the viewer's saved edge for a flyer. Unsaving a flyer
// that was never saved is a no-op.
func (s *Service) Unsave(ctx context.Context, flyerID uuid.UUID) error {
	viewerID, ok := ctxutil.ViewerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if flyerID == uuid.Nil {
		return domain.NewValidationError("flyer_id", "required")
	}

	if err := s.edges.Delete(ctx, viewerID, flyerID); err != nil {
		return fmt.Errorf("unsave flyer: %w", err)
	}
	return nil
}

// List returns the viewer's saved flyers, most recently saved first.
func (s *Service) List(ctx context.Context) ([]domain.Flyer, error) {
	viewerID, ok := ctxutil.ViewerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	flyers, err := s.edges.ListSavedFlyers(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("list saved flyers: %w", err)
	}
	return flyers, nil
}
