package feed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/thepole/flyerboard-backend/internal/domain"
)

// ListInput holds the parameters for a feed page load.
type ListInput struct {
	Criteria CriteriaInput
	Limit    int
	Cursor   *domain.FeedCursor
}

// ListResult is one recency-ordered page of eligible flyers.
type ListResult struct {
	Flyers      []domain.Flyer
	Eligibility Eligibility
	// NextCursor points past the last returned flyer; nil when the page
	// was short, i.e. the feed is exhausted.
	NextCursor *domain.FeedCursor
}

// List composes one feed page: criteria are validated, the eligibility
// predicate is computed for the current viewer, the store is queried in
// recency-descending order, and results are annotated with the viewer's
// save status.
func (s *Service) List(ctx context.Context, in ListInput) (*ListResult, error) {
	criteria, err := ParseCriteria(in.Criteria)
	if err != nil {
		return nil, err
	}

	viewer, err := s.ResolveViewer(ctx)
	if err != nil {
		return nil, err
	}

	eligibility := ComputeEligibility(viewer, criteria)

	limit := in.Limit
	if limit <= 0 {
		limit = s.cfg.PageLimit
	}
	if limit > s.cfg.MaxPageLimit {
		limit = s.cfg.MaxPageLimit
	}

	flyers, err := s.Candidates(ctx, viewer, eligibility.Predicate, in.Cursor, limit)
	if err != nil {
		return nil, err
	}

	var next *domain.FeedCursor
	if len(flyers) == limit {
		last := flyers[len(flyers)-1]
		next = &domain.FeedCursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	s.log.InfoContext(ctx, "feed page composed",
		slog.Int("count", len(flyers)),
		slog.Bool("adult_allowed", eligibility.Predicate.AllowAdult),
	)

	return &ListResult{
		Flyers:      flyers,
		Eligibility: eligibility,
		NextCursor:  next,
	}, nil
}

// Candidates queries eligible flyers for the given predicate and annotates
// them with the viewer's save status. It backs both the browse feed and
// swipe session replenishment.
func (s *Service) Candidates(ctx context.Context, viewer domain.Viewer, pred domain.FlyerPredicate, cursor *domain.FeedCursor, limit int) ([]domain.Flyer, error) {
	flyers, err := s.flyers.Query(ctx, pred, limit, cursor)
	if err != nil {
		return nil, fmt.Errorf("query flyers: %w", err)
	}

	if !viewer.Authenticated || len(flyers) == 0 {
		return flyers, nil
	}

	ids := make([]uuid.UUID, len(flyers))
	for i, f := range flyers {
		ids[i] = f.ID
	}

	savedIDs, err := s.saved.FilterSavedIDs(ctx, viewer.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("filter saved ids: %w", err)
	}

	for i := range flyers {
		flyers[i].IsSaved = savedIDs[flyers[i].ID]
	}

	return flyers, nil
}

// GetFlyer returns a single eligible flyer by ID with saved-status
// annotation. A flyer the predicate would hide (unapproved, inactive, or
// adult content the viewer may not see) is reported as not found.
func (s *Service) GetFlyer(ctx context.Context, flyerID uuid.UUID) (*domain.Flyer, error) {
	viewer, err := s.ResolveViewer(ctx)
	if err != nil {
		return nil, err
	}

	flyer, err := s.flyers.GetByID(ctx, flyerID)
	if err != nil {
		return nil, err
	}

	pred := domain.FlyerPredicate{AllowAdult: viewer.CanSeeAdultContent()}
	if !pred.Matches(flyer) {
		return nil, fmt.Errorf("flyer %s: %w", flyerID, domain.ErrNotFound)
	}

	if viewer.Authenticated {
		savedIDs, err := s.saved.FilterSavedIDs(ctx, viewer.ID, []uuid.UUID{flyer.ID})
		if err != nil {
			return nil, fmt.Errorf("filter saved ids: %w", err)
		}
		flyer.IsSaved = savedIDs[flyer.ID]
	}

	return flyer, nil
}
