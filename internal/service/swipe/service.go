package swipe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/thepole/flyerboard-backend/internal/config"
	"github.com/thepole/flyerboard-backend/internal/domain"
	"github.com/thepole/flyerboard-backend/internal/service/feed"
	"github.com/thepole/flyerboard-backend/pkg/ctxutil"
)

// viewerResolver derives the request viewer (identity + age).
type viewerResolver interface {
	ResolveViewer(ctx context.Context) (domain.Viewer, error)
}

// Service owns one live swipe session per viewer. Sessions are in-memory;
// the only cross-session shared state is the backing store.
type Service struct {
	viewers viewerResolver
	source  candidateSource
	edges   edgeWriter
	cfg     config.FeedConfig
	log     *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewService creates a new swipe service.
func NewService(
	log *slog.Logger,
	viewers viewerResolver,
	source candidateSource,
	edges edgeWriter,
	cfg config.FeedConfig,
) *Service {
	return &Service{
		viewers:  viewers,
		source:   source,
		edges:    edges,
		cfg:      cfg,
		log:      log.With("service", "swipe"),
		sessions: make(map[uuid.UUID]*Session),
	}
}

// StartInput holds the parameters for starting a swipe session.
type StartInput struct {
	Criteria feed.CriteriaInput
}

// Start creates a swipe session for the authenticated viewer, seeded with
// an initial synchronous fetch. Starting while a session already exists
// returns the existing session unchanged (idempotent). Swiping requires
// sign-in: accepted flyers are persisted per viewer.
func (s *Service) Start(ctx context.Context, input StartInput) (Snapshot, error) {
	viewer, err := s.viewers.ResolveViewer(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	if !viewer.Authenticated {
		return Snapshot{}, domain.ErrUnauthorized
	}

	criteria, err := feed.ParseCriteria(input.Criteria)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	if existing, ok := s.sessions[viewer.ID]; ok {
		s.mu.Unlock()
		return existing.Snapshot(), nil
	}
	s.mu.Unlock()

	eligibility := feed.ComputeEligibility(viewer, criteria)

	seed, err := s.source.Candidates(ctx, viewer, eligibility.Predicate, nil, s.cfg.SwipeSeedLimit)
	if err != nil {
		return Snapshot{}, fmt.Errorf("seed swipe queue: %w", err)
	}

	session := NewSession(s.log, viewer, eligibility.Predicate, s.source, s.edges, Options{
		LowWater:   s.cfg.SwipeLowWater,
		FetchLimit: s.cfg.SwipeFetchLimit,
	})
	session.Initialize(ctx, seed)

	s.mu.Lock()
	if existing, ok := s.sessions[viewer.ID]; ok {
		// Lost a start race; keep the winner.
		s.mu.Unlock()
		session.Close()
		return existing.Snapshot(), nil
	}
	s.sessions[viewer.ID] = session
	s.mu.Unlock()

	s.log.InfoContext(ctx, "swipe session started",
		slog.String("viewer_id", viewer.ID.String()),
		slog.Int("seed_count", len(seed)),
	)

	return session.Snapshot(), nil
}

// Decide applies one accept/reject decision to the viewer's session.
func (s *Service) Decide(ctx context.Context, direction Direction) (*DecideResult, error) {
	session, err := s.sessionFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return session.Decide(ctx, direction)
}

// Reset rewinds the viewer's session under the given policy.
func (s *Service) Reset(ctx context.Context, policy ResetPolicy) (Snapshot, error) {
	session, err := s.sessionFromCtx(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	session.Reset(ctx, policy)
	return session.Snapshot(), nil
}

// State returns the viewer's session snapshot.
func (s *Service) State(ctx context.Context) (Snapshot, error) {
	session, err := s.sessionFromCtx(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return session.Snapshot(), nil
}

// End tears down the viewer's session. Late replenishment results are
// discarded. Ending a non-existent session is a no-op.
func (s *Service) End(ctx context.Context) error {
	viewerID, ok := ctxutil.ViewerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	s.mu.Lock()
	session, exists := s.sessions[viewerID]
	delete(s.sessions, viewerID)
	s.mu.Unlock()

	if exists {
		session.Close()
	}
	return nil
}

func (s *Service) sessionFromCtx(ctx context.Context) (*Session, error) {
	viewerID, ok := ctxutil.ViewerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.mu.Lock()
	session, exists := s.sessions[viewerID]
	s.mu.Unlock()

	if !exists {
		return nil, fmt.Errorf("swipe session: %w", domain.ErrNotFound)
	}
	return session, nil
}
