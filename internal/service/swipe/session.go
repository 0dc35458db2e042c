// Package swipe implements the swipe session: a per-viewer,
// incrementally-loaded queue of candidate flyers consumed one
// accept/reject decision at a time, with background replenishment.
package swipe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/thepole/flyerboard-backend/internal/domain"
)

// State is the session lifecycle state.
type State string

const (
	// StateEmpty: no items loaded and no fetch requested yet.
	StateEmpty State = "EMPTY"
	// StateLoading: no undecided items resident, replenishment in flight.
	StateLoading State = "LOADING"
	// StateReady: the cursor points at an undecided item.
	StateReady State = "READY"
	// StateExhausted: queue consumed and the store has no more candidates.
	StateExhausted State = "EXHAUSTED"
)

// Direction is a swipe decision.
type Direction string

const (
	DirectionAccept Direction = "ACCEPT"
	DirectionReject Direction = "REJECT"
)

// ParseDirection validates a raw direction value.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(raw) {
	case DirectionAccept, DirectionReject:
		return Direction(raw), nil
	default:
		return "", domain.NewValidationError("direction", "must be ACCEPT or REJECT")
	}
}

// ResetPolicy controls what Reset does with the loaded queue.
type ResetPolicy string

const (
	// ResetKeepQueue rewinds the cursor over the same items (re-browse).
	ResetKeepQueue ResetPolicy = "KEEP_QUEUE"
	// ResetClearQueue drops the queue and triggers a fresh load.
	ResetClearQueue ResetPolicy = "CLEAR_QUEUE"
)

// ParseResetPolicy validates a raw reset policy value.
func ParseResetPolicy(raw string) (ResetPolicy, error) {
	switch ResetPolicy(raw) {
	case ResetKeepQueue, ResetClearQueue:
		return ResetPolicy(raw), nil
	default:
		return "", domain.NewValidationError("policy", "must be KEEP_QUEUE or CLEAR_QUEUE")
	}
}

// candidateSource fetches eligibility-filtered, saved-annotated candidates
// older than the cursor, in recency-descending order.
type candidateSource interface {
	Candidates(ctx context.Context, viewer domain.Viewer, pred domain.FlyerPredicate, cursor *domain.FeedCursor, limit int) ([]domain.Flyer, error)
}

// edgeWriter persists accept decisions. Upsert must be safe to call twice
// for the same pair.
type edgeWriter interface {
	Upsert(ctx context.Context, userID, flyerID uuid.UUID) error
}

// Session is a single viewer's swipe queue and cursor. All methods are
// safe for concurrent use; a decision never blocks on network I/O for
// items already resident in the queue.
type Session struct {
	viewer domain.Viewer
	pred   domain.FlyerPredicate

	source     candidateSource
	edges      edgeWriter
	log        *slog.Logger
	lowWater   int
	fetchLimit int

	mu         sync.Mutex
	queue      []domain.Flyer
	cursor     int
	state      State
	generation uint64
	inFlight   bool
	noMore     bool
}

// Options bundles session tuning knobs.
type Options struct {
	LowWater   int
	FetchLimit int
}

// NewSession creates a session in StateEmpty. Call Initialize to load it.
func NewSession(log *slog.Logger, viewer domain.Viewer, pred domain.FlyerPredicate, source candidateSource, edges edgeWriter, opts Options) *Session {
	return &Session{
		viewer:     viewer,
		pred:       pred,
		source:     source,
		edges:      edges,
		log:        log.With("session_viewer", viewer.ID.String()),
		lowWater:   opts.LowWater,
		fetchLimit: opts.FetchLimit,
		state:      StateEmpty,
	}
}

// Initialize seeds the queue. A non-empty seed makes the session Ready
// with the cursor at 0; an empty seed transitions to Loading and issues a
// fetch from the top of the feed.
func (s *Session) Initialize(ctx context.Context, seed []domain.Flyer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue = append(s.queue[:0:0], seed...)
	s.cursor = 0
	s.noMore = false

	if len(s.queue) > 0 {
		s.state = StateReady
		return
	}

	s.state = StateLoading
	s.startFetchLocked(ctx)
}

// DecideResult reports the outcome of one decision.
type DecideResult struct {
	Flyer domain.Flyer
	Saved bool
	// SaveErr is set when an accept decision could not be persisted. The
	// cursor has still advanced; retrying the save is the caller's
	// responsibility.
	SaveErr error
}

// Decide consumes the current item. On Accept the saved edge is upserted
// (idempotent); on Reject nothing is persisted. The cursor advances by
// exactly one in both cases, and a background replenishment fetch is
// issued when the remaining undecided items fall to the low-water mark.
//
// Decide is honored whenever an undecided item is resident, including
// while a replenishment fetch is in flight. With no resident item it
// fails with a StateError and leaves the cursor unchanged.
func (s *Session) Decide(ctx context.Context, direction Direction) (*DecideResult, error) {
	s.mu.Lock()

	if s.cursor >= len(s.queue) {
		state := s.state
		s.mu.Unlock()
		return nil, domain.NewStateError("decide", string(state))
	}

	current := s.queue[s.cursor]
	s.cursor++
	s.maybeReplenishLocked(ctx)
	s.advanceStateLocked()
	s.mu.Unlock()

	result := &DecideResult{Flyer: current}

	if direction == DirectionAccept {
		if err := s.edges.Upsert(ctx, s.viewer.ID, current.ID); err != nil {
			// The decision stands; only the persistence failed.
			result.SaveErr = fmt.Errorf("save flyer %s: %w", current.ID, err)
			s.log.ErrorContext(ctx, "accept decision not persisted",
				slog.String("flyer_id", current.ID.String()),
				slog.String("error", err.Error()),
			)
		} else {
			result.Saved = true
		}
	}

	return result, nil
}

// Current returns the item the cursor points at, or nil when the session
// has no undecided item resident.
func (s *Session) Current() *domain.Flyer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor >= len(s.queue) {
		return nil
	}
	f := s.queue[s.cursor]
	return &f
}

// Snapshot describes the session for the presentation layer.
type Snapshot struct {
	State     State
	Current   *domain.Flyer
	Remaining int
	QueueLen  int
	Cursor    int
}

// Snapshot returns a consistent view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:     s.state,
		Remaining: len(s.queue) - s.cursor,
		QueueLen:  len(s.queue),
		Cursor:    s.cursor,
	}
	if s.cursor < len(s.queue) {
		f := s.queue[s.cursor]
		snap.Current = &f
	}
	return snap
}

// Reset rewinds the session. ResetKeepQueue keeps the loaded queue for
// re-browsing; ResetClearQueue drops it and issues a fresh load. Valid in
// any state. Any in-flight fetch result is discarded.
func (s *Session) Reset(ctx context.Context, policy ResetPolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.inFlight = false
	s.cursor = 0

	switch policy {
	case ResetKeepQueue:
		if len(s.queue) > 0 {
			s.state = StateReady
		} else {
			s.state = StateEmpty
		}
	case ResetClearQueue:
		s.queue = nil
		s.noMore = false
		s.state = StateLoading
		s.startFetchLocked(ctx)
	}
}

// Close tears the session down: any in-flight fetch result arriving later
// is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.inFlight = false
}

// ---------------------------------------------------------------------------
// Replenishment
// ---------------------------------------------------------------------------

// maybeReplenishLocked issues at most one background fetch once the
// remaining undecided items fall to the low-water mark. Caller holds mu.
func (s *Session) maybeReplenishLocked(ctx context.Context) {
	if s.inFlight || s.noMore {
		return
	}
	if len(s.queue)-s.cursor > s.lowWater {
		return
	}
	s.startFetchLocked(ctx)
}

// startFetchLocked launches the fetch goroutine. Caller holds mu and has
// already verified no fetch is in flight.
func (s *Session) startFetchLocked(ctx context.Context) {
	s.inFlight = true
	generation := s.generation

	var cursor *domain.FeedCursor
	if n := len(s.queue); n > 0 {
		last := s.queue[n-1]
		cursor = &domain.FeedCursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	// The fetch outlives the request that triggered it.
	fetchCtx := context.WithoutCancel(ctx)

	go func() {
		items, err := s.source.Candidates(fetchCtx, s.viewer, s.pred, cursor, s.fetchLimit)
		s.finishFetch(fetchCtx, generation, items, err)
	}()
}

// finishFetch applies a fetch result, unless the session has been reset or
// closed since the fetch started (generation mismatch).
func (s *Session) finishFetch(ctx context.Context, generation uint64, items []domain.Flyer, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		s.log.DebugContext(ctx, "discarding stale replenishment result")
		return
	}
	s.inFlight = false

	if err != nil {
		// Stay in the last stable state; the caller can keep consuming
		// resident items or trigger another load by deciding.
		s.log.ErrorContext(ctx, "replenishment fetch failed", slog.String("error", err.Error()))
		s.advanceStateLocked()
		return
	}

	if len(items) == 0 {
		s.noMore = true
	} else {
		s.queue = append(s.queue, items...)
	}
	s.advanceStateLocked()
}

// advanceStateLocked recomputes the lifecycle state after a cursor move or
// fetch completion. Caller holds mu.
func (s *Session) advanceStateLocked() {
	switch {
	case s.cursor < len(s.queue):
		s.state = StateReady
	case s.inFlight:
		s.state = StateLoading
	case s.noMore:
		s.state = StateExhausted
	case len(s.queue) == 0 && s.cursor == 0:
		s.state = StateEmpty
	default:
		// Queue consumed, no fetch in flight, store not known to be
		// empty (e.g. the last fetch errored). Treat as exhausted until
		// the caller resets.
		s.state = StateExhausted
	}
}
