package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FlyerPredicate is a side-effect-free description of which flyers qualify
// for a viewer under a set of filter criteria. It can be evaluated in
// memory via Matches or translated into a store query by the flyer
// repository. Identical inputs always produce an identical predicate.
//
// Moderation gating (is_approved AND is_active) is unconditional and not
// representable as an optional field. Adult content is default-deny:
// AllowAdult is only set when the viewer is authenticated, of age, and has
// explicitly enabled the toggle.
type FlyerPredicate struct {
	// AllowAdult relaxes the default exclusion of 21+ flyers.
	AllowAdult bool

	// CategoryID, when set, requires exact category identity.
	CategoryID *int32

	// CitySubstring, when set, requires case-insensitive substring
	// containment in the flyer's city.
	CitySubstring *string

	// EventDateFrom/EventDateTo are inclusive bounds on the event date.
	// A flyer with no event date fails any date-bounded predicate.
	EventDateFrom *time.Time
	EventDateTo   *time.Time
}

// Matches evaluates the predicate against a single flyer in memory.
// All supplied constraints are conjunctive.
func (p FlyerPredicate) Matches(f *Flyer) bool {
	if !f.Displayable() {
		return false
	}
	if f.Is21Plus && !p.AllowAdult {
		return false
	}
	if p.CategoryID != nil && f.Category.ID != *p.CategoryID {
		return false
	}
	if p.CitySubstring != nil {
		if !strings.Contains(strings.ToLower(f.LocationCity), strings.ToLower(*p.CitySubstring)) {
			return false
		}
	}
	if p.EventDateFrom != nil || p.EventDateTo != nil {
		if f.EventDate == nil {
			return false
		}
		if p.EventDateFrom != nil && f.EventDate.Before(*p.EventDateFrom) {
			return false
		}
		if p.EventDateTo != nil && f.EventDate.After(*p.EventDateTo) {
			return false
		}
	}
	return true
}

// FeedCursor is a keyset pagination cursor over the recency-descending
// feed order. ID breaks ties between flyers sharing a creation timestamp
// so pages neither skip nor duplicate items.
type FeedCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}
