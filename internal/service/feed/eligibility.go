package feed

import "github.com/thepole/flyerboard-backend/internal/domain"

// Eligibility describes what a viewer may see: the predicate selecting
// eligible flyers and whether the adult-content toggle should be offered
// at all.
type Eligibility struct {
	// AdultToggleOffered reports whether the viewer is permitted to opt
	// into 21+ content (authenticated and at least 21). It controls UI
	// affordance only; the predicate already encodes the decision.
	AdultToggleOffered bool

	Predicate domain.FlyerPredicate
}

// ComputeEligibility derives the eligibility predicate for a viewer and
// validated criteria. The predicate starts from "exclude adult content"
// and is relaxed only when the viewer is authenticated, at least 21, and
// has explicitly enabled the toggle. All criteria compose conjunctively.
// The result is deterministic for identical (viewer, criteria) inputs.
func ComputeEligibility(viewer domain.Viewer, c Criteria) Eligibility {
	eligible := viewer.CanSeeAdultContent()

	return Eligibility{
		AdultToggleOffered: eligible,
		Predicate: domain.FlyerPredicate{
			AllowAdult:    eligible && c.IncludeAdult,
			CategoryID:    c.CategoryID,
			CitySubstring: c.City,
			EventDateFrom: c.DateFrom,
			EventDateTo:   c.DateTo,
		},
	}
}
