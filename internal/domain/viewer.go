package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdultContentMinAge is the minimum viewer age for 21+ flyers.
const AdultContentMinAge = 21

// UserProfile holds the stored profile backing an authenticated viewer.
type UserProfile struct {
	ID          uuid.UUID
	DateOfBirth time.Time
	IsVerified  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Viewer is the request-scoped identity the feed is composed for: either
// anonymous, or authenticated with an age derived once from the stored
// date of birth.
type Viewer struct {
	ID            uuid.UUID
	Authenticated bool
	Age           int
}

// Anonymous is the viewer used for unauthenticated requests.
var Anonymous = Viewer{}

// NewViewer builds an authenticated viewer with the age computed at now.
func NewViewer(id uuid.UUID, dateOfBirth time.Time, now time.Time) Viewer {
	return Viewer{
		ID:            id,
		Authenticated: true,
		Age:           AgeOn(dateOfBirth, now),
	}
}

// CanSeeAdultContent reports whether 21+ flyers may ever be shown to the
// viewer. Anonymous viewers never qualify.
func (v Viewer) CanSeeAdultContent() bool {
	return v.Authenticated && v.Age >= AdultContentMinAge
}

// AgeOn computes full years between dateOfBirth and now using
// calendar-aware subtraction: the year difference is adjusted down by one
// when now's month/day precedes the birth month/day. A birthday exactly
// N years ago yields N, not N-1.
func AgeOn(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}
