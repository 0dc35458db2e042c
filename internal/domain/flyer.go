package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flyer is a single event/listing record posted to the board.
//
// A flyer is eligible for display only when IsActive and IsApproved are
// both true. Creation, moderation approval, and deactivation happen in
// external flows; this service treats flyers as read-only.
type Flyer struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Description     *string
	ImageURL        string
	Category        Category
	Is21Plus        bool
	LocationCity    string
	LocationState   string
	LocationAddress *string
	EventDate       *time.Time // date only, no time component
	EventTime       *string    // "HH:MM", display-only
	ContactInfo     *ContactInfo
	IsApproved      bool
	IsActive        bool
	ViewCount       int
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// IsSaved is derived per viewer and only populated on read paths that
	// know who is asking.
	IsSaved bool
}

// Displayable reports whether the flyer passed moderation and is still live.
func (f *Flyer) Displayable() bool {
	return f.IsActive && f.IsApproved
}

// ContactInfo holds optional organizer contact details, stored as jsonb.
type ContactInfo struct {
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Website *string `json:"website,omitempty"`
}

// Category is read-only reference data for flyer classification.
type Category struct {
	ID               int32
	Name             string
	Is21PlusRequired bool
	CreatedAt        time.Time
}

// SavedEdge records a viewer's interest in a flyer. Unique per
// (user, flyer) pair; created on accept-swipe or explicit save, deleted on
// unsave. No ownership beyond the pair itself.
type SavedEdge struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	FlyerID uuid.UUID
	SavedAt time.Time
}
