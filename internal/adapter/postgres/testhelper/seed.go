package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thepole/flyerboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile creates a user_profiles row with the given date of birth.
// Returns a filled domain.UserProfile.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, dateOfBirth time.Time) domain.UserProfile {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	profile := domain.UserProfile{
		ID:          uuid.New(),
		DateOfBirth: dateOfBirth,
		IsVerified:  true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO user_profiles (id, date_of_birth, is_verified, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		profile.ID, profile.DateOfBirth, profile.IsVerified, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert: %v", err)
	}

	return profile
}

// SeedAdultProfile creates a profile aged well past 21.
func SeedAdultProfile(t *testing.T, pool *pgxpool.Pool) domain.UserProfile {
	t.Helper()
	return SeedProfile(t, pool, time.Now().UTC().AddDate(-30, 0, 0))
}

// GetCategory looks up a seeded category by name. Migrations seed the
// standard set, so tests reference those rather than inserting their own.
func GetCategory(t *testing.T, pool *pgxpool.Pool, name string) domain.Category {
	t.Helper()

	var c domain.Category
	err := pool.QueryRow(context.Background(),
		`SELECT id, name, is_21_plus_required, created_at FROM categories WHERE name = $1`,
		name,
	).Scan(&c.ID, &c.Name, &c.Is21PlusRequired, &c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: GetCategory %q: %v", name, err)
	}

	return c
}

// SeedFlyer creates an approved, active flyer owned by userID in the given
// category. Callers tweak fields via the optional mutators, which run before
// the insert.
func SeedFlyer(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, category domain.Category, mutate ...func(*domain.Flyer)) domain.Flyer {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	flyer := domain.Flyer{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         "Test Flyer " + suffix,
		ImageURL:      "https://example.com/flyers/" + suffix + ".jpg",
		Category:      category,
		Is21Plus:      category.Is21PlusRequired,
		LocationCity:  "Portland",
		LocationState: "OR",
		IsApproved:    true,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for _, m := range mutate {
		m(&flyer)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO flyers (id, user_id, title, description, image_url, category_id, is_21_plus,
		                     location_city, location_state, location_address, event_date, event_time,
		                     contact_info, is_approved, is_active, view_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		flyer.ID, flyer.UserID, flyer.Title, flyer.Description, flyer.ImageURL, flyer.Category.ID,
		flyer.Is21Plus, flyer.LocationCity, flyer.LocationState, flyer.LocationAddress,
		flyer.EventDate, flyer.EventTime, flyer.ContactInfo, flyer.IsApproved, flyer.IsActive,
		flyer.ViewCount, flyer.CreatedAt, flyer.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFlyer insert: %v", err)
	}

	return flyer
}

// SeedSaved links userID to flyerID in saved_flyers.
func SeedSaved(t *testing.T, pool *pgxpool.Pool, userID, flyerID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO saved_flyers (user_id, flyer_id) VALUES ($1, $2)`,
		userID, flyerID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSaved insert: %v", err)
	}
}
