// Package saved implements the saved-flyer edge repository using
// PostgreSQL. The (user_id, flyer_id) pair is unique; inserts are
// idempotent via ON CONFLICT DO NOTHING.
package saved

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/thepole/flyerboard-backend/internal/adapter/postgres"
	"github.com/thepole/flyerboard-backend/internal/domain"
)

// Repo provides saved-edge persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new saved-edge repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const upsertSQL = `
INSERT INTO saved_flyers (user_id, flyer_id)
VALUES ($1, $2)
ON CONFLICT (user_id, flyer_id) DO NOTHING`

const deleteSQL = `
DELETE FROM saved_flyers
WHERE user_id = $1 AND flyer_id = $2`

const filterSavedIDsSQL = `
SELECT flyer_id FROM saved_flyers
WHERE user_id = $1 AND flyer_id = ANY($2::uuid[])`

const listSavedSQL = `
SELECT f.id, f.user_id, f.title, f.description, f.image_url,
       f.is_21_plus, f.location_city, f.location_state, f.location_address,
       f.event_date, f.event_time, f.contact_info,
       f.is_approved, f.is_active, f.view_count, f.created_at, f.updated_at,
       c.id, c.name, c.is_21_plus_required, c.created_at
FROM saved_flyers sf
JOIN flyers f ON sf.flyer_id = f.id
JOIN categories c ON f.category_id = c.id
WHERE sf.user_id = $1
ORDER BY sf.saved_at DESC`

// Upsert records a saved edge. Calling it twice for the same pair leaves
// exactly one edge and no error.
func (r *Repo) Upsert(ctx context.Context, userID, flyerID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, upsertSQL, userID, flyerID); err != nil {
		return fmt.Errorf("upsert saved edge: %w", err)
	}
	return nil
}

// Delete removes a saved edge. Deleting a non-existent edge is not an
// error.
func (r *Repo) Delete(ctx context.Context, userID, flyerID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, deleteSQL, userID, flyerID); err != nil {
		return fmt.Errorf("delete saved edge: %w", err)
	}
	return nil
}

// FilterSavedIDs returns which of the given flyer IDs the user has saved.
// The result map contains true for every saved ID; absent keys mean not
// saved.
func (r *Repo) FilterSavedIDs(ctx context.Context, userID uuid.UUID, flyerIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	saved := make(map[uuid.UUID]bool, len(flyerIDs))
	if len(flyerIDs) == 0 {
		return saved, nil
	}

	rows, err := r.db.Query(ctx, filterSavedIDsSQL, userID, flyerIDs)
	if err != nil {
		return nil, fmt.Errorf("filter saved ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("filter saved ids: %w", err)
		}
		saved[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("filter saved ids: %w", err)
	}

	return saved, nil
}

// ListSavedFlyers returns the user's saved flyers with category data,
// most recently saved first. IsSaved is set on every row.
func (r *Repo) ListSavedFlyers(ctx context.Context, userID uuid.UUID) ([]domain.Flyer, error) {
	rows, err := r.db.Query(ctx, listSavedSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved flyers: %w", err)
	}
	defer rows.Close()

	flyers := []domain.Flyer{}
	for rows.Next() {
		var f domain.Flyer
		err := rows.Scan(
			&f.ID, &f.UserID, &f.Title, &f.Description, &f.ImageURL,
			&f.Is21Plus, &f.LocationCity, &f.LocationState, &f.LocationAddress,
			&f.EventDate, &f.EventTime, &f.ContactInfo,
			&f.IsApproved, &f.IsActive, &f.ViewCount, &f.CreatedAt, &f.UpdatedAt,
			&f.Category.ID, &f.Category.Name, &f.Category.Is21PlusRequired, &f.Category.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list saved flyers: %w", err)
		}
		f.IsSaved = true
		flyers = append(flyers, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list saved flyers: %w", err)
	}

	return flyers, nil
}
