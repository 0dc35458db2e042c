// Package profile implements the UserProfile repository. Profiles are
// written by the external signup flow; this service only reads them to
// derive viewer age.
package profile

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/thepole/flyerboard-backend/internal/adapter/postgres"
	"github.com/thepole/flyerboard-backend/internal/domain"
)

// Repo provides profile reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getByIDSQL = `
SELECT id, date_of_birth, is_verified, created_at, updated_at
FROM user_profiles
WHERE id = $1`

// GetByID returns a user profile by primary key.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := r.db.QueryRow(ctx, getByIDSQL, userID).
		Scan(&p.ID, &p.DateOfBirth, &p.IsVerified, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}
	return &p, nil
}
