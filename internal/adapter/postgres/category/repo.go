// Package category implements the read-only Category repository.
package category

import (
	"context"
	"fmt"

	postgres "github.com/thepole/flyerboard-backend/internal/adapter/postgres"
	"github.com/thepole/flyerboard-backend/internal/domain"
)

// Repo provides category reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const listSQL = `
SELECT id, name, is_21_plus_required, created_at
FROM categories
ORDER BY name`

const getByIDSQL = `
SELECT id, name, is_21_plus_required, created_at
FROM categories
WHERE id = $1`

// List returns all categories ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Is21PlusRequired, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRow(ctx, getByIDSQL, id).
		Scan(&c.ID, &c.Name, &c.Is21PlusRequired, &c.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return &c, nil
}
