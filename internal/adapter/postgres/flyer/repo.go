// Package flyer implements the Flyer repository using PostgreSQL.
// The feed query is built dynamically with squirrel from the eligibility
// predicate; point reads use raw SQL.
package flyer

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thepole/flyerboard-backend/internal/adapter/postgres"
	"github.com/thepole/flyerboard-backend/internal/domain"
)

// Repo provides flyer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new flyer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// flyerColumns is the shared select list for flyer + category rows.
var flyerColumns = []string{
	"f.id", "f.user_id", "f.title", "f.description", "f.image_url",
	"f.is_21_plus", "f.location_city", "f.location_state", "f.location_address",
	"f.event_date", "f.event_time", "f.contact_info",
	"f.is_approved", "f.is_active", "f.view_count", "f.created_at", "f.updated_at",
	"c.id", "c.name", "c.is_21_plus_required", "c.created_at",
}

const getByIDSQL = `
SELECT f.id, f.user_id, f.title, f.description, f.image_url,
       f.is_21_plus, f.location_city, f.location_state, f.location_address,
       f.event_date, f.event_time, f.contact_info,
       f.is_approved, f.is_active, f.view_count, f.created_at, f.updated_at,
       c.id, c.name, c.is_21_plus_required, c.created_at
FROM flyers f
JOIN categories c ON f.category_id = c.id
WHERE f.id = $1`

const deactivateExpiredSQL = `
UPDATE flyers
SET is_active = false, updated_at = now()
WHERE is_active AND event_date IS NOT NULL AND event_date < $1`

// Query returns eligible flyers in recency-descending order. The
// eligibility predicate is translated to conjunctive WHERE clauses; the
// optional cursor continues a previous page via keyset comparison on
// (created_at, id).
func (r *Repo) Query(ctx context.Context, pred domain.FlyerPredicate, limit int, cursor *domain.FeedCursor) ([]domain.Flyer, error) {
	qb := sq.Select(flyerColumns...).
		From("flyers f").
		Join("categories c ON f.category_id = c.id").
		Where(sq.Eq{"f.is_approved": true, "f.is_active": true}).
		PlaceholderFormat(sq.Dollar)

	if !pred.AllowAdult {
		qb = qb.Where(sq.Eq{"f.is_21_plus": false})
	}
	if pred.CategoryID != nil {
		qb = qb.Where(sq.Eq{"f.category_id": *pred.CategoryID})
	}
	if pred.CitySubstring != nil {
		qb = qb.Where(sq.ILike{"f.location_city": "%" + *pred.CitySubstring + "%"})
	}
	// NULL event_date fails both comparisons, matching the in-memory
	// predicate: a flyer without a date never matches a bounded range.
	if pred.EventDateFrom != nil {
		qb = qb.Where(sq.GtOrEq{"f.event_date": *pred.EventDateFrom})
	}
	if pred.EventDateTo != nil {
		qb = qb.Where(sq.LtOrEq{"f.event_date": *pred.EventDateTo})
	}

	if cursor != nil {
		qb = qb.Where(sq.Expr("(f.created_at, f.id) < (?, ?)", cursor.CreatedAt, cursor.ID))
	}

	qb = qb.OrderBy("f.created_at DESC", "f.id DESC").Limit(uint64(limit))

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build flyer query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query flyers: %w", err)
	}
	defer rows.Close()

	flyers, err := scanFlyers(rows)
	if err != nil {
		return nil, fmt.Errorf("query flyers: %w", err)
	}

	return flyers, nil
}

// GetByID returns a flyer with its category by primary key.
// No eligibility filtering is applied here; that is the service's call.
func (r *Repo) GetByID(ctx context.Context, flyerID uuid.UUID) (*domain.Flyer, error) {
	row := r.db.QueryRow(ctx, getByIDSQL, flyerID)

	f, err := scanFlyer(row)
	if err != nil {
		return nil, postgres.MapError(err, "flyer", flyerID)
	}
	return f, nil
}

// DeactivateExpired marks flyers whose event date has passed as inactive
// and returns the number of rows updated. Used by the cleanup job.
func (r *Repo) DeactivateExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, deactivateExpiredSQL, before)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired flyers: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func scanFlyer(row pgx.Row) (*domain.Flyer, error) {
	var f domain.Flyer
	err := row.Scan(
		&f.ID, &f.UserID, &f.Title, &f.Description, &f.ImageURL,
		&f.Is21Plus, &f.LocationCity, &f.LocationState, &f.LocationAddress,
		&f.EventDate, &f.EventTime, &f.ContactInfo,
		&f.IsApproved, &f.IsActive, &f.ViewCount, &f.CreatedAt, &f.UpdatedAt,
		&f.Category.ID, &f.Category.Name, &f.Category.Is21PlusRequired, &f.Category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func scanFlyers(rows pgx.Rows) ([]domain.Flyer, error) {
	flyers := []domain.Flyer{}
	for rows.Next() {
		f, err := scanFlyer(rows)
		if err != nil {
			return nil, err
		}
		flyers = append(flyers, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return flyers, nil
}
