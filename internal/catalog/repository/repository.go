package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trusthome_backend/platform/apperr"
)

const propertyNotFoundMessage = "property not found"

// Property is a marketplace listing as stored in the properties table.
// The table is maintained elsewhere (admin tooling); this repository is
// strictly read-only.
type Property struct {
	ID        int64
	Title     string
	Location  string
	Price     int64
	Category  string // rent, sale, project
	Type      string
	Bedrooms  int
	Bathrooms int
	Area      float64
}

// Repository provides read-only access to property listings.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Property, error)
	ListByIDs(ctx context.Context, ids []int64) ([]Property, error)
}

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new property repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetByID retrieves a single property.
func (r *Repo) GetByID(ctx context.Context, id int64) (Property, error) {
	query := `
		SELECT id, title, location, price, category, type, bedrooms, bathrooms, area
		FROM properties
		WHERE id = $1`

	var p Property
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Location, &p.Price, &p.Category, &p.Type,
		&p.Bedrooms, &p.Bathrooms, &p.Area,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Property{}, apperr.NotFound(propertyNotFoundMessage)
		}
		return Property{}, fmt.Errorf("get property by id: %w", err)
	}

	return p, nil
}

// ListByIDs retrieves the properties for the given ids, preserving the input
// order. Unknown ids are skipped rather than failing the whole lookup.
func (r *Repo) ListByIDs(ctx context.Context, ids []int64) ([]Property, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, title, location, price, category, type, bedrooms, bathrooms, area
		FROM properties
		WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list properties by ids: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]Property, len(ids))
	for rows.Next() {
		var p Property
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Location, &p.Price, &p.Category, &p.Type,
			&p.Bedrooms, &p.Bathrooms, &p.Area,
		); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list properties by ids: %w", err)
	}

	ordered := make([]Property, 0, len(byID))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}
