// Package repository persists submitted forms. Writes are best effort: the
// submission service logs failures and proceeds with notification dispatch.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"trusthome_backend/internal/submissions/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository stores one row per submitted form, in a table per form type.
type Repository interface {
	InsertHero(ctx context.Context, p domain.HeroCapture) (uuid.UUID, error)
	InsertContact(ctx context.Context, p domain.ContactMessage) (uuid.UUID, error)
	InsertBooking(ctx context.Context, p domain.BookingRequest) (uuid.UUID, error)
	InsertGroupBooking(ctx context.Context, p domain.GroupBookingRequest) (uuid.UUID, error)
	InsertQuizResponse(ctx context.Context, p domain.QuizResult) (uuid.UUID, error)
	InsertPropertyRequest(ctx context.Context, p domain.PropertyRequest) (uuid.UUID, error)
}

// Repo implements Repository backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new submissions repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// InsertHero stores a landing-page lead capture.
func (r *Repo) InsertHero(ctx context.Context, p domain.HeroCapture) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO hero_submissions (id, name, email, phone)
		VALUES ($1, $2, $3, $4)`,
		id, p.Name, p.Email, p.Phone)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert hero submission: %w", err)
	}
	return id, nil
}

// InsertContact stores a contact form message.
func (r *Repo) InsertContact(ctx context.Context, p domain.ContactMessage) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO contact_submissions (id, name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, p.Name, p.Email, p.Phone, nullable(p.Subject), p.Message)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert contact submission: %w", err)
	}
	return id, nil
}

// InsertBooking stores a single-property viewing request.
func (r *Repo) InsertBooking(ctx context.Context, p domain.BookingRequest) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO booking_requests (
			id, property_id, viewing_date, time_slot, language, guests,
			transport, refreshments, refreshment_details, with_children,
			with_pets, comment, name, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		id, p.PropertyID, p.Date, string(p.TimeSlot), string(p.Language), p.Guests,
		p.Transport, p.Refreshments, nullable(p.RefreshmentDetails), p.WithChildren,
		p.WithPets, nullable(p.Comment), p.Name, p.Email, p.Phone)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert booking request: %w", err)
	}
	return id, nil
}

// InsertGroupBooking stores a multi-property viewing request.
func (r *Repo) InsertGroupBooking(ctx context.Context, p domain.GroupBookingRequest) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO group_booking_requests (
			id, property_ids, viewing_date, time_slot, language, guests,
			transport, refreshments, refreshment_details, with_children,
			with_pets, comment, name, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		id, p.PropertyIDs, p.Date, string(p.TimeSlot), string(p.Language), p.Guests,
		p.Transport, p.Refreshments, nullable(p.RefreshmentDetails), p.WithChildren,
		p.WithPets, nullable(p.Comment), p.Name, p.Email, p.Phone)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert group booking request: %w", err)
	}
	return id, nil
}

// InsertQuizResponse stores the ordered quiz answers as JSON.
func (r *Repo) InsertQuizResponse(ctx context.Context, p domain.QuizResult) (uuid.UUID, error) {
	id := uuid.New()
	answers, err := json.Marshal(p.Answers)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal quiz answers: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO quiz_responses (id, responses, name, email, phone)
		VALUES ($1, $2, $3, $4, $5)`,
		id, answers, p.Name, p.Email, p.Phone)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert quiz response: %w", err)
	}
	return id, nil
}

// InsertPropertyRequest stores a property search lead request.
func (r *Repo) InsertPropertyRequest(ctx context.Context, p domain.PropertyRequest) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO request_submissions (
			id, preferences, price_min, price_max, viewing_date, time_slot,
			language, guests, transport, refreshments, refreshment_details,
			with_children, with_pets, name, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		id, p.Preferences, p.PriceMin, p.PriceMax, nullable(p.Date), string(p.TimeSlot),
		string(p.Language), p.Guests, p.Transport, p.Refreshments,
		nullable(p.RefreshmentDetails), p.WithChildren, p.WithPets,
		p.Name, p.Email, p.Phone)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert property request: %w", err)
	}
	return id, nil
}

// nullable maps an empty string to NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Compile-time check that Repo implements Repository
var _ Repository = (*Repo)(nil)
