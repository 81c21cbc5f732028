// Package repository provides data access for quiz questions.
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Question is a single quiz question with its answer options.
// Question/Options hold the Russian text, the En variants the English one.
type Question struct {
	ID         uuid.UUID `json:"id"`
	Question   string    `json:"question"`
	QuestionEn string    `json:"question_en"`
	Options    []string  `json:"options"`
	OptionsEn  []string  `json:"options_en"`
	OrderIndex int       `json:"order_index"`
}

// Repository defines read access to quiz questions.
type Repository interface {
	List(ctx context.Context) ([]Question, error)
}

// Repo implements Repository backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quiz repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns all quiz questions ordered by their display position.
func (r *Repo) List(ctx context.Context) ([]Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question, question_en, options, options_en, order_index
		FROM quiz_questions
		ORDER BY order_index ASC`)
	if err != nil {
		return nil, fmt.Errorf("query quiz questions: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Question, &q.QuestionEn, &q.Options, &q.OptionsEn, &q.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan quiz question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz questions: %w", err)
	}
	return questions, nil
}

// Compile-time check that Repo implements Repository
var _ Repository = (*Repo)(nil)
