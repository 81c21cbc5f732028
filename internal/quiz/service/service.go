package service

import (
	"context"
	"fmt"

	"trusthome_backend/internal/quiz/repository"
)

// Service provides read access to the apartment-finder quiz.
type Service struct {
	repo repository.Repository
}

// New creates a new quiz service.
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// ListQuestions returns the quiz questions in display order.
func (s *Service) ListQuestions(ctx context.Context) ([]repository.Question, error) {
	questions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quiz questions: %w", err)
	}
	if questions == nil {
		questions = []repository.Question{}
	}
	return questions, nil
}
