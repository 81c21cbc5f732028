package service

import (
	"context"
	"fmt"

	"trusthome_backend/internal/catalog/repository"
	"trusthome_backend/internal/catalog/transport"
)

// Service provides read access to the property catalog.
type Service struct {
	repo repository.Repository
}

// New creates a new catalog service.
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// GetByID returns a single property by its listing id.
func (s *Service) GetByID(ctx context.Context, id int64) (*transport.PropertyResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property %d: %w", id, err)
	}
	resp := toResponse(p)
	return &resp, nil
}

// ListByIDs returns the properties matching the given ids, in input order.
// Unknown ids are silently skipped.
func (s *Service) ListByIDs(ctx context.Context, ids []int64) ([]transport.PropertyResponse, error) {
	props, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	out := make([]transport.PropertyResponse, 0, len(props))
	for _, p := range props {
		out = append(out, toResponse(p))
	}
	return out, nil
}

func toResponse(p repository.Property) transport.PropertyResponse {
	return transport.PropertyResponse{
		ID:        p.ID,
		Title:     p.Title,
		Location:  p.Location,
		Price:     p.Price,
		Category:  p.Category,
		Type:      p.Type,
		Bedrooms:  p.Bedrooms,
		Bathrooms: p.Bathrooms,
		Area:      p.Area,
	}
}
