// Package adapters wires cross-context dependencies without letting domain
// modules import each other directly.
package adapters

import (
	"context"

	catalogservice "trusthome_backend/internal/catalog/service"
	"trusthome_backend/internal/submissions/format"
	submissionservice "trusthome_backend/internal/submissions/service"
)

// CatalogReader adapts the catalog service to the property reader port of
// the submission service.
type CatalogReader struct {
	catalog *catalogservice.Service
}

// NewCatalogReader creates a catalog reader adapter.
func NewCatalogReader(catalog *catalogservice.Service) *CatalogReader {
	return &CatalogReader{catalog: catalog}
}

// ListByIDs resolves property ids into the listing blocks booking messages
// embed. Unknown ids are skipped.
func (a *CatalogReader) ListByIDs(ctx context.Context, ids []int64) ([]format.Property, error) {
	props, err := a.catalog.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]format.Property, 0, len(props))
	for _, p := range props {
		out = append(out, format.Property{
			ID:        p.ID,
			Title:     p.Title,
			Location:  p.Location,
			Price:     p.Price,
			Category:  p.Category,
			Type:      p.Type,
			Bedrooms:  p.Bedrooms,
			Bathrooms: p.Bathrooms,
			Area:      p.Area,
		})
	}
	return out, nil
}

// Compile-time check that CatalogReader implements the reader port
var _ submissionservice.PropertyReader = (*CatalogReader)(nil)
