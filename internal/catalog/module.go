// Package catalog provides the read-only property catalog module.
package catalog

import (
	"trusthome_backend/internal/catalog/handler"
	"trusthome_backend/internal/catalog/repository"
	"trusthome_backend/internal/catalog/service"
	apphttp "trusthome_backend/internal/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the property catalog module
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new catalog module with all dependencies wired
func NewModule(pool *pgxpool.Pool) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for external use
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	properties := ctx.V1.Group("/properties")
	m.handler.RegisterRoutes(properties)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
