// Package quiz provides the apartment-finder quiz module.
package quiz

import (
	apphttp "trusthome_backend/internal/http"
	"trusthome_backend/internal/quiz/handler"
	"trusthome_backend/internal/quiz/repository"
	"trusthome_backend/internal/quiz/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the quiz module
type Module struct {
	handler *handler.Handler
}

// NewModule creates a new quiz module with all dependencies wired
func NewModule(pool *pgxpool.Pool) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)
	h := handler.New(svc)

	return &Module{handler: h}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "quiz"
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	quiz := ctx.V1.Group("/quiz")
	m.handler.RegisterRoutes(quiz)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
