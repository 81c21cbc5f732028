// Package submissions provides the form submission and booking wizard module.
package submissions

import (
	"trusthome_backend/internal/email"
	apphttp "trusthome_backend/internal/http"
	"trusthome_backend/internal/submissions/handler"
	"trusthome_backend/internal/submissions/repository"
	"trusthome_backend/internal/submissions/service"
	"trusthome_backend/internal/submissions/wizard"
	"trusthome_backend/platform/events"
	"trusthome_backend/platform/logger"
	"trusthome_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the submissions module
type Module struct {
	handler       *handler.Handler
	wizardHandler *handler.WizardHandler
	service       *service.Service
	store         *wizard.Store
}

// NewModule creates a new submissions module with all dependencies wired.
// The chat sender, email sender and property reader come from the
// composition root so their configuration stays in one place.
func NewModule(
	pool *pgxpool.Pool,
	chat service.ChatSender,
	sender email.Sender,
	properties service.PropertyReader,
	cfg service.Config,
	eventBus *events.InMemoryBus,
	val *validator.Validator,
	log *logger.Logger,
) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, chat, sender, properties, cfg, log)
	svc.SetEventBus(eventBus)

	store := wizard.NewStore()
	h := handler.New(svc, val)
	wh := handler.NewWizardHandler(store, svc, val)

	return &Module{
		handler:       h,
		wizardHandler: wh,
		service:       svc,
		store:         store,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "submissions"
}

// Service returns the service layer for external use
func (m *Module) Service() *service.Service {
	return m.service
}

// Store returns the wizard session store for maintenance sweeps
func (m *Module) Store() *wizard.Store {
	return m.store
}

// RegisterRoutes registers the module's routes. Both route groups sit behind
// the per-IP submission rate limiter.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	submissions := ctx.V1.Group("/submissions")
	submissions.Use(ctx.SubmissionRateLimiter.RateLimit())
	m.handler.RegisterRoutes(submissions)

	wizardRoutes := ctx.V1.Group("/bookings/wizard")
	wizardRoutes.Use(ctx.SubmissionRateLimiter.RateLimit())
	m.wizardHandler.RegisterRoutes(wizardRoutes)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
