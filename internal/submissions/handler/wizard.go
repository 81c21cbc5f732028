package handler

import (
	"net/http"
	"time"

	"trusthome_backend/internal/submissions/domain"
	"trusthome_backend/internal/submissions/service"
	"trusthome_backend/internal/submissions/transport"
	"trusthome_backend/internal/submissions/wizard"
	"trusthome_backend/platform/httpkit"
	"trusthome_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WizardHandler drives the multi-step booking wizard over HTTP.
type WizardHandler struct {
	store *wizard.Store
	svc   *service.Service
	val   *validator.Validator
	now   func() time.Time
}

// NewWizardHandler creates a new wizard handler.
func NewWizardHandler(store *wizard.Store, svc *service.Service, val *validator.Validator) *WizardHandler {
	return &WizardHandler{store: store, svc: svc, val: val, now: time.Now}
}

// RegisterRoutes registers the wizard routes.
func (h *WizardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Start)
	rg.GET("/:id", h.Get)
	rg.POST("/:id/select", h.Select)
	rg.POST("/:id/schedule", h.Schedule)
	rg.POST("/:id/contact", h.Contact)
	rg.POST("/:id/back", h.Back)
	rg.POST("/:id/submit", h.Submit)
	rg.DELETE("/:id", h.Abandon)
}

// Start handles POST /api/v1/bookings/wizard
func (h *WizardHandler) Start(c *gin.Context) {
	var req transport.StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	var (
		session *wizard.Session
		err     error
	)
	if req.Mode == string(wizard.ModeGroup) {
		session = wizard.NewGroup(h.now())
	} else {
		session, err = wizard.NewSingle(req.PropertyID, h.now())
		if httpkit.HandleError(c, err) {
			return
		}
	}
	h.store.Put(session)
	httpkit.JSON(c, http.StatusCreated, session.Snapshot())
}

// Get handles GET /api/v1/bookings/wizard/:id
func (h *WizardHandler) Get(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	httpkit.OK(c, session.Snapshot())
}

// Select handles POST /api/v1/bookings/wizard/:id/select
func (h *WizardHandler) Select(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	var req transport.WizardSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	if httpkit.HandleError(c, session.Select(req.PropertyIDs, h.now())) {
		return
	}
	httpkit.OK(c, session.Snapshot())
}

// Schedule handles POST /api/v1/bookings/wizard/:id/schedule
func (h *WizardHandler) Schedule(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	var req transport.WizardScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	if httpkit.HandleError(c, session.Schedule(req.ViewingFields.ToDomain(), h.now())) {
		return
	}
	httpkit.OK(c, session.Snapshot())
}

// Contact handles POST /api/v1/bookings/wizard/:id/contact
func (h *WizardHandler) Contact(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	var req transport.WizardContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	if httpkit.HandleError(c, session.SetContact(req.ContactFields.ToDomain(), h.now())) {
		return
	}
	httpkit.OK(c, session.Snapshot())
}

// Back handles POST /api/v1/bookings/wizard/:id/back
func (h *WizardHandler) Back(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	if httpkit.HandleError(c, session.Back(h.now())) {
		return
	}
	httpkit.OK(c, session.Snapshot())
}

// Submit handles POST /api/v1/bookings/wizard/:id/submit. The frozen payload
// runs through the same pipeline as the direct submission endpoints.
func (h *WizardHandler) Submit(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	payload, err := session.Submit(h.now())
	if httpkit.HandleError(c, err) {
		return
	}

	ctx := c.Request.Context()
	switch p := payload.(type) {
	case domain.BookingRequest:
		err = h.svc.SubmitBooking(ctx, p)
	case domain.GroupBookingRequest:
		err = h.svc.SubmitGroupBooking(ctx, p)
	}
	if err != nil {
		// Keep the accumulated data so the booking can be retried.
		_ = session.Reopen(h.now())
		httpkit.HandleError(c, err)
		return
	}

	_ = session.Finish(h.now())
	h.store.Delete(session.ID)
	httpkit.OK(c, transport.SubmissionResponse{Success: true})
}

// Abandon handles DELETE /api/v1/bookings/wizard/:id
func (h *WizardHandler) Abandon(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	h.store.Delete(session.ID)
	c.Status(http.StatusNoContent)
}

// session resolves the :id path parameter into a stored wizard session.
func (h *WizardHandler) session(c *gin.Context) (*wizard.Session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid session ID", nil)
		return nil, false
	}
	session, err := h.store.Get(id)
	if httpkit.HandleError(c, err) {
		return nil, false
	}
	return session, true
}
