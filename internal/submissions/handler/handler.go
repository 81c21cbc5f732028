// Package handler exposes the form submission endpoints.
package handler

import (
	"net/http"

	"trusthome_backend/internal/submissions/service"
	"trusthome_backend/internal/submissions/transport"
	"trusthome_backend/platform/httpkit"
	"trusthome_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for form submissions.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new submissions handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the submission routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/hero", h.SubmitHero)
	rg.POST("/contact", h.SubmitContact)
	rg.POST("/booking", h.SubmitBooking)
	rg.POST("/group-booking", h.SubmitGroupBooking)
	rg.POST("/quiz", h.SubmitQuiz)
	rg.POST("/property-request", h.SubmitPropertyRequest)
}

// SubmitHero handles POST /api/v1/submissions/hero
func (h *Handler) SubmitHero(c *gin.Context) {
	var req transport.HeroRequest
	if !h.bind(c, &req) {
		return
	}
	if httpkit.HandleError(c, h.svc.SubmitHero(c.Request.Context(), req.ToDomain())) {
		return
	}
	httpkit.OK(c, transport.SubmissionResponse{Success: true})
}

// SubmitContact handles POST /api/v1/submissions/contact
func (h *Handler) SubmitContact(c *gin.Context) {
	var req transport.ContactRequest
	if !h.bind(c, &req) {
		return
	}
	if httpkit.HandleError(c, h.svc.SubmitContact(c.Request.Context(), req.ToDomain())) {
		return
	}
	httpkit.OK(c, transport.SubmissionResponse{Success: true})
}

// SubmitBooking handles POST /api/v1/submissions/booking
func (h *Handler) SubmitBooking(c *gin.Context) {
	var req transport.BookingRequest
	if !h.bind(c, &req) {
		return
	}
	if httpkit.HandleError(c, h.svc.SubmitBooking(c.Request.Context(), req.ToDomain())) {
		return
	}
	httpkit.OK(c, transport.SubmissionResponse{Success: true})
}

// SubmitGroupBooking handles POST /api/v1/submissions/group-booking
func (h *Handler) SubmitGroupBooking(c *gin.Context) {
	var req transport.GroupBookingRequest
	if !h.bind(c, &req) {
		return
	}
	if httpkit.HandleError(c, h.svc.SubmitGroupBooking(c.Request.Context(), req.ToDomain())) {
		return
	}
	httpkit.OK(c, transport.SubmissionResponse{Success: true})
}

// SubmitQuiz handles POST /api/v1/submissions/quiz
func (h *Handler) SubmitQuiz(c *gin.Context) {
	var req transport.QuizRequest
	if !h.bind(c, &req) {
		return
	}
	if httpkit.HandleError(c, h.svc.SubmitQuiz(c.Request.Context(), req.ToDomain())) {
		return
	}
	httpkit.OK(c, transport.SubmissionResponse{Success: true})
}

// SubmitPropertyRequest handles POST /api/v1/submissions/property-request
func (h *Handler) SubmitPropertyRequest(c *gin.Context) {
	var req transport.PropertyRequestRequest
	if !h.bind(c, &req) {
		return
	}
	if httpkit.HandleError(c, h.svc.SubmitPropertyRequest(c.Request.Context(), req.ToDomain())) {
		return
	}
	httpkit.OK(c, transport.SubmissionResponse{Success: true})
}

// bind decodes and validates a request body. On failure it writes the error
// response and reports false.
func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return false
	}
	return true
}
