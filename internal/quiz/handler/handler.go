package handler

import (
	"trusthome_backend/internal/quiz/service"
	"trusthome_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the quiz.
type Handler struct {
	svc *service.Service
}

// New creates a new quiz handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the quiz routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questions", h.ListQuestions)
}

// ListQuestions handles GET /api/v1/quiz/questions
func (h *Handler) ListQuestions(c *gin.Context) {
	result, err := h.svc.ListQuestions(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
