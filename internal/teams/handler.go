package teams

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"teamlens-backend/internal/people"
	"teamlens-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/teams/analysis", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	result, err := h.Svc.Analyze(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, people.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	c.Set("teamId", strings.ReplaceAll(strings.ToLower(result.Name), " ", "-"))
	respond.OK(c, result)
}
