package reports

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamlens-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/people/:id/reports", h.listByPerson)
	rg.GET("/reports/:id", h.get)
}

func (h *Handler) listByPerson(c *gin.Context) {
	personID := c.Param("id")
	c.Set("personId", personID)
	list, err := h.Svc.ListByPerson(c.Request.Context(), personID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list reports", nil)
		return
	}
	respond.OK(c, gin.H{"reports": list, "count": len(list)})
}

func (h *Handler) get(c *gin.Context) {
	report, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load report", nil)
		return
	}
	respond.OK(c, report)
}
