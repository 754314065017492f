package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"teamlens-backend/internal/mbti"
	"teamlens-backend/internal/shared/server/respond"
	"teamlens-backend/internal/talents"
)

// registerCatalogRoutes exposes the static talent and personality catalogs
// so the dashboard can render pickers and reference panels.
func registerCatalogRoutes(rg *gin.RouterGroup, talentCatalog *talents.Catalog, profileCatalog *mbti.Catalog) {
	rg.GET("/talents", func(c *gin.Context) {
		list := talentCatalog.All()
		respond.OK(c, gin.H{"talents": list, "count": len(list)})
	})
	rg.GET("/mbti/types", func(c *gin.Context) {
		profiles := profileCatalog.All()
		summaries := make([]gin.H, 0, len(profiles))
		for _, p := range profiles {
			summaries = append(summaries, gin.H{
				"code":        p.Code,
				"displayName": p.DisplayName,
				"description": p.Description,
			})
		}
		respond.OK(c, gin.H{"types": summaries, "count": len(summaries)})
	})
	rg.GET("/mbti/types/:code", func(c *gin.Context) {
		code, _, err := mbti.ParseCode(c.Param("code"))
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		profile, ok := profileCatalog.ByCode(code)
		if !ok {
			respond.Error(c, http.StatusNotFound, "not_found", "unknown personality type "+strings.ToUpper(c.Param("code")), nil)
			return
		}
		respond.OK(c, profile)
	})
}
