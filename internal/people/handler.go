package people

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamlens-backend/internal/analysis"
	"teamlens-backend/internal/shared/server/respond"
	"teamlens-backend/internal/shared/util"
)

// maxImportBytes caps CSV uploads; a person row is tiny, so this is generous.
const maxImportBytes = 4 << 20

// Handler wires HTTP handlers to the people service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches people and analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/people", h.list)
	rg.POST("/people", h.create)
	rg.GET("/people/:id", h.get)
	rg.PUT("/people/:id", h.update)
	rg.DELETE("/people/:id", h.remove)
	rg.POST("/people/:id/analysis", h.analyze)
	// Import/export live beside /people, not under it, to keep the static
	// segments out of the :id wildcard's way.
	rg.POST("/import/people/csv", h.importCSV)
	rg.POST("/import/people/json", h.importJSON)
	rg.GET("/export/people.csv", h.exportCSV)
	rg.POST("/analysis", h.analyzeAdHoc)
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list people", nil)
		return
	}
	respond.OK(c, gin.H{"people": list, "count": len(list)})
}

func (h *Handler) create(c *gin.Context) {
	var input PersonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	person, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.Created(c, person)
}

func (h *Handler) get(c *gin.Context) {
	personID := c.Param("id")
	c.Set("personId", personID)
	person, err := h.Svc.GetByID(c.Request.Context(), personID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "person not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load person", nil)
		return
	}
	respond.OK(c, person)
}

func (h *Handler) update(c *gin.Context) {
	personID := c.Param("id")
	c.Set("personId", personID)
	var input PersonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	person, err := h.Svc.Update(c.Request.Context(), personID, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "person not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.OK(c, person)
}

func (h *Handler) remove(c *gin.Context) {
	personID := c.Param("id")
	c.Set("personId", personID)
	if err := h.Svc.Delete(c.Request.Context(), personID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "person not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete person", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) analyze(c *gin.Context) {
	personID := c.Param("id")
	c.Set("personId", personID)
	result, err := h.Svc.Analyze(c.Request.Context(), personID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "person not found", nil)
		case errors.Is(err, ErrUnanalyzable):
			respond.Error(c, http.StatusUnprocessableEntity, "unanalyzable", "person has neither a personality type nor ranked talents", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run analysis", nil)
		}
		return
	}
	c.Set("analysisMode", string(result.Mode))
	respond.OK(c, result)
}

func (h *Handler) analyzeAdHoc(c *gin.Context) {
	var input analysis.Person
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	result, err := h.Svc.AnalyzeAdHoc(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, ErrUnanalyzable) {
			respond.Error(c, http.StatusUnprocessableEntity, "unanalyzable", "supply a personality type, ranked talents, or both", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run analysis", nil)
		return
	}
	c.Set("analysisMode", string(result.Mode))
	respond.OK(c, result)
}

func (h *Handler) importCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart field 'file' is required", nil)
		return
	}
	if fileHeader.Size > maxImportBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "too_large", "import file exceeds the size limit", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to open uploaded file", nil)
		return
	}
	defer file.Close()

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		fileName = "upload.csv"
	}
	rows, parseErrs, err := ReadCSV(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"fileName": fileName})
		return
	}
	summary, err := h.Svc.Import(c.Request.Context(), rows)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "import aborted", nil)
		return
	}
	summary.Errors = append(parseErrs, summary.Errors...)
	respond.OK(c, gin.H{
		"fileName": fileName,
		"imported": summary.Imported,
		"errors":   summary.Errors,
	})
}

func (h *Handler) importJSON(c *gin.Context) {
	var inputs []PersonInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "expected a JSON array of people", nil)
		return
	}
	rows := make([]ImportRow, 0, len(inputs))
	for i, input := range inputs {
		rows = append(rows, ImportRow{Row: i + 1, Input: input})
	}
	summary, err := h.Svc.Import(c.Request.Context(), rows)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "import aborted", nil)
		return
	}
	respond.OK(c, summary)
}

func (h *Handler) exportCSV(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export people", nil)
		return
	}
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="people.csv"`)
	c.Status(http.StatusOK)
	if err := WriteCSV(c.Writer, list); err != nil {
		// Headers are already sent; log and abort the stream.
		_ = c.Error(err)
	}
}
