package attendance

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamlens-backend/internal/shared/metrics"
	"teamlens-backend/internal/shared/server/respond"
	"teamlens-backend/internal/shared/util"
)

// maxUploadBytes caps timesheet uploads.
const maxUploadBytes = 8 << 20

// Notifier announces a completed compliance report. Nil disables it.
type Notifier interface {
	AttendanceReportCompleted(ctx context.Context, fileName string, report *Report)
}

type Handler struct {
	Rules    Rules
	Notifier Notifier
}

func NewHandler(rules Rules) *Handler {
	return &Handler{Rules: rules}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/attendance/report", h.report)
}

func (h *Handler) report(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart field 'file' is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "too_large", "timesheet exceeds the size limit", nil)
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
	rows, rowErrs, err := ReadCSV(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"fileName": fileName})
		return
	}

	metrics.IncAttendanceImport()
	if len(rowErrs) > 0 {
		metrics.AddAttendanceRowErrors(len(rowErrs))
	}

	report := BuildReport(h.Rules, rows, rowErrs)
	if h.Notifier != nil {
		h.Notifier.AttendanceReportCompleted(c.Request.Context(), fileName, report)
	}
	respond.OK(c, gin.H{
		"fileName": fileName,
		"report":   report,
	})
}
