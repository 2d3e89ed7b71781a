package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deptsched/timetable-api/internal/dto"
	"github.com/deptsched/timetable-api/internal/service"
	"github.com/deptsched/timetable-api/pkg/response"
)

type timetableExporter interface {
	CSV(ctx context.Context, query dto.TimetableQuery) ([]byte, string, error)
	PDF(ctx context.Context, query dto.TimetableQuery) ([]byte, string, error)
}

// ExportHandler serves timetable downloads.
type ExportHandler struct {
	service timetableExporter
}

// NewExportHandler constructs the handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// CSV godoc
// @Summary Download a section's published timetable as CSV
// @Tags Exports
// @Produce text/csv
// @Param semesterId query string true "Semester ID"
// @Param program query string true "Program code"
// @Param year query int true "Year of study"
// @Param section query string true "Section letter"
// @Success 200 {file} file
// @Router /timetable/export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	query, ok := bindTimetableQuery(c)
	if !ok {
		return
	}
	payload, filename, err := h.service.CSV(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", payload)
}

// PDF godoc
// @Summary Download a section's published timetable as PDF
// @Tags Exports
// @Produce application/pdf
// @Param semesterId query string true "Semester ID"
// @Param program query string true "Program code"
// @Param year query int true "Year of study"
// @Param section query string true "Section letter"
// @Success 200 {file} file
// @Router /timetable/export/pdf [get]
func (h *ExportHandler) PDF(c *gin.Context) {
	query, ok := bindTimetableQuery(c)
	if !ok {
		return
	}
	payload, filename, err := h.service.PDF(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", payload)
}
