package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deptsched/timetable-api/internal/dto"
	"github.com/deptsched/timetable-api/internal/models"
	"github.com/deptsched/timetable-api/internal/service"
	appErrors "github.com/deptsched/timetable-api/pkg/errors"
	"github.com/deptsched/timetable-api/pkg/response"
)

type timetableManager interface {
	PublishedView(ctx context.Context, query dto.TimetableQuery) (*dto.TimetableResponse, error)
	FullView(ctx context.Context, query dto.TimetableQuery) (*dto.TimetableResponse, error)
	UpsertSlot(ctx context.Context, req dto.UpsertSlotRequest) (*models.TimetableSlot, error)
	DeleteSlot(ctx context.Context, semesterID, slotID string) error
	Publish(ctx context.Context, req dto.PublishRequest) error
	TimeSlotConfig(ctx context.Context) ([]models.TimeSlotConfig, error)
	UpdateTimeSlotConfig(ctx context.Context, req dto.TimeSlotConfigRequest) error
}

// TimetableHandler exposes timetable views, manual edits, publication and
// the period time configuration.
type TimetableHandler struct {
	service timetableManager
}

// NewTimetableHandler constructs the handler.
func NewTimetableHandler(svc *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{service: svc}
}

// Published godoc
// @Summary Get a section's published timetable
// @Tags Timetable
// @Produce json
// @Param semesterId query string true "Semester ID"
// @Param program query string true "Program code"
// @Param year query int true "Year of study"
// @Param section query string true "Section letter"
// @Success 200 {object} response.Envelope
// @Router /timetable [get]
func (h *TimetableHandler) Published(c *gin.Context) {
	query, ok := bindTimetableQuery(c)
	if !ok {
		return
	}
	view, err := h.service.PublishedView(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Full godoc
// @Summary Get a section's full timetable including unpublished slots
// @Tags Timetable
// @Produce json
// @Param semesterId query string true "Semester ID"
// @Param program query string true "Program code"
// @Param year query int true "Year of study"
// @Param section query string true "Section letter"
// @Success 200 {object} response.Envelope
// @Router /timetable/full [get]
func (h *TimetableHandler) Full(c *gin.Context) {
	query, ok := bindTimetableQuery(c)
	if !ok {
		return
	}
	view, err := h.service.FullView(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// UpsertSlot godoc
// @Summary Place or replace a single timetable cell
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.UpsertSlotRequest true "Slot payload"
// @Success 200 {object} response.Envelope
// @Router /timetable/slots [put]
func (h *TimetableHandler) UpsertSlot(c *gin.Context) {
	var req dto.UpsertSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid slot payload"))
		return
	}
	slot, err := h.service.UpsertSlot(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slot, nil)
}

// DeleteSlot godoc
// @Summary Remove a single timetable cell
// @Tags Timetable
// @Param id path string true "Slot ID"
// @Param semesterId query string true "Semester ID"
// @Success 204
// @Router /timetable/slots/{id} [delete]
func (h *TimetableHandler) DeleteSlot(c *gin.Context) {
	if err := h.service.DeleteSlot(c.Request.Context(), c.Query("semesterId"), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Publish godoc
// @Summary Publish the timetable of one or more classes
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.PublishRequest true "Publish payload"
// @Success 204
// @Router /timetable/publish [post]
func (h *TimetableHandler) Publish(c *gin.Context) {
	var req dto.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid publish payload"))
		return
	}
	if err := h.service.Publish(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// TimeSlots godoc
// @Summary Get the period time configuration
// @Tags Timetable
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timetable/time-slots [get]
func (h *TimetableHandler) TimeSlots(c *gin.Context) {
	config, err := h.service.TimeSlotConfig(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, config, nil)
}

// UpdateTimeSlots godoc
// @Summary Replace the period time configuration
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.TimeSlotConfigRequest true "Time slot payload"
// @Success 204
// @Router /timetable/time-slots [put]
func (h *TimetableHandler) UpdateTimeSlots(c *gin.Context) {
	var req dto.TimeSlotConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid time slot payload"))
		return
	}
	if err := h.service.UpdateTimeSlotConfig(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func bindTimetableQuery(c *gin.Context) (dto.TimetableQuery, bool) {
	var query dto.TimetableQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid timetable query"))
		return query, false
	}
	return query, true
}
