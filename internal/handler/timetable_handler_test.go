package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/deptsched/timetable-api/internal/dto"
	"github.com/deptsched/timetable-api/internal/models"
)

type timetableManagerMock struct {
	query        dto.TimetableQuery
	upserted     dto.UpsertSlotRequest
	deletedSlot  string
	deletedSem   string
	published    dto.PublishRequest
	updatedSlots dto.TimeSlotConfigRequest
}

func (m *timetableManagerMock) PublishedView(ctx context.Context, query dto.TimetableQuery) (*dto.TimetableResponse, error) {
	m.query = query
	return &dto.TimetableResponse{SemesterID: query.SemesterID, Program: query.Program, Year: query.Year, Section: query.Section}, nil
}

func (m *timetableManagerMock) FullView(ctx context.Context, query dto.TimetableQuery) (*dto.TimetableResponse, error) {
	m.query = query
	return &dto.TimetableResponse{SemesterID: query.SemesterID}, nil
}

func (m *timetableManagerMock) UpsertSlot(ctx context.Context, req dto.UpsertSlotRequest) (*models.TimetableSlot, error) {
	m.upserted = req
	return &models.TimetableSlot{ID: "slot-1"}, nil
}

func (m *timetableManagerMock) DeleteSlot(ctx context.Context, semesterID, slotID string) error {
	m.deletedSem = semesterID
	m.deletedSlot = slotID
	return nil
}

func (m *timetableManagerMock) Publish(ctx context.Context, req dto.PublishRequest) error {
	m.published = req
	return nil
}

func (m *timetableManagerMock) TimeSlotConfig(ctx context.Context) ([]models.TimeSlotConfig, error) {
	return []models.TimeSlotConfig{{Slot: 1, Start: "08:00", End: "08:45"}}, nil
}

func (m *timetableManagerMock) UpdateTimeSlotConfig(ctx context.Context, req dto.TimeSlotConfigRequest) error {
	m.updatedSlots = req
	return nil
}

func newTimetableRouter(mock *timetableManagerMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := &TimetableHandler{service: mock}
	router := gin.New()
	router.GET("/timetable", handler.Published)
	router.PUT("/timetable/slots", handler.UpsertSlot)
	router.DELETE("/timetable/slots/:id", handler.DeleteSlot)
	router.POST("/timetable/publish", handler.Publish)
	router.GET("/timetable/time-slots", handler.TimeSlots)
	return router
}

func TestTimetableHandlerPublished(t *testing.T) {
	mock := &timetableManagerMock{}
	router := newTimetableRouter(mock)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet,
		"/timetable?semesterId=7a0f8f7e-24fc-4f3a-8f15-111111111111&program=CS&year=2&section=A", nil)

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "CS", mock.query.Program)
	require.Equal(t, 2, mock.query.Year)

	var envelope struct {
		Data dto.TimetableResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "A", envelope.Data.Section)
}

func TestTimetableHandlerUpsertSlot(t *testing.T) {
	mock := &timetableManagerMock{}
	router := newTimetableRouter(mock)

	payload := []byte(`{
		"semesterId": "7a0f8f7e-24fc-4f3a-8f15-111111111111",
		"program": "CS", "year": 2, "section": "A",
		"day": "Monday", "slot": 3,
		"courseId": "7a0f8f7e-24fc-4f3a-8f15-444444444444"
	}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/timetable/slots", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Monday", mock.upserted.Day)
	require.Equal(t, 3, mock.upserted.Slot)
}

func TestTimetableHandlerUpsertSlotMalformed(t *testing.T) {
	router := newTimetableRouter(&timetableManagerMock{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/timetable/slots", bytes.NewReader([]byte(`{"day":`)))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimetableHandlerDeleteSlot(t *testing.T) {
	mock := &timetableManagerMock{}
	router := newTimetableRouter(mock)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/timetable/slots/slot-9?semesterId=sem-1", nil)

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "slot-9", mock.deletedSlot)
	require.Equal(t, "sem-1", mock.deletedSem)
}

func TestTimetableHandlerPublish(t *testing.T) {
	mock := &timetableManagerMock{}
	router := newTimetableRouter(mock)

	payload := []byte(`{
		"semesterId": "7a0f8f7e-24fc-4f3a-8f15-111111111111",
		"classIds": ["7a0f8f7e-24fc-4f3a-8f15-222222222222"]
	}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/timetable/publish", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, mock.published.ClassIDs, 1)
}

func TestTimetableHandlerTimeSlots(t *testing.T) {
	router := newTimetableRouter(&timetableManagerMock{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/timetable/time-slots", nil)

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "08:00")
}
