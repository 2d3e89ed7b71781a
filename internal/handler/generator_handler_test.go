package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/deptsched/timetable-api/internal/dto"
	internalmiddleware "github.com/deptsched/timetable-api/internal/middleware"
	"github.com/deptsched/timetable-api/internal/models"
)

type generatorMock struct {
	captured dto.GenerateTimetableRequest
}

func (m *generatorMock) Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error) {
	m.captured = req
	return &dto.GenerateTimetableResponse{SemesterID: req.SemesterID, SlotsCreated: 42}, nil
}

func TestGeneratorHandlerSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &generatorMock{}
	handler := &GeneratorHandler{service: mockSvc}

	req, _ := http.NewRequest(http.MethodPost, "/timetable/generate", bytes.NewReader(validGeneratePayload()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "7a0f8f7e-24fc-4f3a-8f15-111111111111", mockSvc.captured.SemesterID)
	require.Len(t, mockSvc.captured.ClassIDs, 1)
	require.Len(t, mockSvc.captured.MinorSlots, 4)
}

func TestGeneratorHandlerMalformedPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &GeneratorHandler{service: &generatorMock{}}

	req, _ := http.NewRequest(http.MethodPost, "/timetable/generate", bytes.NewReader([]byte(`{"semesterId":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratorHandlerForbiddenForCR(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &GeneratorHandler{service: &generatorMock{}}
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(internalmiddleware.ContextUserKey, &models.JWTClaims{UserID: "cr-1", Role: models.RoleCR})
		c.Next()
	})
	router.POST("/timetable/generate", internalmiddleware.RequireRoles(models.RoleIncharge), handler.Generate)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/timetable/generate", bytes.NewReader(validGeneratePayload()))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestGeneratorHandlerUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &GeneratorHandler{service: &generatorMock{}}
	router := gin.New()
	router.POST("/timetable/generate", internalmiddleware.RequireRoles(models.RoleIncharge), handler.Generate)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/timetable/generate", bytes.NewReader(validGeneratePayload()))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func validGeneratePayload() []byte {
	return []byte(`{
		"semesterId": "7a0f8f7e-24fc-4f3a-8f15-111111111111",
		"classIds": ["7a0f8f7e-24fc-4f3a-8f15-222222222222"],
		"minorSlots": [
			{"day": "Tuesday", "slot": 2},
			{"day": "Wednesday", "slot": 2},
			{"day": "Thursday", "slot": 2},
			{"day": "Friday", "slot": 2}
		]
	}`)
}
