package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/deptsched/timetable-api/internal/dto"
	appErrors "github.com/deptsched/timetable-api/pkg/errors"
)

type exporterMock struct {
	err error
}

func (m exporterMock) CSV(ctx context.Context, query dto.TimetableQuery) ([]byte, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return []byte("Period,Monday\n"), "timetable-CS-2-A.csv", nil
}

func (m exporterMock) PDF(ctx context.Context, query dto.TimetableQuery) ([]byte, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return []byte("%PDF-1.3"), "timetable-CS-2-A.pdf", nil
}

func TestExportHandlerCSVAttachment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &ExportHandler{service: exporterMock{}}
	router := gin.New()
	router.GET("/timetable/export/csv", handler.CSV)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet,
		"/timetable/export/csv?semesterId=7a0f8f7e-24fc-4f3a-8f15-111111111111&program=CS&year=2&section=A", nil)

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `attachment; filename="timetable-CS-2-A.csv"`, w.Header().Get("Content-Disposition"))
	require.Contains(t, w.Header().Get("Content-Type"), "text/csv")
}

func TestExportHandlerDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &ExportHandler{service: exporterMock{err: appErrors.ErrForbidden}}
	router := gin.New()
	router.GET("/timetable/export/pdf", handler.PDF)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet,
		"/timetable/export/pdf?semesterId=7a0f8f7e-24fc-4f3a-8f15-111111111111&program=CS&year=2&section=A", nil)

	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}
