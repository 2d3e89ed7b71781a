package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptsched/timetable-api/internal/dto"
	appErrors "github.com/deptsched/timetable-api/pkg/errors"
)

type timetableViewerStub struct {
	view *dto.TimetableResponse
	err  error
}

func (s timetableViewerStub) PublishedView(ctx context.Context, query dto.TimetableQuery) (*dto.TimetableResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func publishedSectionView() *dto.TimetableResponse {
	return &dto.TimetableResponse{
		SemesterID: "7a0f8f7e-24fc-4f3a-8f15-111111111111",
		Program:    "CS",
		Year:       2,
		Section:    "A",
		Entries: []dto.TimetableEntryResponse{
			{ID: "slot-1", Day: "Monday", Slot: 1, TimeStart: "08:00", TimeEnd: "08:45",
				SlotType: "class", CourseCode: "CS210", Published: true},
			{ID: "slot-2", Day: "Tuesday", Slot: 2, TimeStart: "09:00", TimeEnd: "09:45",
				SlotType: "lab", CourseCode: "CS250", Published: true},
		},
	}
}

func TestExportServiceCSV(t *testing.T) {
	service := NewExportService(timetableViewerStub{view: publishedSectionView()}, true, nil)

	payload, filename, err := service.CSV(context.Background(), timetableQuery())
	require.NoError(t, err)
	assert.Equal(t, "timetable-CS-2-A.csv", filename)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Period,Monday,Tuesday,Wednesday,Thursday,Friday", lines[0])
	assert.Equal(t, "Period 1 (08:00-08:45),CS210,,,,", lines[1])
	assert.Equal(t, "Period 2 (09:00-09:45),,CS250 (Lab),,,", lines[2])
	assert.Equal(t, "Period 5 (Lunch),LUNCH,LUNCH,LUNCH,LUNCH,LUNCH", lines[5])
}

func TestExportServicePDF(t *testing.T) {
	service := NewExportService(timetableViewerStub{view: publishedSectionView()}, true, nil)

	payload, filename, err := service.PDF(context.Background(), timetableQuery())
	require.NoError(t, err)
	assert.Equal(t, "timetable-CS-2-A.pdf", filename)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestExportServiceDisabled(t *testing.T) {
	service := NewExportService(timetableViewerStub{view: publishedSectionView()}, false, nil)

	_, _, err := service.CSV(context.Background(), timetableQuery())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestExportServiceNothingPublished(t *testing.T) {
	service := NewExportService(timetableViewerStub{view: &dto.TimetableResponse{}}, true, nil)

	_, _, err := service.CSV(context.Background(), timetableQuery())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
