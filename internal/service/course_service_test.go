package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptsched/timetable-api/internal/dto"
	"github.com/deptsched/timetable-api/internal/models"
	appErrors "github.com/deptsched/timetable-api/pkg/errors"
)

type courseRepoStub struct {
	items     []models.Course
	bulkErr   error
	lastBulk  []models.Course
	lastWrite *models.Course
}

func (s *courseRepoStub) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	return s.items, nil
}

func (s *courseRepoStub) GetByID(ctx context.Context, id string) (*models.Course, error) {
	for _, c := range s.items {
		if c.ID == id {
			course := c
			return &course, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *courseRepoStub) Create(ctx context.Context, course *models.Course) error {
	s.lastWrite = course
	s.items = append(s.items, *course)
	return nil
}

func (s *courseRepoStub) BulkInsert(ctx context.Context, courses []models.Course) error {
	if s.bulkErr != nil {
		return s.bulkErr
	}
	s.lastBulk = courses
	return nil
}

func (s *courseRepoStub) Update(ctx context.Context, course *models.Course) error {
	s.lastWrite = course
	return nil
}

func (s *courseRepoStub) Delete(ctx context.Context, id string) error {
	return nil
}

func newCourseFixture(repo *courseRepoStub) *CourseService {
	return NewCourseService(repo, semesterReaderStub{}, nil, nil)
}

func TestCourseServiceCreateDefaultsLabType(t *testing.T) {
	repo := &courseRepoStub{}
	service := newCourseFixture(repo)

	course, err := service.Create(context.Background(), dto.CreateCourseRequest{
		SemesterID:     "7a0f8f7e-24fc-4f3a-8f15-111111111111",
		Code:           "CS250",
		Name:           "Operating Systems Lab",
		Instructor:     "prof.das",
		Program:        "CS",
		Year:           2,
		PracticalHours: 3,
		LabRoom:        "LAB-1",
		Sections:       []string{"A", "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.CourseTypeLab, course.Type)
	assert.Equal(t, "A,B", course.Sections)
	require.NotNil(t, course.LabRoom)
	assert.Equal(t, "LAB-1", *course.LabRoom)
}

func TestCourseServiceUpdateMissingCourse(t *testing.T) {
	service := newCourseFixture(&courseRepoStub{})

	_, err := service.Update(context.Background(), "missing", dto.UpdateCourseRequest{
		Code: "CS210", Name: "Data Structures", Instructor: "prof.sen",
		Program: "CS", Year: 2, Sections: []string{"A"},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCourseServiceImportCSV(t *testing.T) {
	repo := &courseRepoStub{}
	service := newCourseFixture(repo)

	csv := strings.Join([]string{
		"code,name,instructor,program,year,lecture_hours,tutorial_hours,practical_hours,is_elective,is_minor,is_combined,type,lab_room,sections",
		"CS210,Data Structures,prof.sen,CS,2,3,1,0,false,false,false,regular,,\"A,B\"",
		"CS250,OS Lab,prof.das,CS,2,0,0,3,false,false,false,lab,LAB-1,\"A,B\"",
		",Missing Code,prof.x,CS,2,3,0,0,false,false,false,regular,,A",
	}, "\n")

	resp, err := service.ImportCSV(context.Background(), "sem-1", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Imported)
	assert.Equal(t, 1, resp.Skipped)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "code is required")
	require.Len(t, repo.lastBulk, 2)
	assert.Equal(t, "A,B", repo.lastBulk[0].Sections)
}

func TestCourseServiceImportCSVEmpty(t *testing.T) {
	service := newCourseFixture(&courseRepoStub{})

	_, err := service.ImportCSV(context.Background(), "sem-1", strings.NewReader("code,name\n"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
