package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/deptsched/timetable-api/internal/dto"
	"github.com/deptsched/timetable-api/internal/models"
	appErrors "github.com/deptsched/timetable-api/pkg/errors"
)

type courseRepo interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	BulkInsert(ctx context.Context, courses []models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

// CourseService manages the semester course catalog.
type CourseService struct {
	repo      courseRepo
	semesters generatorSemesterReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the service.
func NewCourseService(repo courseRepo, semesters generatorSemesterReader, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, semesters: semesters, validator: validate, logger: logger}
}

// List returns catalog courses matching the query.
func (s *CourseService) List(ctx context.Context, query dto.CourseQuery) ([]models.Course, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course query")
	}
	courses, err := s.repo.List(ctx, models.CourseFilter{
		SemesterID: query.SemesterID,
		Program:    query.Program,
		Year:       query.Year,
		Section:    query.Section,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// Create adds one course to the catalog.
func (s *CourseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	if _, err := s.semesters.GetByID(ctx, req.SemesterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}

	course := courseFromPayload(req.SemesterID, coursePayload{
		Code: req.Code, Name: req.Name, Instructor: req.Instructor,
		Program: req.Program, Year: req.Year,
		LectureHours: req.LectureHours, TutorialHours: req.TutorialHours, PracticalHours: req.PracticalHours,
		IsElective: req.IsElective, IsMinor: req.IsMinor, IsCombined: req.IsCombined,
		Type: req.Type, LabRoom: req.LabRoom, Sections: req.Sections,
	})
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	return course, nil
}

// Update rewrites one course.
func (s *CourseService) Update(ctx context.Context, id string, req dto.UpdateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}

	course := courseFromPayload(existing.SemesterID, coursePayload{
		Code: req.Code, Name: req.Name, Instructor: req.Instructor,
		Program: req.Program, Year: req.Year,
		LectureHours: req.LectureHours, TutorialHours: req.TutorialHours, PracticalHours: req.PracticalHours,
		IsElective: req.IsElective, IsMinor: req.IsMinor, IsCombined: req.IsCombined,
		Type: req.Type, LabRoom: req.LabRoom, Sections: req.Sections,
	})
	course.ID = existing.ID
	course.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}
	return course, nil
}

// Delete removes one course.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	return nil
}

// ImportCSV bulk-loads the catalog from a CSV stream. Rows failing basic
// checks are reported and skipped; the surviving rows land in one
// transaction.
func (s *CourseService) ImportCSV(ctx context.Context, semesterID string, reader io.Reader) (*dto.CourseImportResponse, error) {
	if _, err := s.semesters.GetByID(ctx, semesterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}

	var rows []dto.CourseImportRow
	if err := gocsv.Unmarshal(reader, &rows); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "malformed CSV payload")
	}
	if len(rows) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "CSV contains no courses")
	}

	response := &dto.CourseImportResponse{}
	courses := make([]models.Course, 0, len(rows))
	for i, row := range rows {
		if err := validateImportRow(row); err != nil {
			response.Skipped++
			response.Errors = append(response.Errors, fmt.Sprintf("row %d: %v", i+2, err))
			continue
		}
		course := courseFromPayload(semesterID, coursePayload{
			Code: row.Code, Name: row.Name, Instructor: row.Instructor,
			Program: row.Program, Year: row.Year,
			LectureHours: row.LectureHours, TutorialHours: row.TutorialHours, PracticalHours: row.PracticalHours,
			IsElective: row.IsElective, IsMinor: row.IsMinor, IsCombined: row.IsCombined,
			Type: row.Type, LabRoom: row.LabRoom, Sections: splitSections(row.Sections),
		})
		courses = append(courses, *course)
	}
	if len(courses) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no importable rows in CSV")
	}

	if err := s.repo.BulkInsert(ctx, courses); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to import courses")
	}
	response.Imported = len(courses)
	s.logger.Info("course catalog imported",
		zap.String("semester_id", semesterID),
		zap.Int("imported", response.Imported),
		zap.Int("skipped", response.Skipped),
	)
	return response, nil
}

type coursePayload struct {
	Code           string
	Name           string
	Instructor     string
	Program        string
	Year           int
	LectureHours   int
	TutorialHours  int
	PracticalHours int
	IsElective     bool
	IsMinor        bool
	IsCombined     bool
	Type           string
	LabRoom        string
	Sections       []string
}

func courseFromPayload(semesterID string, p coursePayload) *models.Course {
	courseType := models.CourseType(p.Type)
	if courseType == "" {
		courseType = models.CourseTypeRegular
		if p.PracticalHours > 0 {
			courseType = models.CourseTypeLab
		}
	}
	var labRoom *string
	if room := strings.TrimSpace(p.LabRoom); room != "" {
		labRoom = &room
	}
	return &models.Course{
		SemesterID:     semesterID,
		Code:           strings.TrimSpace(p.Code),
		Name:           strings.TrimSpace(p.Name),
		Instructor:     strings.TrimSpace(p.Instructor),
		Program:        strings.TrimSpace(p.Program),
		Year:           p.Year,
		LectureHours:   maxInt(p.LectureHours, 0),
		TutorialHours:  maxInt(p.TutorialHours, 0),
		PracticalHours: maxInt(p.PracticalHours, 0),
		IsElective:     p.IsElective,
		IsMinor:        p.IsMinor,
		IsCombined:     p.IsCombined,
		Type:           courseType,
		LabRoom:        labRoom,
		Sections:       strings.Join(p.Sections, ","),
	}
}

func validateImportRow(row dto.CourseImportRow) error {
	if strings.TrimSpace(row.Code) == "" {
		return errors.New("code is required")
	}
	if strings.TrimSpace(row.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(row.Instructor) == "" {
		return errors.New("instructor is required")
	}
	if strings.TrimSpace(row.Program) == "" {
		return errors.New("program is required")
	}
	if row.Year < 1 || row.Year > 6 {
		return fmt.Errorf("year %d is out of range", row.Year)
	}
	if len(splitSections(row.Sections)) == 0 {
		return errors.New("at least one section is required")
	}
	if row.Type == string(models.CourseTypeLab) && strings.TrimSpace(row.LabRoom) == "" {
		return errors.New("lab courses need a lab room")
	}
	return nil
}

func splitSections(raw string) []string {
	parts := strings.Split(raw, ",")
	sections := make([]string, 0, len(parts))
	for _, p := range parts {
		if label := strings.TrimSpace(p); label != "" {
			sections = append(sections, label)
		}
	}
	return sections
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
