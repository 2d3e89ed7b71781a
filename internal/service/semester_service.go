package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/deptsched/timetable-api/internal/dto"
	"github.com/deptsched/timetable-api/internal/models"
	appErrors "github.com/deptsched/timetable-api/pkg/errors"
)

type semesterRepo interface {
	List(ctx context.Context) ([]models.Semester, error)
	GetByID(ctx context.Context, id string) (*models.Semester, error)
	GetActive(ctx context.Context) (*models.Semester, error)
	Create(ctx context.Context, semester *models.Semester) error
	Update(ctx context.Context, semester *models.Semester) error
	Delete(ctx context.Context, id string) error
}

type classRepo interface {
	ListBySemester(ctx context.Context, semesterID string) ([]models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id string) error
}

// SemesterService manages semesters and their sections.
type SemesterService struct {
	semesters semesterRepo
	classes   classRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSemesterService constructs the service.
func NewSemesterService(semesters semesterRepo, classes classRepo, validate *validator.Validate, logger *zap.Logger) *SemesterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SemesterService{semesters: semesters, classes: classes, validator: validate, logger: logger}
}

// List returns every semester.
func (s *SemesterService) List(ctx context.Context) ([]models.Semester, error) {
	semesters, err := s.semesters.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list semesters")
	}
	return semesters, nil
}

// Active returns the active semester.
func (s *SemesterService) Active(ctx context.Context) (*models.Semester, error) {
	semester, err := s.semesters.GetActive(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no active semester")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load active semester")
	}
	return semester, nil
}

// Create adds a semester.
func (s *SemesterService) Create(ctx context.Context, req dto.CreateSemesterRequest) (*models.Semester, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid semester payload")
	}
	semester := &models.Semester{Name: req.Name, Active: req.Active}
	if err := s.semesters.Create(ctx, semester); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create semester")
	}
	return semester, nil
}

// Update renames or re-activates a semester.
func (s *SemesterService) Update(ctx context.Context, id string, req dto.UpdateSemesterRequest) (*models.Semester, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid semester payload")
	}
	semester, err := s.semesters.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}
	semester.Name = req.Name
	semester.Active = req.Active
	if err := s.semesters.Update(ctx, semester); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update semester")
	}
	return semester, nil
}

// Delete removes a semester and everything hanging off it.
func (s *SemesterService) Delete(ctx context.Context, id string) error {
	if _, err := s.semesters.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}
	if err := s.semesters.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete semester")
	}
	return nil
}

// ListClasses returns a semester's sections.
func (s *SemesterService) ListClasses(ctx context.Context, semesterID string) ([]models.Class, error) {
	if _, err := s.semesters.GetByID(ctx, semesterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}
	classes, err := s.classes.ListBySemester(ctx, semesterID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}

// CreateClass adds one section to a semester.
func (s *SemesterService) CreateClass(ctx context.Context, semesterID string, req dto.CreateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	if _, err := s.semesters.GetByID(ctx, semesterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}
	class := &models.Class{
		SemesterID: semesterID,
		Program:    req.Program,
		Year:       req.Year,
		Section:    req.Section,
		Classroom:  req.Classroom,
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}
	return class, nil
}

// DeleteClass removes one section.
func (s *SemesterService) DeleteClass(ctx context.Context, id string) error {
	if err := s.classes.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class")
	}
	return nil
}
