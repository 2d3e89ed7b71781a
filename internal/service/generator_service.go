package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/deptsched/timetable-api/internal/dto"
	"github.com/deptsched/timetable-api/internal/engine"
	"github.com/deptsched/timetable-api/internal/models"
	appErrors "github.com/deptsched/timetable-api/pkg/errors"
)

type generatorSemesterReader interface {
	GetByID(ctx context.Context, id string) (*models.Semester, error)
}

type generatorClassReader interface {
	ListByIDs(ctx context.Context, ids []string) ([]models.Class, error)
}

type generatorCourseReader interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	DistinctInstructors(ctx context.Context, semesterID string) ([]string, error)
	DistinctLabRooms(ctx context.Context, semesterID string) ([]string, error)
}

type generatorSlotWriter interface {
	HasPublished(ctx context.Context, ref models.SectionRef) (bool, error)
	DeleteForSection(ctx context.Context, exec sqlx.ExtContext, ref models.SectionRef) error
	BulkInsert(ctx context.Context, exec sqlx.ExtContext, slots []models.TimetableSlot) error
}

type settingsReader interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
}

type txProvider interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// GeneratorService runs the timetable engine for a semester's sections and
// persists the result. The clear-and-insert sequence runs in one transaction
// so a failed run never leaves a section half-written.
type GeneratorService struct {
	semesters generatorSemesterReader
	classes   generatorClassReader
	courses   generatorCourseReader
	slots     generatorSlotWriter
	settings  settingsReader
	cache     *CacheService
	metrics   *MetricsService
	engine    *engine.Engine
	tx        txProvider
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGeneratorService wires generator dependencies.
func NewGeneratorService(
	semesters generatorSemesterReader,
	classes generatorClassReader,
	courses generatorCourseReader,
	slots generatorSlotWriter,
	settings settingsReader,
	cache *CacheService,
	metrics *MetricsService,
	tx txProvider,
	validate *validator.Validate,
	logger *zap.Logger,
) *GeneratorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeneratorService{
		semesters: semesters,
		classes:   classes,
		courses:   courses,
		slots:     slots,
		settings:  settings,
		cache:     cache,
		metrics:   metrics,
		engine:    engine.New(logger),
		tx:        tx,
		validator: validate,
		logger:    logger,
	}
}

// Generate rebuilds the timetable for the requested classes.
func (s *GeneratorService) Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid generation payload")
	}

	if _, err := s.semesters.GetByID(ctx, req.SemesterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}

	classes, err := s.classes.ListByIDs(ctx, req.ClassIDs)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classes")
	}
	if len(classes) != len(req.ClassIDs) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "one or more classes not found")
	}
	for _, class := range classes {
		if class.SemesterID != req.SemesterID {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("class %s does not belong to the semester", class.ID))
		}
	}

	refs := make([]models.SectionRef, len(classes))
	for i, class := range classes {
		refs[i] = models.SectionRef{
			SemesterID: req.SemesterID,
			Program:    class.Program,
			Year:       class.Year,
			Section:    class.Section,
		}
		published, err := s.slots.HasPublished(ctx, refs[i])
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check published slots")
		}
		if published {
			return nil, appErrors.Clone(appErrors.ErrPublished,
				fmt.Sprintf("timetable for %s-%d-%s is published; unpublish before regenerating", class.Program, class.Year, class.Section))
		}
	}

	input, err := s.buildInput(ctx, req, classes)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	result, err := s.engine.Generate(*input)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	if s.metrics != nil {
		s.metrics.ObserveGeneration(time.Since(started), len(result.Assignments), len(result.Warnings))
	}

	if err := s.persist(ctx, req.SemesterID, refs, result.Assignments); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, timetableCachePattern(req.SemesterID))
	}

	s.logger.Info("timetable generated",
		zap.String("semester_id", req.SemesterID),
		zap.Int("classes", len(classes)),
		zap.Int("slots", len(result.Assignments)),
		zap.Int("warnings", len(result.Warnings)),
	)

	return &dto.GenerateTimetableResponse{
		SemesterID:   req.SemesterID,
		SlotsCreated: len(result.Assignments),
		Warnings: lo.Map(result.Warnings, func(w engine.Warning, _ int) dto.GenerationWarning {
			return dto.GenerationWarning{
				Course:    w.CourseCode,
				Section:   w.Section,
				Category:  string(w.Category),
				Scheduled: w.Scheduled,
				Required:  w.Required,
			}
		}),
	}, nil
}

func (s *GeneratorService) buildInput(ctx context.Context, req dto.GenerateTimetableRequest, classes []models.Class) (*engine.Input, error) {
	courses, err := s.courses.List(ctx, models.CourseFilter{SemesterID: req.SemesterID})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	instructors, err := s.courses.DistinctInstructors(ctx, req.SemesterID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load instructors")
	}
	labRooms, err := s.courses.DistinctLabRooms(ctx, req.SemesterID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load lab rooms")
	}
	timeSlots, err := s.loadTimeSlots(ctx)
	if err != nil {
		return nil, err
	}

	input := &engine.Input{
		Sections: lo.Map(classes, func(c models.Class, _ int) engine.Section {
			return engine.Section{Program: c.Program, Year: c.Year, Label: c.Section, Classroom: c.Classroom}
		}),
		Courses: lo.Map(courses, func(c models.Course, _ int) engine.Course {
			labRoom := ""
			if c.LabRoom != nil {
				labRoom = *c.LabRoom
			}
			return engine.Course{
				ID:             c.ID,
				Code:           c.Code,
				Name:           c.Name,
				Instructor:     c.Instructor,
				Program:        c.Program,
				Year:           c.Year,
				LectureHours:   c.LectureHours,
				TutorialHours:  c.TutorialHours,
				PracticalHours: c.PracticalHours,
				IsElective:     c.IsElective,
				IsMinor:        c.IsMinor,
				IsCombined:     c.IsCombined,
				Type:           engine.CourseType(c.Type),
				LabRoom:        labRoom,
				Sections:       c.SectionList(),
			}
		}),
		Instructors: instructors,
		LabRooms:    labRooms,
		MinorSlots: lo.Map(req.MinorSlots, func(ms dto.MinorSlotRequest, _ int) engine.MinorSlot {
			return engine.MinorSlot{Day: ms.Day, Slot: ms.Slot}
		}),
		TimeSlots: timeSlots,
	}
	return input, nil
}

// loadTimeSlots reads the configured wall-clock windows, falling back to the
// built-in grid when none were configured yet.
func (s *GeneratorService) loadTimeSlots(ctx context.Context) ([]engine.TimeSlot, error) {
	if s.settings == nil {
		return engine.DefaultTimeSlots(), nil
	}
	setting, err := s.settings.Get(ctx, models.SettingKeyTimeSlots)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return engine.DefaultTimeSlots(), nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load time slot configuration")
	}
	var configured []models.TimeSlotConfig
	if err := json.Unmarshal(setting.Value, &configured); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "malformed time slot configuration")
	}
	return lo.Map(configured, func(ts models.TimeSlotConfig, _ int) engine.TimeSlot {
		return engine.TimeSlot{Slot: ts.Slot, Start: ts.Start, End: ts.End}
	}), nil
}

func (s *GeneratorService) persist(ctx context.Context, semesterID string, refs []models.SectionRef, assignments []engine.Assignment) error {
	if s.tx == nil {
		return appErrors.Clone(appErrors.ErrInternal, "transaction provider missing")
	}
	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, ref := range refs {
		if err = s.slots.DeleteForSection(ctx, tx, ref); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear previous timetable")
		}
	}

	slots := make([]models.TimetableSlot, 0, len(assignments))
	for _, a := range assignments {
		courseID := a.CourseID
		slots = append(slots, models.TimetableSlot{
			SemesterID: semesterID,
			Program:    a.Program,
			Year:       a.Year,
			Section:    a.Section,
			Day:        a.Day,
			SlotNumber: a.Slot,
			TimeStart:  a.TimeStart,
			TimeEnd:    a.TimeEnd,
			CourseID:   &courseID,
			SlotType:   models.SlotKind(a.SlotType),
		})
	}
	if err = s.slots.BulkInsert(ctx, tx, slots); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist timetable slots")
	}

	if err = tx.Commit(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit timetable transaction")
	}
	return nil
}

func timetableCachePattern(semesterID string) string {
	return fmt.Sprintf("timetable:%s:*", semesterID)
}

func timetableCacheKey(ref models.SectionRef) string {
	return fmt.Sprintf("timetable:%s:%s-%d-%s", ref.SemesterID, ref.Program, ref.Year, ref.Section)
}
