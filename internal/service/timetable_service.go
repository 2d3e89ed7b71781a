package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx/types"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/deptsched/timetable-api/internal/dto"
	"github.com/deptsched/timetable-api/internal/engine"
	"github.com/deptsched/timetable-api/internal/models"
	appErrors "github.com/deptsched/timetable-api/pkg/errors"
)

type timetableSlotRepo interface {
	ListEntries(ctx context.Context, ref models.SectionRef, publishedOnly bool) ([]models.TimetableEntry, error)
	Upsert(ctx context.Context, slot *models.TimetableSlot) error
	DeleteSlot(ctx context.Context, id string) error
	PublishSection(ctx context.Context, ref models.SectionRef) error
}

type timetableCourseReader interface {
	GetByID(ctx context.Context, id string) (*models.Course, error)
}

type settingsStore interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
	Upsert(ctx context.Context, setting *models.Setting) error
}

// TimetableService serves section timetables and handles manual edits,
// publication, and the period wall-clock configuration.
type TimetableService struct {
	slots     timetableSlotRepo
	classes   generatorClassReader
	courses   timetableCourseReader
	settings  settingsStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTimetableService constructs the service.
func NewTimetableService(
	slots timetableSlotRepo,
	classes generatorClassReader,
	courses timetableCourseReader,
	settings settingsStore,
	cache *CacheService,
	validate *validator.Validate,
	logger *zap.Logger,
) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{
		slots:     slots,
		classes:   classes,
		courses:   courses,
		settings:  settings,
		cache:     cache,
		validator: validate,
		logger:    logger,
	}
}

// PublishedView returns a section's published timetable. The read path the
// class representatives hit, so it goes through the cache.
func (s *TimetableService) PublishedView(ctx context.Context, query dto.TimetableQuery) (*dto.TimetableResponse, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable query")
	}
	ref := models.SectionRef{SemesterID: query.SemesterID, Program: query.Program, Year: query.Year, Section: query.Section}

	var cached dto.TimetableResponse
	if s.cache != nil {
		if hit, _ := s.cache.Get(ctx, timetableCacheKey(ref), &cached); hit {
			return &cached, nil
		}
	}

	response, err := s.view(ctx, ref, true)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, timetableCacheKey(ref), response, 0)
	}
	return response, nil
}

// FullView returns every slot of a section including unpublished ones.
// Incharge-only, never cached.
func (s *TimetableService) FullView(ctx context.Context, query dto.TimetableQuery) (*dto.TimetableResponse, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable query")
	}
	ref := models.SectionRef{SemesterID: query.SemesterID, Program: query.Program, Year: query.Year, Section: query.Section}
	return s.view(ctx, ref, false)
}

func (s *TimetableService) view(ctx context.Context, ref models.SectionRef, publishedOnly bool) (*dto.TimetableResponse, error) {
	entries, err := s.slots.ListEntries(ctx, ref, publishedOnly)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	return &dto.TimetableResponse{
		SemesterID: ref.SemesterID,
		Program:    ref.Program,
		Year:       ref.Year,
		Section:    ref.Section,
		Entries: lo.Map(entries, func(e models.TimetableEntry, _ int) dto.TimetableEntryResponse {
			resp := dto.TimetableEntryResponse{
				ID:        e.ID,
				Day:       e.Day,
				Slot:      e.SlotNumber,
				TimeStart: e.TimeStart,
				TimeEnd:   e.TimeEnd,
				SlotType:  string(e.SlotType),
				Published: e.IsPublished,
			}
			if e.CourseID != nil {
				resp.CourseID = *e.CourseID
			}
			if e.CourseCode != nil {
				resp.CourseCode = *e.CourseCode
			}
			if e.CourseName != nil {
				resp.CourseName = *e.CourseName
			}
			if e.Instructor != nil {
				resp.Instructor = *e.Instructor
			}
			return resp
		}),
	}, nil
}

// UpsertSlot places or replaces one cell by hand. The slot type follows the
// course unless the payload forces it.
func (s *TimetableService) UpsertSlot(ctx context.Context, req dto.UpsertSlotRequest) (*models.TimetableSlot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid slot payload")
	}
	if req.Slot == engine.LunchSlot {
		return nil, appErrors.Clone(appErrors.ErrValidation, "cannot place a course on the lunch period")
	}

	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}

	slotType := models.SlotKind(req.SlotType)
	if slotType == "" {
		slotType = models.SlotKindClass
		if course.Type == models.CourseTypeLab {
			slotType = models.SlotKindLab
		}
	}

	start, end, err := s.slotWindow(ctx, req.Slot)
	if err != nil {
		return nil, err
	}

	slot := &models.TimetableSlot{
		SemesterID: req.SemesterID,
		Program:    req.Program,
		Year:       req.Year,
		Section:    req.Section,
		Day:        req.Day,
		SlotNumber: req.Slot,
		TimeStart:  start,
		TimeEnd:    end,
		CourseID:   &course.ID,
		SlotType:   slotType,
	}
	if err := s.slots.Upsert(ctx, slot); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save slot")
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, timetableCachePattern(req.SemesterID))
	}
	return slot, nil
}

// DeleteSlot removes one cell.
func (s *TimetableService) DeleteSlot(ctx context.Context, semesterID, slotID string) error {
	if slotID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "slot id is required")
	}
	if err := s.slots.DeleteSlot(ctx, slotID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "slot not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete slot")
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, timetableCachePattern(semesterID))
	}
	return nil
}

// Publish marks every slot of the named classes as published.
func (s *TimetableService) Publish(ctx context.Context, req dto.PublishRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid publish payload")
	}
	classes, err := s.classes.ListByIDs(ctx, req.ClassIDs)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classes")
	}
	if len(classes) != len(req.ClassIDs) {
		return appErrors.Clone(appErrors.ErrNotFound, "one or more classes not found")
	}
	for _, class := range classes {
		if class.SemesterID != req.SemesterID {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("class %s does not belong to the semester", class.ID))
		}
		ref := models.SectionRef{SemesterID: req.SemesterID, Program: class.Program, Year: class.Year, Section: class.Section}
		if err := s.slots.PublishSection(ctx, ref); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to publish timetable")
		}
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, timetableCachePattern(req.SemesterID))
	}
	s.logger.Info("timetable published",
		zap.String("semester_id", req.SemesterID),
		zap.Int("classes", len(classes)),
	)
	return nil
}

// TimeSlotConfig returns the configured period windows, falling back to the
// built-in grid.
func (s *TimetableService) TimeSlotConfig(ctx context.Context) ([]models.TimeSlotConfig, error) {
	setting, err := s.settings.Get(ctx, models.SettingKeyTimeSlots)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return defaultTimeSlotConfig(), nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load time slot configuration")
	}
	var configured []models.TimeSlotConfig
	if err := json.Unmarshal(setting.Value, &configured); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "malformed time slot configuration")
	}
	return configured, nil
}

// UpdateTimeSlotConfig replaces the period windows.
func (s *TimetableService) UpdateTimeSlotConfig(ctx context.Context, req dto.TimeSlotConfigRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid time slot configuration")
	}
	seen := make(map[int]bool, len(req.Slots))
	for _, item := range req.Slots {
		if seen[item.Slot] {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("duplicate period %d", item.Slot))
		}
		seen[item.Slot] = true
	}

	configured := lo.Map(req.Slots, func(item dto.TimeSlotItem, _ int) models.TimeSlotConfig {
		return models.TimeSlotConfig{Slot: item.Slot, Start: item.Start, End: item.End}
	})
	payload, err := json.Marshal(configured)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode time slot configuration")
	}
	setting := &models.Setting{Key: models.SettingKeyTimeSlots, Value: types.JSONText(payload)}
	if err := s.settings.Upsert(ctx, setting); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save time slot configuration")
	}
	return nil
}

func (s *TimetableService) slotWindow(ctx context.Context, slot int) (string, string, error) {
	configured, err := s.TimeSlotConfig(ctx)
	if err != nil {
		return "", "", err
	}
	for _, ts := range configured {
		if ts.Slot == slot {
			return ts.Start, ts.End, nil
		}
	}
	return "", "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("period %d has no configured time window", slot))
}

func defaultTimeSlotConfig() []models.TimeSlotConfig {
	return lo.Map(engine.DefaultTimeSlots(), func(ts engine.TimeSlot, _ int) models.TimeSlotConfig {
		return models.TimeSlotConfig{Slot: ts.Slot, Start: ts.Start, End: ts.End}
	})
}
