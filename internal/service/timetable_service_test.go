package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptsched/timetable-api/internal/dto"
	"github.com/deptsched/timetable-api/internal/models"
	appErrors "github.com/deptsched/timetable-api/pkg/errors"
)

type slotRepoStub struct {
	entries    []models.TimetableEntry
	upserted   *models.TimetableSlot
	published  []models.SectionRef
	deleteErr  error
	deletedIDs []string
}

func (s *slotRepoStub) ListEntries(ctx context.Context, ref models.SectionRef, publishedOnly bool) ([]models.TimetableEntry, error) {
	if !publishedOnly {
		return s.entries, nil
	}
	var published []models.TimetableEntry
	for _, e := range s.entries {
		if e.IsPublished {
			published = append(published, e)
		}
	}
	return published, nil
}

func (s *slotRepoStub) Upsert(ctx context.Context, slot *models.TimetableSlot) error {
	s.upserted = slot
	return nil
}

func (s *slotRepoStub) DeleteSlot(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func (s *slotRepoStub) PublishSection(ctx context.Context, ref models.SectionRef) error {
	s.published = append(s.published, ref)
	return nil
}

type settingsStoreStub struct {
	setting *models.Setting
	saved   *models.Setting
}

func (s *settingsStoreStub) Get(ctx context.Context, key string) (*models.Setting, error) {
	if s.setting == nil {
		return nil, sql.ErrNoRows
	}
	return s.setting, nil
}

func (s *settingsStoreStub) Upsert(ctx context.Context, setting *models.Setting) error {
	s.saved = setting
	return nil
}

type courseGetterStub struct {
	course *models.Course
}

func (s courseGetterStub) GetByID(ctx context.Context, id string) (*models.Course, error) {
	if s.course == nil || s.course.ID != id {
		return nil, sql.ErrNoRows
	}
	return s.course, nil
}

func timetableQuery() dto.TimetableQuery {
	return dto.TimetableQuery{
		SemesterID: "7a0f8f7e-24fc-4f3a-8f15-111111111111",
		Program:    "CS",
		Year:       2,
		Section:    "A",
	}
}

func newTimetableFixture(slots *slotRepoStub, courses courseGetterStub, settings *settingsStoreStub) *TimetableService {
	if settings == nil {
		settings = &settingsStoreStub{}
	}
	classes := classReaderStub{classes: []models.Class{
		{ID: "7a0f8f7e-24fc-4f3a-8f15-222222222222", SemesterID: "7a0f8f7e-24fc-4f3a-8f15-111111111111",
			Program: "CS", Year: 2, Section: "A", Classroom: "LH-201"},
	}}
	return NewTimetableService(slots, classes, courses, settings, nil, nil, nil)
}

func TestTimetableServicePublishedViewFiltersUnpublished(t *testing.T) {
	code := "CS210"
	courseID := "course-1"
	slots := &slotRepoStub{entries: []models.TimetableEntry{
		{TimetableSlot: models.TimetableSlot{ID: "slot-1", Day: "Monday", SlotNumber: 1,
			TimeStart: "08:00", TimeEnd: "08:45", CourseID: &courseID,
			SlotType: models.SlotKindClass, IsPublished: true}, CourseCode: &code},
		{TimetableSlot: models.TimetableSlot{ID: "slot-2", Day: "Monday", SlotNumber: 2,
			SlotType: models.SlotKindClass, IsPublished: false}},
	}}
	service := newTimetableFixture(slots, courseGetterStub{}, nil)

	view, err := service.PublishedView(context.Background(), timetableQuery())
	require.NoError(t, err)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, "CS210", view.Entries[0].CourseCode)
	assert.True(t, view.Entries[0].Published)

	full, err := service.FullView(context.Background(), timetableQuery())
	require.NoError(t, err)
	assert.Len(t, full.Entries, 2)
}

func TestTimetableServiceUpsertSlotDerivesLabType(t *testing.T) {
	labRoom := "LAB-1"
	slots := &slotRepoStub{}
	service := newTimetableFixture(slots, courseGetterStub{course: &models.Course{
		ID: "7a0f8f7e-24fc-4f3a-8f15-444444444444", Code: "CS250", Type: models.CourseTypeLab, LabRoom: &labRoom,
	}}, nil)

	slot, err := service.UpsertSlot(context.Background(), dto.UpsertSlotRequest{
		SemesterID: "7a0f8f7e-24fc-4f3a-8f15-111111111111",
		Program:    "CS",
		Year:       2,
		Section:    "A",
		Day:        "Monday",
		Slot:       2,
		CourseID:   "7a0f8f7e-24fc-4f3a-8f15-444444444444",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SlotKindLab, slot.SlotType)
	assert.Equal(t, "09:00", slot.TimeStart)
	assert.Equal(t, "09:45", slot.TimeEnd)
	require.NotNil(t, slots.upserted)
}

func TestTimetableServiceUpsertSlotRejectsLunch(t *testing.T) {
	service := newTimetableFixture(&slotRepoStub{}, courseGetterStub{}, nil)

	req := dto.UpsertSlotRequest{
		SemesterID: "7a0f8f7e-24fc-4f3a-8f15-111111111111",
		Program:    "CS", Year: 2, Section: "A",
		Day: "Monday", Slot: 5,
		CourseID: "7a0f8f7e-24fc-4f3a-8f15-444444444444",
	}
	_, err := service.UpsertSlot(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTimetableServicePublish(t *testing.T) {
	slots := &slotRepoStub{}
	service := newTimetableFixture(slots, courseGetterStub{}, nil)

	err := service.Publish(context.Background(), dto.PublishRequest{
		SemesterID: "7a0f8f7e-24fc-4f3a-8f15-111111111111",
		ClassIDs:   []string{"7a0f8f7e-24fc-4f3a-8f15-222222222222"},
	})
	require.NoError(t, err)
	require.Len(t, slots.published, 1)
	assert.Equal(t, "A", slots.published[0].Section)
}

func TestTimetableServiceDeleteSlotNotFound(t *testing.T) {
	service := newTimetableFixture(&slotRepoStub{deleteErr: sql.ErrNoRows}, courseGetterStub{}, nil)

	err := service.DeleteSlot(context.Background(), "sem-1", "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestTimetableServiceTimeSlotConfigDefaults(t *testing.T) {
	service := newTimetableFixture(&slotRepoStub{}, courseGetterStub{}, nil)

	config, err := service.TimeSlotConfig(context.Background())
	require.NoError(t, err)
	require.Len(t, config, 9)
	assert.Equal(t, "08:00", config[0].Start)
	assert.Equal(t, "12:00", config[4].Start)
}

func TestTimetableServiceUpdateTimeSlotConfigRejectsDuplicates(t *testing.T) {
	settings := &settingsStoreStub{}
	service := newTimetableFixture(&slotRepoStub{}, courseGetterStub{}, settings)

	slots := make([]dto.TimeSlotItem, 9)
	for i := range slots {
		slots[i] = dto.TimeSlotItem{Slot: 1, Start: "08:00", End: "08:45"}
	}
	err := service.UpdateTimeSlotConfig(context.Background(), dto.TimeSlotConfigRequest{Slots: slots})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Nil(t, settings.saved)
}
