package service

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deptsched/timetable-api/internal/dto"
	"github.com/deptsched/timetable-api/internal/models"
	appErrors "github.com/deptsched/timetable-api/pkg/errors"
)

func validGenerateRequest() dto.GenerateTimetableRequest {
	return dto.GenerateTimetableRequest{
		SemesterID: "7a0f8f7e-24fc-4f3a-8f15-111111111111",
		ClassIDs: []string{
			"7a0f8f7e-24fc-4f3a-8f15-222222222222",
			"7a0f8f7e-24fc-4f3a-8f15-333333333333",
		},
		MinorSlots: []dto.MinorSlotRequest{
			{Day: "Tuesday", Slot: 2},
			{Day: "Wednesday", Slot: 2},
			{Day: "Thursday", Slot: 2},
			{Day: "Friday", Slot: 2},
		},
	}
}

func TestGeneratorServiceGenerateSuccess(t *testing.T) {
	tx, mock, cleanup := newTxProviderMock(t)
	defer cleanup()
	slots := &slotWriterStub{}
	service := newGeneratorFixture(t, generatorFixtureConfig{tx: tx, slots: slots})

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := service.Generate(context.Background(), validGenerateRequest())
	require.NoError(t, err)
	// One regular 3-hour course for two sections.
	assert.Equal(t, 6, resp.SlotsCreated)
	assert.Empty(t, resp.Warnings)
	assert.Len(t, slots.inserted, 6)
	assert.Len(t, slots.cleared, 2, "both sections cleared before insert")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGeneratorServiceRefusesPublishedSections(t *testing.T) {
	slots := &slotWriterStub{published: true}
	service := newGeneratorFixture(t, generatorFixtureConfig{slots: slots})

	_, err := service.Generate(context.Background(), validGenerateRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPublished.Code, appErrors.FromError(err).Code)
	assert.Empty(t, slots.inserted)
}

func TestGeneratorServiceUnknownClass(t *testing.T) {
	service := newGeneratorFixture(t, generatorFixtureConfig{dropSecondClass: true})

	_, err := service.Generate(context.Background(), validGenerateRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestGeneratorServiceClassFromOtherSemester(t *testing.T) {
	service := newGeneratorFixture(t, generatorFixtureConfig{foreignClass: true})

	_, err := service.Generate(context.Background(), validGenerateRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGeneratorServiceRejectsShortMinorSlotList(t *testing.T) {
	service := newGeneratorFixture(t, generatorFixtureConfig{})

	req := validGenerateRequest()
	req.MinorSlots = req.MinorSlots[:3]
	_, err := service.Generate(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGeneratorServiceRollsBackOnInsertFailure(t *testing.T) {
	tx, mock, cleanup := newTxProviderMock(t)
	defer cleanup()
	slots := &slotWriterStub{insertErr: assert.AnError}
	service := newGeneratorFixture(t, generatorFixtureConfig{tx: tx, slots: slots})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := service.Generate(context.Background(), validGenerateRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- Fixtures ---

type generatorFixtureConfig struct {
	tx              txProvider
	slots           *slotWriterStub
	dropSecondClass bool
	foreignClass    bool
}

func newGeneratorFixture(t *testing.T, cfg generatorFixtureConfig) *GeneratorService {
	t.Helper()
	req := validGenerateRequest()
	classes := []models.Class{
		{ID: req.ClassIDs[0], SemesterID: req.SemesterID, Program: "CS", Year: 2, Section: "A", Classroom: "LH-201"},
		{ID: req.ClassIDs[1], SemesterID: req.SemesterID, Program: "CS", Year: 2, Section: "B", Classroom: "LH-201"},
	}
	if cfg.dropSecondClass {
		classes = classes[:1]
	}
	if cfg.foreignClass {
		classes[1].SemesterID = "7a0f8f7e-24fc-4f3a-8f15-999999999999"
	}

	slots := cfg.slots
	if slots == nil {
		slots = &slotWriterStub{}
	}
	tx := cfg.tx
	if tx == nil {
		tx = noopTxProvider{}
	}

	return NewGeneratorService(
		semesterReaderStub{},
		classReaderStub{classes: classes},
		courseReaderStub{courses: []models.Course{{
			ID: "course-1", SemesterID: req.SemesterID, Code: "CS210", Name: "Data Structures",
			Instructor: "prof.sen", Program: "CS", Year: 2, LectureHours: 3, Sections: "A,B",
			Type: models.CourseTypeRegular,
		}}},
		slots,
		settingsReaderStub{},
		nil,
		nil,
		tx,
		validator.New(),
		zap.NewNop(),
	)
}

type semesterReaderStub struct{}

func (semesterReaderStub) GetByID(ctx context.Context, id string) (*models.Semester, error) {
	return &models.Semester{ID: id, Name: "Autumn 2026", Active: true}, nil
}

type classReaderStub struct {
	classes []models.Class
}

func (s classReaderStub) ListByIDs(ctx context.Context, ids []string) ([]models.Class, error) {
	return s.classes, nil
}

type courseReaderStub struct {
	courses []models.Course
}

func (s courseReaderStub) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	return s.courses, nil
}

func (s courseReaderStub) DistinctInstructors(ctx context.Context, semesterID string) ([]string, error) {
	seen := make(map[string]struct{})
	var instructors []string
	for _, c := range s.courses {
		if _, ok := seen[c.Instructor]; ok {
			continue
		}
		seen[c.Instructor] = struct{}{}
		instructors = append(instructors, c.Instructor)
	}
	return instructors, nil
}

func (s courseReaderStub) DistinctLabRooms(ctx context.Context, semesterID string) ([]string, error) {
	return nil, nil
}

type slotWriterStub struct {
	published bool
	insertErr error
	cleared   []models.SectionRef
	inserted  []models.TimetableSlot
}

func (s *slotWriterStub) HasPublished(ctx context.Context, ref models.SectionRef) (bool, error) {
	return s.published, nil
}

func (s *slotWriterStub) DeleteForSection(ctx context.Context, exec sqlx.ExtContext, ref models.SectionRef) error {
	s.cleared = append(s.cleared, ref)
	return nil
}

func (s *slotWriterStub) BulkInsert(ctx context.Context, exec sqlx.ExtContext, slots []models.TimetableSlot) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, slots...)
	return nil
}

type settingsReaderStub struct{}

func (settingsReaderStub) Get(ctx context.Context, key string) (*models.Setting, error) {
	return nil, sql.ErrNoRows
}

type noopTxProvider struct{}

func (noopTxProvider) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return nil, appErrors.Clone(appErrors.ErrInternal, "transaction provider unavailable")
}

type txProviderMock struct {
	db *sqlx.DB
}

func (p txProviderMock) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return p.db.BeginTxx(ctx, opts)
}

func newTxProviderMock(t *testing.T) (txProviderMock, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	wrapped := sqlx.NewDb(db, "sqlmock")
	return txProviderMock{db: wrapped}, mock, func() { db.Close() }
}
