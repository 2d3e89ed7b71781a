package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptsched/timetable-api/internal/models"
)

func TestSemesterRepositoryCreateActiveDeactivatesOthers(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSemesterRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE semesters SET active = FALSE")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO semesters")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	semester := &models.Semester{Name: "Autumn 2026", Active: true}
	require.NoError(t, repo.Create(context.Background(), semester))
	assert.NotEmpty(t, semester.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSemesterRepositoryCreateInactiveSkipsDeactivation(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSemesterRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO semesters")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), &models.Semester{Name: "Spring 2027"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryListByIDsPreservesOrder(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	rows := sqlmock.NewRows([]string{"id", "semester_id", "program", "year", "section", "classroom", "created_at"}).
		AddRow("class-1", "sem-1", "CS", 2, "A", "LH-201", time.Now()).
		AddRow("class-2", "sem-1", "CS", 2, "B", "LH-201", time.Now())
	mock.ExpectQuery("SELECT .+ FROM classes WHERE id IN").
		WithArgs("class-2", "class-1").
		WillReturnRows(rows)

	classes, err := repo.ListByIDs(context.Background(), []string{"class-2", "class-1"})
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "B", classes[0].Section)
	assert.Equal(t, "A", classes[1].Section)
	assert.NoError(t, mock.ExpectationsWereMet())
}
