package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/deptsched/timetable-api/internal/models"
)

// CourseRepository persists the course catalog.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `id, semester_id, code, name, instructor, program, year,
lecture_hours, tutorial_hours, practical_hours, is_elective, is_minor, is_combined,
type, lab_room, sections, created_at, updated_at`

// List returns catalog courses matching the filter, ordered by code.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE 1=1`
	args := []interface{}{}
	n := 0
	next := func() string {
		n++
		return fmt.Sprintf("$%d", n)
	}
	if filter.SemesterID != "" {
		query += ` AND semester_id = ` + next()
		args = append(args, filter.SemesterID)
	}
	if filter.Program != "" {
		query += ` AND program = ` + next()
		args = append(args, filter.Program)
	}
	if filter.Year != nil {
		query += ` AND year = ` + next()
		args = append(args, *filter.Year)
	}
	if filter.Section != "" {
		query += ` AND sections LIKE ` + next()
		args = append(args, "%"+filter.Section+"%")
	}
	query += ` ORDER BY code ASC`

	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// GetByID fetches one course.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

const insertCourseQuery = `INSERT INTO courses (id, semester_id, code, name, instructor, program, year,
lecture_hours, tutorial_hours, practical_hours, is_elective, is_minor, is_combined,
type, lab_room, sections, created_at, updated_at)
VALUES (:id, :semester_id, :code, :name, :instructor, :program, :year,
:lecture_hours, :tutorial_hours, :practical_hours, :is_elective, :is_minor, :is_combined,
:type, :lab_room, :sections, :created_at, :updated_at)`

// Create inserts one course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	now := time.Now().UTC()
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	course.CreatedAt = now
	course.UpdatedAt = now
	if _, err := r.db.NamedExecContext(ctx, insertCourseQuery, course); err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

// BulkInsert inserts a batch of courses in one transaction. Used by the CSV
// catalog import; either every row lands or none do.
func (r *CourseRepository) BulkInsert(ctx context.Context, courses []models.Course) error {
	if len(courses) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin bulk course tx: %w", err)
	}
	now := time.Now().UTC()
	for i := range courses {
		if courses[i].ID == "" {
			courses[i].ID = uuid.NewString()
		}
		courses[i].CreatedAt = now
		courses[i].UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, insertCourseQuery, courses[i]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("bulk insert course: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bulk course tx: %w", err)
	}
	return nil
}

// Update rewrites one course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	course.UpdatedAt = time.Now().UTC()
	const query = `UPDATE courses SET code = :code, name = :name, instructor = :instructor,
program = :program, year = :year, lecture_hours = :lecture_hours, tutorial_hours = :tutorial_hours,
practical_hours = :practical_hours, is_elective = :is_elective, is_minor = :is_minor,
is_combined = :is_combined, type = :type, lab_room = :lab_room, sections = :sections,
updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

// Delete removes one course.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

// DistinctInstructors returns every instructor teaching in the semester.
// The generator pre-registers them so professor conflicts stay global even
// when only part of the department is regenerated.
func (r *CourseRepository) DistinctInstructors(ctx context.Context, semesterID string) ([]string, error) {
	const query = `SELECT DISTINCT instructor FROM courses WHERE semester_id = $1 ORDER BY instructor ASC`
	var instructors []string
	if err := r.db.SelectContext(ctx, &instructors, query, semesterID); err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return instructors, nil
}

// DistinctLabRooms returns every lab room referenced by the semester catalog.
func (r *CourseRepository) DistinctLabRooms(ctx context.Context, semesterID string) ([]string, error) {
	const query = `SELECT DISTINCT lab_room FROM courses WHERE semester_id = $1 AND lab_room IS NOT NULL ORDER BY lab_room ASC`
	var rooms []string
	if err := r.db.SelectContext(ctx, &rooms, query, semesterID); err != nil {
		return nil, fmt.Errorf("list lab rooms: %w", err)
	}
	return rooms, nil
}
