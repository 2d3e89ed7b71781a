package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/deptsched/timetable-api/internal/models"
)

// ClassRepository persists the sections of a semester.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs the repository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// ListBySemester returns a semester's sections in program/year/label order.
func (r *ClassRepository) ListBySemester(ctx context.Context, semesterID string) ([]models.Class, error) {
	const query = `SELECT id, semester_id, program, year, section, classroom, created_at
FROM classes WHERE semester_id = $1 ORDER BY program ASC, year ASC, section ASC`
	var classes []models.Class
	if err := r.db.SelectContext(ctx, &classes, query, semesterID); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// ListByIDs returns the named sections preserving the caller's id order.
func (r *ClassRepository) ListByIDs(ctx context.Context, ids []string) ([]models.Class, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT id, semester_id, program, year, section, classroom, created_at
FROM classes WHERE id IN (%s)`, placeholders(len(ids)))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	var classes []models.Class
	if err := r.db.SelectContext(ctx, &classes, query, args...); err != nil {
		return nil, fmt.Errorf("list classes by ids: %w", err)
	}
	byID := make(map[string]models.Class, len(classes))
	for _, class := range classes {
		byID[class.ID] = class
	}
	ordered := make([]models.Class, 0, len(classes))
	for _, id := range ids {
		if class, ok := byID[id]; ok {
			ordered = append(ordered, class)
		}
	}
	return ordered, nil
}

// Create inserts one section.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	if class.ID == "" {
		class.ID = uuid.NewString()
	}
	class.CreatedAt = time.Now().UTC()
	const query = `INSERT INTO classes (id, semester_id, program, year, section, classroom, created_at)
VALUES (:id, :semester_id, :program, :year, :section, :classroom, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, class); err != nil {
		return fmt.Errorf("insert class: %w", err)
	}
	return nil
}

// Delete removes one section.
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	return nil
}

func placeholders(n int) string {
	values := make([]string, n)
	for i := 1; i <= n; i++ {
		values[i-1] = fmt.Sprintf("$%d", i)
	}
	return strings.Join(values, ",")
}
