package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/deptsched/timetable-api/internal/models"
)

// SemesterRepository persists semesters.
type SemesterRepository struct {
	db *sqlx.DB
}

// NewSemesterRepository constructs the repository.
func NewSemesterRepository(db *sqlx.DB) *SemesterRepository {
	return &SemesterRepository{db: db}
}

// List returns every semester, newest first.
func (r *SemesterRepository) List(ctx context.Context) ([]models.Semester, error) {
	const query = `SELECT id, name, active, created_at, updated_at FROM semesters ORDER BY created_at DESC`
	var semesters []models.Semester
	if err := r.db.SelectContext(ctx, &semesters, query); err != nil {
		return nil, fmt.Errorf("list semesters: %w", err)
	}
	return semesters, nil
}

// GetByID fetches one semester.
func (r *SemesterRepository) GetByID(ctx context.Context, id string) (*models.Semester, error) {
	const query = `SELECT id, name, active, created_at, updated_at FROM semesters WHERE id = $1`
	var semester models.Semester
	if err := r.db.GetContext(ctx, &semester, query, id); err != nil {
		return nil, err
	}
	return &semester, nil
}

// GetActive fetches the currently active semester.
func (r *SemesterRepository) GetActive(ctx context.Context) (*models.Semester, error) {
	const query = `SELECT id, name, active, created_at, updated_at FROM semesters WHERE active = TRUE LIMIT 1`
	var semester models.Semester
	if err := r.db.GetContext(ctx, &semester, query); err != nil {
		return nil, err
	}
	return &semester, nil
}

// Create inserts a semester. An active semester deactivates every other one
// inside the same transaction.
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create semester tx: %w", err)
	}
	now := time.Now().UTC()
	if semester.ID == "" {
		semester.ID = uuid.NewString()
	}
	semester.CreatedAt = now
	semester.UpdatedAt = now

	if semester.Active {
		if _, err := tx.ExecContext(ctx, `UPDATE semesters SET active = FALSE, updated_at = $1 WHERE active = TRUE`, now); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("deactivate semesters: %w", err)
		}
	}
	const query = `INSERT INTO semesters (id, name, active, created_at, updated_at)
VALUES (:id, :name, :active, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, semester); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert semester: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create semester tx: %w", err)
	}
	return nil
}

// Update renames or re-activates a semester with the same single-active rule
// as Create.
func (r *SemesterRepository) Update(ctx context.Context, semester *models.Semester) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update semester tx: %w", err)
	}
	now := time.Now().UTC()
	semester.UpdatedAt = now

	if semester.Active {
		if _, err := tx.ExecContext(ctx, `UPDATE semesters SET active = FALSE, updated_at = $1 WHERE active = TRUE AND id <> $2`, now, semester.ID); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("deactivate semesters: %w", err)
		}
	}
	const query = `UPDATE semesters SET name = :name, active = :active, updated_at = :updated_at WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, query, semester); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update semester: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update semester tx: %w", err)
	}
	return nil
}

// Delete removes a semester. Classes, courses, and slots cascade in the
// schema.
func (r *SemesterRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM semesters WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete semester: %w", err)
	}
	return nil
}
