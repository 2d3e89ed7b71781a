package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/deptsched/timetable-api/internal/models"
)

// TimetableRepository persists generated and hand-placed timetable slots.
// Write operations accept an optional sqlx.ExtContext so the generator can
// run the clear-and-insert sequence inside one transaction.
type TimetableRepository struct {
	db *sqlx.DB
}

// NewTimetableRepository constructs the repository.
func NewTimetableRepository(db *sqlx.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

func (r *TimetableRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

// ListEntries returns a section's slots joined with course details, ordered
// for grid rendering. With publishedOnly set, unpublished slots are hidden.
func (r *TimetableRepository) ListEntries(ctx context.Context, ref models.SectionRef, publishedOnly bool) ([]models.TimetableEntry, error) {
	query := `SELECT t.id, t.semester_id, t.program, t.year, t.section, t.day, t.slot_number,
t.time_start, t.time_end, t.course_id, t.slot_type, t.is_published, t.created_at, t.updated_at,
c.code AS course_code, c.name AS course_name, c.instructor
FROM timetable_slots t
LEFT JOIN courses c ON c.id = t.course_id
WHERE t.semester_id = $1 AND t.program = $2 AND t.year = $3 AND t.section = $4`
	args := []interface{}{ref.SemesterID, ref.Program, ref.Year, ref.Section}
	if publishedOnly {
		query += ` AND t.is_published = TRUE`
	}
	query += ` ORDER BY t.day ASC, t.slot_number ASC`

	var entries []models.TimetableEntry
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("list timetable entries: %w", err)
	}
	return entries, nil
}

// HasPublished reports whether any slot of the section is already published.
func (r *TimetableRepository) HasPublished(ctx context.Context, ref models.SectionRef) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM timetable_slots
WHERE semester_id = $1 AND program = $2 AND year = $3 AND section = $4 AND is_published = TRUE)`
	var published bool
	if err := r.db.GetContext(ctx, &published, query, ref.SemesterID, ref.Program, ref.Year, ref.Section); err != nil {
		return false, fmt.Errorf("check published slots: %w", err)
	}
	return published, nil
}

// DeleteForSection removes every slot of one section. Regeneration replaces
// the section's timetable wholesale.
func (r *TimetableRepository) DeleteForSection(ctx context.Context, exec sqlx.ExtContext, ref models.SectionRef) error {
	const query = `DELETE FROM timetable_slots
WHERE semester_id = $1 AND program = $2 AND year = $3 AND section = $4`
	if _, err := r.exec(exec).ExecContext(ctx, query, ref.SemesterID, ref.Program, ref.Year, ref.Section); err != nil {
		return fmt.Errorf("delete timetable slots: %w", err)
	}
	return nil
}

const insertSlotQuery = `INSERT INTO timetable_slots (id, semester_id, program, year, section, day, slot_number,
time_start, time_end, course_id, slot_type, is_published, created_at, updated_at)
VALUES (:id, :semester_id, :program, :year, :section, :day, :slot_number,
:time_start, :time_end, :course_id, :slot_type, :is_published, :created_at, :updated_at)`

// BulkInsert inserts generated slots through the supplied executor.
func (r *TimetableRepository) BulkInsert(ctx context.Context, exec sqlx.ExtContext, slots []models.TimetableSlot) error {
	if len(slots) == 0 {
		return nil
	}
	target := r.exec(exec)
	now := time.Now().UTC()
	for i := range slots {
		slot := &slots[i]
		if slot.ID == "" {
			slot.ID = uuid.NewString()
		}
		slot.CreatedAt = now
		slot.UpdatedAt = now
		if _, err := sqlx.NamedExecContext(ctx, target, insertSlotQuery, slot); err != nil {
			return fmt.Errorf("insert timetable slot: %w", err)
		}
	}
	return nil
}

// Upsert places or replaces one cell by its (section, day, period) key.
func (r *TimetableRepository) Upsert(ctx context.Context, slot *models.TimetableSlot) error {
	now := time.Now().UTC()
	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = now
	}
	slot.UpdatedAt = now
	const query = insertSlotQuery + `
ON CONFLICT (semester_id, program, year, section, day, slot_number) DO UPDATE
SET course_id = EXCLUDED.course_id,
    slot_type = EXCLUDED.slot_type,
    time_start = EXCLUDED.time_start,
    time_end = EXCLUDED.time_end,
    updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, slot); err != nil {
		return fmt.Errorf("upsert timetable slot: %w", err)
	}
	return nil
}

// DeleteSlot removes one cell by id.
func (r *TimetableRepository) DeleteSlot(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM timetable_slots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete timetable slot: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// PublishSection marks every slot of one section as published.
func (r *TimetableRepository) PublishSection(ctx context.Context, ref models.SectionRef) error {
	const query = `UPDATE timetable_slots SET is_published = TRUE, updated_at = $5
WHERE semester_id = $1 AND program = $2 AND year = $3 AND section = $4`
	if _, err := r.db.ExecContext(ctx, query, ref.SemesterID, ref.Program, ref.Year, ref.Section, time.Now().UTC()); err != nil {
		return fmt.Errorf("publish timetable slots: %w", err)
	}
	return nil
}
