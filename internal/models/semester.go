package models

import "time"

// Semester represents one academic semester. At most one semester is active
// at a time; activating a semester deactivates the others.
type Semester struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Class represents one section of a batch within a semester, together with
// the classroom the section's non-lab periods are held in.
type Class struct {
	ID         string    `db:"id" json:"id"`
	SemesterID string    `db:"semester_id" json:"semester_id"`
	Program    string    `db:"program" json:"program"`
	Year       int       `db:"year" json:"year"`
	Section    string    `db:"section" json:"section"`
	Classroom  string    `db:"classroom" json:"classroom"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
