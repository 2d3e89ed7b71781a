package models

import "time"

// SlotKind distinguishes lab block periods from classroom periods.
type SlotKind string

const (
	SlotKindClass SlotKind = "class"
	SlotKindLab   SlotKind = "lab"
)

// TimetableSlot is one persisted (section, day, period) cell. A section holds
// at most one slot per (day, slot_number); re-generation and manual edits
// upsert against that key.
type TimetableSlot struct {
	ID          string    `db:"id" json:"id"`
	SemesterID  string    `db:"semester_id" json:"semester_id"`
	Program     string    `db:"program" json:"program"`
	Year        int       `db:"year" json:"year"`
	Section     string    `db:"section" json:"section"`
	Day         string    `db:"day" json:"day"`
	SlotNumber  int       `db:"slot_number" json:"slot_number"`
	TimeStart   string    `db:"time_start" json:"time_start"`
	TimeEnd     string    `db:"time_end" json:"time_end"`
	CourseID    *string   `db:"course_id" json:"course_id,omitempty"`
	SlotType    SlotKind  `db:"slot_type" json:"slot_type"`
	IsPublished bool      `db:"is_published" json:"is_published"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// TimetableEntry is a slot joined with its course details for view responses.
type TimetableEntry struct {
	TimetableSlot
	CourseCode *string `db:"course_code" json:"course_code,omitempty"`
	CourseName *string `db:"course_name" json:"course_name,omitempty"`
	Instructor *string `db:"instructor" json:"instructor,omitempty"`
}

// SectionRef addresses one section's timetable within a semester.
type SectionRef struct {
	SemesterID string
	Program    string
	Year       int
	Section    string
}
