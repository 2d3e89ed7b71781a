package models

import (
	"strings"
	"time"
)

// CourseType is the declared kind of a catalog course.
type CourseType string

const (
	CourseTypeRegular      CourseType = "regular"
	CourseTypeLab          CourseType = "lab"
	CourseTypeMajorProject CourseType = "major_project"
	CourseTypeMinorProject CourseType = "minor_project"
)

// Course is one row of the semester's course catalog. Sections holds the
// comma-separated labels of the sections the course is offered to.
type Course struct {
	ID             string     `db:"id" json:"id"`
	SemesterID     string     `db:"semester_id" json:"semester_id"`
	Code           string     `db:"code" json:"code"`
	Name           string     `db:"name" json:"name"`
	Instructor     string     `db:"instructor" json:"instructor"`
	Program        string     `db:"program" json:"program"`
	Year           int        `db:"year" json:"year"`
	LectureHours   int        `db:"lecture_hours" json:"lecture_hours"`
	TutorialHours  int        `db:"tutorial_hours" json:"tutorial_hours"`
	PracticalHours int        `db:"practical_hours" json:"practical_hours"`
	IsElective     bool       `db:"is_elective" json:"is_elective"`
	IsMinor        bool       `db:"is_minor" json:"is_minor"`
	IsCombined     bool       `db:"is_combined" json:"is_combined"`
	Type           CourseType `db:"type" json:"type"`
	LabRoom        *string    `db:"lab_room" json:"lab_room,omitempty"`
	Sections       string     `db:"sections" json:"sections"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// SectionList splits the stored comma list into trimmed labels.
func (c Course) SectionList() []string {
	if c.Sections == "" {
		return nil
	}
	parts := strings.Split(c.Sections, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if label := strings.TrimSpace(p); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// CourseFilter defines filter criteria for listing catalog courses.
type CourseFilter struct {
	SemesterID string
	Program    string
	Year       *int
	Section    string
}
