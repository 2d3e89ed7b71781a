package dto

// CreateCourseRequest adds one course to a semester's catalog. Hours omitted
// from the payload default to zero.
type CreateCourseRequest struct {
	SemesterID     string   `json:"semesterId" validate:"required,uuid"`
	Code           string   `json:"code" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Instructor     string   `json:"instructor" validate:"required"`
	Program        string   `json:"program" validate:"required"`
	Year           int      `json:"year" validate:"required,min=1,max=6"`
	LectureHours   int      `json:"lectureHours" validate:"min=0"`
	TutorialHours  int      `json:"tutorialHours" validate:"min=0"`
	PracticalHours int      `json:"practicalHours" validate:"min=0"`
	IsElective     bool     `json:"isElective"`
	IsMinor        bool     `json:"isMinor"`
	IsCombined     bool     `json:"isCombined"`
	Type           string   `json:"type" validate:"omitempty,oneof=regular lab major_project minor_project"`
	LabRoom        string   `json:"labRoom" validate:"required_if=Type lab"`
	Sections       []string `json:"sections" validate:"required,min=1"`
}

// UpdateCourseRequest mirrors create; the course id comes from the path.
type UpdateCourseRequest struct {
	Code           string   `json:"code" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Instructor     string   `json:"instructor" validate:"required"`
	Program        string   `json:"program" validate:"required"`
	Year           int      `json:"year" validate:"required,min=1,max=6"`
	LectureHours   int      `json:"lectureHours" validate:"min=0"`
	TutorialHours  int      `json:"tutorialHours" validate:"min=0"`
	PracticalHours int      `json:"practicalHours" validate:"min=0"`
	IsElective     bool     `json:"isElective"`
	IsMinor        bool     `json:"isMinor"`
	IsCombined     bool     `json:"isCombined"`
	Type           string   `json:"type" validate:"omitempty,oneof=regular lab major_project minor_project"`
	LabRoom        string   `json:"labRoom"`
	Sections       []string `json:"sections" validate:"required,min=1"`
}

// CourseQuery filters the catalog listing.
type CourseQuery struct {
	SemesterID string `form:"semesterId" validate:"omitempty,uuid"`
	Program    string `form:"program"`
	Year       *int   `form:"year" validate:"omitempty,min=1,max=6"`
	Section    string `form:"section"`
}

// CourseImportRow is one line of a CSV catalog import.
type CourseImportRow struct {
	Code           string `csv:"code"`
	Name           string `csv:"name"`
	Instructor     string `csv:"instructor"`
	Program        string `csv:"program"`
	Year           int    `csv:"year"`
	LectureHours   int    `csv:"lecture_hours"`
	TutorialHours  int    `csv:"tutorial_hours"`
	PracticalHours int    `csv:"practical_hours"`
	IsElective     bool   `csv:"is_elective"`
	IsMinor        bool   `csv:"is_minor"`
	IsCombined     bool   `csv:"is_combined"`
	Type           string `csv:"type"`
	LabRoom        string `csv:"lab_room"`
	Sections       string `csv:"sections"`
}

// CourseImportResponse summarises a CSV import.
type CourseImportResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
