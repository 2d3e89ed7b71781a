package engine

import "fmt"

// CourseType mirrors the catalog's declared course kind.
type CourseType string

const (
	CourseTypeRegular      CourseType = "regular"
	CourseTypeLab          CourseType = "lab"
	CourseTypeMajorProject CourseType = "major_project"
	CourseTypeMinorProject CourseType = "minor_project"
)

// SlotType distinguishes lab blocks from classroom periods in the output.
type SlotType string

const (
	SlotTypeClass SlotType = "class"
	SlotTypeLab   SlotType = "lab"
)

// Course is one catalog row scoped to a batch.
type Course struct {
	ID             string
	Code           string
	Name           string
	Instructor     string
	Program        string
	Year           int
	LectureHours   int
	TutorialHours  int
	PracticalHours int
	IsElective     bool
	IsMinor        bool
	IsCombined     bool
	Type           CourseType
	LabRoom        string
	Sections       []string
}

// contactHours is the weekly lecture+tutorial demand in whole periods.
func (c Course) contactHours() int {
	return c.LectureHours + c.TutorialHours
}

// labSessions is the number of contiguous 3-period sessions the practical
// hours require, rounded up.
func (c Course) labSessions() int {
	if c.PracticalHours <= 0 {
		return 0
	}
	return (c.PracticalHours + LabBlockLength - 1) / LabBlockLength
}

// Section identifies one program/year/label unit and its shared classroom.
type Section struct {
	Program   string
	Year      int
	Label     string
	Classroom string
}

// Key returns the tracker key for this section.
func (s Section) Key() string {
	return fmt.Sprintf("%s-%d-%s", s.Program, s.Year, s.Label)
}

// BatchKey groups sections sharing a program and year.
func (s Section) BatchKey() string {
	return fmt.Sprintf("%s-%d", s.Program, s.Year)
}

// MinorSlot is one of the institute-designated joint periods for minor
// courses.
type MinorSlot struct {
	Day  string `json:"day"`
	Slot int    `json:"slot"`
}

// Assignment is one generated (section, day, period) placement.
type Assignment struct {
	Program   string
	Year      int
	Section   string
	Day       string
	Slot      int
	TimeStart string
	TimeEnd   string
	CourseID  string
	SlotType  SlotType
}

// Warning reports a course that could not be given all required hours.
// Section is empty for jointly scheduled categories.
type Warning struct {
	CourseCode string
	Section    string
	Category   Category
	Scheduled  int
	Required   int
}

// Input is everything one generation run consumes. Instructors and LabRooms
// must cover the whole semester catalog, not just the requested batches, so
// professor and lab-room conflicts stay global across partial regenerations.
type Input struct {
	Sections    []Section
	Courses     []Course
	Instructors []string
	LabRooms    []string
	MinorSlots  []MinorSlot
	TimeSlots   []TimeSlot
}

// Result carries the generated placements and the shortfall warnings.
type Result struct {
	Assignments []Assignment
	Warnings    []Warning
}
