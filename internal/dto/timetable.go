package dto

// TimetableQuery addresses one section's timetable.
type TimetableQuery struct {
	SemesterID string `form:"semesterId" validate:"required,uuid"`
	Program    string `form:"program" validate:"required"`
	Year       int    `form:"year" validate:"required,min=1,max=6"`
	Section    string `form:"section" validate:"required"`
}

// TimetableEntryResponse is one cell of a section's weekly grid.
type TimetableEntryResponse struct {
	ID         string `json:"id"`
	Day        string `json:"day"`
	Slot       int    `json:"slot"`
	TimeStart  string `json:"timeStart"`
	TimeEnd    string `json:"timeEnd"`
	SlotType   string `json:"slotType"`
	CourseID   string `json:"courseId,omitempty"`
	CourseCode string `json:"courseCode,omitempty"`
	CourseName string `json:"courseName,omitempty"`
	Instructor string `json:"instructor,omitempty"`
	Published  bool   `json:"published"`
}

// TimetableResponse is a section's timetable plus its identity.
type TimetableResponse struct {
	SemesterID string                   `json:"semesterId"`
	Program    string                   `json:"program"`
	Year       int                      `json:"year"`
	Section    string                   `json:"section"`
	Entries    []TimetableEntryResponse `json:"entries"`
}

// UpsertSlotRequest places or replaces a single cell by hand.
type UpsertSlotRequest struct {
	SemesterID string `json:"semesterId" validate:"required,uuid"`
	Program    string `json:"program" validate:"required"`
	Year       int    `json:"year" validate:"required,min=1,max=6"`
	Section    string `json:"section" validate:"required"`
	Day        string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	Slot       int    `json:"slot" validate:"required,min=1,max=9"`
	CourseID   string `json:"courseId" validate:"required,uuid"`
	SlotType   string `json:"slotType" validate:"omitempty,oneof=class lab"`
}

// PublishRequest marks every slot of the named sections as published.
type PublishRequest struct {
	SemesterID string   `json:"semesterId" validate:"required,uuid"`
	ClassIDs   []string `json:"classIds" validate:"required,min=1,dive,uuid"`
}

// TimeSlotConfigRequest replaces the wall-clock windows of the nine periods.
type TimeSlotConfigRequest struct {
	Slots []TimeSlotItem `json:"slots" validate:"required,len=9,dive"`
}

// TimeSlotItem is one period's wall-clock window.
type TimeSlotItem struct {
	Slot  int    `json:"slot" validate:"required,min=1,max=9"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}
