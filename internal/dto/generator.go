package dto

// MinorSlotRequest is one institute-designated weekly period reserved for
// minor courses. Exactly four are required per generation run.
type MinorSlotRequest struct {
	Day  string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	Slot int    `json:"slot" validate:"required,min=1,max=9"`
}

// GenerateTimetableRequest asks the generator to rebuild the timetable for
// the named classes of a semester. Classes are referenced by id; their
// program, year, section, and classroom come from the classes table.
type GenerateTimetableRequest struct {
	SemesterID string             `json:"semesterId" validate:"required,uuid"`
	ClassIDs   []string           `json:"classIds" validate:"required,min=1,dive,uuid"`
	MinorSlots []MinorSlotRequest `json:"minorSlots" validate:"required,len=4,dive"`
}

// GenerationWarning reports a course that could not be given all of its
// required weekly hours.
type GenerationWarning struct {
	Course    string `json:"course"`
	Section   string `json:"section,omitempty"`
	Category  string `json:"category"`
	Scheduled int    `json:"scheduled"`
	Required  int    `json:"required"`
}

// GenerateTimetableResponse summarises one generation run.
type GenerateTimetableResponse struct {
	SemesterID   string              `json:"semesterId"`
	SlotsCreated int                 `json:"slotsCreated"`
	Warnings     []GenerationWarning `json:"warnings"`
}
