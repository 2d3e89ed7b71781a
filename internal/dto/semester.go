package dto

// CreateSemesterRequest adds a semester. A semester created active
// deactivates every other semester.
type CreateSemesterRequest struct {
	Name   string `json:"name" validate:"required"`
	Active bool   `json:"active"`
}

// UpdateSemesterRequest renames or re-activates a semester.
type UpdateSemesterRequest struct {
	Name   string `json:"name" validate:"required"`
	Active bool   `json:"active"`
}

// CreateClassRequest adds one section to a semester.
type CreateClassRequest struct {
	Program   string `json:"program" validate:"required"`
	Year      int    `json:"year" validate:"required,min=1,max=6"`
	Section   string `json:"section" validate:"required"`
	Classroom string `json:"classroom" validate:"required"`
}
