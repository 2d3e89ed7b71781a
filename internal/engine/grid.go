package engine

// Weekdays lists the teaching days in fixed order. Load-balanced day
// selection is stable, so ties fall back to this order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

const (
	// SlotsPerDay is the number of numbered periods in one teaching day.
	SlotsPerDay = 9
	// LunchSlot is the standing lunch break, never assignable to classes.
	LunchSlot = 5
	// LabBlockLength is the length of one contiguous lab session.
	LabBlockLength = 3
)

// LabSlotBlocks are the two contiguous windows a lab session may occupy:
// 9:00-11:45 and 14:00-16:45.
var LabSlotBlocks = [][]int{
	{2, 3, 4},
	{7, 8, 9},
}

// MajorProjectBlock is the only window major-project sessions may occupy.
var MajorProjectBlock = []int{7, 8, 9}

// TimeSlot maps a period number to its wall-clock window.
type TimeSlot struct {
	Slot  int    `json:"slot"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// DefaultTimeSlots returns the standing weekly period configuration used
// when the settings store has no override.
func DefaultTimeSlots() []TimeSlot {
	return []TimeSlot{
		{Slot: 1, Start: "08:00", End: "08:45"},
		{Slot: 2, Start: "09:00", End: "09:45"},
		{Slot: 3, Start: "10:00", End: "10:45"},
		{Slot: 4, Start: "11:00", End: "11:45"},
		{Slot: 5, Start: "12:00", End: "12:45"},
		{Slot: 6, Start: "13:00", End: "13:45"},
		{Slot: 7, Start: "14:00", End: "14:45"},
		{Slot: 8, Start: "15:00", End: "15:45"},
		{Slot: 9, Start: "16:00", End: "16:45"},
	}
}

var weekdaySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Weekdays))
	for _, day := range Weekdays {
		set[day] = struct{}{}
	}
	return set
}()

// ValidDay reports whether day names one of the five teaching days.
func ValidDay(day string) bool {
	_, ok := weekdaySet[day]
	return ok
}
