package engine

import (
	"sort"

	"github.com/samber/lo"
)

type slotSet map[int]struct{}

// weekOccupancy maps a weekday to its set of occupied periods.
type weekOccupancy map[string]slotSet

func newWeekOccupancy() weekOccupancy {
	week := make(weekOccupancy, len(Weekdays))
	for _, day := range Weekdays {
		week[day] = make(slotSet)
	}
	return week
}

func (w weekOccupancy) free(day string, slots []int) bool {
	occupied := w[day]
	for _, slot := range slots {
		if _, taken := occupied[slot]; taken {
			return false
		}
	}
	return true
}

func (w weekOccupancy) occupy(day string, slots []int) {
	for _, slot := range slots {
		w[day][slot] = struct{}{}
	}
}

// tracker holds all mutable occupancy state for one generation run.
// Professor and lab-room maps are shared across every batch in the run;
// classroom and section maps are scoped to their batch.
type tracker struct {
	professors map[string]weekOccupancy
	labRooms   map[string]weekOccupancy
	classrooms map[string]weekOccupancy
	sections   map[string]weekOccupancy

	// dailyLoad counts booked periods per section per day for balancing.
	dailyLoad map[string]map[string]int
	// courseDays records (course, section) pairs already placed on a day.
	courseDays map[string]map[string]struct{}
}

func newTracker() *tracker {
	return &tracker{
		professors: make(map[string]weekOccupancy),
		labRooms:   make(map[string]weekOccupancy),
		classrooms: make(map[string]weekOccupancy),
		sections:   make(map[string]weekOccupancy),
		dailyLoad:  make(map[string]map[string]int),
		courseDays: make(map[string]map[string]struct{}),
	}
}

func ensureWeek(m map[string]weekOccupancy, key string) weekOccupancy {
	if week, ok := m[key]; ok {
		return week
	}
	week := newWeekOccupancy()
	m[key] = week
	return week
}

func (t *tracker) registerProfessor(name string) {
	if name != "" {
		ensureWeek(t.professors, name)
	}
}

func (t *tracker) registerLabRoom(room string) {
	if room != "" {
		ensureWeek(t.labRooms, room)
	}
}

func (t *tracker) registerClassroom(room string) {
	if room != "" {
		ensureWeek(t.classrooms, room)
	}
}

func (t *tracker) registerSection(key string) {
	ensureWeek(t.sections, key)
	if t.dailyLoad[key] == nil {
		load := make(map[string]int, len(Weekdays))
		for _, day := range Weekdays {
			load[day] = 0
		}
		t.dailyLoad[key] = load
	}
}

// sectionFree reports whether none of slots is occupied for the section.
func (t *tracker) sectionFree(key, day string, slots []int) bool {
	return ensureWeek(t.sections, key).free(day, slots)
}

// professorFree reports whether the instructor is idle for all of slots,
// across every batch in the run.
func (t *tracker) professorFree(name, day string, slots []int) bool {
	return ensureWeek(t.professors, name).free(day, slots)
}

// classroomFree reports whether the shared classroom is idle for all slots.
func (t *tracker) classroomFree(room, day string, slots []int) bool {
	return ensureWeek(t.classrooms, room).free(day, slots)
}

// labRoomFree is vacuously true for courses without a lab room.
func (t *tracker) labRoomFree(room, day string, slots []int) bool {
	if room == "" {
		return true
	}
	return ensureWeek(t.labRooms, room).free(day, slots)
}

// book marks every slot occupied for the section, instructor, and, when
// given, classroom and lab room, then bumps the section's daily load.
// Lab bookings pass an empty classroom so the sibling section can keep
// using the shared room during the lab window.
func (t *tracker) book(sectionKey, instructor, classroom, labRoom, day string, slots []int) {
	ensureWeek(t.sections, sectionKey).occupy(day, slots)
	ensureWeek(t.professors, instructor).occupy(day, slots)
	if classroom != "" {
		ensureWeek(t.classrooms, classroom).occupy(day, slots)
	}
	if labRoom != "" {
		ensureWeek(t.labRooms, labRoom).occupy(day, slots)
	}
	if t.dailyLoad[sectionKey] == nil {
		t.registerSection(sectionKey)
	}
	t.dailyLoad[sectionKey][day] += len(slots)
}

func courseDayKey(courseID, sectionLabel string) string {
	return courseID + "-" + sectionLabel
}

// courseOnDay reports whether the course already has a placement for the
// section on the day.
func (t *tracker) courseOnDay(courseID, sectionLabel, day string) bool {
	days, ok := t.courseDays[courseDayKey(courseID, sectionLabel)]
	if !ok {
		return false
	}
	_, used := days[day]
	return used
}

func (t *tracker) markCourseDay(courseID, sectionLabel, day string) {
	key := courseDayKey(courseID, sectionLabel)
	if t.courseDays[key] == nil {
		t.courseDays[key] = make(map[string]struct{})
	}
	t.courseDays[key][day] = struct{}{}
}

// daysByLoad returns the weekdays ordered by the section's current daily
// load, least loaded first. The sort is stable so equally loaded days keep
// their Monday-first order.
func (t *tracker) daysByLoad(sectionKey string) []string {
	days := append([]string(nil), Weekdays...)
	sort.SliceStable(days, func(i, j int) bool {
		return t.dailyLoad[sectionKey][days[i]] < t.dailyLoad[sectionKey][days[j]]
	})
	return days
}

// daysByCombinedLoad orders weekdays by the summed load of several sections,
// used for jointly scheduled categories.
func (t *tracker) daysByCombinedLoad(sectionKeys []string) []string {
	combined := func(day string) int {
		return lo.SumBy(sectionKeys, func(key string) int {
			return t.dailyLoad[key][day]
		})
	}
	days := append([]string(nil), Weekdays...)
	sort.SliceStable(days, func(i, j int) bool {
		return combined(days[i]) < combined(days[j])
	})
	return days
}
