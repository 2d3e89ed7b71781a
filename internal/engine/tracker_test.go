package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerBookBlocksAllResources(t *testing.T) {
	tr := newTracker()
	tr.registerSection("CS-2-A")

	tr.book("CS-2-A", "prof.rao", "LH-101", "", "Monday", []int{1, 2})

	assert.False(t, tr.sectionFree("CS-2-A", "Monday", []int{1}))
	assert.False(t, tr.professorFree("prof.rao", "Monday", []int{2}))
	assert.False(t, tr.classroomFree("LH-101", "Monday", []int{1}))
	assert.True(t, tr.sectionFree("CS-2-A", "Monday", []int{3}))
	assert.True(t, tr.sectionFree("CS-2-A", "Tuesday", []int{1, 2}))
	assert.Equal(t, 2, tr.dailyLoad["CS-2-A"]["Monday"])
}

func TestTrackerLabBookingSkipsClassroom(t *testing.T) {
	tr := newTracker()
	tr.registerSection("CS-2-A")
	tr.registerClassroom("LH-101")

	tr.book("CS-2-A", "prof.rao", "", "LAB-1", "Monday", []int{2, 3, 4})

	assert.True(t, tr.classroomFree("LH-101", "Monday", []int{2, 3, 4}))
	assert.False(t, tr.labRoomFree("LAB-1", "Monday", []int{3}))
	assert.False(t, tr.professorFree("prof.rao", "Monday", []int{2}))
}

func TestTrackerFreePredicatesAreConjunctive(t *testing.T) {
	tr := newTracker()
	tr.registerSection("CS-2-A")
	tr.book("CS-2-A", "prof.rao", "LH-101", "", "Monday", []int{3})

	// One occupied period poisons the whole block.
	assert.False(t, tr.sectionFree("CS-2-A", "Monday", []int{2, 3, 4}))
	assert.True(t, tr.sectionFree("CS-2-A", "Monday", []int{1, 2}))
}

func TestTrackerLabRoomFreeVacuousWithoutRoom(t *testing.T) {
	tr := newTracker()
	assert.True(t, tr.labRoomFree("", "Monday", []int{1, 2, 3}))
}

func TestTrackerUnknownEntitiesAreFree(t *testing.T) {
	tr := newTracker()
	// Conflict checks must not miss entities that were never pre-registered.
	assert.True(t, tr.professorFree("prof.unseen", "Friday", []int{9}))
	assert.True(t, tr.labRoomFree("LAB-9", "Friday", []int{7, 8, 9}))
}

func TestTrackerCourseDayMarking(t *testing.T) {
	tr := newTracker()
	assert.False(t, tr.courseOnDay("c1", "A", "Monday"))
	tr.markCourseDay("c1", "A", "Monday")
	assert.True(t, tr.courseOnDay("c1", "A", "Monday"))
	assert.False(t, tr.courseOnDay("c1", "B", "Monday"))
	assert.False(t, tr.courseOnDay("c1", "A", "Tuesday"))
}

func TestDaysByLoadStableOrdering(t *testing.T) {
	tr := newTracker()
	tr.registerSection("CS-2-A")

	// All days equally loaded: Monday-first order must hold.
	assert.Equal(t, Weekdays, tr.daysByLoad("CS-2-A"))

	tr.book("CS-2-A", "p1", "LH-101", "", "Monday", []int{1, 2})
	tr.book("CS-2-A", "p2", "LH-101", "", "Tuesday", []int{1})

	days := tr.daysByLoad("CS-2-A")
	assert.Equal(t, []string{"Wednesday", "Thursday", "Friday", "Tuesday", "Monday"}, days)
}

func TestDaysByCombinedLoad(t *testing.T) {
	tr := newTracker()
	tr.registerSection("CS-2-A")
	tr.registerSection("CS-2-B")

	tr.book("CS-2-A", "p1", "LH-101", "", "Monday", []int{1})
	tr.book("CS-2-B", "p2", "LH-101", "", "Monday", []int{2})
	tr.book("CS-2-B", "p2", "LH-101", "", "Tuesday", []int{1})

	days := tr.daysByCombinedLoad([]string{"CS-2-A", "CS-2-B"})
	// Monday carries 2, Tuesday 1, rest 0.
	assert.Equal(t, []string{"Wednesday", "Thursday", "Friday", "Tuesday", "Monday"}, days)
}
