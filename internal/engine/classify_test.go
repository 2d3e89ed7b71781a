package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPriorityOrder(t *testing.T) {
	tests := []struct {
		name   string
		course Course
		want   Category
	}{
		{
			name:   "minor wins over combined flag",
			course: Course{IsMinor: true, IsCombined: true},
			want:   CategoryMinor,
		},
		{
			name:   "elective minor is not a minor",
			course: Course{IsMinor: true, IsElective: true},
			want:   CategoryElective,
		},
		{
			name:   "major project by course type",
			course: Course{Type: CourseTypeMajorProject, PracticalHours: 6},
			want:   CategoryMajorProject,
		},
		{
			name:   "practical hours force lab",
			course: Course{PracticalHours: 3, IsCombined: true},
			want:   CategoryLab,
		},
		{
			name:   "elective",
			course: Course{IsElective: true, LectureHours: 3},
			want:   CategoryElective,
		},
		{
			name:   "combined without practical hours",
			course: Course{IsCombined: true, LectureHours: 3},
			want:   CategoryCombined,
		},
		{
			name:   "plain course is regular",
			course: Course{LectureHours: 3, TutorialHours: 1},
			want:   CategoryRegular,
		},
		{
			name:   "minor with practical hours is a lab",
			course: Course{IsMinor: true, PracticalHours: 3},
			want:   CategoryLab,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.course))
		})
	}
}

func TestPartitionKeepsInputOrder(t *testing.T) {
	courses := []Course{
		{Code: "R1"},
		{Code: "L1", PracticalHours: 3},
		{Code: "R2"},
		{Code: "E1", IsElective: true},
	}

	cat := partition(courses)
	assert.Equal(t, "R1", cat.regular[0].Code)
	assert.Equal(t, "R2", cat.regular[1].Code)
	assert.Len(t, cat.labs, 1)
	assert.Len(t, cat.electives, 1)
	assert.Empty(t, cat.minors)
}
