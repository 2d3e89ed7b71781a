package engine

// Category is the scheduling class a course belongs to, computed once per
// generation run instead of re-checking catalog flags inside every phase.
type Category string

const (
	CategoryMinor        Category = "minor"
	CategoryMajorProject Category = "major_project"
	CategoryLab          Category = "lab"
	CategoryElective     Category = "elective"
	CategoryCombined     Category = "combined"
	CategoryRegular      Category = "regular"
)

// Classify buckets a course into exactly one category. The rules are
// mutually exclusive and applied in priority order: minor, major project,
// lab, elective, combined, regular. A course with practical hours is never
// regular or combined.
func Classify(c Course) Category {
	switch {
	case c.IsMinor && !c.IsElective && c.PracticalHours <= 0:
		return CategoryMinor
	case c.Type == CourseTypeMajorProject:
		return CategoryMajorProject
	case !c.IsElective && c.PracticalHours > 0:
		return CategoryLab
	case c.IsElective:
		return CategoryElective
	case c.IsCombined:
		return CategoryCombined
	default:
		return CategoryRegular
	}
}

// catalog is a batch's course list partitioned by category, preserving
// input order within each bucket.
type catalog struct {
	minors        []Course
	majorProjects []Course
	labs          []Course
	electives     []Course
	combined      []Course
	regular       []Course
}

func partition(courses []Course) catalog {
	var cat catalog
	for _, course := range courses {
		switch Classify(course) {
		case CategoryMinor:
			cat.minors = append(cat.minors, course)
		case CategoryMajorProject:
			cat.majorProjects = append(cat.majorProjects, course)
		case CategoryLab:
			cat.labs = append(cat.labs, course)
		case CategoryElective:
			cat.electives = append(cat.electives, course)
		case CategoryCombined:
			cat.combined = append(cat.combined, course)
		default:
			cat.regular = append(cat.regular, course)
		}
	}
	return cat
}
