package engine

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Engine runs the single-pass greedy timetable generator. One call builds
// fresh trackers, places every course of the requested batches in six
// ordered phases, and reports shortfalls as warnings instead of failing.
// Placements are never revisited once booked.
type Engine struct {
	logger *zap.Logger
}

// New constructs an Engine. A nil logger is replaced with a no-op one.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// batch is a group of requested sections sharing a program, year, and
// classroom. The classroom comes from the first section seen; consistency
// across sections is assumed, not validated.
type batch struct {
	Program   string
	Year      int
	Classroom string
	Sections  []Section
}

// Generate produces a draft timetable for the requested sections.
// It is a pure computation: persistence of the result and serialization of
// concurrent runs against overlapping sections are the caller's concern.
func (e *Engine) Generate(in Input) (*Result, error) {
	if err := validateMinorSlots(in.MinorSlots); err != nil {
		return nil, err
	}

	times := make(map[int]TimeSlot, len(in.TimeSlots))
	for _, ts := range in.TimeSlots {
		times[ts.Slot] = ts
	}

	tr := newTracker()
	for _, instructor := range in.Instructors {
		tr.registerProfessor(instructor)
	}
	for _, room := range in.LabRooms {
		tr.registerLabRoom(room)
	}
	for _, section := range in.Sections {
		tr.registerSection(section.Key())
	}

	run := &generation{
		tr:     tr,
		times:  times,
		logger: e.logger,
	}

	for _, b := range groupBatches(in.Sections) {
		tr.registerClassroom(b.Classroom)
		courses := coursesForBatch(in.Courses, b)
		cat := partition(courses)
		e.logger.Debug("scheduling batch",
			zap.String("program", b.Program),
			zap.Int("year", b.Year),
			zap.Int("courses", len(courses)),
		)

		run.scheduleMinors(b, cat.minors, in.MinorSlots)
		run.scheduleMajorProjects(b, cat.majorProjects)
		run.scheduleLabs(b, cat.labs)
		run.scheduleJoint(b, cat.electives, CategoryElective)
		run.scheduleJoint(b, cat.combined, CategoryCombined)
		run.scheduleRegular(b, cat.regular)
	}

	return &Result{Assignments: run.assignments, Warnings: run.warnings}, nil
}

// MinorSlotCount is the fixed number of institute-designated minor periods.
const MinorSlotCount = 4

func validateMinorSlots(slots []MinorSlot) error {
	if len(slots) != MinorSlotCount {
		return fmt.Errorf("minor slot selection must contain exactly %d slots, got %d", MinorSlotCount, len(slots))
	}
	for _, ms := range slots {
		if !ValidDay(ms.Day) {
			return fmt.Errorf("minor slot day %q is not a teaching day", ms.Day)
		}
		if ms.Slot < 1 || ms.Slot > SlotsPerDay {
			return fmt.Errorf("minor slot period %d is out of range", ms.Slot)
		}
		if ms.Slot == LunchSlot {
			return fmt.Errorf("minor slot cannot fall on the lunch period")
		}
	}
	return nil
}

// groupBatches buckets sections by (program, year) in first-seen order so
// output stays deterministic for a fixed input.
func groupBatches(sections []Section) []batch {
	var batches []batch
	index := make(map[string]int)
	for _, section := range sections {
		key := section.BatchKey()
		if i, ok := index[key]; ok {
			batches[i].Sections = append(batches[i].Sections, section)
			continue
		}
		index[key] = len(batches)
		batches = append(batches, batch{
			Program:   section.Program,
			Year:      section.Year,
			Classroom: section.Classroom,
			Sections:  []Section{section},
		})
	}
	return batches
}

func coursesForBatch(courses []Course, b batch) []Course {
	matched := lo.Filter(courses, func(c Course, _ int) bool {
		return c.Program == b.Program && c.Year == b.Year
	})
	for i := range matched {
		matched[i] = sanitizeHours(matched[i])
	}
	return matched
}

// sanitizeHours treats malformed hour fields as zero.
func sanitizeHours(c Course) Course {
	if c.LectureHours < 0 {
		c.LectureHours = 0
	}
	if c.TutorialHours < 0 {
		c.TutorialHours = 0
	}
	if c.PracticalHours < 0 {
		c.PracticalHours = 0
	}
	return c
}

// generation carries one run's shared state through the phases.
type generation struct {
	tr          *tracker
	times       map[int]TimeSlot
	logger      *zap.Logger
	assignments []Assignment
	warnings    []Warning
}

// relevantSections narrows a batch's sections to the course's targets.
// A course targeting none of the batch's sections is silently skipped.
func (g *generation) relevantSections(b batch, course Course) []Section {
	return lo.Filter(b.Sections, func(s Section, _ int) bool {
		return lo.Contains(course.Sections, s.Label)
	})
}

func (g *generation) courseOnDayForAny(course Course, sections []Section, day string) bool {
	return lo.SomeBy(sections, func(s Section) bool {
		return g.tr.courseOnDay(course.ID, s.Label, day)
	})
}

// jointFree checks every target section plus the professor and the shared
// classroom for the whole slot block.
func (g *generation) jointFree(sections []Section, instructor, classroom, day string, slots []int) bool {
	allFree := lo.EveryBy(sections, func(s Section) bool {
		return g.tr.sectionFree(s.Key(), day, slots)
	})
	return allFree &&
		g.tr.professorFree(instructor, day, slots) &&
		g.tr.classroomFree(classroom, day, slots)
}

// bookJoint books the block for every target section at the identical
// day/slots, so combined activities land atomically or not at all.
func (g *generation) bookJoint(course Course, sections []Section, classroom, day string, slots []int) {
	for _, section := range sections {
		g.tr.book(section.Key(), course.Instructor, classroom, "", day, slots)
		g.tr.markCourseDay(course.ID, section.Label, day)
		for _, slot := range slots {
			g.emit(section, day, slot, course.ID, SlotTypeClass)
		}
	}
}

func (g *generation) emit(section Section, day string, slot int, courseID string, slotType SlotType) {
	window := g.times[slot]
	g.assignments = append(g.assignments, Assignment{
		Program:   section.Program,
		Year:      section.Year,
		Section:   section.Label,
		Day:       day,
		Slot:      slot,
		TimeStart: window.Start,
		TimeEnd:   window.End,
		CourseID:  courseID,
		SlotType:  slotType,
	})
}

func (g *generation) warn(course Course, sectionLabel string, category Category, scheduled, required int) {
	g.warnings = append(g.warnings, Warning{
		CourseCode: course.Code,
		Section:    sectionLabel,
		Category:   category,
		Scheduled:  scheduled,
		Required:   required,
	})
	g.logger.Warn("course not fully scheduled",
		zap.String("course", course.Code),
		zap.String("section", sectionLabel),
		zap.String("category", string(category)),
		zap.Int("scheduled", scheduled),
		zap.Int("required", required),
	)
}

// scheduleMinors places minor courses into the institute-designated slots,
// in the caller-supplied order, jointly for every target section.
func (g *generation) scheduleMinors(b batch, courses []Course, minorSlots []MinorSlot) {
	for _, course := range courses {
		relevant := g.relevantSections(b, course)
		if len(relevant) == 0 {
			continue
		}

		required := course.contactHours()
		scheduled := 0
		for _, ms := range minorSlots {
			if scheduled >= required {
				break
			}
			if g.courseOnDayForAny(course, relevant, ms.Day) {
				continue
			}
			block := []int{ms.Slot}
			if !g.jointFree(relevant, course.Instructor, b.Classroom, ms.Day, block) {
				continue
			}
			g.bookJoint(course, relevant, b.Classroom, ms.Day, block)
			scheduled++
			g.logger.Debug("scheduled minor course",
				zap.String("course", course.Code),
				zap.String("day", ms.Day),
				zap.Int("slot", ms.Slot),
			)
		}
		if scheduled < required {
			g.warn(course, "", CategoryMinor, scheduled, required)
		}
	}
}

// scheduleMajorProjects places ceil(practical/3) joint afternoon sessions
// per course, trying the least combined-loaded days first.
func (g *generation) scheduleMajorProjects(b batch, courses []Course) {
	for _, course := range courses {
		relevant := g.relevantSections(b, course)
		if len(relevant) == 0 {
			continue
		}

		needed := course.labSessions()
		sessions := 0
		days := g.tr.daysByCombinedLoad(sectionKeys(relevant))
		for _, day := range days {
			if sessions >= needed {
				break
			}
			if g.courseOnDayForAny(course, relevant, day) {
				continue
			}
			if !g.jointFree(relevant, course.Instructor, b.Classroom, day, MajorProjectBlock) {
				continue
			}
			g.bookJoint(course, relevant, b.Classroom, day, MajorProjectBlock)
			sessions++
			g.logger.Debug("scheduled major project session",
				zap.String("course", course.Code),
				zap.String("day", day),
			)
		}
		if sessions < needed {
			g.warn(course, "", CategoryMajorProject, sessions*LabBlockLength, needed*LabBlockLength)
		}
	}
}

// scheduleLabs places lab sessions per section independently. Labs occupy
// the section, the professor, and the lab room, but deliberately not the
// shared classroom, so the sibling section can hold classes concurrently.
// At most one session per day per section.
func (g *generation) scheduleLabs(b batch, courses []Course) {
	for _, course := range courses {
		relevant := g.relevantSections(b, course)
		if len(relevant) == 0 {
			continue
		}

		needed := course.labSessions()
		for _, section := range relevant {
			key := section.Key()
			sessions := 0
			days := g.tr.daysByLoad(key)
			for _, day := range days {
				if sessions >= needed {
					break
				}
				if g.tr.courseOnDay(course.ID, section.Label, day) {
					continue
				}
				for _, block := range LabSlotBlocks {
					if !g.tr.sectionFree(key, day, block) ||
						!g.tr.professorFree(course.Instructor, day, block) ||
						!g.tr.labRoomFree(course.LabRoom, day, block) {
						continue
					}
					g.tr.book(key, course.Instructor, "", course.LabRoom, day, block)
					g.tr.markCourseDay(course.ID, section.Label, day)
					for _, slot := range block {
						g.emit(section, day, slot, course.ID, SlotTypeLab)
					}
					sessions++
					g.logger.Debug("scheduled lab session",
						zap.String("course", course.Code),
						zap.String("section", section.Label),
						zap.String("day", day),
						zap.Ints("slots", block),
						zap.String("lab_room", course.LabRoom),
					)
					break
				}
			}
			if sessions < needed {
				g.warn(course, section.Label, CategoryLab, sessions*LabBlockLength, needed*LabBlockLength)
			}
		}
	}
}

// scheduleJoint handles electives and combined courses: one period per day,
// first free slot in ascending order, booked jointly for all target
// sections. Days are tried by ascending combined load, fixed at phase start.
func (g *generation) scheduleJoint(b batch, courses []Course, category Category) {
	for _, course := range courses {
		relevant := g.relevantSections(b, course)
		if len(relevant) == 0 {
			continue
		}

		required := course.contactHours()
		scheduled := 0
		days := g.tr.daysByCombinedLoad(sectionKeys(relevant))
		for _, day := range days {
			if scheduled >= required {
				break
			}
			if g.courseOnDayForAny(course, relevant, day) {
				continue
			}
			for slot := 1; slot <= SlotsPerDay; slot++ {
				if slot == LunchSlot {
					continue
				}
				block := []int{slot}
				if !g.jointFree(relevant, course.Instructor, b.Classroom, day, block) {
					continue
				}
				g.bookJoint(course, relevant, b.Classroom, day, block)
				scheduled++
				g.logger.Debug("scheduled joint course",
					zap.String("course", course.Code),
					zap.String("category", string(category)),
					zap.String("day", day),
					zap.Int("slot", slot),
				)
				break
			}
		}
		if scheduled < required {
			g.warn(course, "", category, scheduled, required)
		}
	}
}

// scheduleRegular places regular courses per section independently, one
// period per day, lowest-loaded day then lowest free slot first.
func (g *generation) scheduleRegular(b batch, courses []Course) {
	for _, course := range courses {
		relevant := g.relevantSections(b, course)
		if len(relevant) == 0 {
			continue
		}

		required := course.contactHours()
		for _, section := range relevant {
			key := section.Key()
			scheduled := 0
			days := g.tr.daysByLoad(key)
			for _, day := range days {
				if scheduled >= required {
					break
				}
				if g.tr.courseOnDay(course.ID, section.Label, day) {
					continue
				}
				for slot := 1; slot <= SlotsPerDay; slot++ {
					if slot == LunchSlot {
						continue
					}
					block := []int{slot}
					if !g.tr.sectionFree(key, day, block) ||
						!g.tr.professorFree(course.Instructor, day, block) ||
						!g.tr.classroomFree(b.Classroom, day, block) {
						continue
					}
					g.tr.book(key, course.Instructor, b.Classroom, "", day, block)
					g.tr.markCourseDay(course.ID, section.Label, day)
					g.emit(section, day, slot, course.ID, SlotTypeClass)
					scheduled++
					g.logger.Debug("scheduled regular course",
						zap.String("course", course.Code),
						zap.String("section", section.Label),
						zap.String("day", day),
						zap.Int("slot", slot),
					)
					break
				}
			}
			if scheduled < required {
				g.warn(course, section.Label, CategoryRegular, scheduled, required)
			}
		}
	}
}

func sectionKeys(sections []Section) []string {
	return lo.Map(sections, func(s Section, _ int) string { return s.Key() })
}
