package routine

import (
	"fmt"
	"sort"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/grid"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/logger"
)

// CustomSection labels the routine built from sections picked one by one when they
// do not all share the same section number.
const CustomSection = "Custom"

// Assemble turns a selection into routines.
//
// All specific picks ("CSE101.1", "MATH102.3") share one combined routine. Every
// general pick ("CSE101") fans out into one routine per section the department can
// see. Routines without any class are dropped, so an empty result means nothing
// matched.
func Assemble(g grid.Grid, sel Selection) []Routine {
	specific, general := sel.Partition()
	var routines []Routine

	if len(specific) > 0 {
		if r, ok := buildRoutine(g, sel, specific, commonSection(specific)); ok {
			routines = append(routines, r)
		}
	}

	for _, base := range general {
		sections := FindSections(g, base, sel.Department)
		logger.Debug("Resolved sections", "course", base, "department", sel.Department, "sections", sections)

		for _, section := range sections {
			course := fmt.Sprintf("%s.%s", base, section)
			if r, ok := buildRoutine(g, sel, []string{course}, section); ok {
				routines = append(routines, r)
			}
		}
	}

	logger.Info("Assembled routines", "courses", len(sel.Courses), "department", sel.Department, "routines", len(routines))
	return routines
}

func buildRoutine(g grid.Grid, sel Selection, courses []string, section string) (Routine, bool) {
	entries := ExtractSchedule(g, courses, sel.Department)
	if len(entries) == 0 {
		logger.Debug("No classes found", "courses", courses, "department", sel.Department)
		return Routine{}, false
	}
	SortEntries(entries)

	return Routine{
		Section:    section,
		Department: sel.Department,
		Semester:   sel.Semester,
		Courses:    courses,
		Entries:    entries,
		Faculty:    uniqueFaculty(entries),
	}, true
}

// commonSection returns the one section every specific pick shares, or CustomSection.
func commonSection(specific []string) string {
	sections := make(map[string]bool)
	for _, c := range specific {
		sections[SectionOf(c)] = true
	}
	if len(sections) != 1 {
		return CustomSection
	}
	for s := range sections {
		return s
	}
	return CustomSection
}

// SortEntries orders entries by weekday (Saturday first) and then by start time.
// Entries that compare equal keep their grid order.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := DayIndex(entries[i].Day), DayIndex(entries[j].Day)
		if di != dj {
			return di < dj
		}
		return TimeToMinutes(entries[i].Time) < TimeToMinutes(entries[j].Time)
	})
}

func uniqueFaculty(entries []Entry) []string {
	seen := make(map[string]bool)
	var initials []string
	for _, e := range entries {
		if e.Faculty == "" || seen[e.Faculty] {
			continue
		}
		seen[e.Faculty] = true
		initials = append(initials, e.Faculty)
	}
	return initials
}

// IsCustom reports whether the routine mixes sections.
func (r Routine) IsCustom() bool {
	return r.Section == CustomSection
}

// SectionLabel is the section line of the routine header.
func (r Routine) SectionLabel() string {
	if r.IsCustom() {
		return "Custom Routine"
	}
	return fmt.Sprintf("Section %s", r.Section)
}

// SemesterNumber returns the first word of the semester label.
func (r Routine) SemesterNumber() string {
	return semesterNumber(r.Semester)
}

// FileName returns the download name for the routine with the given extension,
// e.g. "Routine_Sec_2.pdf" or "Custom_Routine.ics".
func (r Routine) FileName(ext string) string {
	if r.IsCustom() {
		return "Custom_Routine" + ext
	}
	return fmt.Sprintf("Routine_Sec_%s%s", r.Section, ext)
}

// FacultyDetails resolves the routine's initials through the faculty directory.
func (r Routine) FacultyDetails() []Faculty {
	details := make([]Faculty, 0, len(r.Faculty))
	for _, initials := range r.Faculty {
		details = append(details, Faculty{Initials: initials, Name: FacultyLabel(initials)})
	}
	return details
}
