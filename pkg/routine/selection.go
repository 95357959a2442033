package routine

import (
	"strings"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/grid"
)

// Selection is what the user asked a routine for.
type Selection struct {
	Courses    []string // In the order they were picked, without duplicates
	Department string
	Semester   string // Free text such as "3rd Semester"
}

// NewSelection builds a selection, dropping blank and repeated courses.
func NewSelection(department, semester string, courses ...string) Selection {
	s := Selection{Department: department, Semester: semester}
	for _, c := range courses {
		s.Add(c)
	}
	return s
}

// Add appends a course unless it is blank or already selected. It reports whether
// the course was added.
func (s *Selection) Add(course string) bool {
	course = strings.TrimSpace(course)
	if course == "" {
		return false
	}
	for _, c := range s.Courses {
		if c == course {
			return false
		}
	}
	s.Courses = append(s.Courses, course)
	return true
}

// Remove drops a course from the selection.
func (s *Selection) Remove(course string) {
	for i, c := range s.Courses {
		if c == course {
			s.Courses = append(s.Courses[:i], s.Courses[i+1:]...)
			return
		}
	}
}

// Partition splits the courses into specific picks ("CSE101.1") and general picks
// ("CSE101"), keeping selection order.
func (s Selection) Partition() (specific, general []string) {
	for _, c := range s.Courses {
		if IsSpecific(c) {
			specific = append(specific, c)
		} else {
			general = append(general, c)
		}
	}
	return specific, general
}

// SemesterNumber returns the first word of the semester label, e.g. "3rd" for
// "3rd Semester".
func (s Selection) SemesterNumber() string {
	return semesterNumber(s.Semester)
}

// Validate checks that everything needed to generate is present. Missing inputs are
// all reported together in an *IncompleteSelectionError.
func (s Selection) Validate(g grid.Grid) error {
	var missing []string
	if len(g) == 0 {
		missing = append(missing, InputRoutineFile)
	}
	if len(s.Courses) == 0 {
		missing = append(missing, InputCourses)
	}
	if strings.TrimSpace(s.Semester) == "" {
		missing = append(missing, InputSemester)
	}
	if strings.TrimSpace(s.Department) == "" {
		missing = append(missing, InputDepartment)
	}
	if len(missing) > 0 {
		return &IncompleteSelectionError{Missing: missing}
	}

	if !IsDepartment(s.Department) {
		return &UnknownDepartmentError{Department: s.Department}
	}
	return nil
}

func semesterNumber(label string) string {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
