package routine

import (
	"fmt"
	"strings"
)

// NoMatchMessage is shown once when a generation run produced no routine at all.
const NoMatchMessage = "No matching classes found."

// Inputs that must be present before a routine can be generated.
const (
	InputRoutineFile = "routine file"
	InputCourses     = "courses"
	InputSemester    = "semester"
	InputDepartment  = "department"
)

var missingMessages = map[string]string{
	InputRoutineFile: "Please upload the class routine file.",
	InputCourses:     "Please select at least one course.",
	InputSemester:    "Please select a semester.",
	InputDepartment:  "Please select a department.",
}

// MissingMessage returns the user-facing message for a missing input.
func MissingMessage(input string) string {
	return missingMessages[input]
}

// IncompleteSelectionError lists the inputs missing when generation was requested.
type IncompleteSelectionError struct {
	Missing []string
}

func (e *IncompleteSelectionError) Error() string {
	return fmt.Sprintf("missing required input: %s", strings.Join(e.Missing, ", "))
}

// Messages returns one user-facing message per missing input.
func (e *IncompleteSelectionError) Messages() []string {
	msgs := make([]string, 0, len(e.Missing))
	for _, input := range e.Missing {
		msgs = append(msgs, MissingMessage(input))
	}
	return msgs
}

// UnknownDepartmentError reports a department outside Departments.
type UnknownDepartmentError struct {
	Department string
}

func (e *UnknownDepartmentError) Error() string {
	return fmt.Sprintf("unknown department %q (must be one of %s)", e.Department, strings.Join(Departments, ", "))
}
