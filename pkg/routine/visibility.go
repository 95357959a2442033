package routine

import "strings"

// Departments a routine can be generated for.
const (
	DeptCSE = "CSE"
	DeptEEE = "EEE"
)

// Departments lists the selectable departments.
var Departments = []string{DeptCSE, DeptEEE}

// eeeMarker tags the sections of a shared course that belong to EEE students.
const eeeMarker = "(EEE)"

// Courses taught to both departments. Their cells carry eeeMarker when the section
// is the EEE one.
var sharedPrefixes = map[string]bool{
	"MATH": true,
	"PHY":  true,
	"AA":   true,
	"ENG":  true,
	"CHEM": true,
}

// IsDepartment reports whether dept is one of Departments.
func IsDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

// IsEEEMarked reports whether a cell carries the "(EEE)" marker, in any case.
func IsEEEMarked(cellText string) bool {
	return strings.Contains(strings.ToUpper(cellText), eeeMarker)
}

// Visible reports whether a routine cell belongs to the given department.
// CSE never sees EEE-marked cells; EEE only sees the EEE-marked cells of shared
// courses. Every other cell is visible to everyone.
func Visible(cellText, department string) bool {
	marked := IsEEEMarked(cellText)
	switch department {
	case DeptCSE:
		return !marked
	case DeptEEE:
		return marked || !sharedPrefixes[coursePrefix(cellText)]
	}
	return true
}
