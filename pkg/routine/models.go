package routine

// Entry is one class meeting extracted from the routine grid.
type Entry struct {
	Day     string `json:"day"`
	Time    string `json:"time"` // Raw range as written in the grid, e.g. "8:00-9:20", or "N/A"
	Room    string `json:"room"`
	Faculty string `json:"faculty"` // Initials, e.g. "ABC"; empty when the cell names nobody
	Subject string `json:"subject"` // Course with section, as written, e.g. "CSE 101.1"
}

// Routine is one printable class routine: the sorted entries of a section (or of a
// custom pick of sections) plus the labels printed in its header.
type Routine struct {
	Section    string   `json:"section"` // Section number, or CustomSection
	Department string   `json:"department"`
	Semester   string   `json:"semester"`
	Courses    []string `json:"courses"`
	Entries    []Entry  `json:"entries"`
	Faculty    []string `json:"faculty"` // Distinct initials in order of first appearance
}

// Faculty pairs a teacher's initials with the full name from the directory.
type Faculty struct {
	Initials string
	Name     string
}
