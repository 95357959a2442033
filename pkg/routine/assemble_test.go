package routine

import (
	"reflect"
	"testing"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1:30-2:50", 810},
		{"9:00-9:50", 540},
		{"", 0},
		{"N/A", 0},
		{"8:00 - 9:20", 480},
		{"12:30-1:50", 750},
		{"7:45-9:00", 1185},
		{"11-12", 660},
		{"noon-1:00", 0},
		{"2:00–4:30", 840},
	}

	for _, tt := range tests {
		if got := TimeToMinutes(tt.input); got != tt.expected {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestParseTimeRange(t *testing.T) {
	start, end, ok := ParseTimeRange("12:30-1:50")
	if !ok {
		t.Fatalf("expected range to parse")
	}
	if start != 750 || end != 830 {
		t.Errorf("expected 750-830, got %d-%d", start, end)
	}

	if _, _, ok := ParseTimeRange(NotAvailable); ok {
		t.Errorf("expected N/A not to parse")
	}
	if _, _, ok := ParseTimeRange("9:00-"); ok {
		t.Errorf("expected a range without end not to parse")
	}
}

func TestSortEntries(t *testing.T) {
	entries := []Entry{
		{Day: "Monday", Time: "9:30-10:50", Subject: "A"},
		{Day: "Saturday", Time: "1:30-2:50", Subject: "B"},
		{Day: "Friday", Time: "8:00-9:20", Subject: "C"},
		{Day: "Saturday", Time: "8:00-9:20", Subject: "D"},
		{Day: "Sunday", Time: NotAvailable, Subject: "E"},
		{Day: "Saturday", Time: "11:00-12:20", Subject: "F"},
		{Day: "Sunday", Time: "8:00-9:20", Subject: "G"},
		{Day: "Saturday", Time: "11:00-12:20", Subject: "H"},
	}

	SortEntries(entries)

	var got []string
	for _, e := range entries {
		got = append(got, e.Subject)
	}
	expected := []string{"D", "F", "H", "B", "E", "G", "A", "C"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("unexpected order %v, want %v", got, expected)
	}
}

func TestAssemble_GeneralCourseFansOutPerSection(t *testing.T) {
	sel := NewSelection(DeptCSE, "3rd Semester", "MATH101")

	routines := Assemble(sampleGrid(), sel)
	if len(routines) != 2 {
		t.Fatalf("expected 2 routines (one per section), got %d", len(routines))
	}

	if routines[0].Section != "1" || routines[1].Section != "3" {
		t.Errorf("expected sections 1 and 3, got %s and %s", routines[0].Section, routines[1].Section)
	}

	for _, r := range routines {
		for _, e := range r.Entries {
			if e.Subject != "MATH101."+r.Section {
				t.Errorf("routine for section %s contains %s", r.Section, e.Subject)
			}
		}
	}

	first := routines[0]
	if len(first.Entries) != 2 || first.Entries[0].Day != "Saturday" || first.Entries[1].Day != "Monday" {
		t.Errorf("unexpected entries for section 1: %+v", first.Entries)
	}
	if !reflect.DeepEqual(first.Faculty, []string{"IAZ"}) {
		t.Errorf("expected faculty [IAZ], got %v", first.Faculty)
	}
}

func TestAssemble_GeneralCourseForEEE(t *testing.T) {
	routines := Assemble(sampleGrid(), NewSelection(DeptEEE, "3rd Semester", "MATH101"))
	if len(routines) != 1 {
		t.Fatalf("expected a single EEE routine, got %d", len(routines))
	}
	if routines[0].Section != "3" || routines[0].Entries[0].Faculty != "TK" {
		t.Errorf("unexpected EEE routine: %+v", routines[0])
	}
}

func TestAssemble_SpecificCoursesShareSection(t *testing.T) {
	sel := NewSelection(DeptCSE, "3rd Semester", "CSE102.1", "CSE101.1")

	routines := Assemble(sampleGrid(), sel)
	if len(routines) != 1 {
		t.Fatalf("expected 1 combined routine, got %d", len(routines))
	}

	r := routines[0]
	if r.Section != "1" {
		t.Errorf("expected section 1, got %s", r.Section)
	}

	expected := []Entry{
		{Day: "Saturday", Time: "8:00-9:20", Room: "301", Faculty: "ABC", Subject: "CSE101.1"},
		{Day: "Saturday", Time: "2:00-4:30", Room: "LAB-1", Faculty: "SAF", Subject: "CSE102.1"},
		{Day: "Monday", Time: "9:30-10:50", Room: "301", Faculty: "ABC", Subject: "CSE101.1"},
	}
	if !reflect.DeepEqual(r.Entries, expected) {
		t.Errorf("unexpected entries.\nGot: %+v\nExpected: %+v", r.Entries, expected)
	}
	if !reflect.DeepEqual(r.Faculty, []string{"ABC", "SAF"}) {
		t.Errorf("expected faculty [ABC SAF], got %v", r.Faculty)
	}
}

func TestAssemble_MixedSectionsAreCustom(t *testing.T) {
	sel := NewSelection(DeptCSE, "3rd Semester", "CSE101.1", "CSE 102.2")

	routines := Assemble(sampleGrid(), sel)
	if len(routines) != 1 {
		t.Fatalf("expected 1 routine, got %d", len(routines))
	}
	r := routines[0]
	if !r.IsCustom() {
		t.Errorf("expected a custom routine, got section %s", r.Section)
	}
	if r.FileName(".pdf") != "Custom_Routine.pdf" {
		t.Errorf("unexpected file name %s", r.FileName(".pdf"))
	}
	if r.SectionLabel() != "Custom Routine" {
		t.Errorf("unexpected section label %s", r.SectionLabel())
	}
	if r.Entries[1].Subject != "CSE 102.2" {
		t.Errorf("expected the 1:30 class second, got %+v", r.Entries[1])
	}
}

func TestAssemble_SpecificAndGeneralTogether(t *testing.T) {
	sel := NewSelection(DeptCSE, "3rd Semester", "CSE101.1", "MATH101")

	routines := Assemble(sampleGrid(), sel)
	if len(routines) != 3 {
		t.Fatalf("expected 3 routines, got %d", len(routines))
	}
	if routines[0].Section != "1" || routines[0].Courses[0] != "CSE101.1" {
		t.Errorf("expected the specific routine first, got %+v", routines[0])
	}
}

func TestAssemble_NoMatchDropsRoutines(t *testing.T) {
	sel := NewSelection(DeptCSE, "3rd Semester", "CSE999.1", "PHY101")

	if routines := Assemble(sampleGrid(), sel); len(routines) != 0 {
		t.Errorf("expected no routines, got %d", len(routines))
	}
}

func TestRoutineLabels(t *testing.T) {
	r := Routine{Section: "2", Semester: "3rd Semester", Faculty: []string{"IAZ", "XYZ"}}

	if r.FileName(".pdf") != "Routine_Sec_2.pdf" {
		t.Errorf("unexpected file name %s", r.FileName(".pdf"))
	}
	if r.SectionLabel() != "Section 2" {
		t.Errorf("unexpected section label %s", r.SectionLabel())
	}
	if r.SemesterNumber() != "3rd" {
		t.Errorf("unexpected semester number %s", r.SemesterNumber())
	}

	expected := []Faculty{
		{Initials: "IAZ", Name: "Dr. Ishtiaque Aziz Zahed"},
		{Initials: "XYZ", Name: "N/A"},
	}
	if got := r.FacultyDetails(); !reflect.DeepEqual(got, expected) {
		t.Errorf("FacultyDetails() = %+v, want %+v", got, expected)
	}
}

func TestLookupFaculty(t *testing.T) {
	tests := []struct {
		query    string
		initials string
		ok       bool
	}{
		{"IAZ", "IAZ", true},
		{" iaz ", "IAZ", true},
		{"Dr. MK", "Dr. MK", true},
		{"DR. MK", "Dr. MK", true},
		{"XYZ", "", false},
	}

	for _, tt := range tests {
		f, ok := LookupFaculty(tt.query)
		if ok != tt.ok || f.Initials != tt.initials {
			t.Errorf("LookupFaculty(%q) = %+v, %v; want %s, %v", tt.query, f, ok, tt.initials, tt.ok)
		}
	}

	if f, _ := LookupFaculty("Dr. MK"); f.Name != "Dr. K.M. Mohibul Kabir" {
		t.Errorf("unexpected name %q", f.Name)
	}
}
