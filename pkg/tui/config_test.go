package tui

import (
	"testing"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/grid"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/routine"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		input   string
		wantErr bool
	}{
		{"date ok", validateDate, "2025-06-07", false},
		{"date empty", validateDate, "", false},
		{"date wrong layout", validateDate, "07/06/2025", true},
		{"weeks ok", validateWeeks, "14", false},
		{"weeks zero", validateWeeks, "0", true},
		{"weeks text", validateWeeks, "many", true},
		{"timezone utc", validateTimezone, "UTC", false},
		{"timezone empty", validateTimezone, "", false},
		{"timezone unknown", validateTimezone, "Mars/Olympus", true},
		{"hex ok", validateHex, "#4C51BF", false},
		{"hex short", validateHex, "#FFF", true},
		{"hex not hex", validateHex, "#GGGGGG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("%q: got error %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestCourseOptions(t *testing.T) {
	catalog := routine.ExtractCatalog(grid.Grid{
		{"301", "CSE101.2 (ABC)", "CSE101.1 (ABC)", "MATH101.1 (IAZ)"},
	})

	options := courseOptions(catalog, []string{"CSE 101.1"})

	want := []string{"CSE101", "CSE101.1", "CSE101.2", "MATH101", "MATH101.1"}
	if len(options) != len(want) {
		t.Fatalf("expected %d options, got %d", len(want), len(options))
	}
	for i, w := range want {
		if options[i].Key != w || options[i].Value != w {
			t.Errorf("option %d: expected %s, got %s/%s", i, w, options[i].Key, options[i].Value)
		}
	}
}

func TestSectionSummary(t *testing.T) {
	if got := sectionSummary(nil, routine.DeptEEE); got != "(no sections for EEE)" {
		t.Errorf("unexpected summary %q", got)
	}
	if got := sectionSummary([]string{"1", "2"}, routine.DeptCSE); got != "(CSE sections: 1, 2)" {
		t.Errorf("unexpected summary %q", got)
	}
}
