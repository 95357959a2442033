package routine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/grid"
)

func TestSessionLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routine.csv")
	content := "Saturday\n" +
		",8:00-9:20,9:30-10:50\n" +
		"301,CSE101.1 (ABC),\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write routine: %v", err)
	}

	var s Session
	s.Replace("old.csv", sampleGrid())

	if err := s.Load(path, grid.Options{}); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Path != path {
		t.Errorf("expected path %s, got %s", path, s.Path)
	}
	// The previous catalog is replaced, not merged.
	if s.Catalog.Has("MATH101.1") {
		t.Errorf("expected the old catalog to be discarded")
	}
	if !s.Catalog.Has("CSE101.1") || !s.Catalog.Has("CSE101") {
		t.Errorf("expected the new catalog to contain CSE101 and CSE101.1")
	}

	routines, err := s.Generate(NewSelection(DeptCSE, "1st Semester", "CSE101.1"))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(routines) != 1 || len(routines[0].Entries) != 1 {
		t.Fatalf("expected one routine with one class, got %+v", routines)
	}

	e := routines[0].Entries[0]
	if e.Day != "Saturday" || e.Time != "8:00-9:20" || e.Room != "301" || e.Faculty != "ABC" || e.Subject != "CSE101.1" {
		t.Errorf("unexpected entry %+v", e)
	}
}
