package routine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/grid"
)

func TestExtractCatalog(t *testing.T) {
	catalog := ExtractCatalog(sampleGrid())

	expected := []string{
		"CSE 102", "CSE 102.2",
		"CSE101", "CSE101.1",
		"CSE102", "CSE102.1",
		"MATH101", "MATH101.1", "MATH101.3",
	}
	if catalog.Len() != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), catalog.Len(), catalog.Sorted())
	}
	for _, token := range expected {
		if !catalog.Has(token) {
			t.Errorf("expected catalog to contain %q", token)
		}
	}
}

func TestExtractCatalog_IgnoresCoursesWithoutSection(t *testing.T) {
	g := grid.Grid{{"301", "CSE103 (ABC)", "Meeting (ALL)"}}
	if n := ExtractCatalog(g).Len(); n != 0 {
		t.Errorf("expected empty catalog, got %d tokens", n)
	}
}

func TestExtractCatalog_SeveralTokensPerCell(t *testing.T) {
	g := grid.Grid{{"LAB", "CSE201.1 / CSE 202.3 (XYZ)"}}
	catalog := ExtractCatalog(g)

	for _, token := range []string{"CSE201.1", "CSE201", "CSE 202.3", "CSE 202"} {
		if !catalog.Has(token) {
			t.Errorf("expected catalog to contain %q", token)
		}
	}
}

func TestExtractCatalog_JoinedRowsMatchCells(t *testing.T) {
	g := sampleGrid()

	joined := make(grid.Grid, 0, len(g))
	for _, row := range g {
		joined = append(joined, []string{strings.Join(row, ",")})
	}

	if !reflect.DeepEqual(ExtractCatalog(g), ExtractCatalog(joined)) {
		t.Errorf("catalog differs between per-cell and joined-row scanning")
	}
}

func TestCatalogSorted(t *testing.T) {
	catalog := Catalog{}
	for _, token := range []string{"CSE102", "CSE101.10", "CSE101.2", "CSE101", "CSE101.1"} {
		catalog[token] = struct{}{}
	}

	expected := []string{"CSE101", "CSE101.1", "CSE101.2", "CSE101.10", "CSE102"}
	if got := catalog.Sorted(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Sorted() = %v, want %v", got, expected)
	}
	if got := catalog.Bases(); !reflect.DeepEqual(got, []string{"CSE101", "CSE102"}) {
		t.Errorf("Bases() = %v", got)
	}
}

func TestCatalogSuggest(t *testing.T) {
	catalog := ExtractCatalog(sampleGrid())

	got := catalog.Suggest("math")
	expected := []string{"MATH101", "MATH101.1", "MATH101.3"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Suggest(math) = %v, want %v", got, expected)
	}

	if got := catalog.Suggest("  "); got != nil {
		t.Errorf("expected no suggestions for a blank query, got %v", got)
	}
	if got := catalog.Suggest("PHY"); len(got) != 0 {
		t.Errorf("expected no suggestions for PHY, got %v", got)
	}
}
