package grid

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	input := "\xef\xbb\xbfSaturday,,\n" +
		",8:00-9:20,9:30-10:50\n" +
		",,\n" +
		"301,\"CSE101.1 (ABC)\",\"MATH101.1, MATH101.2 (IAZ)\"\n" +
		"302,CSE102.1\n"

	g, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	expected := Grid{
		{"Saturday", "", ""},
		{"", "8:00-9:20", "9:30-10:50"},
		{"301", "CSE101.1 (ABC)", "MATH101.1, MATH101.2 (IAZ)"},
		{"302", "CSE102.1"},
	}
	if !reflect.DeepEqual(g, expected) {
		t.Errorf("unexpected grid.\nGot: %q\nExpected: %q", g, expected)
	}
}

func TestGridCell(t *testing.T) {
	g := Grid{{"a", "b"}, {"c"}}

	if g.Cell(0, 1) != "b" {
		t.Errorf("expected b, got %q", g.Cell(0, 1))
	}
	if g.Cell(1, 1) != "" || g.Cell(5, 0) != "" || g.Cell(-1, 0) != "" {
		t.Errorf("expected out of range cells to be empty")
	}
	if g.Row(2) != nil {
		t.Errorf("expected missing row to be nil")
	}
	if g.CellCount() != 3 {
		t.Errorf("expected 3 cells, got %d", g.CellCount())
	}
}

func TestDropBlankRows(t *testing.T) {
	rows := [][]string{{"", " "}, {"x"}, {}, {"", "y"}}
	g := DropBlankRows(rows)
	if !reflect.DeepEqual(g, Grid{{"x"}, {"", "y"}}) {
		t.Errorf("unexpected rows %q", g)
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "Sunday")
	f.SetCellValue(sheet, "B2", "8:00-9:20")
	f.SetCellValue(sheet, "A4", "401")
	f.SetCellValue(sheet, "B4", "CSE201.2 (GMD)")

	tmpFile := filepath.Join(t.TempDir(), "routine.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	g, err := Load(tmpFile, Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Row 3 is empty in the sheet and must be dropped.
	if len(g) != 3 {
		t.Fatalf("expected 3 rows, got %d: %q", len(g), g)
	}
	if g.Cell(0, 0) != "Sunday" || g.Cell(1, 1) != "8:00-9:20" || g.Cell(2, 1) != "CSE201.2 (GMD)" {
		t.Errorf("unexpected grid %q", g)
	}
}

func TestReadXLSX_UnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Sunday")

	tmpFile := filepath.Join(t.TempDir(), "routine.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	if _, err := Load(tmpFile, Options{Sheet: "Nope"}); err == nil {
		t.Errorf("expected an error for a missing sheet")
	}
}

func TestReadHTML(t *testing.T) {
	input := `<html><body>
<p>Class Routine</p>
<table>
  <tr><td colspan="3">Saturday</td></tr>
  <tr><td></td><td>8:00-9:20</td><td>9:30-10:50</td></tr>
  <tr><td rowspan="2">301</td><td>CSE101.1 (ABC)</td><td>MATH101.1 (IAZ)</td></tr>
  <tr><td>CSE102.1 (SAF)</td><td></td></tr>
</table>
<table><tr><td>ignored</td></tr></table>
</body></html>`

	g, err := ReadHTML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadHTML failed: %v", err)
	}

	expected := Grid{
		{"Saturday", "", ""},
		{"", "8:00-9:20", "9:30-10:50"},
		{"301", "CSE101.1 (ABC)", "MATH101.1 (IAZ)"},
		{"", "CSE102.1 (SAF)", ""},
	}
	if !reflect.DeepEqual(g, expected) {
		t.Errorf("unexpected grid.\nGot: %q\nExpected: %q", g, expected)
	}
}

func TestReadHTML_NoTable(t *testing.T) {
	if _, err := ReadHTML(strings.NewReader("<p>nothing here</p>")); err == nil {
		t.Errorf("expected an error for a page without a table")
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.csv"), Options{})
	var ingestErr *IngestionError
	if !errors.As(err, &ingestErr) {
		t.Fatalf("expected IngestionError for a missing file, got %v", err)
	}

	pdfPath := filepath.Join(dir, "routine.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := Load(pdfPath, Options{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}

	blankPath := filepath.Join(dir, "blank.csv")
	if err := os.WriteFile(blankPath, []byte(",,\n , \n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := Load(blankPath, Options{}); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("expected ErrEmptyGrid, got %v", err)
	}
}
