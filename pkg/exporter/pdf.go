package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/routine"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// pdfCompression is switched off in tests so the page content can be inspected.
var pdfCompression = true

var (
	tableHeaders = []string{"DAY", "TIME", "ROOM", "FACULTY", "SUBJECT"}
	// Column widths in mm; they add up to the printable width of an A4 page.
	columnWidths = []float64{32, 36, 28, 40, 46}
)

const (
	marginLeft   = 14.0
	pageBottom   = 280.0
	legendTopY   = 20.0
	legendLineDY = 6.0
)

// WritePDF renders a printable routine: the header lines, the class table and the
// faculty legend.
func WritePDF(r routine.Routine, term string, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(pdfCompression)
	pdf.SetMargins(marginLeft, 15, marginLeft)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(fmt.Sprintf("%s Routine %s", r.Department, r.SectionLabel()), false)
	pdf.AddPage()

	// Core fonts are cp1252; dashes in time ranges and accented names need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "", 18)
	pdf.Text(marginLeft, 22, tr(fmt.Sprintf("Department of %s", r.Department)))
	pdf.SetFontSize(14)
	pdf.Text(marginLeft, 30, tr(fmt.Sprintf("Semester - %s, %s", r.SemesterNumber(), r.SectionLabel())))
	pdf.SetFontSize(12)
	pdf.Text(marginLeft, 38, tr(fmt.Sprintf("Class Routine - %s", titleCase(term))))

	pdf.SetXY(marginLeft, 45)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(76, 81, 191)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range tableHeaders {
		pdf.CellFormat(columnWidths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, e := range r.Entries {
		for i, v := range []string{e.Day, e.Time, e.Room, e.Faculty, e.Subject} {
			pdf.CellFormat(columnWidths[i], 7, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(r.Faculty) > 0 {
		finalY := pdf.GetY()
		pdf.SetFontSize(14)
		pdf.Text(marginLeft, finalY+15, "Faculty Details")

		pdf.SetFontSize(10)
		y := finalY + 22
		for _, f := range r.FacultyDetails() {
			pdf.Text(marginLeft, y, tr(fmt.Sprintf("%s: %s", f.Initials, f.Name)))
			y += legendLineDY
			if y > pageBottom {
				pdf.AddPage()
				y = legendTopY
			}
		}
	}

	return pdf.Output(w)
}

// titleCase capitalises a term typed entirely in lower case ("summer 2025") and
// leaves any other spelling as written.
func titleCase(s string) string {
	if s != strings.ToLower(s) {
		return s
	}
	return cases.Title(language.English).String(s)
}
