package exporter

import (
	"fmt"
	"strings"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/routine"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4C51BF"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerCell   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#4C51BF")).Padding(0, 1)
	bodyCell     = lipgloss.NewStyle().Padding(0, 1)
)

// RenderTable renders a routine for the terminal with the same layout as the PDF.
func RenderTable(r routine.Routine, term string) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(fmt.Sprintf("Department of %s", r.Department)) + "\n")
	b.WriteString(fmt.Sprintf("Semester - %s, %s\n", r.SemesterNumber(), r.SectionLabel()))
	b.WriteString(subtleStyle.Render(fmt.Sprintf("Class Routine - %s", titleCase(term))) + "\n")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(subtleStyle).
		Headers(tableHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return bodyCell
		})

	for _, e := range r.Entries {
		t.Row(e.Day, e.Time, e.Room, e.Faculty, e.Subject)
	}
	b.WriteString(t.String() + "\n")

	if details := r.FacultyDetails(); len(details) > 0 {
		b.WriteString("\n" + headingStyle.Render("Faculty Details") + "\n")
		for _, f := range details {
			b.WriteString(fmt.Sprintf("  %s: %s\n", f.Initials, f.Name))
		}
	}

	return b.String()
}
