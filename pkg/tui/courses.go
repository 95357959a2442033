package tui

import (
	"fmt"
	"strings"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/config"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/routine"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunCoursesTUI searches the loaded routine file for courses and shows which
// sections the saved department can take.
func RunCoursesTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	session, err := pickRoutineFile(cfg)
	if err != nil || session == nil {
		return err
	}

	department := cfg.Department
	if department == "" {
		department = routine.DeptCSE
	}

	for {
		var query string

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Search courses").
					Description("Type the start of a course code. Leave empty to go back.").
					Placeholder("e.g. CSE1").
					Suggestions(session.Catalog.Sorted()).
					Value(&query),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}
		if strings.TrimSpace(query) == "" {
			return nil
		}

		matches := session.Catalog.Suggest(query)
		if len(matches) == 0 {
			fmt.Println(errorStyle.Render(fmt.Sprintf("No courses start with %q", query)))
			continue
		}

		fmt.Println(accentStyle.Render(fmt.Sprintf("\n%d match(es) for %q", len(matches), query)))
		laneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		for _, token := range matches {
			if routine.IsSpecific(token) {
				fmt.Printf("  %s\n", token)
				continue
			}
			sections := routine.FindSections(session.Grid, token, department)
			fmt.Printf("• %s %s\n", token, laneStyle.Render(sectionSummary(sections, department)))
		}
		fmt.Println()
	}
}

func sectionSummary(sections []string, department string) string {
	if len(sections) == 0 {
		return fmt.Sprintf("(no sections for %s)", department)
	}
	return fmt.Sprintf("(%s sections: %s)", department, strings.Join(sections, ", "))
}

// RunFacultyTUI lets the user look up a faculty member by initials or name.
func RunFacultyTUI() error {
	var options []huh.Option[string]
	for _, f := range routine.FacultyDirectory() {
		options = append(options, huh.NewOption(fmt.Sprintf("%-8s %s", f.Initials, f.Name), f.Initials))
	}

	var initials string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Faculty Directory").
				Description("Start typing to filter.").
				Options(options...).
				Filtering(true).
				Height(12).
				Value(&initials),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n%s: %s\n", initials, routine.FacultyLabel(initials))))
	return nil
}
