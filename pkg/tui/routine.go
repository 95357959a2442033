package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/config"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/exporter"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/grid"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/routine"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

const formatPreview = "table"

var routineFileTypes = []string{".csv", ".txt", ".xlsx", ".xlsm", ".html", ".htm"}

// RunRoutineTUI walks through picking a routine file, courses, department and
// semester, then writes the generated routines.
func RunRoutineTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the Routine Generator!"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	session, err := pickRoutineFile(cfg)
	if err != nil || session == nil {
		return err
	}

	if session.Catalog.Len() == 0 {
		fmt.Println(errorStyle.Render("No course codes were found in this file!"))
		return nil
	}

	department := cfg.Department
	semester := cfg.Semester
	var selectedCourses []string
	formats := []string{exporter.FormatPDF}
	remember := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select your courses").
				Description("CSE101 = every section, CSE101.2 = only section 2.\nSpace = toggle, Enter = confirm. Start typing to filter.").
				Options(courseOptions(session.Catalog, cfg.SavedCourses)...).
				Value(&selectedCourses).
				Filterable(true).
				Height(12),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Department").
				Options(huh.NewOptions(routine.Departments...)...).
				Value(&department),

			huh.NewInput().
				Title("Semester").
				Placeholder("e.g. 3rd Semester").
				Value(&semester),

			huh.NewMultiSelect[string]().
				Title("Output").
				Options(
					huh.NewOption("PDF", exporter.FormatPDF),
					huh.NewOption("Calendar (.ics)", exporter.FormatICS),
					huh.NewOption("Preview in terminal", formatPreview),
				).
				Value(&formats),

			huh.NewConfirm().
				Title("Remember these choices?").
				Value(&remember),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	sel := routine.NewSelection(department, semester, selectedCourses...)
	routines, err := session.Generate(sel)
	if err != nil {
		if !printIncomplete(err) {
			return err
		}
		return nil
	}

	if remember {
		cfg.Department = sel.Department
		cfg.Semester = sel.Semester
		cfg.SavedCourses = sel.Courses
		if err := config.Save(cfg); err != nil {
			return err
		}
	}

	if len(routines) == 0 {
		fmt.Println(errorStyle.Render(routine.NoMatchMessage))
		return nil
	}

	return exportRoutines(cfg, routines, formats)
}

func exportRoutines(cfg *config.AppConfig, routines []routine.Routine, formats []string) error {
	opts, err := exporter.FromConfig(cfg, nil)
	if err != nil {
		return err
	}

	for _, f := range formats {
		if f == formatPreview {
			for _, r := range routines {
				fmt.Println(exporter.RenderTable(r, opts.Term))
			}
			continue
		}
		opts.Formats = append(opts.Formats, f)
	}
	if len(opts.Formats) == 0 {
		return nil
	}

	var written []string
	_ = spinner.New().
		Title(fmt.Sprintf("Writing %d routine(s)...", len(routines))).
		Action(func() {
			written, err = exporter.WriteFiles(routines, opts)
		}).
		Run()

	if err != nil {
		return fmt.Errorf("failed to export routines: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Wrote %d routine(s):", len(routines))))
	for _, path := range written {
		fmt.Printf("  %s\n", path)
	}
	return nil
}

// pickRoutineFile offers the last used file or a file picker, then loads the choice.
// A nil session with a nil error means the file was rejected and already reported.
func pickRoutineFile(cfg *config.AppConfig) (*routine.Session, error) {
	path := cfg.LastFile
	useLast := path != ""

	if useLast {
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Use %s?", filepath.Base(path))).
					Description(path).
					Affirmative("Yes").
					Negative("Pick another file").
					Value(&useLast),
			),
		).WithTheme(GetTheme())

		if err := confirm.Run(); err != nil {
			return nil, err
		}
	}

	if !useLast {
		startDir, _ := os.Getwd()
		if cfg.LastFile != "" {
			startDir = filepath.Dir(cfg.LastFile)
		}

		picker := huh.NewForm(
			huh.NewGroup(
				huh.NewFilePicker().
					Title("Select the class routine file").
					Description("CSV, Excel or HTML export of the master routine").
					CurrentDirectory(startDir).
					AllowedTypes(routineFileTypes).
					Value(&path),
			),
		).WithTheme(GetTheme())

		if err := picker.Run(); err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(path) == "" {
		fmt.Println(errorStyle.Render(routine.MissingMessage(routine.InputRoutineFile)))
		return nil, nil
	}

	session := &routine.Session{}
	var loadErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Reading %s...", filepath.Base(path))).
		Action(func() {
			loadErr = session.Load(path, grid.Options{})
		}).
		Run()

	if loadErr != nil {
		fmt.Println(errorStyle.Render(loadErr.Error()))
		return nil, nil
	}

	cfg.LastFile = path
	if err := config.Save(cfg); err != nil {
		return nil, err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("Found %d course entries in %s", session.Catalog.Len(), filepath.Base(path))))
	return session, nil
}

// courseOptions lists the catalog in sorted order with saved courses preselected.
func courseOptions(catalog routine.Catalog, saved []string) []huh.Option[string] {
	savedMap := make(map[string]bool)
	for _, c := range saved {
		savedMap[routine.Normalize(c)] = true
	}

	var options []huh.Option[string]
	for _, token := range catalog.Sorted() {
		opt := huh.NewOption(token, token)
		if savedMap[routine.Normalize(token)] {
			opt = opt.Selected(true)
		}
		options = append(options, opt)
	}
	return options
}

// printIncomplete prints one message per missing input and reports whether err was
// an incomplete selection.
func printIncomplete(err error) bool {
	var incomplete *routine.IncompleteSelectionError
	if !errors.As(err, &incomplete) {
		return false
	}
	for _, msg := range incomplete.Messages() {
		fmt.Println(errorStyle.Render(msg))
	}
	return true
}
