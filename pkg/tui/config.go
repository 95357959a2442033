package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/config"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/routine"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Department & Semester", "student"),
						huh.NewOption("Set Saved Courses", "courses"),
						huh.NewOption("Set Term & Calendar", "calendar"),
						huh.NewOption("Set Output Folder", "output"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "student":
			err = runSetStudentTUI(cfg)
		case "courses":
			err = runSetSavedCoursesTUI(cfg)
		case "calendar":
			err = runSetCalendarTUI(cfg)
		case "output":
			err = runSetOutputTUI(cfg)
		case "view":
			printConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

func printConfig(cfg *config.AppConfig) {
	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- Current Configuration (%s) ---", config.Path())))
	fmt.Printf("Department: %s\n", orNotSet(cfg.Department))
	fmt.Printf("Semester: %s\n", orNotSet(cfg.Semester))
	fmt.Printf("Saved Courses: %s\n", orNotSet(strings.Join(cfg.SavedCourses, ", ")))
	fmt.Printf("Routine File: %s\n", orNotSet(cfg.LastFile))
	fmt.Printf("Output Folder: %s\n", orNotSet(cfg.OutputDir))
	fmt.Printf("Term: %s\n", cfg.TermLabel())
	fmt.Printf("Semester Start: %s\n", orNotSet(cfg.SemesterStart))
	fmt.Printf("Weeks: %d\n", cfg.WeekCount())
	fmt.Printf("Timezone: %s\n", cfg.Location())
	fmt.Printf("Accent Color: %s\n", orNotSet(cfg.AccentColor))
	fmt.Println()
}

func orNotSet(s string) string {
	if s == "" {
		return "Not set"
	}
	return s
}

func runSetStudentTUI(cfg *config.AppConfig) error {
	department := cfg.Department
	semester := cfg.Semester

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your department").
				Options(huh.NewOptions(routine.Departments...)...).
				Value(&department),

			huh.NewInput().
				Title("Semester").
				Placeholder("e.g. 3rd Semester").
				Value(&semester).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("semester cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Department = department
	cfg.Semester = strings.TrimSpace(semester)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved %s, %s.\n", cfg.Department, cfg.Semester)))
	return nil
}

func runSetSavedCoursesTUI(cfg *config.AppConfig) error {
	session, err := pickRoutineFile(cfg)
	if err != nil || session == nil {
		return err
	}

	if session.Catalog.Len() == 0 {
		fmt.Println(errorStyle.Render("No course codes were found in this file!"))
		return nil
	}

	var selectedCourses []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select your courses").
				Description("These are preselected whenever you generate a routine.\nSpace = toggle, Enter = confirm. Start typing to filter.").
				Options(courseOptions(session.Catalog, cfg.SavedCourses)...).
				Value(&selectedCourses).
				Filterable(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SavedCourses = routine.NewSelection("", "", selectedCourses...).Courses
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved %d courses.\n", len(cfg.SavedCourses))))
	return nil
}

func runSetCalendarTUI(cfg *config.AppConfig) error {
	term := cfg.TermLabel()
	start := cfg.SemesterStart
	weeks := strconv.Itoa(cfg.WeekCount())
	timezone := cfg.Location()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Term").
				Description("Printed in the routine header as \"Class Routine - <term>\".").
				Value(&term),

			huh.NewInput().
				Title("First week of classes").
				Description("Calendar events start on the first matching weekday on or after this date.").
				Placeholder("YYYY-MM-DD").
				Value(&start).
				Validate(validateDate),

			huh.NewInput().
				Title("Teaching weeks").
				Value(&weeks).
				Validate(validateWeeks),

			huh.NewInput().
				Title("Timezone").
				Placeholder(config.DefaultTimezone).
				Value(&timezone).
				Validate(validateTimezone),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Term = strings.TrimSpace(term)
	cfg.SemesterStart = strings.TrimSpace(start)
	cfg.Weeks, _ = strconv.Atoi(strings.TrimSpace(weeks))
	cfg.Timezone = strings.TrimSpace(timezone)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Calendar settings saved.\n"))
	return nil
}

func validateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(config.DateLayout, s); err != nil {
		return fmt.Errorf("must be a date like 2025-06-07")
	}
	return nil
}

func validateWeeks(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func validateTimezone(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.LoadLocation(s); err != nil {
		return fmt.Errorf("unknown timezone %q", s)
	}
	return nil
}

func runSetOutputTUI(cfg *config.AppConfig) error {
	dir := cfg.OutputDir

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output folder").
				Description("Generated PDF and calendar files are written here. Leave empty for the current folder.").
				Value(&dir),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.OutputDir = strings.TrimSpace(dir)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Output folder set to: %s\n", orNotSet(cfg.OutputDir))))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color").
				Description("Select a preset or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Routine Indigo", colorBlock(defaultAccent)), defaultAccent),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(validateHex),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}

func validateHex(str string) error {
	if len(str) != 7 || !strings.HasPrefix(str, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	if _, err := strconv.ParseUint(str[1:], 16, 32); err != nil {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	return nil
}
