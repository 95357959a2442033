package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/config"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/exporter"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/routine"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

const formatTable = "table"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate routines for the chosen courses",
	Long: `Generate one routine per section for every course given without a section
(e.g. CSE101), plus one custom routine collecting every course given with a section
(e.g. CSE101.2). Department, semester and courses default to the saved settings.`,
	Example: `  routinegen generate -f routine.csv -d CSE -s "3rd Semester" -c CSE101 -c MATH101.2
  routinegen generate --format pdf,ics -o ./routines`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		courses, _ := cmd.Flags().GetStringArray("course")
		department, _ := cmd.Flags().GetString("department")
		semester, _ := cmd.Flags().GetString("semester")
		outputDir, _ := cmd.Flags().GetString("output-dir")
		formats, _ := cmd.Flags().GetStringSlice("format")
		term, _ := cmd.Flags().GetString("term")

		courses = resolveCourses(courses, cfg.SavedCourses)
		if department == "" {
			department = cfg.Department
		}
		if semester == "" {
			semester = cfg.Semester
		}

		session, err := loadSession(cmd, cfg)
		if err != nil {
			return err
		}

		sel := routine.NewSelection(strings.ToUpper(department), semester, courses...)
		routines, err := session.Generate(sel)
		if reportIncomplete(err) {
			return errors.New("nothing generated")
		}
		if err != nil {
			return err
		}

		if len(routines) == 0 {
			fmt.Println(warnStyle.Render(routine.NoMatchMessage))
			return nil
		}

		opts, err := exporter.FromConfig(cfg, nil)
		if err != nil {
			return err
		}
		if outputDir != "" {
			opts.Dir = outputDir
		}
		if term != "" {
			opts.Term = term
		}

		for _, f := range formats {
			f = strings.ToLower(strings.TrimSpace(f))
			if f == formatTable {
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

		for _, path := range written {
			fmt.Println(successStyle.Render("✔ ") + path)
		}
		fmt.Printf("Successfully generated %d routine(s) in %d file(s)\n", len(routines), len(written))
		return nil
	},
}

// resolveCourses upper-cases the requested courses, falling back to the saved ones.
// The saved slice is never modified.
func resolveCourses(requested, saved []string) []string {
	if len(requested) == 0 {
		requested = saved
	}
	courses := slices.Clone(requested)
	for i, c := range courses {
		courses[i] = strings.ToUpper(strings.TrimSpace(c))
	}
	return courses
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addFileFlags(generateCmd)
	generateCmd.Flags().StringArrayP("course", "c", nil, "Course to include, e.g. CSE101 (all sections) or CSE101.2 (one section); repeatable")
	generateCmd.Flags().StringP("department", "d", "", "Department (CSE or EEE)")
	generateCmd.Flags().StringP("semester", "s", "", `Semester label, e.g. "3rd Semester"`)
	generateCmd.Flags().StringP("output-dir", "o", "", "Directory to write files into (defaults to the configured one, or the current directory)")
	generateCmd.Flags().StringSlice("format", []string{exporter.FormatPDF}, "Output formats: pdf, ics, table")
	generateCmd.Flags().String("term", "", `Term printed in the header, e.g. "Summer 2025"`)
}
