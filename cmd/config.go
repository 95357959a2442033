package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/config"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/routine"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage routinegen configuration",
	Long:  "View or edit your local settings (department, semester, saved courses, term and calendar).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if !anyChanged(cmd, configFlags) {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI()
		}

		if cmd.Flags().Changed("department") {
			department, _ := cmd.Flags().GetString("department")
			department = strings.ToUpper(strings.TrimSpace(department))
			if !routine.IsDepartment(department) {
				return &routine.UnknownDepartmentError{Department: department}
			}
			cfg.Department = department
		}
		if cmd.Flags().Changed("semester") {
			cfg.Semester, _ = cmd.Flags().GetString("semester")
		}
		if cmd.Flags().Changed("course") {
			courses, _ := cmd.Flags().GetStringArray("course")
			for i, c := range courses {
				courses[i] = strings.ToUpper(c)
			}
			cfg.SavedCourses = routine.NewSelection("", "", courses...).Courses
		}
		if cmd.Flags().Changed("term") {
			cfg.Term, _ = cmd.Flags().GetString("term")
		}
		if cmd.Flags().Changed("start") {
			start, _ := cmd.Flags().GetString("start")
			if _, err := time.Parse(config.DateLayout, start); err != nil {
				return fmt.Errorf("invalid start date %q (expected YYYY-MM-DD): %w", start, err)
			}
			cfg.SemesterStart = start
		}
		if cmd.Flags().Changed("weeks") {
			weeks, _ := cmd.Flags().GetInt("weeks")
			if weeks <= 0 {
				return fmt.Errorf("weeks must be positive, got %d", weeks)
			}
			cfg.Weeks = weeks
		}
		if cmd.Flags().Changed("timezone") {
			tz, _ := cmd.Flags().GetString("timezone")
			if _, err := time.LoadLocation(tz); err != nil {
				return fmt.Errorf("unknown timezone %q: %w", tz, err)
			}
			cfg.Timezone = tz
		}
		if cmd.Flags().Changed("output-dir") {
			cfg.OutputDir, _ = cmd.Flags().GetString("output-dir")
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("✅ Configuration saved to %s\n", config.Path())
		return nil
	},
}

var configFlags = []string{"department", "semester", "course", "term", "start", "weeks", "timezone", "output-dir"}

func anyChanged(cmd *cobra.Command, names []string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("department", "d", "", "Default department (CSE or EEE)")
	configCmd.Flags().StringP("semester", "s", "", `Default semester, e.g. "3rd Semester"`)
	configCmd.Flags().StringArrayP("course", "c", nil, "Saved course; repeatable, replaces the saved list")
	configCmd.Flags().String("term", "", `Term printed in routine headers, e.g. "Summer 2025"`)
	configCmd.Flags().String("start", "", "First week of classes for calendar export (YYYY-MM-DD)")
	configCmd.Flags().Int("weeks", 0, "Number of teaching weeks in the calendar")
	configCmd.Flags().String("timezone", "", "IANA timezone for calendar events, e.g. Asia/Dhaka")
	configCmd.Flags().StringP("output-dir", "o", "", "Folder generated files are written to")
}
