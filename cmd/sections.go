package cmd

import (
	"fmt"
	"strings"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/config"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/routine"

	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <course>",
	Short: "Show which sections of a course a department can take",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		department, _ := cmd.Flags().GetString("department")
		if department == "" {
			department = cfg.Department
		}
		department = strings.ToUpper(department)
		if !routine.IsDepartment(department) {
			return &routine.UnknownDepartmentError{Department: department}
		}

		session, err := requireSession(cmd, cfg)
		if err != nil {
			return err
		}

		base := routine.BaseOf(strings.ToUpper(strings.TrimSpace(args[0])))
		sections := routine.FindSections(session.Grid, base, department)
		if len(sections) == 0 {
			fmt.Printf("No sections of %s found for %s.\n", base, department)
			return nil
		}

		fmt.Printf("%s (%s): sections %s\n", base, department, strings.Join(sections, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	addFileFlags(sectionsCmd)
	sectionsCmd.Flags().StringP("department", "d", "", "Department (CSE or EEE); defaults to the saved one")
}
