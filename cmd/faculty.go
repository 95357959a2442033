package cmd

import (
	"fmt"
	"strings"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/routine"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var facultyCmd = &cobra.Command{
	Use:   "faculty [initials...]",
	Short: "Look up faculty names by initials",
	Long:  `Print the full names behind faculty initials, or the whole directory when none are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows [][]string
		if len(args) == 0 {
			for _, f := range routine.FacultyDirectory() {
				rows = append(rows, []string{f.Initials, f.Name})
			}
		} else {
			for _, query := range args {
				if f, ok := routine.LookupFaculty(query); ok {
					rows = append(rows, []string{f.Initials, f.Name})
					continue
				}
				rows = append(rows, []string{strings.TrimSpace(query), routine.NotAvailable})
			}
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(laneStyle).
			Headers("INITIALS", "NAME").
			Rows(rows...)

		fmt.Println(t)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(facultyCmd)
}
