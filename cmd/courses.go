package cmd

import (
	"fmt"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the courses found in a routine file",
	Long:  `List every course and course-section that appears in the routine file, or the ones starting with --search.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		search, _ := cmd.Flags().GetString("search")
		basesOnly, _ := cmd.Flags().GetBool("base")

		session, err := requireSession(cmd, cfg)
		if err != nil {
			return err
		}

		var tokens []string
		switch {
		case search != "":
			tokens = session.Catalog.Suggest(search)
		case basesOnly:
			tokens = session.Catalog.Bases()
		default:
			tokens = session.Catalog.Sorted()
		}

		titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Padding(1, 0)
		fmt.Println(titleStyle.Render(fmt.Sprintf("Courses in %s", session.Path)))

		if len(tokens) == 0 {
			fmt.Println("No courses match.")
			return nil
		}
		for _, token := range tokens {
			fmt.Printf("• %s\n", token)
		}
		fmt.Println(laneStyle.Render(fmt.Sprintf("\n%d of %d entries", len(tokens), session.Catalog.Len())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	addFileFlags(coursesCmd)
	coursesCmd.Flags().String("search", "", "Only list courses starting with this text (case-insensitive)")
	coursesCmd.Flags().Bool("base", false, "Only list courses without a section")
}
