package cmd

import (
	"fmt"
	"os"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/logger"

	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "routinegen",
	Short: "A CLI and TUI for building class routines",
	Long: `routinegen reads a university's master class-routine spreadsheet (CSV, XLSX or HTML)
and turns the courses you pick into per-section routines, exported as PDF or ICS.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, err := logger.DefaultDir()
		if err != nil {
			return err
		}
		return logger.Init(logger.Config{Debug: debug, Dir: dir})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debug output to stderr as well as the log file")
}
