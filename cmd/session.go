package cmd

import (
	"errors"
	"fmt"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/config"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/grid"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/routine"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	laneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// addFileFlags registers the flags every command reading a routine file shares.
func addFileFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Routine file to read (.csv, .xlsx, .html); defaults to the last file used")
	cmd.Flags().String("sheet", "", "Worksheet to read from an .xlsx file (defaults to the first)")
}

// loadSession reads the routine file named by --file, falling back to the last file
// recorded in the config. A successful load is remembered for next time.
func loadSession(cmd *cobra.Command, cfg *config.AppConfig) (*routine.Session, error) {
	path, _ := cmd.Flags().GetString("file")
	sheet, _ := cmd.Flags().GetString("sheet")
	if path == "" {
		path = cfg.LastFile
	}

	session := &routine.Session{}
	if path == "" {
		return session, nil
	}

	var err error
	_ = spinner.New().
		Title(fmt.Sprintf("Reading %s...", path)).
		Action(func() {
			err = session.Load(path, grid.Options{Sheet: sheet})
		}).
		Run()

	if err != nil {
		return nil, err
	}

	if cfg.LastFile != path {
		cfg.LastFile = path
		if err := config.Save(cfg); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// requireSession is loadSession for commands that cannot do anything without a file.
func requireSession(cmd *cobra.Command, cfg *config.AppConfig) (*routine.Session, error) {
	session, err := loadSession(cmd, cfg)
	if err != nil {
		return nil, err
	}
	if !session.Ready() {
		return nil, errors.New(routine.MissingMessage(routine.InputRoutineFile))
	}
	return session, nil
}

// reportIncomplete prints one line per missing input and reports whether err was
// an incomplete selection.
func reportIncomplete(err error) bool {
	var incomplete *routine.IncompleteSelectionError
	if !errors.As(err, &incomplete) {
		return false
	}
	for _, msg := range incomplete.Messages() {
		fmt.Println(warnStyle.Render(msg))
	}
	return true
}
