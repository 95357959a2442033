package routine

import (
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/grid"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/logger"
)

// Session holds the routine file currently in use and the catalog built from it.
// Loading a new file replaces both at once; a failed load keeps the previous ones.
type Session struct {
	Path    string
	Grid    grid.Grid
	Catalog Catalog
}

// Load reads a routine file into the session.
func (s *Session) Load(path string, opts grid.Options) error {
	g, err := grid.Load(path, opts)
	if err != nil {
		logger.Warn("Routine file rejected", "path", path, "error", err)
		return err
	}
	s.Replace(path, g)
	return nil
}

// Replace installs an already parsed grid and rebuilds the catalog.
func (s *Session) Replace(path string, g grid.Grid) {
	s.Path = path
	s.Grid = g
	s.Catalog = ExtractCatalog(g)
	logger.Debug("Catalog rebuilt", "path", path, "tokens", s.Catalog.Len())
}

// Ready reports whether a routine file has been loaded.
func (s *Session) Ready() bool {
	return len(s.Grid) > 0
}

// Generate validates the selection against the loaded grid and assembles its
// routines.
func (s *Session) Generate(sel Selection) ([]Routine, error) {
	if err := sel.Validate(s.Grid); err != nil {
		return nil, err
	}
	return Assemble(s.Grid, sel), nil
}
