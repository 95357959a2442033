package grid

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/logger"
)

// Options tunes how a routine file is read.
type Options struct {
	// Sheet selects the worksheet of an .xlsx workbook. Empty means the first one.
	Sheet string
}

// Load reads a routine file, choosing the reader from the file extension.
// Files without a known extension are read as CSV. Every failure is returned as an
// *IngestionError.
func Load(path string, opts Options) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IngestionError{Path: path, Err: err}
	}
	defer f.Close()

	g, err := Read(f, filepath.Ext(path), opts)
	if err != nil {
		return nil, &IngestionError{Path: path, Err: err}
	}

	logger.Info("Loaded routine file", "path", path, "rows", len(g), "cells", g.CellCount())
	return g, nil
}

// Read parses a routine from r. ext is a file extension such as ".csv" and decides
// the reader; an empty extension means CSV.
func Read(r io.Reader, ext string, opts Options) (Grid, error) {
	var (
		g   Grid
		err error
	)

	switch strings.ToLower(ext) {
	case "", ".csv", ".txt":
		g, err = ReadCSV(r)
	case ".xlsx", ".xlsm":
		g, err = ReadXLSX(r, opts.Sheet)
	case ".html", ".htm":
		g, err = ReadHTML(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	if len(g) == 0 {
		return nil, ErrEmptyGrid
	}
	return g, nil
}
