package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/config"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/logger"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/routine"
)

// File formats understood by WriteFiles.
const (
	FormatPDF = "pdf"
	FormatICS = "ics"
)

// Options controls what WriteFiles produces.
type Options struct {
	Dir      string
	Formats  []string // FormatPDF and/or FormatICS
	Term     string
	Calendar CalendarOptions
}

// WriteFiles writes every routine in every requested format into opts.Dir and
// returns the paths it created.
func WriteFiles(routines []routine.Routine, opts Options) ([]string, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	for _, format := range opts.Formats {
		if format != FormatPDF && format != FormatICS {
			return nil, fmt.Errorf("unknown export format %q", format)
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for _, r := range routines {
		for _, format := range opts.Formats {
			path := filepath.Join(dir, r.FileName("."+format))
			if err := writeFile(path, r, format, opts); err != nil {
				return written, err
			}
			logger.Info("Wrote routine", "path", path, "classes", len(r.Entries))
			written = append(written, path)
		}
	}
	return written, nil
}

func writeFile(path string, r routine.Routine, format string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatPDF:
		err = WritePDF(r, opts.Term, f)
	case FormatICS:
		err = GenerateICS(r, opts.Calendar, f)
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// FromConfig builds export options from the saved settings. An unset semester start
// means the calendar begins this week.
func FromConfig(cfg *config.AppConfig, formats []string) (Options, error) {
	loc, err := time.LoadLocation(cfg.Location())
	if err != nil {
		return Options{}, fmt.Errorf("invalid timezone %q: %w", cfg.Location(), err)
	}

	start := time.Now().In(loc)
	if cfg.SemesterStart != "" {
		start, err = time.ParseInLocation(config.DateLayout, cfg.SemesterStart, loc)
		if err != nil {
			return Options{}, fmt.Errorf("invalid semester start %q (expected YYYY-MM-DD): %w", cfg.SemesterStart, err)
		}
	}

	return Options{
		Dir:     cfg.OutputDir,
		Formats: formats,
		Term:    cfg.TermLabel(),
		Calendar: CalendarOptions{
			Start:    start,
			Weeks:    cfg.WeekCount(),
			Location: loc,
		},
	}, nil
}
