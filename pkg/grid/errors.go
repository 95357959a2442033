package grid

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates the file extension is not a known routine export.
var ErrUnsupportedFormat = errors.New("unsupported routine file format")

// ErrEmptyGrid indicates the file parsed but contained no non-blank rows.
var ErrEmptyGrid = errors.New("routine file contains no rows")

// IngestionError reports a routine file that could not be read or parsed.
type IngestionError struct {
	Path string
	Err  error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("could not read routine file %q: %v", e.Path, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}
