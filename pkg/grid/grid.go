package grid

import "strings"

// Grid is a class routine table as exported from the spreadsheet: ordered rows of
// text cells. Rows may be ragged.
type Grid [][]string

// Cell returns the text at row r, column c, or "" when the position does not exist.
func (g Grid) Cell(r, c int) string {
	if r < 0 || r >= len(g) {
		return ""
	}
	row := g[r]
	if c < 0 || c >= len(row) {
		return ""
	}
	return row[c]
}

// Row returns row r, or nil when it does not exist.
func (g Grid) Row(r int) []string {
	if r < 0 || r >= len(g) {
		return nil
	}
	return g[r]
}

// CellCount returns the number of non-blank cells in the grid.
func (g Grid) CellCount() int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				n++
			}
		}
	}
	return n
}

// DropBlankRows keeps only the rows that contain at least one non-blank cell.
func DropBlankRows(rows [][]string) Grid {
	result := make(Grid, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		result = append(result, row)
	}
	return result
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
