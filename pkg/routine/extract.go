package routine

import (
	"regexp"
	"strings"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/grid"
)

// NotAvailable stands in for a time the grid does not provide.
const NotAvailable = "N/A"

// Weekdays in routine order. The academic week starts on Saturday.
var Weekdays = []string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var parenGroupPattern = regexp.MustCompile(`\(([^)]+)\)`)

// DayIndex returns the position of day in Weekdays, or -1 if it is not a weekday name.
func DayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}

// ExtractSchedule walks the routine grid top to bottom and returns an entry for every
// cell of a requested course that the department can see, in grid order.
//
// The grid is laid out positionally:
//
//	Saturday                                  <- day header
//	        | 8:00-9:20   | 9:30-10:50  ...   <- theory time slots for the day
//	301     | CSE101.1 (ABC) | ...            <- room, then one class per slot
//	        | 2:00-4:30   | ...               <- lab time slots for the rows below
//	LAB-1   | CSE102.1 (XYZ) | ...
//
// courses are compared with whitespace removed.
func ExtractSchedule(g grid.Grid, courses []string, department string) []Entry {
	requested := make(map[string]bool, len(courses))
	for _, c := range courses {
		requested[Normalize(c)] = true
	}

	var (
		entries     []Entry
		currentDay  string
		theorySlots []string
		labSlots    []string
		inLab       bool
	)

	for i := 0; i < len(g); i++ {
		row := g[i]
		first := strings.TrimSpace(g.Cell(i, 0))

		if DayIndex(first) >= 0 {
			currentDay = first
			theorySlots = g.Row(i + 1)
			labSlots = nil
			inLab = false
			// The slot row is metadata. A header straight after a header is not.
			if DayIndex(strings.TrimSpace(g.Cell(i+1, 0))) < 0 {
				i++
			}
			continue
		}

		if currentDay == "" {
			continue
		}

		if first == "" {
			if strings.Contains(g.Cell(i, 1), ":") {
				labSlots = row
				inLab = true
			}
			continue
		}

		slots := theorySlots
		if inLab {
			slots = labSlots
		}

		for col := 1; col < len(row); col++ {
			text := row[col]
			if text == "" || !Visible(text, department) {
				continue
			}

			subject := strings.TrimSpace(leadingTokenPattern.FindString(text))
			if subject == "" || !requested[Normalize(subject)] {
				continue
			}

			entries = append(entries, Entry{
				Day:     currentDay,
				Time:    slotAt(slots, col),
				Room:    first,
				Faculty: extractFaculty(text),
				Subject: subject,
			})
		}
	}

	return entries
}

func slotAt(slots []string, col int) string {
	if col < len(slots) && slots[col] != "" {
		return slots[col]
	}
	return NotAvailable
}

// extractFaculty returns the first parenthesised group of a cell that is not the
// "(EEE)" marker, without its parentheses.
func extractFaculty(cellText string) string {
	for _, m := range parenGroupPattern.FindAllStringSubmatch(cellText, -1) {
		if strings.ToUpper(m[0]) != eeeMarker {
			return m[1]
		}
	}
	return ""
}
