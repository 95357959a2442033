package routine

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/grid"
)

// FindSections returns the sections of base that the department can see, sorted
// numerically ("2" before "10").
//
// A cell only counts when it starts with base exactly as given; whitespace inside
// base is matched loosely only when reading the section number that follows it.
func FindSections(g grid.Grid, base, department string) []string {
	if strings.TrimSpace(base) == "" {
		return nil
	}
	pattern := sectionPattern(base)

	seen := make(map[string]bool)
	for _, row := range g {
		for _, cell := range row {
			if cell == "" || !strings.HasPrefix(cell, base) {
				continue
			}
			if !Visible(cell, department) {
				continue
			}
			if m := pattern.FindStringSubmatch(cell); m != nil {
				seen[m[1]] = true
			}
		}
	}

	sections := make([]string, 0, len(seen))
	for section := range seen {
		sections = append(sections, section)
	}
	sortNumeric(sections)
	return sections
}

// sectionPattern matches base at the start of a cell followed by ".<section>".
// Each whitespace character of base matches any run of whitespace.
func sectionPattern(base string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range base {
		if unicode.IsSpace(r) {
			b.WriteString(spaceClass + `*`)
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	b.WriteString(`\.(\d+)`)
	return regexp.MustCompile(b.String())
}

func sortNumeric(values []string) {
	slices.SortFunc(values, func(a, b string) int {
		na, _ := strconv.Atoi(a)
		nb, _ := strconv.Atoi(b)
		if na != nb {
			return na - nb
		}
		return strings.Compare(a, b)
	})
}
