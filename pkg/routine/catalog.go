package routine

import (
	"slices"
	"strings"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/grid"
)

// Catalog is the set of course tokens found in a routine grid. It holds each course
// with its section ("CSE101.1") as well as the bare course ("CSE101").
type Catalog map[string]struct{}

// ExtractCatalog scans every cell for course-with-section tokens and records each
// token together with its base course.
func ExtractCatalog(g grid.Grid) Catalog {
	catalog := make(Catalog)
	for _, row := range g {
		for _, cell := range row {
			for _, match := range sectionTokenPattern.FindAllString(cell, -1) {
				token := strings.TrimSpace(match)
				catalog[token] = struct{}{}
				catalog[BaseOf(token)] = struct{}{}
			}
		}
	}
	return catalog
}

// Has reports whether the token was found in the grid.
func (c Catalog) Has(token string) bool {
	_, ok := c[token]
	return ok
}

// Len returns the number of tokens in the catalog.
func (c Catalog) Len() int {
	return len(c)
}

// Sorted returns every token, ordered by course and then numerically by section.
func (c Catalog) Sorted() []string {
	tokens := make([]string, 0, len(c))
	for token := range c {
		tokens = append(tokens, token)
	}
	slices.SortFunc(tokens, compareTokens)
	return tokens
}

// Bases returns the courses without sections, sorted.
func (c Catalog) Bases() []string {
	var bases []string
	for _, token := range c.Sorted() {
		if !IsSpecific(token) {
			bases = append(bases, token)
		}
	}
	return bases
}

// Suggest returns the tokens starting with query, ignoring case, in Sorted order.
// An empty query suggests nothing.
func (c Catalog) Suggest(query string) []string {
	query = strings.ToUpper(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var suggestions []string
	for _, token := range c.Sorted() {
		if strings.HasPrefix(strings.ToUpper(token), query) {
			suggestions = append(suggestions, token)
		}
	}
	return suggestions
}
