package routine

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// spaceClass matches ASCII whitespace and Unicode spaces such as NBSP, which
// spreadsheet exports often put between prefix and number.
const spaceClass = `[\s\p{Zs}]`

var (
	// A course with its section anywhere in a cell, e.g. "CSE 101.2".
	sectionTokenPattern = regexp.MustCompile(`[A-Z]{2,4}` + spaceClass + `*\d{3,4}\.\d+`)
	// The course a cell starts with; the section is optional.
	leadingTokenPattern = regexp.MustCompile(`^[A-Z]{2,4}` + spaceClass + `*\d{3,4}(?:\.\d+)?`)
	prefixPattern       = regexp.MustCompile(`^[A-Z]{2,4}`)
	tokenPartsPattern   = regexp.MustCompile(`^([A-Z]{2,4}` + spaceClass + `*\d{3,4})\.?(\d+)?`)
)

// Normalize strips every whitespace character from a course token, so that
// "CSE 101.1" and "CSE101.1" compare equal.
func Normalize(token string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, token)
}

// IsSpecific reports whether the token names a section ("CSE101.1") rather than
// only a course ("CSE101").
func IsSpecific(token string) bool {
	return strings.Contains(token, ".")
}

// BaseOf returns the token without its section suffix.
func BaseOf(token string) string {
	base, _, _ := strings.Cut(token, ".")
	return base
}

// SectionOf returns the section of a specific token, or "" for a base token.
func SectionOf(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// coursePrefix returns the leading department letters of text, e.g. "MATH" for
// "MATH 101.2 (ABC)".
func coursePrefix(text string) string {
	return prefixPattern.FindString(text)
}

// compareTokens orders tokens by base course, then by numeric section, with the base
// token ahead of its sections.
func compareTokens(a, b string) int {
	ma := tokenPartsPattern.FindStringSubmatch(a)
	mb := tokenPartsPattern.FindStringSubmatch(b)
	if ma == nil || mb == nil {
		return strings.Compare(a, b)
	}
	if ma[1] != mb[1] {
		return strings.Compare(ma[1], mb[1])
	}
	sa, _ := strconv.Atoi(ma[2])
	sb, _ := strconv.Atoi(mb[2])
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return strings.Compare(a, b)
}
