// internal/textscan/group.go

package textscan

import (
	"regexp"
	"strings"
)

// GlobalHeader labels text that precedes any recognized location header.
const GlobalHeader = "GLOBAL / SYSTEM TEXT"

// DefaultLocationPrefixes are the phrases that open a location description in
// the adventure-style programs these tapes tend to hold. heuristic, so they
// are configuration rather than constants.
func DefaultLocationPrefixes() []string {
	return []string{
		"YOU ARE ",
		"YOU HAVE ENTERED",
		"YOU ARE IN ",
	}
}

// Group is a location header and the text lines attributed to it.
type Group struct {
	Header string
	Lines  []string
}

var multiSpace = regexp.MustCompile(`\s+`)

// Clean lightly normalizes an extracted string: doubled quotes fixed,
// whitespace collapsed, a stray trailing quote after a full stop trimmed.
func Clean(s string) string {
	s = strings.ReplaceAll(s, `""`, `"`)
	s = strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
	if strings.HasSuffix(s, `."`) && !strings.HasSuffix(s, `..."`) {
		s = s[:len(s)-1]
	}
	return s
}

// GroupByLocation splits extracted strings into location groups. lines seen
// before the first header land in a single global group.
func GroupByLocation(lines []string, prefixes []string) []Group {
	if len(prefixes) == 0 {
		prefixes = DefaultLocationPrefixes()
	}

	isHeader := func(line string) bool {
		u := strings.ToUpper(line)
		for _, p := range prefixes {
			if strings.HasPrefix(u, p) {
				return true
			}
		}
		return false
	}

	var groups []Group
	var current *Group

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isHeader(line) {
			if current != nil {
				groups = append(groups, *current)
			}
			current = &Group{Header: line}
			continue
		}
		if current != nil {
			current.Lines = append(current.Lines, line)
			continue
		}
		// preamble text before any location header
		if len(groups) == 0 || groups[len(groups)-1].Header != GlobalHeader {
			groups = append(groups, Group{Header: GlobalHeader})
		}
		groups[len(groups)-1].Lines = append(groups[len(groups)-1].Lines, line)
	}
	if current != nil {
		groups = append(groups, *current)
	}
	return groups
}

// RenderGroups formats groups with indented member lines and a blank line
// between groups.
func RenderGroups(groups []Group) string {
	var sb strings.Builder
	for _, g := range groups {
		sb.WriteString(g.Header)
		sb.WriteByte('\n')
		for _, line := range g.Lines {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
