// internal/textscan/textscan.go

// package textscan extracts incidental readable text from a decoded byte
// stream. even when no program structure survives, fragments of strings
// (room descriptions, prompts, messages) usually do; dumping them is often
// the only way to salvage anything from a badly degraded capture.
package textscan

import (
	"regexp"
	"strings"
)

// candidate runs of letters/digits with common interior punctuation
var stringPattern = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9 \-_,.!?'"]+`)

// BestEffortASCII projects decoded bytes onto displayable text: newlines kept,
// shifted space mapped to space, printable ascii verbatim, everything else a
// NUL so it breaks candidate runs.
func BestEffortASCII(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		switch {
		case b == 10 || b == 13:
			sb.WriteByte('\n')
		case b == 0xA0:
			sb.WriteByte(' ')
		case b >= 32 && b <= 126:
			sb.WriteByte(b)
		default:
			sb.WriteByte(0)
		}
	}
	return sb.String()
}

// Extract pulls candidate strings of at least minLen characters out of the
// projected text, whitespace collapsed.
func Extract(text string, minLen int) []string {
	var out []string
	for _, m := range stringPattern.FindAllString(text, -1) {
		s := strings.Join(strings.Fields(m), " ")
		if len(s) >= minLen {
			out = append(out, s)
		}
	}
	return out
}

// Unique removes duplicates while preserving first-seen order.
func Unique(ss []string) []string {
	seen := make(map[string]struct{}, len(ss))
	var out []string
	for _, s := range ss {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
