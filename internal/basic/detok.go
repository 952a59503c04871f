// internal/basic/detok.go

// package basic reconstructs readable source listings from tokenized BASIC V2
// program images.
package basic

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"go_tap_to_basic/internal/petscii"
	"go_tap_to_basic/internal/prg"
)

// Traversal selects how the line chain is walked.
type Traversal int8

const (
	// TraverseTerminator advances to the byte after each observed 0x00 line
	// terminator. robust against corrupted next-pointers; the default.
	TraverseTerminator Traversal = iota

	// TraversePointer computes the next offset from next_pointer minus the
	// load address. a non-increasing or out-of-range result ends the program
	// (prevents infinite loops on corrupted pointers).
	TraversePointer
)

// Options tunes a detokenizing pass.
type Options struct {
	Traversal   Traversal
	StartSkip   int  // leading body bytes to skip, compensating known capture artifacts
	FoldShifted bool // apply the extended petscii folding (shifted letters, cursor codes)
	MaxLines    int  // hard cap on emitted lines; <=0 uses a generous default
}

const defaultMaxLines = 20000

// Line is one reconstructed source line. order is traversal order, which on
// corrupted listings is not necessarily ascending numeric order - it is
// preserved, never sorted.
type Line struct {
	Number uint16
	Text   string
}

// Listing walks the program image's line records and detokenizes each one.
func Listing(im prg.Image, opt Options) []Line {
	maxLines := opt.MaxLines
	if maxLines <= 0 {
		maxLines = defaultMaxLines
	}

	mem := im.Body
	off := opt.StartSkip
	var out []Line

	for n := 0; n < maxLines; n++ {
		if off < 0 || off+4 > len(mem) {
			break
		}
		nextPtr := binary.LittleEndian.Uint16(mem[off:])
		lineNum := binary.LittleEndian.Uint16(mem[off+2:])
		if nextPtr == 0 {
			break // end of program
		}

		eol := bytes.IndexByte(mem[off+4:], 0)
		if eol == -1 {
			break
		}
		eol += off + 4

		out = append(out, Line{
			Number: lineNum,
			Text:   DetokenizeLine(mem[off+4:eol], opt.FoldShifted),
		})

		switch opt.Traversal {
		case TraversePointer:
			// pointers are absolute memory addresses; rebase onto the body
			next := int(nextPtr) - int(im.LoadAddr)
			if next <= off || next > len(mem) {
				return out
			}
			off = next
		default:
			off = eol + 1
		}
	}

	return out
}

// DetokenizeLine reconstructs the source text of one line body (the bytes
// between the line number and the 0x00 terminator).
//
// a two-state machine: quote bytes toggle between code and in-string, scoped
// strictly to this line. in code, bytes >= 0x80 substitute their keyword
// text; inside a string the same bytes are PETSCII and pass through the text
// mapping instead. consecutive whitespace collapses to single spaces - a
// cosmetic normalization, original spacing inside strings is best-effort.
func DetokenizeLine(body []byte, fold bool) string {
	var sb strings.Builder
	inQuotes := false

	for i := 0; i < len(body); i++ {
		b := body[i]
		if b == 0x00 {
			break
		}
		if b == 0x22 { // quote, always emitted literally
			inQuotes = !inQuotes
			sb.WriteByte('"')
			continue
		}
		if !inQuotes && b >= 0x80 {
			if tok, ok := Tokens[b]; ok {
				sb.WriteString(tok)
			} else {
				fmt.Fprintf(&sb, "{%02X}", b) // unknown high byte, keep it visible
			}
			continue
		}
		if fold {
			sb.WriteString(petscii.Text(b))
		} else {
			sb.WriteByte(petscii.Printable(b))
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

// Render formats lines as "number text", one per line, newline terminated.
// the final trailing newline is always present, even for an empty listing.
func Render(lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&sb, "%d %s\n", l.Number, l.Text)
	}
	if sb.Len() == 0 {
		return "\n"
	}
	return sb.String()
}
