// internal/locate/score.go

// package locate finds tokenized basic programs in a raw decoded byte stream.
//
// when no tape blocks survive, the only structure left is basic's own line
// record chain: {next_pointer:u16, line_number:u16, body..., 0x00}. every
// byte offset is treated as a potential program start and scored; the best
// scoring candidate across the whole stream wins.
package locate

import (
	"bytes"
	"encoding/binary"
	"errors"

	"go_tap_to_basic/internal/constants"
)

// ScanParams holds the scan windows, score weights and penalty thresholds.
// empirically tuned magic numbers with no stated derivation - their only
// validation is against specific recovered captures, so they stay
// configurable instead of hard-coded.
type ScanParams struct {
	LoadMin int `yaml:"load_min"` // accepted load address window for raw-stream scan
	LoadMax int `yaml:"load_max"`

	LineWeight   int `yaml:"line_weight"`   // score per parsed line
	ClosenessMax int `yaml:"closeness_max"` // max bonus for load address near the canonical start
	ClosenessDiv int `yaml:"closeness_div"` // address distance per bonus point lost

	MaxLineNumber   int `yaml:"max_line_number"`  // lines above this abort the candidate
	MinLines        int `yaml:"min_lines"`        // candidates shorter than this are not valid
	DecreasePenalty int `yaml:"decrease_penalty"` // line numbers going backwards
	MismatchFar     int `yaml:"mismatch_far"`     // pointer/terminator disagreement considered gross
	MismatchFarCost int `yaml:"mismatch_far_cost"`
	MismatchDiv     int `yaml:"mismatch_div"`     // proportional cost divisor for small disagreements
	NonAdvanceCost  int `yaml:"non_advance_cost"` // next-pointers that fail to move forward
	PenaltyCap      int `yaml:"penalty_cap"`      // abandon a candidate past this

	MaxLinesPerScan int `yaml:"max_lines_per_scan"` // cap so one candidate cannot chew forever
	EOLWindow       int `yaml:"eol_window"`         // how far to look for a line terminator
	TailMargin      int `yaml:"tail_margin"`        // bytes at the stream tail never tried as starts

	Workers int `yaml:"workers"` // parallel scan shards; <=0 means one per cpu
}

// DefaultScanParams returns the tuned scan parameters.
func DefaultScanParams() ScanParams {
	return ScanParams{
		LoadMin:         0x0400,
		LoadMax:         0x4000,
		LineWeight:      50,
		ClosenessMax:    40,
		ClosenessDiv:    16,
		MaxLineNumber:   63999,
		MinLines:        3,
		DecreasePenalty: 10,
		MismatchFar:     64,
		MismatchFarCost: 25,
		MismatchDiv:     4,
		NonAdvanceCost:  15,
		PenaltyCap:      400,
		MaxLinesPerScan: 5000,
		EOLWindow:       512,
		TailMargin:      4096,
	}
}

// Candidate is one plausible program found in the stream.
type Candidate struct {
	Offset    int    // start of the candidate in the decoded stream
	EndOffset int    // one past the program terminator
	Load      uint16 // little-endian load address read at Offset
	Lines     int    // parsed line count
	Score     int
}

// ErrNoCandidate indicates a full scan found nothing plausible: the byte
// level decoding is too unreliable for structural recovery.
var ErrNoCandidate = errors.New("no plausible basic program found in decoded bytes")

// ScoreAt tries to parse a tokenized program starting at off and scores it.
// a pure function of (buf, off, p): it walks the line chain using the actual
// terminator positions (robust against corrupted pointers) while checking
// pointer self-consistency separately for scoring.
func ScoreAt(buf []byte, off int, p ScanParams) (Candidate, bool) {
	if off+10 >= len(buf) {
		return Candidate{}, false
	}

	load := int(binary.LittleEndian.Uint16(buf[off:]))
	if load < p.LoadMin || load > p.LoadMax {
		return Candidate{}, false
	}

	pos := off + 2
	lines := 0
	penalty := 0
	lastLineNum := -1
	lastNextPtr := load

	for n := 0; n < p.MaxLinesPerScan; n++ {
		if pos+4 >= len(buf) {
			break
		}

		nextPtr := int(binary.LittleEndian.Uint16(buf[pos:]))
		lineNum := int(binary.LittleEndian.Uint16(buf[pos+2:]))

		if nextPtr == 0 {
			// program terminator. only worth anything with a few real lines.
			if lines >= p.MinLines {
				closeness := p.ClosenessMax - absInt(load-constants.CanonicalBasicStart)/p.ClosenessDiv
				if closeness < 0 {
					closeness = 0
				}
				return Candidate{
					Offset:    off,
					EndOffset: pos + 4,
					Load:      uint16(load),
					Lines:     lines,
					Score:     lines*p.LineWeight + closeness - penalty,
				}, true
			}
			break
		}

		if lineNum > p.MaxLineNumber {
			break
		}
		if lines > 0 && lineNum < lastLineNum {
			penalty += p.DecreasePenalty // tolerate small glitches, but they cost
		}

		eol := findEOL(buf, pos+4, p.EOLWindow)
		if eol == -1 {
			break
		}

		// the pointer claims where the next line starts; the terminator shows
		// where it actually is. shifted decodes make these disagree.
		expectedNext := off + 2 + (nextPtr - load)
		actualNext := eol + 1
		mismatch := absInt(expectedNext - actualNext)
		if mismatch > p.MismatchFar {
			penalty += p.MismatchFarCost
		} else if mismatch > 0 {
			penalty += mismatch / p.MismatchDiv
		}

		if nextPtr <= lastNextPtr {
			penalty += p.NonAdvanceCost
		}

		lastLineNum = lineNum
		lastNextPtr = nextPtr
		pos = actualNext
		lines++

		if penalty > p.PenaltyCap {
			break
		}
	}

	return Candidate{}, false
}

// findEOL returns the absolute index of the next 0x00 within limit bytes of
// start, or -1.
func findEOL(buf []byte, start, limit int) int {
	end := start + limit
	if end > len(buf) {
		end = len(buf)
	}
	if start >= end {
		return -1
	}
	i := bytes.IndexByte(buf[start:end], 0)
	if i == -1 {
		return -1
	}
	return start + i
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
