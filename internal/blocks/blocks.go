// internal/blocks/blocks.go

// package blocks parses the decoded byte stream into framed tape blocks.
//
// the kernal writes every block twice for resilience. each copy is announced
// by a 9-byte countdown preamble - $89..$81 for the first copy and $09..$01
// for the repeat - followed by a 192-byte payload and one xor checksum byte.
package blocks

import (
	"bytes"
	"errors"

	"go_tap_to_basic/internal/constants"
)

// Copy tags which countdown variant produced a block.
type Copy int8

const (
	CopyPrimary   Copy = iota // $89..$81 countdown (first write)
	CopyDuplicate             // $09..$01 countdown (repeat write)
)

func (c Copy) String() string {
	if c == CopyDuplicate {
		return "B"
	}
	return "A"
}

// Block is one framed tape block recovered from the decoded stream.
// Payload is always exactly 192 bytes; a countdown with too few trailing
// bytes never becomes a Block.
type Block struct {
	Offset   int    // payload start position in the decoded stream
	Payload  []byte // always constants.PayloadLength bytes
	Checksum byte   // checksum byte as read from tape
	Copy     Copy
}

// ChecksumOK reports whether the recorded checksum matches the payload.
// a mismatch does not invalidate the block - corruption is expected and is
// tallied as a quality metric instead.
func (b Block) ChecksumOK() bool {
	return XORChecksum(b.Payload) == b.Checksum
}

// XORChecksum computes the xor of all payload bytes.
func XORChecksum(payload []byte) byte {
	var x byte
	for _, v := range payload {
		x ^= v
	}
	return x
}

// ErrNoBlocks indicates a full scan of the decoded stream found no countdown
// preamble at all. the byte-level decode was too unreliable for structural
// recovery; callers may suggest re-capturing with different polarity.
var ErrNoBlocks = errors.New("no countdown blocks found in decoded byte stream")

// Find scans the decoded stream for countdown preambles and returns the
// blocks in stream order. matched regions are consumed whole (preamble +
// payload + checksum) and never overlap.
func Find(decoded []byte) []Block {
	var found []Block
	i := 0

	for i+constants.BlockLength <= len(decoded) {
		var copyTag Copy
		switch {
		case bytes.Equal(decoded[i:i+constants.CountdownLength], constants.CountdownPrimary[:]):
			copyTag = CopyPrimary
		case bytes.Equal(decoded[i:i+constants.CountdownLength], constants.CountdownDuplicate[:]):
			copyTag = CopyDuplicate
		default:
			i++
			continue
		}

		off := i + constants.CountdownLength
		found = append(found, Block{
			Offset:   off,
			Payload:  decoded[off : off+constants.PayloadLength],
			Checksum: decoded[off+constants.PayloadLength],
			Copy:     copyTag,
		})
		i = off + constants.PayloadLength + 1
	}

	return found
}

// Selection chooses which copy stream a recovery attempt uses.
type Selection int8

const (
	SelectAuto      Selection = iota // prefer primary blocks, fall back to duplicates
	SelectPrimary                    // primary-copy blocks only
	SelectDuplicate                  // duplicate-copy blocks only
)

// ParseSelection maps the user-facing copy choice (A/B/auto) to a Selection.
func ParseSelection(s string) (Selection, bool) {
	switch s {
	case "A", "a":
		return SelectPrimary, true
	case "B", "b":
		return SelectDuplicate, true
	case "auto", "AUTO", "":
		return SelectAuto, true
	}
	return SelectAuto, false
}

// Partition splits blocks by copy tag, preserving stream order.
func Partition(all []Block) (primary, duplicate []Block) {
	for _, b := range all {
		if b.Copy == CopyDuplicate {
			duplicate = append(duplicate, b)
		} else {
			primary = append(primary, b)
		}
	}
	return primary, duplicate
}

// Select applies the copy selection policy and returns the blocks to use.
func Select(all []Block, choice Selection) []Block {
	primary, duplicate := Partition(all)
	switch choice {
	case SelectPrimary:
		return primary
	case SelectDuplicate:
		return duplicate
	default:
		if len(primary) > 0 {
			return primary
		}
		return duplicate
	}
}

// CountChecksums tallies checksum matches over at most sample blocks,
// a bounded confidence signal surfaced to the caller.
func CountChecksums(bs []Block, sample int) (matches, checked int) {
	if sample > len(bs) {
		sample = len(bs)
	}
	for _, b := range bs[:sample] {
		if b.ChecksumOK() {
			matches++
		}
	}
	return matches, sample
}
