// internal/blocks/header.go

package blocks

import (
	"bytes"
	"encoding/binary"

	"go_tap_to_basic/internal/constants"
	"go_tap_to_basic/internal/petscii"
)

// Header holds the metadata fields of a tape header block payload:
// file type, load/end addresses and the 16-byte PETSCII filename.
type Header struct {
	FileType  byte
	StartAddr uint16
	EndAddr   uint16
	RawName   []byte // 16 bytes, PETSCII, space padded
}

// ParseHeader reads the header fields from a 192-byte block payload.
// no validation happens here; see ScoreHeader for plausibility checks.
func ParseHeader(payload []byte) Header {
	return Header{
		FileType:  payload[constants.HeaderFileTypeOffset],
		StartAddr: binary.LittleEndian.Uint16(payload[constants.HeaderStartAddrOffset:]),
		EndAddr:   binary.LittleEndian.Uint16(payload[constants.HeaderEndAddrOffset:]),
		RawName:   payload[constants.HeaderFilenameOffset : constants.HeaderFilenameOffset+constants.HeaderFilenameLength],
	}
}

// Length returns the declared program length, end - start. the header
// invariant end > start means a sane header always yields a positive length;
// a corrupted one may not, which callers must treat as implausible.
func (h Header) Length() int {
	return int(h.EndAddr) - int(h.StartAddr)
}

// Filename converts the raw name field to readable text, trailing padding
// stripped.
func (h Header) Filename() string {
	return petscii.Filename(bytes.TrimRight(h.RawName, "\x20"))
}
