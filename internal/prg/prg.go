// internal/prg/prg.go

// package prg assembles and represents program images: a 16-bit load address
// followed by the program body bytes, the standard .prg layout.
package prg

import (
	"encoding/binary"
	"errors"
	"fmt"

	"go_tap_to_basic/internal/blocks"
	"go_tap_to_basic/internal/constants"
)

// Image is a loadable program: load address plus body.
type Image struct {
	LoadAddr uint16
	Body     []byte
}

// ErrImplausibleHeader indicates header fields whose declared length is
// non-positive or absurdly large. fatal for the recovery attempt - assembling
// against such a header would produce garbage of arbitrary size.
var ErrImplausibleHeader = errors.New("header looks wrong")

// Assemble concatenates the ordered payload chunks, truncates to the length
// the header declares, and prefixes the load address.
//
// shortfall reports how many declared bytes were missing from the tape; the
// caller proceeds with partial data and warns, rather than failing, because a
// truncated listing still beats no listing.
func Assemble(hdr blocks.Header, payloads [][]byte) (Image, int, error) {
	length := hdr.Length()
	if length <= 0 || length > constants.MaxDeclaredLength {
		return Image{}, 0, fmt.Errorf("%w: start=$%04X end=$%04X length=%d",
			ErrImplausibleHeader, hdr.StartAddr, hdr.EndAddr, length)
	}

	body := make([]byte, 0, length)
	for _, p := range payloads {
		if len(body) >= length {
			break
		}
		body = append(body, p...)
	}
	shortfall := 0
	if len(body) < length {
		shortfall = length - len(body)
	} else {
		body = body[:length]
	}

	return Image{LoadAddr: hdr.StartAddr, Body: body}, shortfall, nil
}

// Encode renders the image in .prg layout: little-endian load address then
// the body bytes.
func (im Image) Encode() []byte {
	out := make([]byte, 2+len(im.Body))
	binary.LittleEndian.PutUint16(out, im.LoadAddr)
	copy(out[2:], im.Body)
	return out
}

// Parse reads a .prg byte sequence back into an Image.
func Parse(data []byte) (Image, error) {
	if len(data) < 4 {
		return Image{}, fmt.Errorf("prg too small: %d bytes", len(data))
	}
	return Image{
		LoadAddr: binary.LittleEndian.Uint16(data),
		Body:     data[2:],
	}, nil
}
