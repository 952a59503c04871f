// internal/tap/reader.go

// package tap reads CBM TAP tape capture files and expands them into pulse
// duration sequences. a pulse is one measured duration between flux
// transitions, in tap ticks; everything downstream works on these durations.
package tap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"go_tap_to_basic/internal/constants"
	"os"
)

var (
	// ErrNotTAP indicates the input lacks the C64-TAPE-RAW signature or is
	// shorter than the fixed container header. this is a format error: the
	// input is not a capture at all and no recovery attempt is possible.
	ErrNotTAP = errors.New("not a tap capture")

	// ErrUnsupportedVersion indicates a valid signature with a version byte
	// other than 1. v0 captures encode pauses without durations and cannot be
	// recovered with this pipeline.
	ErrUnsupportedVersion = errors.New("unsupported tap version")
)

// ReadPulses opens a .tap file and returns its ordered pulse durations.
func ReadPulses(filepath string) ([]int, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading tap file '%s': %w", filepath, err)
	}
	pulses, err := ParsePulses(data)
	if err != nil {
		return nil, fmt.Errorf("tap file '%s': %w", filepath, err)
	}
	return pulses, nil
}

// ParsePulses validates the capture container and decodes the pulse stream.
//
// each non-zero stream byte is one pulse whose duration equals the byte value.
// a zero byte introduces a 3-byte little-endian extended duration (leader
// tones, gaps) and consumes 4 bytes total. an extended record truncated by
// end-of-stream is dropped silently - the capture simply ends there.
func ParsePulses(data []byte) ([]int, error) {
	if len(data) < constants.TapHeaderSize {
		return nil, fmt.Errorf("%w: file too short (%d bytes found, %d required)", ErrNotTAP, len(data), constants.TapHeaderSize)
	}

	signature := data[:constants.TapSignatureLength]
	if !bytes.Equal(signature, []byte(constants.TapSignature)) {
		return nil, fmt.Errorf("%w: incorrect signature (expected '%s', got '%s')", ErrNotTAP, constants.TapSignature, string(signature))
	}

	version := data[constants.TapVersionOffset]
	if version != constants.TapRequiredVersion {
		return nil, fmt.Errorf("%w: version %d (only version %d supported)", ErrUnsupportedVersion, version, constants.TapRequiredVersion)
	}

	// declared data size = number of stream bytes after the 20-byte header.
	// degraded captures sometimes declare more than the file holds; use the
	// smaller of the two rather than rejecting what is there.
	declared := int(binary.LittleEndian.Uint32(data[constants.TapDataLengthOffset : constants.TapDataLengthOffset+4]))
	stream := data[constants.TapHeaderSize:]
	if declared < len(stream) {
		stream = stream[:declared]
	}

	pulses := make([]int, 0, len(stream))
	i := 0
	for i < len(stream) {
		x := stream[i]
		if x != 0 {
			pulses = append(pulses, int(x))
			i++
			continue
		}
		// zero marker: 24-bit extended duration follows
		if i+3 >= len(stream) {
			break // truncated extended record at end-of-stream
		}
		v := int(stream[i+1]) | int(stream[i+2])<<8 | int(stream[i+3])<<16
		pulses = append(pulses, v)
		i += 4
	}

	return pulses, nil
}
