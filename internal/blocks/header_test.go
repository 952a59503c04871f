package blocks

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_tap_to_basic/internal/constants"
)

func headerPayload(fileType byte, start, end uint16, name string) []byte {
	p := make([]byte, constants.PayloadLength)
	p[constants.HeaderFileTypeOffset] = fileType
	binary.LittleEndian.PutUint16(p[constants.HeaderStartAddrOffset:], start)
	binary.LittleEndian.PutUint16(p[constants.HeaderEndAddrOffset:], end)
	for i := 0; i < constants.HeaderFilenameLength; i++ {
		p[constants.HeaderFilenameOffset+i] = 0x20
	}
	copy(p[constants.HeaderFilenameOffset:], name)
	return p
}

func TestParseHeaderFields(t *testing.T) {
	h := ParseHeader(headerPayload(1, 0x1001, 0x1A00, "ADVENTURE"))

	assert.Equal(t, byte(1), h.FileType)
	assert.Equal(t, uint16(0x1001), h.StartAddr)
	assert.Equal(t, uint16(0x1A00), h.EndAddr)
	assert.Equal(t, 0x1A00-0x1001, h.Length())
	assert.Equal(t, "ADVENTURE", h.Filename())
}

func TestFilenameFoldsAliasedPetscii(t *testing.T) {
	raw := headerPayload(1, 0x1001, 0x1A00, "")
	// 0xC1.. are kernal 'same as' aliases of 0x61.., which print as ascii
	copy(raw[constants.HeaderFilenameOffset:], []byte{0xC1, 0xC2, 0xC3})
	h := ParseHeader(raw)
	assert.Equal(t, "abc", h.Filename())
}

func TestScoreHeaderCanonicalStart(t *testing.T) {
	p := DefaultHeaderScoreParams()
	h, score, ok := ScoreHeader(headerPayload(1, 0x1001, 0x1A00, "ADVENTURE"), p)
	require.True(t, ok)
	assert.Equal(t, uint16(0x1001), h.StartAddr)

	// window bonus + full proximity + 16 printable name bytes + size bonus
	length := 0x1A00 - 0x1001
	want := p.WindowBonus + p.ProximityMax + constants.HeaderFilenameLength + length/p.SizeBonusDiv
	assert.Equal(t, want, score)
}

func TestScoreHeaderRejections(t *testing.T) {
	p := DefaultHeaderScoreParams()

	_, _, ok := ScoreHeader(headerPayload(1, 0x0100, 0x1000, "X"), p)
	assert.False(t, ok, "start address below sanity window")

	_, _, ok = ScoreHeader(headerPayload(1, 0x9000, 0x9900, "X"), p)
	assert.False(t, ok, "start address above sanity window")

	_, _, ok = ScoreHeader(headerPayload(1, 0x1001, 0x1050, "X"), p)
	assert.False(t, ok, "declared program too small")

	_, _, ok = ScoreHeader(headerPayload(1, 0x1001, 0xA001, "X"), p)
	assert.False(t, ok, "declared program too large")

	_, _, ok = ScoreHeader(headerPayload(1, 0x1001, 0x1A00, ""), p)
	assert.False(t, ok, "all-padding filename is noise, not a header")
}

func TestScoreHeaderPrefersNearCanonicalStart(t *testing.T) {
	p := DefaultHeaderScoreParams()
	_, near, ok := ScoreHeader(headerPayload(1, 0x1001, 0x1A00, "GAME"), p)
	require.True(t, ok)
	_, far, ok := ScoreHeader(headerPayload(1, 0x3000, 0x39FF, "GAME"), p)
	require.True(t, ok)

	assert.Greater(t, near, far)
}

func TestBestHeaderPicksHighestScore(t *testing.T) {
	p := DefaultHeaderScoreParams()
	bs := []Block{
		{Payload: testPayload(0x00)}, // implausible
		{Payload: headerPayload(1, 0x3000, 0x3900, "FAR")},
		{Payload: headerPayload(1, 0x1001, 0x1A00, "CANONICAL")},
	}

	idx, hdr, score, ok := BestHeader(bs, p)
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "CANONICAL", hdr.Filename())
	assert.Positive(t, score)
}

func TestBestHeaderNonePlausible(t *testing.T) {
	bs := []Block{{Payload: testPayload(0x00)}, {Payload: testPayload(0x80)}}
	idx, _, _, ok := BestHeader(bs, DefaultHeaderScoreParams())
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}
