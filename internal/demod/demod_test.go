package demod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_tap_to_basic/internal/cluster"
)

// catsForByte encodes one byte as its category symbols: a long/short byte
// marker followed by eight lsb-first bit pairs.
func catsForByte(b byte) []cluster.Category {
	out := []cluster.Category{cluster.CatLong, cluster.CatShort}
	for bit := 0; bit < 8; bit++ {
		if b&(1<<bit) != 0 {
			out = append(out, cluster.CatMedium, cluster.CatShort)
		} else {
			out = append(out, cluster.CatShort, cluster.CatMedium)
		}
	}
	return out
}

// pad keeps the scan loop alive past the last real byte
func pad(cats []cluster.Category) []cluster.Category {
	for i := 0; i < 64; i++ {
		cats = append(cats, cluster.CatUnknown)
	}
	return cats
}

func TestDecodeRoundTrip(t *testing.T) {
	want := []byte{0x89, 0x41, 0xFF, 0x00, 0x99}
	var cats []cluster.Category
	for _, b := range want {
		cats = append(cats, catsForByte(b)...)
	}

	got := Decode(pad(cats))
	require.Equal(t, want, got, "well-formed category stream must round-trip exactly")
}

func TestDecodeSkipsCorruptedCandidate(t *testing.T) {
	// a sync marker followed by an illegal (short,short) pair: the candidate
	// is abandoned and scanning resumes, finding the valid byte further on.
	cats := []cluster.Category{
		cluster.CatLong, cluster.CatShort,
		cluster.CatShort, cluster.CatShort,
	}
	cats = append(cats, catsForByte(0x42)...)

	got := Decode(pad(cats))
	assert.Equal(t, []byte{0x42}, got)
}

func TestDecodeUnknownPoisonsPair(t *testing.T) {
	cats := catsForByte(0x42)
	cats[5] = cluster.CatUnknown // inside the second bit pair

	got := Decode(pad(cats))
	assert.Empty(t, got, "a pair containing an unknown category invalidates the byte")
}

func TestDecodeEmptyAndShortStreams(t *testing.T) {
	assert.Empty(t, Decode(nil))
	assert.Empty(t, Decode(catsForByte(0x42)), "a stream shorter than the tail margin yields nothing")
}
