// internal/demod/demod.go

// package demod turns pulse category sequences into a byte stream.
//
// the cbm tape encoding writes each bit as a pulse pair: (medium,short) is a
// 1 bit and (short,medium) is a 0 bit. every byte is preceded by a marker
// pulse pair starting with a long pulse. this decoder is deliberately lossy:
// a candidate byte that fails its pair grammar is abandoned and the scan
// resumes one pulse later, so misaligned or corrupted regions are skipped
// instead of failing the whole decode.
package demod

import (
	"go_tap_to_basic/internal/cluster"
)

const (
	bitsPerByte = 8

	// minimum symbols that must remain past the scan position before a byte
	// candidate is attempted: marker pair plus eight bit pairs, with slack so
	// the tail of the capture never produces a partial byte.
	tailMargin = 60
)

// Decode scans the category stream and returns every byte it can demodulate.
//
// the output has no positional correlation back to the pulses: gaps, garbage
// and shifted alignment are all possible. downstream consumers treat it as an
// opaque candidate stream.
func Decode(cats []cluster.Category) []byte {
	out := make([]byte, 0, len(cats)/18)
	i := 0
	n := len(cats)

	for i < n-tailMargin {
		// byte marker: a long pulse followed by a short or medium pulse
		if cats[i] == cluster.CatLong && (cats[i+1] == cluster.CatShort || cats[i+1] == cluster.CatMedium) {
			if val, next, ok := readByte(cats, i+2); ok {
				out = append(out, val)
				i = next
				continue
			}
		}
		i++
	}

	return out
}

// readByte reads eight strict bit pairs starting at pos and assembles them
// lsb-first. returns the byte, the position after the consumed pairs, and
// whether the grammar held. any unknown category or invalid pair invalidates
// the whole candidate.
func readByte(cats []cluster.Category, pos int) (byte, int, bool) {
	var val byte
	j := pos
	for bit := 0; bit < bitsPerByte; bit++ {
		a, b := cats[j], cats[j+1]
		switch {
		case a == cluster.CatMedium && b == cluster.CatShort:
			val |= 1 << bit
		case a == cluster.CatShort && b == cluster.CatMedium:
			// 0 bit
		default:
			return 0, 0, false
		}
		j += 2
	}
	return val, j, true
}
