// internal/blocks/score.go

package blocks

import "go_tap_to_basic/internal/constants"

// HeaderScoreParams holds the header plausibility windows and score weights.
// these are empirically tuned against real recovered captures, which is why
// they live in a config struct rather than as literals.
type HeaderScoreParams struct {
	MinStart  int `yaml:"min_start"`  // broad sanity window for the start address
	MaxStart  int `yaml:"max_start"`
	MinLength int `yaml:"min_length"` // a basic program is likely >= 0.5K
	MaxLength int `yaml:"max_length"` // and <= 32K

	WindowLo    int `yaml:"window_lo"`    // canonical basic start window
	WindowHi    int `yaml:"window_hi"`
	WindowBonus int `yaml:"window_bonus"` // flat bonus for being in the window
	ProximityMax int `yaml:"proximity_max"` // max extra bonus for closeness to the canonical start
	ProximityDiv int `yaml:"proximity_div"` // address distance per bonus point lost

	SizeBonusMax int `yaml:"size_bonus_max"` // cap on the program-size reward
	SizeBonusDiv int `yaml:"size_bonus_div"` // payload bytes per size bonus point
}

// DefaultHeaderScoreParams returns the tuned header scoring parameters.
func DefaultHeaderScoreParams() HeaderScoreParams {
	return HeaderScoreParams{
		MinStart:     0x0200,
		MaxStart:     0x8000,
		MinLength:    512,
		MaxLength:    32768,
		WindowLo:     0x0F00,
		WindowHi:     0x2000,
		WindowBonus:  20,
		ProximityMax: 20,
		ProximityDiv: 32,
		SizeBonusMax: 40,
		SizeBonusDiv: 512,
	}
}

// ScoreHeader decides heuristically whether a block payload looks like a real
// header block and scores it. rewards: start address near the canonical basic
// start, mostly-printable filename bytes, and larger declared programs.
// returns ok=false when the addresses or length fall outside the broad sanity
// bounds or the filename field is all padding.
func ScoreHeader(payload []byte, p HeaderScoreParams) (Header, int, bool) {
	h := ParseHeader(payload)
	length := h.Length()

	if int(h.StartAddr) < p.MinStart || int(h.StartAddr) > p.MaxStart {
		return h, 0, false
	}
	if length < p.MinLength || length > p.MaxLength {
		return h, 0, false
	}

	// filename should be mostly printable-ish; all-padding names are noise
	printable, nonspace := 0, 0
	for _, c := range h.RawName {
		if c != 0x20 {
			nonspace++
		}
		switch {
		case c >= 0x20 && c <= 0x5A, c >= 0x61 && c <= 0x7A,
			c == 0x2D, c == 0x2E, c == 0x5F:
			printable++
		}
	}
	if nonspace == 0 {
		return h, 0, false
	}

	score := 0
	if int(h.StartAddr) >= p.WindowLo && int(h.StartAddr) <= p.WindowHi {
		score += p.WindowBonus
		prox := p.ProximityMax - absInt(int(h.StartAddr)-constants.CanonicalBasicStart)/p.ProximityDiv
		if prox > 0 {
			score += prox
		}
	}
	score += printable
	if sz := length / p.SizeBonusDiv; sz < p.SizeBonusMax {
		score += sz
	} else {
		score += p.SizeBonusMax
	}

	return h, score, true
}

// BestHeader scans all candidate blocks for the best-looking header.
// returns the block index, its parsed header and score. ok=false means no
// payload passed the plausibility checks.
func BestHeader(bs []Block, p HeaderScoreParams) (index int, hdr Header, score int, ok bool) {
	index = -1
	for i, b := range bs {
		h, s, plausible := ScoreHeader(b.Payload, p)
		if !plausible {
			continue
		}
		if !ok || s > score {
			index, hdr, score, ok = i, h, s, true
		}
	}
	return index, hdr, score, ok
}

// abs for ints; math.Abs only covers float64.
func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
