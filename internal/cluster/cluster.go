// internal/cluster/cluster.go

// package cluster classifies pulse durations into short/medium/long categories.
//
// tape speed, azimuth and capture hardware all shift the absolute pulse widths,
// so fixed ideal widths (the tapclean approach) fail on degraded captures.
// instead the three duration bands are found per capture with a small 1-d
// k-means over the plausible pulse range, and every pulse is then labelled by
// its nearest band center.
package cluster

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Category is the classification of a single pulse.
type Category int8

const (
	CatShort  Category = 0
	CatMedium Category = 1
	CatLong   Category = 2

	// CatUnknown marks pulses outside the clusterable range (tape noise,
	// silence, leader gaps). it poisons any bit pair containing it.
	CatUnknown Category = -1
)

// ErrNoPulses indicates that not a single pulse fell inside the clusterable
// range, so the duration bands cannot be derived. distinguishable from a
// format error: the capture parsed fine but carries no usable signal.
var ErrNoPulses = errors.New("no clusterable pulses found")

// Params holds the clustering tuning knobs. the defaults are the empirically
// tuned values; they are parameters rather than literals because their only
// validation is against real recovered captures.
type Params struct {
	MinPulse int     `yaml:"min_pulse"` // inclusive lower bound of clusterable durations
	MaxPulse int     `yaml:"max_pulse"` // inclusive upper bound
	Rounds   int     `yaml:"rounds"`    // maximum k-means iterations
	Epsilon  float64 `yaml:"epsilon"`   // early-stop threshold on center movement
}

// DefaultParams returns the tuned clustering parameters.
func DefaultParams() Params {
	return Params{
		MinPulse: 10,
		MaxPulse: 250,
		Rounds:   40,
		Epsilon:  1e-6,
	}
}

// Classify derives the three duration band centers from all in-range pulses
// and labels every pulse (including out-of-range ones, which map to
// CatUnknown). returned centers are sorted ascending: short < medium < long.
func Classify(pulses []int, p Params) ([]Category, [3]float64, error) {
	var centers [3]float64

	inRange := make([]int, 0, len(pulses))
	for _, v := range pulses {
		if v >= p.MinPulse && v <= p.MaxPulse {
			inRange = append(inRange, v)
		}
	}
	if len(inRange) == 0 {
		return nil, centers, fmt.Errorf("%w (%d..%d)", ErrNoPulses, p.MinPulse, p.MaxPulse)
	}

	centers = kmeans1D(inRange, p)

	cats := make([]Category, len(pulses))
	for i, v := range pulses {
		if v < p.MinPulse || v > p.MaxPulse {
			cats[i] = CatUnknown
			continue
		}
		cats[i] = nearest(centers, float64(v))
	}
	return cats, centers, nil
}

// kmeans1D runs a deterministic 3-center k-means over the values.
// seeding is by fractile position over the sorted values, which makes the
// result a pure function of the input multiset - re-ordered input converges
// to the same centers.
func kmeans1D(values []int, p Params) [3]float64 {
	const k = 3

	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	var centers [k]float64
	for i := 0; i < k; i++ {
		centers[i] = float64(sorted[(i+1)*len(sorted)/(k+1)])
	}

	for round := 0; round < p.Rounds; round++ {
		var sums [k]float64
		var counts [k]int
		for _, v := range values {
			j := nearest(centers, float64(v))
			sums[j] += float64(v)
			counts[j]++
		}

		var next [k]float64
		for i := 0; i < k; i++ {
			if counts[i] > 0 {
				next[i] = sums[i] / float64(counts[i])
			} else {
				next[i] = centers[i] // empty bucket keeps its previous center
			}
		}

		converged := true
		for i := 0; i < k; i++ {
			if math.Abs(next[i]-centers[i]) >= p.Epsilon {
				converged = false
			}
		}
		centers = next
		if converged {
			break
		}
	}

	// label by ascending duration: index 0=short, 1=medium, 2=long
	sort.Float64s(centers[:])
	return centers
}

// nearest returns the index of the closest center, ties broken by lowest index.
func nearest(centers [3]float64, v float64) Category {
	best := 0
	bestDist := math.Abs(v - centers[0])
	for i := 1; i < 3; i++ {
		d := math.Abs(v - centers[i])
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return Category(best)
}
