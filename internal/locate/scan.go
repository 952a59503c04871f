// internal/locate/scan.go

package locate

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FindBest scores every byte offset and returns the highest-scoring
// candidate, or ErrNoCandidate after a full scan.
//
// the per-offset evaluator is stateless, so the offset range is sharded
// across workers as a parallel map with a final reduce. the reduction is a
// total order - strictly greater score wins, ties keep the lowest offset -
// which makes the result deterministic regardless of scheduling.
func FindBest(buf []byte, p ScanParams) (Candidate, error) {
	limit := len(buf) - p.TailMargin
	if limit <= 0 {
		return Candidate{}, fmt.Errorf("%w: decoded stream too short to scan (%d bytes)", ErrNoCandidate, len(buf))
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > limit {
		workers = limit
	}

	type shardBest struct {
		cand  Candidate
		found bool
	}
	bests := make([]shardBest, workers)

	var g errgroup.Group
	shardLen := (limit + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * shardLen
		hi := lo + shardLen
		if hi > limit {
			hi = limit
		}
		if lo >= hi {
			continue
		}
		best := &bests[w]
		g.Go(func() error {
			// ascending scan inside the shard keeps the first offset on ties
			for off := lo; off < hi; off++ {
				c, ok := ScoreAt(buf, off, p)
				if ok && (!best.found || c.Score > best.cand.Score) {
					best.cand = c
					best.found = true
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Candidate{}, err
	}

	var winner Candidate
	found := false
	for _, b := range bests { // shards are ordered by offset, so first-found wins ties
		if b.found && (!found || b.cand.Score > winner.Score) {
			winner = b.cand
			found = true
		}
	}
	if !found {
		return Candidate{}, ErrNoCandidate
	}
	return winner, nil
}
