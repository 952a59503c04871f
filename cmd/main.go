// cmd/main.go

// command go_tap_to_basic recovers tokenized BASIC programs from degraded cbm
// tap (digitized tape) captures: structural block recovery, heuristic program
// scanning, incidental string extraction, and detokenizing of program images.
package main

import (
	"errors"
	"fmt"
	"os"

	"go_tap_to_basic/internal/blocks"
	"go_tap_to_basic/internal/cluster"
	"go_tap_to_basic/internal/locate"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// the two decode-exhaustion cases are worth a capture-quality hint:
		// the container was fine, the signal was not.
		if errors.Is(err, cluster.ErrNoPulses) ||
			errors.Is(err, blocks.ErrNoBlocks) ||
			errors.Is(err, locate.ErrNoCandidate) {
			fmt.Fprintln(os.Stderr, "hint: the capture parsed but held no usable structure; try re-capturing with inverted polarity")
		}
		os.Exit(1)
	}
}
