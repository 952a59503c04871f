// cmd/cmd_scan.go

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go_tap_to_basic/internal/pipeline"
)

// runScan is the heuristic recovery path for captures whose block framing did
// not survive: score every offset of the raw decoded stream for a plausible
// tokenized program and take the best candidate.
func runScan(cmd *cobra.Command, args []string) error {
	tapPath := args[0]
	fmt.Printf("Input TAP file: %s\n", tapPath)

	capture, err := os.ReadFile(tapPath)
	if err != nil {
		return fmt.Errorf("error reading tap file '%s': %w", tapPath, err)
	}

	p := pipeline.New(cfg, logger)
	img, diag, err := p.RecoverScan(capture)
	if diag != nil {
		printDecodeDiagnostics(diag)
	}
	if err != nil {
		return err
	}

	cand := diag.Candidate
	fmt.Printf("Best BASIC candidate at decoded offset: %d\n", cand.Offset)
	fmt.Printf("Candidate load address: $%04X\n", cand.Load)
	fmt.Printf("Candidate line count: %d\n", cand.Lines)
	fmt.Printf("Candidate score: %d\n", cand.Score)

	if err := writeDecodedDump(diag); err != nil {
		return err
	}
	return writeArtifacts(tapPath, img)
}
