// cmd/cmd_recover.go

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"go_tap_to_basic/internal/basic"
	"go_tap_to_basic/internal/blocks"
	"go_tap_to_basic/internal/export"
	"go_tap_to_basic/internal/pipeline"
	"go_tap_to_basic/internal/prg"
)

// runRecover is the block-structured recovery path: frame tape blocks in the
// decoded stream, select a copy stream, pick the header, assemble, detokenize.
func runRecover(cmd *cobra.Command, args []string) error {
	tapPath := args[0]
	fmt.Printf("Input TAP file: %s\n", tapPath)

	choice, ok := blocks.ParseSelection(useCopy)
	if !ok {
		return fmt.Errorf("invalid --use-copy value '%s' (must be A, B or auto)", useCopy)
	}

	capture, err := os.ReadFile(tapPath)
	if err != nil {
		return fmt.Errorf("error reading tap file '%s': %w", tapPath, err)
	}

	p := pipeline.New(cfg, logger)
	img, diag, err := p.RecoverBlocks(capture, choice)
	if diag != nil {
		printDecodeDiagnostics(diag)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Countdown blocks found (A/B/total): %d %d %d\n",
		diag.PrimaryBlocks, diag.DuplicateBlocks, len(diag.Blocks))
	fmt.Printf("Using copy: %s, blocks: %d\n", diag.UsedCopy, diag.UsedBlocks)
	fmt.Printf("Checksum matches in first %d used blocks: %d / %d\n",
		diag.ChecksumChecked, diag.ChecksumMatches, diag.ChecksumChecked)
	fmt.Printf("Selected header block index: %d, score: %d\n", diag.HeaderIndex, diag.HeaderScore)
	fmt.Printf("Header: type=$%02X start=$%04X end=$%04X len=%d name=%q\n",
		diag.Header.FileType, diag.Header.StartAddr, diag.Header.EndAddr,
		diag.Header.Length(), diag.Header.Filename())
	fmt.Printf("Assembled payload bytes: %d\n", len(img.Body))

	if reportPath != "" {
		if _, err := export.BlockReport(diag.Blocks, reportPath); err != nil {
			return err
		}
		fmt.Printf("Wrote: %s\n", reportPath)
	}
	if err := writeDecodedDump(diag); err != nil {
		return err
	}

	return writeArtifacts(tapPath, img)
}

// writeDecodedDump writes the raw decoded byte stream when requested.
func writeDecodedDump(diag *pipeline.Diagnostics) error {
	if decodedPath == "" {
		return nil
	}
	if err := os.WriteFile(decodedPath, diag.Decoded, 0644); err != nil {
		return fmt.Errorf("error writing decoded dump '%s': %w", decodedPath, err)
	}
	fmt.Printf("Wrote: %s\n", decodedPath)
	return nil
}

// writeArtifacts writes the program image and its listing next to the input,
// honoring explicit output path overrides.
func writeArtifacts(tapPath string, img prg.Image) error {
	base := tapPath[:len(tapPath)-len(filepath.Ext(tapPath))]
	outPRG := prgPath
	if outPRG == "" {
		outPRG = base + ".prg"
	}
	outBAS := basPath
	if outBAS == "" {
		outBAS = base + ".bas.txt"
	}

	if err := os.WriteFile(outPRG, img.Encode(), 0644); err != nil {
		return fmt.Errorf("error writing program image '%s': %w", outPRG, err)
	}
	fmt.Printf("Wrote: %s\n", outPRG)

	lines := basic.Listing(img, basic.Options{
		Traversal:   basic.TraverseTerminator,
		StartSkip:   startSkip,
		FoldShifted: foldShifted,
	})
	if err := os.WriteFile(outBAS, []byte(basic.Render(lines)), 0644); err != nil {
		return fmt.Errorf("error writing listing '%s': %w", outBAS, err)
	}
	fmt.Printf("Wrote: %s (%d lines)\n", outBAS, len(lines))
	return nil
}

// printDecodeDiagnostics reports the shared front-end numbers.
func printDecodeDiagnostics(diag *pipeline.Diagnostics) {
	fmt.Printf("Pulse count: %d\n", diag.PulseCount)
	fmt.Printf("Pulse centers (S/M/L): %.2f %.2f %.2f\n",
		diag.Centers[0], diag.Centers[1], diag.Centers[2])
	fmt.Printf("Decoded byte stream length: %d\n", diag.DecodedBytes)
}
