// cmd/cmd_listing.go

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go_tap_to_basic/internal/basic"
	"go_tap_to_basic/internal/prg"
)

// runListing detokenizes an already-recovered program image file. useful for
// re-rendering with different traversal/skip settings without redecoding the
// whole capture.
func runListing(cmd *cobra.Command, args []string) error {
	prgFile := args[0]

	data, err := os.ReadFile(prgFile)
	if err != nil {
		return fmt.Errorf("error reading prg file '%s': %w", prgFile, err)
	}
	img, err := prg.Parse(data)
	if err != nil {
		return fmt.Errorf("prg file '%s': %w", prgFile, err)
	}

	traversal := basic.TraverseTerminator
	if usePointers {
		traversal = basic.TraversePointer
	}
	lines := basic.Listing(img, basic.Options{
		Traversal:   traversal,
		StartSkip:   startSkip,
		FoldShifted: foldShifted,
	})
	rendered := basic.Render(lines)

	if listingOut == "" {
		fmt.Print(rendered)
		return nil
	}
	if err := os.WriteFile(listingOut, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("error writing listing '%s': %w", listingOut, err)
	}
	fmt.Printf("Wrote: %s (%d lines)\n", listingOut, len(lines))
	return nil
}
