// cmd/cmd_strings.go

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"go_tap_to_basic/internal/pipeline"
	"go_tap_to_basic/internal/textscan"
)

// runStrings dumps incidental readable text from the decoded stream - the
// salvage path when neither block framing nor program structure survives.
func runStrings(cmd *cobra.Command, args []string) error {
	tapPath := args[0]

	capture, err := os.ReadFile(tapPath)
	if err != nil {
		return fmt.Errorf("error reading tap file '%s': %w", tapPath, err)
	}

	p := pipeline.New(cfg, logger)
	found, diag, err := p.ExtractStrings(capture, minLen)
	if diag != nil {
		printDecodeDiagnostics(diag)
	}
	if err != nil {
		return err
	}

	base := tapPath[:len(tapPath)-len(filepath.Ext(tapPath))]
	out := stringsOut
	if out == "" {
		out = base + ".strings.txt"
	}
	if err := os.WriteFile(out, []byte(strings.Join(found, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("error writing strings file '%s': %w", out, err)
	}
	fmt.Printf("Strings written: %d\n", len(found))
	fmt.Printf("Wrote: %s\n", out)

	if groupOut {
		cleaned := make([]string, 0, len(found))
		for _, s := range found {
			cleaned = append(cleaned, textscan.Clean(s))
		}
		groups := textscan.GroupByLocation(cleaned, cfg.Strings.LocationPrefixes)
		groupedPath := base + ".grouped.txt"
		if err := os.WriteFile(groupedPath, []byte(textscan.RenderGroups(groups)), 0644); err != nil {
			return fmt.Errorf("error writing grouped file '%s': %w", groupedPath, err)
		}
		fmt.Printf("Groups written: %d -> %s\n", len(groups), groupedPath)
	}

	return nil
}
