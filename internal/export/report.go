// internal/export/report.go

package export

import (
	"bytes"
	"fmt"
	"os"
	"text/tabwriter"

	"go_tap_to_basic/internal/blocks"
)

// BlockReport generates a formatted, human-readable table of every recovered
// tape block: stream position, which copy produced it, and whether its
// checksum held. useful for judging capture quality at a glance before
// trusting any recovered listing.
//
// if outputPath is non-empty the table is also written to that file. the
// rendered bytes are always returned.
func BlockReport(bs []blocks.Block, outputPath string) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := tabwriter.NewWriter(buf, 0, 8, 2, ' ', 0)

	// human-readable table with | as visual separator
	if _, err := fmt.Fprintln(w, "index\t|\tcopy\t|\toffset\t|\tchecksum\t|\tpayload[0:8]\t"); err != nil {
		return nil, fmt.Errorf("error writing report header: %w", err)
	}

	for i, b := range bs {
		state := "MISMATCH"
		if b.ChecksumOK() {
			state = "ok"
		}
		_, err := fmt.Fprintf(w, "%d\t|\t%s\t|\t0x%08x\t|\t%s\t|\t% x\t\n",
			i, b.Copy, b.Offset, state, b.Payload[:8])
		if err != nil {
			return nil, fmt.Errorf("error writing report row %d: %w", i, err)
		}
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("error flushing report: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("error writing report file %s: %w", outputPath, err)
		}
	}

	return buf.Bytes(), nil
}
