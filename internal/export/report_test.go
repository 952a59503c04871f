package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_tap_to_basic/internal/blocks"
	"go_tap_to_basic/internal/constants"
)

func reportBlocks() []blocks.Block {
	good := make([]byte, constants.PayloadLength)
	copy(good, "HELLOBLOCK")
	bad := make([]byte, constants.PayloadLength)

	return []blocks.Block{
		{Offset: 9, Copy: blocks.CopyPrimary, Payload: good, Checksum: blocks.XORChecksum(good)},
		{Offset: 300, Copy: blocks.CopyDuplicate, Payload: bad, Checksum: blocks.XORChecksum(bad) ^ 1},
	}
}

func TestBlockReportContents(t *testing.T) {
	out, err := BlockReport(reportBlocks(), "")
	require.NoError(t, err)

	report := string(out)
	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
	require.Len(t, lines, 3, "header plus one row per block")
	assert.Contains(t, lines[0], "checksum")
	assert.Contains(t, lines[1], "A")
	assert.Contains(t, lines[1], "ok")
	assert.Contains(t, lines[2], "B")
	assert.Contains(t, lines[2], "MISMATCH")
	assert.Contains(t, report, "0x0000012c", "offsets are hex")
}

func TestBlockReportWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	out, err := BlockReport(reportBlocks(), path)
	require.NoError(t, err)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, onDisk)
}
