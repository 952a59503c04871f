package locate

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// program builds a tokenized basic image (load address + line chain +
// terminator) with fully self-consistent next pointers.
func program(load uint16, lineNums []int) []byte {
	out := make([]byte, 2)
	binary.LittleEndian.PutUint16(out, load)

	addr := int(load)
	body := []byte{0x99, 0x22, 'O', 'K', 0x22} // PRINT"OK"
	for _, num := range lineNums {
		next := addr + 4 + len(body) + 1
		rec := make([]byte, 4)
		binary.LittleEndian.PutUint16(rec, uint16(next))
		binary.LittleEndian.PutUint16(rec[2:], uint16(num))
		out = append(out, rec...)
		out = append(out, body...)
		out = append(out, 0x00)
		addr = next
	}
	return append(out, 0x00, 0x00)
}

// embed drops prog into a noise buffer at off. the filler byte decodes to a
// load address far outside the accepted window, so it cannot score.
func embed(prog []byte, off, size int) []byte {
	buf := bytes.Repeat([]byte{0xEE}, size)
	copy(buf[off:], prog)
	return buf
}

func seq(n int) []int {
	nums := make([]int, n)
	for i := range nums {
		nums[i] = 10 * (i + 1)
	}
	return nums
}

func TestScoreAtCleanProgram(t *testing.T) {
	p := DefaultScanParams()
	buf := embed(program(0x1001, seq(5)), 100, 8192)

	c, ok := ScoreAt(buf, 100, p)
	require.True(t, ok)
	assert.Equal(t, 100, c.Offset)
	assert.Equal(t, uint16(0x1001), c.Load)
	assert.Equal(t, 5, c.Lines)
	// consistent pointers and ascending line numbers carry no penalty, and
	// the canonical load address earns the full closeness bonus.
	assert.Equal(t, 5*p.LineWeight+p.ClosenessMax, c.Score)
	// the end offset covers four bytes at the terminator record
	assert.Equal(t, 100+len(program(0x1001, seq(5)))+2, c.EndOffset)
}

func TestScoreAtMoreLinesScoreHigher(t *testing.T) {
	p := DefaultScanParams()
	five, ok := ScoreAt(embed(program(0x1001, seq(5)), 100, 8192), 100, p)
	require.True(t, ok)
	ten, ok := ScoreAt(embed(program(0x1001, seq(10)), 100, 8192), 100, p)
	require.True(t, ok)

	assert.Greater(t, ten.Score, five.Score)
}

func TestScoreAtRejections(t *testing.T) {
	p := DefaultScanParams()

	_, ok := ScoreAt(embed(program(0x1001, seq(2)), 100, 8192), 100, p)
	assert.False(t, ok, "below the minimum line count")

	_, ok = ScoreAt(embed(program(0x0100, seq(5)), 100, 8192), 100, p)
	assert.False(t, ok, "load address below the accepted window")

	_, ok = ScoreAt(embed(program(0x8000, seq(5)), 100, 8192), 100, p)
	assert.False(t, ok, "load address above the accepted window")

	_, ok = ScoreAt([]byte{0x01, 0x10, 0x00}, 0, p)
	assert.False(t, ok, "too little data to read a line record")
}

func TestScoreAtDecreasingLineNumbersPenalized(t *testing.T) {
	p := DefaultScanParams()
	clean, ok := ScoreAt(embed(program(0x1001, []int{10, 20, 30, 40}), 100, 8192), 100, p)
	require.True(t, ok)
	glitched, ok := ScoreAt(embed(program(0x1001, []int{10, 20, 15, 40}), 100, 8192), 100, p)
	require.True(t, ok, "a backwards line number costs score but does not abort")

	assert.Equal(t, clean.Score-p.DecreasePenalty, glitched.Score)
}

func TestScoreAtAbortsOnHugeLineNumber(t *testing.T) {
	p := DefaultScanParams()
	_, ok := ScoreAt(embed(program(0x1001, []int{10, 64000, 30, 40}), 100, 8192), 100, p)
	assert.False(t, ok, "line numbers past the basic maximum are not real programs")
}

func TestFindBestLocatesEmbeddedProgram(t *testing.T) {
	p := DefaultScanParams()
	prog := program(0x1001, seq(8))
	buf := embed(prog, 517, 10000)

	c, err := FindBest(buf, p)
	require.NoError(t, err)
	assert.Equal(t, 517, c.Offset)
	assert.Equal(t, 8, c.Lines)
}

func TestFindBestTieKeepsLowestOffset(t *testing.T) {
	p := DefaultScanParams()
	p.Workers = 4
	prog := program(0x1001, seq(5))

	buf := bytes.Repeat([]byte{0xEE}, 10000)
	copy(buf[100:], prog)
	copy(buf[3000:], prog) // identical copy scores identically

	c, err := FindBest(buf, p)
	require.NoError(t, err)
	assert.Equal(t, 100, c.Offset)
}

func TestFindBestDeterministicAcrossWorkerCounts(t *testing.T) {
	prog := program(0x1001, seq(6))
	buf := embed(prog, 900, 12000)

	p1 := DefaultScanParams()
	p1.Workers = 1
	p3 := DefaultScanParams()
	p3.Workers = 3

	c1, err := FindBest(buf, p1)
	require.NoError(t, err)
	c3, err := FindBest(buf, p3)
	require.NoError(t, err)
	assert.Equal(t, c1, c3)
}

func TestFindBestNoCandidate(t *testing.T) {
	p := DefaultScanParams()

	_, err := FindBest(bytes.Repeat([]byte{0xEE}, 10000), p)
	require.ErrorIs(t, err, ErrNoCandidate)

	_, err = FindBest(make([]byte, 100), p)
	require.ErrorIs(t, err, ErrNoCandidate, "stream shorter than the tail margin")
}
