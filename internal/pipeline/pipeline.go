// internal/pipeline/pipeline.go

// package pipeline wires the recovery stages together: capture bytes in,
// program image and diagnostics out. every stage fully consumes its input
// buffer before the next begins; there is no streaming and no shared mutable
// state between stages.
package pipeline

import (
	"fmt"
	"log/slog"

	"go_tap_to_basic/internal/blocks"
	"go_tap_to_basic/internal/cluster"
	"go_tap_to_basic/internal/config"
	"go_tap_to_basic/internal/demod"
	"go_tap_to_basic/internal/locate"
	"go_tap_to_basic/internal/prg"
	"go_tap_to_basic/internal/tap"
	"go_tap_to_basic/internal/textscan"
)

// Diagnostics carries the confidence signals of a recovery attempt. the
// pipeline never certifies correctness - these numbers are what the caller
// gets instead.
type Diagnostics struct {
	PulseCount   int
	Centers      [3]float64 // short/medium/long duration band centers
	DecodedBytes int
	Decoded      []byte // the raw decoded byte stream, for diagnostic dumps

	Blocks          []blocks.Block // all framed blocks in stream order
	PrimaryBlocks   int
	DuplicateBlocks int
	UsedBlocks      int
	UsedCopy        string

	ChecksumMatches int // over at most ChecksumSample used blocks
	ChecksumChecked int

	HeaderIndex int // index of the chosen header within the used blocks
	Header      blocks.Header
	HeaderScore int
	Shortfall   int // declared bytes missing from the assembled body

	Candidate *locate.Candidate // heuristic scan winner, when that path ran
}

// Pipeline runs recovery attempts against a single configuration.
type Pipeline struct {
	cfg config.Config
	log *slog.Logger
}

func New(cfg config.Config, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{cfg: cfg, log: log}
}

// DecodeBytes runs the shared front half of every recovery path:
// capture container -> pulses -> duration bands -> categories -> byte stream.
func (p *Pipeline) DecodeBytes(capture []byte) ([]byte, *Diagnostics, error) {
	pulses, err := tap.ParsePulses(capture)
	if err != nil {
		return nil, nil, err
	}

	cats, centers, err := cluster.Classify(pulses, p.cfg.Cluster)
	if err != nil {
		return nil, nil, fmt.Errorf("classifying pulses: %w", err)
	}

	decoded := demod.Decode(cats)
	p.log.Debug("decoded capture",
		"pulses", len(pulses),
		"centers", centers,
		"bytes", len(decoded))

	return decoded, &Diagnostics{
		PulseCount:   len(pulses),
		Centers:      centers,
		DecodedBytes: len(decoded),
		Decoded:      decoded,
		HeaderIndex:  -1,
	}, nil
}

// RecoverBlocks performs structural recovery: frame tape blocks, pick the
// header, assemble the program image from the payloads that follow it.
func (p *Pipeline) RecoverBlocks(capture []byte, choice blocks.Selection) (prg.Image, *Diagnostics, error) {
	decoded, diag, err := p.DecodeBytes(capture)
	if err != nil {
		return prg.Image{}, nil, err
	}

	all := blocks.Find(decoded)
	if len(all) == 0 {
		return prg.Image{}, diag, fmt.Errorf("framing blocks: %w", blocks.ErrNoBlocks)
	}
	diag.Blocks = all
	primary, duplicate := blocks.Partition(all)
	diag.PrimaryBlocks = len(primary)
	diag.DuplicateBlocks = len(duplicate)

	used := blocks.Select(all, choice)
	if len(used) == 0 {
		return prg.Image{}, diag, fmt.Errorf("framing blocks: %w: none in the selected copy stream", blocks.ErrNoBlocks)
	}
	diag.UsedBlocks = len(used)
	diag.UsedCopy = used[0].Copy.String()
	diag.ChecksumMatches, diag.ChecksumChecked = blocks.CountChecksums(used, p.cfg.ChecksumSample)

	// pick the most plausible header among the used blocks. when nothing
	// scores, fall back to the tape convention that the first block is the
	// header and let the length sanity bound judge it.
	idx, hdr, score, ok := blocks.BestHeader(used, p.cfg.Header)
	if !ok {
		p.log.Warn("no plausible header block found, assuming first block is the header")
		idx = 0
		hdr = blocks.ParseHeader(used[0].Payload)
		score = 0
	}
	diag.HeaderIndex = idx
	diag.Header = hdr
	diag.HeaderScore = score

	payloads := make([][]byte, 0, len(used)-idx-1)
	for _, b := range used[idx+1:] {
		payloads = append(payloads, b.Payload)
	}

	img, shortfall, err := prg.Assemble(hdr, payloads)
	if err != nil {
		return prg.Image{}, diag, fmt.Errorf("assembling program: %w", err)
	}
	if shortfall > 0 {
		diag.Shortfall = shortfall
		p.log.Warn("assembled fewer bytes than the header declares",
			"declared", hdr.Length(),
			"assembled", len(img.Body),
			"missing", shortfall)
	}

	return img, diag, nil
}

// RecoverScan performs heuristic recovery without block framing: score every
// byte offset of the decoded stream for a plausible tokenized program and
// take the best candidate.
func (p *Pipeline) RecoverScan(capture []byte) (prg.Image, *Diagnostics, error) {
	decoded, diag, err := p.DecodeBytes(capture)
	if err != nil {
		return prg.Image{}, nil, err
	}

	cand, err := locate.FindBest(decoded, p.cfg.Scan)
	if err != nil {
		return prg.Image{}, diag, fmt.Errorf("scanning for program: %w", err)
	}
	diag.Candidate = &cand

	img, err := prg.Parse(decoded[cand.Offset:cand.EndOffset])
	if err != nil {
		return prg.Image{}, diag, fmt.Errorf("scanning for program: %w", err)
	}

	p.log.Debug("heuristic scan winner",
		"offset", cand.Offset,
		"load", fmt.Sprintf("$%04X", cand.Load),
		"lines", cand.Lines,
		"score", cand.Score)

	return img, diag, nil
}

// ExtractStrings pulls incidental readable text out of the decoded stream.
// minLen <= 0 uses the configured minimum.
func (p *Pipeline) ExtractStrings(capture []byte, minLen int) ([]string, *Diagnostics, error) {
	decoded, diag, err := p.DecodeBytes(capture)
	if err != nil {
		return nil, nil, err
	}
	if minLen <= 0 {
		minLen = p.cfg.Strings.MinLength
	}

	text := textscan.BestEffortASCII(decoded)
	found := textscan.Unique(textscan.Extract(text, minLen))
	return found, diag, nil
}
