// Package scan implements the end-point scanner and start-point resolver of
// Myers' bit-parallel approximate matching algorithm: the "active-block"
// heuristic that dynamically grows and shrinks the computed frontier so
// that only blocks whose minimum score remains within the error budget are
// advanced, and the reversed-pattern rerun that recovers a longest-window
// start for each reported end.
package scan

import (
	"github.com/coregx/approxmatch/internal/bitmask"
	"github.com/coregx/approxmatch/internal/block"
	"github.com/coregx/approxmatch/internal/conv"
)

// Match is a single reported occurrence: P matches T[Start:End] with exactly
// Errors edits. End is exclusive.
type Match struct {
	Start  int
	End    int
	Errors int
}

// Stats accumulates frontier-activity counters across one or more scans, for
// the caller to fold into its own reported statistics. The zero value counts
// from zero.
type Stats struct {
	// BlocksGrown counts how many times the active frontier activated a new
	// block (Myers Fig. 9's frontier growth).
	BlocksGrown int

	// BlocksShrunk counts how many times the active frontier deactivated a
	// block because its score left it provably out of budget for the
	// remainder of the scan.
	BlocksShrunk int
}

// FindMatchEnds scans text for occurrences of pattern within maxErrors
// edits, returning only the end-points achieving the minimum error count
// observed (ratcheted down as better matches are found). Every returned
// Match has Start == 0; the caller fills in Start via FindMatchStarts.
//
// bits must be a bitmask.Table built from pattern. maxErrors is clamped to
// len(pattern) internally. stats, if non-nil, has its BlocksGrown/
// BlocksShrunk counters incremented for every frontier move; pass nil to
// skip this bookkeeping.
func FindMatchEnds(text, pattern []uint16, maxErrors int, bits *bitmask.Table, stats *Stats) []Match {
	if len(pattern) == 0 {
		return nil
	}
	if maxErrors > len(pattern) {
		maxErrors = len(pattern)
	}

	blockCount := bits.BlockCount()
	blocks := make([]block.Block, blockCount)
	for b := range blocks {
		lastRowMask := uint64(1) << uint(block.Width-1)
		score := (b + 1) * block.Width
		if b == blockCount-1 {
			lastRowMask = uint64(1) << uint((len(pattern)-1)%block.Width)
			score = len(pattern)
		}
		blocks[b].Reset(lastRowMask)
		blocks[b].Score = conv.IntToInt32(score)
	}

	// y is the index of the last active block level in the current column.
	// maxErrors <= len(pattern) guarantees y <= blockCount-1.
	y := (maxErrors + block.Width - 1) / block.Width
	if y > 0 {
		y--
	}

	var matches []Match

	for j, ch := range text {
		masks := bits.Lookup(ch)

		carry := 0
		for b := 0; b <= y; b++ {
			carry = block.Advance(&blocks[b], masks[b], carry)
			blocks[b].Score += int32(carry)
		}

		if int(blocks[y].Score)-carry <= maxErrors && y < blockCount-1 &&
			(masks[y+1]&1 != 0 || carry < 0) {
			// The next block's minimum score is still within budget and
			// either its first row already matches or a negative carry is
			// arriving — grow the frontier by one block.
			y++
			if stats != nil {
				stats.BlocksGrown++
			}

			maxBlockScore := block.Width
			lastRowMask := uint64(1) << uint(block.Width-1)
			if y == blockCount-1 {
				maxBlockScore = len(pattern) % block.Width
				if maxBlockScore == 0 {
					maxBlockScore = block.Width
				}
				lastRowMask = uint64(1) << uint((len(pattern)-1)%block.Width)
			}
			blocks[y].Reset(lastRowMask)
			blocks[y].Score = blocks[y-1].Score + conv.IntToInt32(maxBlockScore) - int32(carry)
			blocks[y].Score += int32(block.Advance(&blocks[y], masks[y], carry))
		} else {
			// Shrink the frontier: any block can reduce its score by at
			// most Width from its next-block neighbor, so a score of at
			// least maxErrors+Width is guaranteed to stay over budget for
			// the remainder of the scan.
			for y > 0 && int(blocks[y].Score) >= maxErrors+block.Width {
				y--
				if stats != nil {
					stats.BlocksShrunk++
				}
			}
		}

		if y == blockCount-1 && int(blocks[y].Score) <= maxErrors {
			if int(blocks[y].Score) < maxErrors {
				matches = matches[:0]
			}
			matches = append(matches, Match{End: j + 1, Errors: int(blocks[y].Score)})
			maxErrors = int(blocks[y].Score)
		}
	}

	return matches
}

// FindMatchStarts assigns Start to each match in place, choosing for every
// end-point the start that maximizes the match length (smallest Start)
// among all alignments achieving that end-point's error count.
//
// patternRev and bitsRev must be the reverse of pattern and the table built
// from it (see bitmask.Table.Reverse) — passed in rather than recomputed so
// the caller, which already needed the reversed pattern bits to drive a
// reused table, never rescans the pattern. stats is forwarded to the
// reversed rerun of FindMatchEnds; see its doc for the nil behavior.
func FindMatchStarts(text, pattern, patternRev []uint16, bitsRev *bitmask.Table, matches []Match, stats *Stats) {
	for i := range matches {
		m := &matches[i]

		minStart := m.End - len(pattern) - m.Errors
		if minStart < 0 {
			minStart = 0
		}

		textRev := reverse(text[minStart:m.End])

		ends := FindMatchEnds(textRev, patternRev, m.Errors, bitsRev, stats)

		start := m.End
		for _, rm := range ends {
			if candidate := m.End - rm.End; candidate < start {
				start = candidate
			}
		}

		m.Start = start
	}
}

func reverse(s []uint16) []uint16 {
	out := make([]uint16, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
