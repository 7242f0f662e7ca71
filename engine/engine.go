package engine

import (
	"math"
	"sync/atomic"

	"github.com/coregx/approxmatch/internal/bitmask"
	"github.com/coregx/approxmatch/internal/scan"
	"github.com/coregx/approxmatch/prefilter"
)

// Match is a single reported occurrence: P matches T[Start:End] with exactly
// Errors edits. End is exclusive.
type Match = scan.Match

// Stats tracks execution counters for performance analysis. All fields are
// updated with sync/atomic so that a single Engine may be shared across
// goroutines performing concurrent Search calls.
type Stats struct {
	// Searches counts calls to Search.
	Searches uint64

	// PrefilterHits counts searches where the piece prefilter ran and
	// reported a candidate (true), so the DP scan proceeded.
	PrefilterHits uint64

	// PrefilterSkips counts searches short-circuited to an empty result by
	// the piece prefilter without running the DP scan.
	PrefilterSkips uint64

	// BlocksGrown counts frontier block activations (Myers Fig. 9) across
	// every DP scan run by this Engine, forward and reversed.
	BlocksGrown uint64

	// BlocksShrunk counts frontier block deactivations across every DP scan
	// run by this Engine, forward and reversed.
	BlocksShrunk uint64
}

// Engine precompiles a pattern's bit-mask table (forward and reversed) once,
// so repeated searches against different texts don't repay that cost. The
// piece prefilter depends on the per-call error budget (more errors means
// fewer, shorter pieces) and so is rebuilt per Search call — cheap relative
// to the O(blocks) automaton it builds over at most a handful of short
// pieces.
//
// Thread safety: Engine holds no mutable state but Stats, which is updated
// atomically; a single Engine may be shared for concurrent Search calls.
type Engine struct {
	pattern    []uint16
	patternRev []uint16
	bits       *bitmask.Table
	bitsRev    *bitmask.Table
	config     Config

	stats Stats
}

// New compiles an Engine for pattern under config.
func New(pattern []uint16, config Config) (*Engine, error) {
	if len(pattern) > math.MaxInt32 {
		return nil, ErrPatternTooLarge
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	bits := bitmask.Build(pattern)
	return &Engine{
		pattern:    pattern,
		patternRev: reverseUint16(pattern),
		bits:       bits,
		bitsRev:    bits.Reverse(),
		config:     config,
	}, nil
}

// Search runs the full pipeline: an optional prefilter gate, the forward
// end-point scan, and the reversed-pattern start resolution.
func (e *Engine) Search(text []uint16, maxErrors int) []Match {
	atomic.AddUint64(&e.stats.Searches, 1)

	maxErrors = clampErrors(maxErrors, len(e.pattern))
	if len(e.pattern) == 0 || len(text) == 0 {
		return nil
	}

	var pf *prefilter.PieceFilter
	if e.config.EnablePrefilter && len(e.pattern) >= e.config.MinPrefilterPatternLen {
		pf = prefilter.Build(e.pattern, maxErrors)
	}
	if pf != nil {
		if !pf.MayMatch(text) {
			atomic.AddUint64(&e.stats.PrefilterSkips, 1)
			return nil
		}
		atomic.AddUint64(&e.stats.PrefilterHits, 1)
	}

	var scanStats scan.Stats
	matches := scan.FindMatchEnds(text, e.pattern, maxErrors, e.bits, &scanStats)
	if matches != nil {
		scan.FindMatchStarts(text, e.pattern, e.patternRev, e.bitsRev, matches, &scanStats)
	}
	atomic.AddUint64(&e.stats.BlocksGrown, uint64(scanStats.BlocksGrown))
	atomic.AddUint64(&e.stats.BlocksShrunk, uint64(scanStats.BlocksShrunk))

	return matches
}

// Stats returns a snapshot of execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:       atomic.LoadUint64(&e.stats.Searches),
		PrefilterHits:  atomic.LoadUint64(&e.stats.PrefilterHits),
		PrefilterSkips: atomic.LoadUint64(&e.stats.PrefilterSkips),
		BlocksGrown:    atomic.LoadUint64(&e.stats.BlocksGrown),
		BlocksShrunk:   atomic.LoadUint64(&e.stats.BlocksShrunk),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Searches, 0)
	atomic.StoreUint64(&e.stats.PrefilterHits, 0)
	atomic.StoreUint64(&e.stats.PrefilterSkips, 0)
	atomic.StoreUint64(&e.stats.BlocksGrown, 0)
	atomic.StoreUint64(&e.stats.BlocksShrunk, 0)
}

func clampErrors(maxErrors, patternLen int) int {
	if maxErrors < 0 {
		return 0
	}
	if maxErrors > patternLen {
		return patternLen
	}
	return maxErrors
}

func reverseUint16(s []uint16) []uint16 {
	out := make([]uint16, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
