// Package prefilter provides a fast candidate-rejection accelerator for
// approximate matching.
//
// A prefilter is used to quickly reject an entire text as having no
// possible match before paying for the bit-parallel DP scan. It is a pure
// performance optimization: when it reports false, there is provably no
// match; when it reports true, the caller still must run the real scan. The
// filter itself never changes which matches are reported.
package prefilter

import "github.com/coregx/ahocorasick"

// minPieceLen is the shortest exact piece worth indexing. Shorter pieces
// have too high a false-positive rate to be worth the automaton traversal.
const minPieceLen = 2

// PieceFilter implements the classic pigeonhole filter for approximate
// matching (as used by agrep and similar tools): split the pattern into
// maxErrors+1 non-overlapping pieces. Any alignment of the pattern against
// the text achieving at most maxErrors edits must reproduce at least one of
// those pieces verbatim somewhere in the text — an edit can corrupt at most
// one piece's worth of characters per error, and there are more pieces than
// errors. If none of the pieces occurs anywhere in the text, there is no
// match within budget and the DP scan can be skipped entirely.
type PieceFilter struct {
	automaton *ahocorasick.Automaton
}

// Build constructs a PieceFilter for pattern at the given error budget, or
// returns nil when filtering would not be useful:
//   - maxErrors == 0 (the only "piece" is the whole pattern — an exact
//     substring search, which the DP scan already performs as fast as this
//     filter could restate it), or
//   - maxErrors >= len(pattern) (no piece length is large enough to filter
//     usefully; every substring of the text is a candidate), or
//   - the resulting piece length would fall below minPieceLen.
//
// A nil *PieceFilter means "always scan"; callers must treat it that way
// rather than dereferencing it.
func Build(pattern []uint16, maxErrors int) *PieceFilter {
	if maxErrors <= 0 || maxErrors >= len(pattern) {
		return nil
	}

	pieceCount := maxErrors + 1
	pieceLen := len(pattern) / pieceCount
	if pieceLen < minPieceLen {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < pieceCount; i++ {
		start := i * pieceLen
		end := start + pieceLen
		if i == pieceCount-1 {
			end = len(pattern) // fold any remainder into the last piece
		}
		builder.AddPattern(encodeUint16(pattern[start:end]))
	}

	automaton, err := builder.Build()
	if err != nil {
		// Pathological pattern pieces (e.g. a degenerate alphabet) aren't
		// worth failing the whole search over — just skip the filter.
		return nil
	}

	return &PieceFilter{automaton: automaton}
}

// MayMatch reports whether text could possibly contain a match. false is a
// proof of no match within budget; true only means "go run the real scan."
func (f *PieceFilter) MayMatch(text []uint16) bool {
	if f == nil {
		return true
	}
	return f.automaton.IsMatch(encodeUint16(text))
}

// encodeUint16 maps a run of 16-bit code units onto bytes, big-endian pair
// by pair, so the byte-oriented automaton can index the 16-bit alphabet
// without collisions between distinct code units.
func encodeUint16(s []uint16) []byte {
	out := make([]byte, len(s)*2)
	for i, v := range s {
		out[i*2] = byte(v >> 8)
		out[i*2+1] = byte(v)
	}
	return out
}
