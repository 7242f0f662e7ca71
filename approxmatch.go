// Package approxmatch implements online approximate string matching using
// Myers' (1999) bit-parallel dynamic-programming algorithm, with the block
// extension for patterns longer than one machine word.
//
// Given a text and a pattern over a 16-bit code-unit alphabet (UTF-16 code
// units; non-BMP characters count as two symbols, matching JavaScript/Java
// string semantics), together with a non-negative error budget k,
// approxmatch reports every text position where the pattern occurs with
// Levenshtein distance ≤ k, narrowed to the occurrences achieving the
// minimum distance actually observed.
//
// Basic usage:
//
//	matches, err := approxmatch.SearchString("hello world", "wrld", 1)
//	// matches == [{Start: 6, End: 11, Errors: 1}]
//
// Searching the same pattern against many texts should use a Matcher, which
// precompiles the pattern's bit-mask table once:
//
//	m, err := approxmatch.NewMatcherString("wrld")
//	for _, text := range texts {
//	    matches := m.SearchString(text, 1)
//	}
package approxmatch

import (
	"unicode/utf16"

	"github.com/coregx/approxmatch/engine"
)

// Match is a single reported occurrence: Pattern matches Text[Start:End]
// with exactly Errors edits. End is exclusive.
type Match = engine.Match

// Config controls matching behavior; see engine.Config for field docs.
type Config = engine.Config

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return engine.DefaultConfig()
}

// Matcher precompiles a pattern's bit-mask tables once and reuses them
// across many Search calls.
//
// A Matcher is safe for concurrent use by multiple goroutines.
type Matcher struct {
	eng *engine.Engine
}

// NewMatcher compiles a Matcher for pattern under the default configuration.
func NewMatcher(pattern []uint16) (*Matcher, error) {
	return NewMatcherWithConfig(pattern, DefaultConfig())
}

// NewMatcherString compiles a Matcher for a pattern given as a Go string,
// encoded to UTF-16 code units.
func NewMatcherString(pattern string) (*Matcher, error) {
	return NewMatcher(utf16.Encode([]rune(pattern)))
}

// NewMatcherWithConfig compiles a Matcher with custom configuration.
func NewMatcherWithConfig(pattern []uint16, config Config) (*Matcher, error) {
	eng, err := engine.New(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Matcher{eng: eng}, nil
}

// Search reports every occurrence of the Matcher's pattern in text achieving
// the minimum Levenshtein distance ≤ maxErrors, ordered by increasing End.
func (m *Matcher) Search(text []uint16, maxErrors uint32) []Match {
	return m.eng.Search(text, int(maxErrors))
}

// SearchString is Search for a text given as a Go string, encoded to UTF-16
// code units.
func (m *Matcher) SearchString(text string, maxErrors uint32) []Match {
	return m.Search(utf16.Encode([]rune(text)), maxErrors)
}

// Stats returns a snapshot of the Matcher's execution statistics.
func (m *Matcher) Stats() engine.Stats {
	return m.eng.Stats()
}

// ResetStats resets the Matcher's execution statistics to zero.
func (m *Matcher) ResetStats() {
	m.eng.ResetStats()
}

// Search is a one-shot convenience wrapper around NewMatcher followed by a
// single Search call. Prefer a Matcher when searching the same pattern
// repeatedly.
func Search(text, pattern []uint16, maxErrors uint32) ([]Match, error) {
	m, err := NewMatcher(pattern)
	if err != nil {
		return nil, err
	}
	return m.Search(text, maxErrors), nil
}

// SearchString is Search for text and pattern given as Go strings, each
// encoded to UTF-16 code units.
func SearchString(text, pattern string, maxErrors uint32) ([]Match, error) {
	return Search(utf16.Encode([]rune(text)), utf16.Encode([]rune(pattern)), maxErrors)
}
