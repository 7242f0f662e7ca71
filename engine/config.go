// Package engine wires the bit-mask table, the pigeonhole prefilter, the
// forward scan and the start-point resolver into a single search call, and
// carries the ambient configuration and statistics around that call.
package engine

// Config controls engine behavior.
//
// Example:
//
//	config := engine.DefaultConfig()
//	config.EnablePrefilter = false // always run the full DP scan
//	e, err := engine.New(pattern, config)
type Config struct {
	// EnablePrefilter enables the pigeonhole exact-piece filter that can
	// skip the DP scan entirely when no piece of the pattern occurs in the
	// text. It never changes which matches are reported.
	// Default: true
	EnablePrefilter bool

	// MinPrefilterPatternLen is the shortest pattern length the prefilter
	// will attempt to build pieces for. Very short patterns don't benefit:
	// their pieces would be too short to filter usefully.
	// Default: 8
	MinPrefilterPatternLen int
}

// DefaultConfig returns a configuration with sensible defaults: prefilter
// enabled for patterns long enough to benefit from it.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:        true,
		MinPrefilterPatternLen: 8,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.MinPrefilterPatternLen < 0 {
		return &ConfigError{Field: "MinPrefilterPatternLen", Message: "must be >= 0"}
	}
	return nil
}
