package stream

import "github.com/radifuture-gmail/pdf-coordinate-flow/pkg/layout"

// MatchPolicy selects how numeric content inside a token is detected.
type MatchPolicy int

const (
	// MatchEmbedded scans for numeric substrings anywhere in the token
	// and tags each one in place, leaving units, currency symbols and
	// magnitude words around them untouched. Supports several numbers per
	// token; may fire on spurious digit runs. Default.
	MatchEmbedded MatchPolicy = iota

	// MatchWholeToken tags a token only when its entire normalized
	// content is a signed integer or decimal; anything with extra
	// characters lends no tag.
	MatchWholeToken
)

// String returns a string representation of the policy.
func (p MatchPolicy) String() string {
	switch p {
	case MatchWholeToken:
		return "whole-token"
	default:
		return "embedded"
	}
}

// Config holds the tuning inputs for one document run. The tolerances are
// plain coordinate gaps in the unit of the incoming tokens (points or
// pixels); zero means exact match only and simply produces many rows or
// columns rather than failing.
type Config struct {
	XTolerance float64              // Max x gap treated as the same column
	YTolerance float64              // Max y gap treated as the same row
	Mask       bool                 // Replace numeric payloads with placeholders
	Match      MatchPolicy          // Numeric detection policy
	Column     layout.ColumnPolicy  // Column assignment policy
	Cluster    layout.ClusterPolicy // Baseline clustering policy
}

// DefaultConfig returns a config with the tuning defaults the document
// family was calibrated against.
func DefaultConfig() Config {
	return Config{
		XTolerance: 20,
		YTolerance: 3,
		Mask:       false,
		Match:      MatchEmbedded,
		Column:     layout.ColumnFirstMatch,
		Cluster:    layout.ClusterGreedy,
	}
}

// sanitized clamps out-of-range values so the run degrades gracefully
// instead of failing: negative tolerances behave as exact-match-only.
func (c Config) sanitized() Config {
	if c.XTolerance < 0 {
		c.XTolerance = 0
	}
	if c.YTolerance < 0 {
		c.YTolerance = 0
	}
	return c
}
