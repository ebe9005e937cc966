package contagion

import "math"

// Domain constants from the capture setup: the closest two people can be,
// and the length of the source video (so also the longest possible meeting).
const (
	DefaultMinDistance = 1.0
	DefaultMaxTime     = 30.0
)

// Model holds the fixed transmission parameters. Clamp is off by default:
// extreme inputs (a meeting longer than MaxTime, a distance below
// MinDistance, or a zero distance) produce transmission values above 1 or
// infinities and are passed through untouched.
type Model struct {
	MinDistance float64
	MaxTime     float64
	Clamp       bool
}

// DefaultModel returns the model with the standard capture constants.
func DefaultModel() Model {
	return Model{MinDistance: DefaultMinDistance, MaxTime: DefaultMaxTime}
}

// Transmission is the per-meeting infection likelihood: it grows with
// meeting duration and shrinks with distance. A zero distance divides by
// zero and yields +Inf (or NaN for a zero-duration meeting); this is not
// guarded, matching the unclamped model.
func (m Model) Transmission(distance, time float64) float64 {
	return (time * m.MinDistance) / (distance * m.MaxTime)
}

// clampProbability restricts p to [0, 1]. NaN maps to 0 so a degenerate
// meeting cannot poison the rest of the chain when clamping is requested.
func clampProbability(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return 0
	case p > 1:
		return 1
	case p < 0:
		return 0
	default:
		return p
	}
}
