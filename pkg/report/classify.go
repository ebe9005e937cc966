package report

import (
	"fmt"
	"math"

	"github.com/epitrack/spreader-detector/pkg/roster"
)

// Band is the medical-action category assigned to a person.
type Band int

const (
	NoRisk Band = iota
	Quarantine
	Hospitalization
)

func (b Band) String() string {
	switch b {
	case Hospitalization:
		return "hospitalization"
	case Quarantine:
		return "quarantine"
	default:
		return "no-risk"
	}
}

func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Band) UnmarshalText(text []byte) error {
	switch string(text) {
	case "hospitalization":
		*b = Hospitalization
	case "quarantine":
		*b = Quarantine
	case "no-risk":
		*b = NoRisk
	default:
		return fmt.Errorf("unknown band %q", text)
	}
	return nil
}

// Thresholds holds the two probability cutoffs between the bands.
type Thresholds struct {
	Hospitalization float64
	Quarantine      float64
}

// DefaultThresholds returns the standard medical-action cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Hospitalization: 0.3, Quarantine: 0.1}
}

// Classify maps a probability to its band. The comparison is
// epsilon-tolerant: a probability within roster.Epsilon of a cutoff
// counts as meeting it.
func (t Thresholds) Classify(probability float64) Band {
	switch {
	case atLeast(probability, t.Hospitalization):
		return Hospitalization
	case atLeast(probability, t.Quarantine):
		return Quarantine
	default:
		return NoRisk
	}
}

func atLeast(p, threshold float64) bool {
	return p >= threshold || math.Abs(p-threshold) < roster.Epsilon
}
