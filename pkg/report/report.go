package report

import (
	"fmt"
	"io"
	"slices"

	f "github.com/epitrack/spreader-detector/pkg/functional"
	"github.com/epitrack/spreader-detector/pkg/roster"
)

// Messages are the per-band output templates, each taking a name and an id.
type Messages struct {
	Hospitalization string
	Quarantine      string
	NoRisk          string
}

// DefaultMessages returns the standard medical instruction templates.
func DefaultMessages() Messages {
	return Messages{
		Hospitalization: "Hospitalization Required: %s %d.",
		Quarantine:      "14-days-Quarantine Required: %s %d.",
		NoRisk:          "No serious chance for infection: %s %d.",
	}
}

func (m Messages) template(band Band) string {
	switch band {
	case Hospitalization:
		return m.Hospitalization
	case Quarantine:
		return m.Quarantine
	default:
		return m.NoRisk
	}
}

// Line is one report entry for one person.
type Line struct {
	Name        string  `json:"name"`
	ID          uint64  `json:"id"`
	Probability float64 `json:"probability"`
	Band        Band    `json:"band"`
	Message     string  `json:"message"`
}

// Build turns a probability-ascending store into report lines ordered
// highest risk first. The store is read only; ties keep the (reversed)
// order the sort left them in.
func Build(people []roster.Person, thresholds Thresholds, messages Messages) []Line {
	descending := slices.Clone(people)
	slices.Reverse(descending)
	return f.Map(descending, func(p roster.Person) Line {
		band := thresholds.Classify(p.Probability)
		return Line{
			Name:        p.Name,
			ID:          p.ID,
			Probability: p.Probability,
			Band:        band,
			Message:     fmt.Sprintf(messages.template(band), p.Name, p.ID),
		}
	})
}

// Write emits one message per line to w.
func Write(w io.Writer, lines []Line) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line.Message); err != nil {
			return err
		}
	}
	return nil
}
