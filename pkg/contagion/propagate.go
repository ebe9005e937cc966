package contagion

import (
	"errors"
	"fmt"

	"github.com/epitrack/spreader-detector/pkg/roster"
)

// ErrUnknownParticipant indicates a meeting row naming an id that is not
// in the roster.
var ErrUnknownParticipant = errors.New("meeting participant not in roster")

// Propagate walks the meeting stream in order and writes infection
// probabilities into people, which must be sorted ascending by id.
//
// The sick person is seeded to exactly 1. Each row then overwrites the
// infected person's probability with the infector's current probability
// times the row's transmission value. Overwrite, not accumulate: when a
// person is the infected party in several rows, the last row processed
// wins. An empty stream leaves every probability at 0.
func Propagate(people []roster.Person, stream Stream, model Model) error {
	if !stream.HasSick {
		return nil
	}
	sick, err := roster.Find(people, stream.SickID)
	if err != nil {
		return fmt.Errorf("%w: sick id %d", ErrUnknownParticipant, stream.SickID)
	}
	people[sick].Probability = 1

	for i, meeting := range stream.Meetings {
		infector, err := roster.Find(people, meeting.InfectorID)
		if err != nil {
			return fmt.Errorf("meeting %d: %w: infector %d", i+1, ErrUnknownParticipant, meeting.InfectorID)
		}
		infected, err := roster.Find(people, meeting.InfectedID)
		if err != nil {
			return fmt.Errorf("meeting %d: %w: infected %d", i+1, ErrUnknownParticipant, meeting.InfectedID)
		}
		probability := people[infector].Probability * model.Transmission(meeting.Distance, meeting.Time)
		if model.Clamp {
			probability = clampProbability(probability)
		}
		people[infected].Probability = probability
	}
	return nil
}
