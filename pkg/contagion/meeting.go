package contagion

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedMeeting indicates a meeting line that could not be parsed.
var ErrMalformedMeeting = errors.New("malformed meeting record")

// Meeting is one observed contact between two people, in the order the
// capture pipeline recorded it.
type Meeting struct {
	InfectorID uint64
	InfectedID uint64
	Distance   float64
	Time       float64
}

// Stream is a parsed meetings file: the sick person's id from the first
// line, then the meeting rows in file order. HasSick is false when the
// input was empty, in which case nobody gets seeded.
type Stream struct {
	SickID   uint64
	HasSick  bool
	Meetings []Meeting
}

// Read parses a meetings file. The first non-empty line is the sick
// person's id; each following line is "infectorId infectedId distance time".
// An empty input yields a Stream with HasSick false and no error.
func Read(r io.Reader) (Stream, error) {
	stream := Stream{Meetings: make([]Meeting, 0)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !stream.HasSick {
			sickID, err := strconv.ParseUint(line, 10, 64)
			if err != nil {
				return Stream{}, fmt.Errorf("line %d: %w: bad sick id %q", lineNo, ErrMalformedMeeting, line)
			}
			stream.SickID = sickID
			stream.HasSick = true
			continue
		}
		meeting, err := parseMeeting(line)
		if err != nil {
			return Stream{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		stream.Meetings = append(stream.Meetings, meeting)
	}
	if err := scanner.Err(); err != nil {
		return Stream{}, err
	}
	return stream, nil
}

func parseMeeting(line string) (Meeting, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Meeting{}, fmt.Errorf("%w: expected 4 fields, got %d", ErrMalformedMeeting, len(fields))
	}
	infectorID, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Meeting{}, fmt.Errorf("%w: bad infector id %q", ErrMalformedMeeting, fields[0])
	}
	infectedID, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Meeting{}, fmt.Errorf("%w: bad infected id %q", ErrMalformedMeeting, fields[1])
	}
	distance, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Meeting{}, fmt.Errorf("%w: bad distance %q", ErrMalformedMeeting, fields[2])
	}
	time, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Meeting{}, fmt.Errorf("%w: bad time %q", ErrMalformedMeeting, fields[3])
	}
	return Meeting{
		InfectorID: infectorID,
		InfectedID: infectedID,
		Distance:   distance,
		Time:       time,
	}, nil
}
