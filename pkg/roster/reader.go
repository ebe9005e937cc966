package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedRecord indicates a roster line that could not be parsed.
var ErrMalformedRecord = errors.New("malformed roster record")

// Read parses roster lines of the form "name id age" into Person records.
// Blank lines are skipped. Any line with a missing or non-numeric field
// aborts the whole read; no partial roster is returned.
func Read(r io.Reader) ([]Person, error) {
	people := make([]Person, 0)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		person, err := parsePerson(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		people = append(people, person)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return people, nil
}

func parsePerson(line string) (Person, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Person{}, fmt.Errorf("%w: expected 3 fields, got %d", ErrMalformedRecord, len(fields))
	}
	id, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Person{}, fmt.Errorf("%w: bad id %q", ErrMalformedRecord, fields[1])
	}
	age, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Person{}, fmt.Errorf("%w: bad age %q", ErrMalformedRecord, fields[2])
	}
	return Person{Name: fields[0], ID: id, Age: age}, nil
}
