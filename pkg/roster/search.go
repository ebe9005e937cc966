package roster

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates an identifier absent from the roster.
var ErrNotFound = errors.New("id not in roster")

// Find returns the index of the person with the given id. The slice must
// already be sorted ascending by id (see ByID). An absent id returns
// ErrNotFound rather than an out-of-range index; an empty slice is handled
// the same way.
func Find(people []Person, id uint64) (int, error) {
	lo, hi := 0, len(people)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case people[mid].ID == id:
			return mid, nil
		case people[mid].ID > id:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrNotFound, id)
}
