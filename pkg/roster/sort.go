package roster

import "math"

// Epsilon is the tolerance for floating point comparison, shared by the
// probability ordering and the report thresholds.
const Epsilon = 1e-9

// Comparator orders two Person records: negative if a sorts before b,
// positive if after, zero if equal under the ordering.
type Comparator func(a, b Person) int

// ByID orders ascending by identifier.
func ByID(a, b Person) int {
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}

// ByProbability orders ascending by infection probability. Differences
// below Epsilon count as equal so floating point noise cannot reorder
// otherwise-equal records.
func ByProbability(a, b Person) int {
	switch {
	case math.Abs(a.Probability-b.Probability) < Epsilon:
		return 0
	case a.Probability > b.Probability:
		return 1
	default:
		return -1
	}
}

// Sort reorders people in place with a stable merge sort. Equal elements
// keep their relative input order.
func Sort(people []Person, comp Comparator) {
	if len(people) < 2 {
		return
	}
	draft := make([]Person, len(people))
	mergeSort(people, draft, comp)
}

func mergeSort(people, draft []Person, comp Comparator) {
	if len(people) < 2 {
		return
	}
	mid := len(people) / 2
	mergeSort(people[:mid], draft[:mid], comp)
	mergeSort(people[mid:], draft[mid:], comp)
	copy(draft, people)
	merge(people, draft[:mid], draft[mid:], comp)
}

// merge writes the ordered union of the sorted halves a and b into dst,
// taking from a on ties to preserve stability.
func merge(dst, a, b []Person, comp Comparator) {
	ai, bi := 0, 0
	for ai < len(a) && bi < len(b) {
		if comp(a[ai], b[bi]) <= 0 {
			dst[ai+bi] = a[ai]
			ai++
		} else {
			dst[ai+bi] = b[bi]
			bi++
		}
	}
	for ; ai < len(a); ai++ {
		dst[ai+bi] = a[ai]
	}
	for ; bi < len(b); bi++ {
		dst[ai+bi] = b[bi]
	}
}
