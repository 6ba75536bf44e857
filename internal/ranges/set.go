// Package ranges converts between comma-delimited integer lists and
// compact range summaries such as "1, 3, 6-8".
//
// A Set is the only value the summarizer accepts. It can be built only
// through the constructors in this package, all of which guarantee that
// its values are strictly ascending.
package ranges

import (
	"slices"

	"github.com/dylan-marx/rangesum/internal/types"
)

// Set is an immutable, strictly ascending collection of unique integers.
// The zero value is the empty set.
type Set struct {
	values []int
}

// Of builds a Set from arbitrary values, sorting and deduplicating them.
func Of(values ...int) Set {
	return newSet(slices.Clone(values))
}

// FromSorted builds a Set from values that must already be strictly
// ascending. Unlike Of it does not repair the input.
func FromSorted(values []int) (Set, error) {
	if err := checkAscending(values); err != nil {
		return Set{}, err
	}
	return Set{values: slices.Clone(values)}, nil
}

// newSet takes ownership of values.
func newSet(values []int) Set {
	if len(values) == 0 {
		return Set{}
	}
	slices.Sort(values)
	return Set{values: slices.Compact(values)}
}

// Values returns a copy of the set's integers in ascending order.
func (s Set) Values() []int {
	return slices.Clone(s.values)
}

// Len returns the number of integers in the set.
func (s Set) Len() int {
	return len(s.values)
}

// IsEmpty reports whether the set has no integers.
func (s Set) IsEmpty() bool {
	return len(s.values) == 0
}

// Contains reports whether n is in the set.
func (s Set) Contains(n int) bool {
	_, found := slices.BinarySearch(s.values, n)
	return found
}

// Equal reports whether both sets hold the same integers.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.values, other.values)
}

// String renders the set as its range summary.
func (s Set) String() string {
	return Summarize(s)
}

func checkAscending(values []int) error {
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return types.ErrUnsortedInput{Index: i, Prev: values[i-1], Value: values[i]}
		}
	}
	return nil
}
