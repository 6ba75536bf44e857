// Package rangesum converts between comma-delimited integer lists and
// compact range summaries.
//
//	s := rangesum.Collect("1,3,6,7,8")
//	rangesum.Summarize(s) // "1, 3, 6-8"
//
// Collect is lenient: empty and non-integer tokens are dropped. Use
// CollectStrict or Inspect to learn what was dropped.
package rangesum

import (
	"github.com/dylan-marx/rangesum/internal/ranges"
	"github.com/dylan-marx/rangesum/internal/types"
	"github.com/dylan-marx/rangesum/internal/version"
)

// Re-export all types from internal/ranges
type (
	Set     = ranges.Set
	Segment = ranges.Segment
)

// Re-export error types
type (
	ErrMalformedToken = types.ErrMalformedToken
	ErrUnsortedInput  = types.ErrUnsortedInput
	ErrInvalidRange   = types.ErrInvalidRange
	ErrRangeTooLarge  = types.ErrRangeTooLarge
)

// MaxExpand caps how many integers Expand will materialize.
const MaxExpand = ranges.MaxExpand

// Re-export all core functions
var (
	Collect       = ranges.Collect
	CollectPtr    = ranges.CollectPtr
	CollectStrict = ranges.CollectStrict
	Inspect       = ranges.Inspect
	Summarize     = ranges.Summarize
	SummarizeInts = ranges.SummarizeInts
	Segments      = ranges.Segments
	Expand        = ranges.Expand
	FromSorted    = ranges.FromSorted
	Of            = ranges.Of
)

// Version returns the library version.
func Version() string {
	return version.Get()
}
