package ranges

import (
	"strconv"
	"strings"
)

// Separator joins segments in a summary.
const Separator = ", "

// Segment is a run of consecutive integers. Start == End for a single value.
type Segment struct {
	Start int
	End   int
}

// Len returns how many integers the segment covers.
func (g Segment) Len() int {
	return g.End - g.Start + 1
}

func (g Segment) String() string {
	if g.Start == g.End {
		return strconv.Itoa(g.Start)
	}
	return strconv.Itoa(g.Start) + "-" + strconv.Itoa(g.End)
}

// Segments groups the set into maximal runs of consecutive integers.
func Segments(s Set) []Segment {
	if s.IsEmpty() {
		return nil
	}

	var segs []Segment
	cur := Segment{Start: s.values[0], End: s.values[0]}
	for _, v := range s.values[1:] {
		if v == cur.End+1 {
			cur.End = v
			continue
		}
		segs = append(segs, cur)
		cur = Segment{Start: v, End: v}
	}
	return append(segs, cur)
}

// Summarize renders the set as comma-separated values and ranges,
// e.g. "1, 3, 6-8". The empty set renders as "".
func Summarize(s Set) string {
	segs := Segments(s)
	if len(segs) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, g := range segs {
		if i > 0 {
			sb.WriteString(Separator)
		}
		sb.WriteString(g.String())
	}
	return sb.String()
}

// SummarizeInts summarizes a raw slice that must already be strictly
// ascending. Out-of-order or duplicate values return types.ErrUnsortedInput;
// the slice is never re-sorted. A nil slice yields "".
func SummarizeInts(values []int) (string, error) {
	if err := checkAscending(values); err != nil {
		return "", err
	}
	return Summarize(Set{values: values}), nil
}
