package ranges

import (
	"strconv"
	"strings"

	"github.com/dylan-marx/rangesum/internal/types"
)

// MaxExpand caps how many integers Expand will materialize.
const MaxExpand = 1 << 20

// Expand parses a summary such as "1-3, 5, 7-9" back into a Set.
// Reversed ranges are normalized. Unlike Collect, any malformed part is an
// error, since summaries are expected to be machine-produced.
func Expand(summary string) (Set, error) {
	var results []int

	for _, part := range strings.Split(summary, Delimiter) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		start, end, err := parseSegment(part)
		if err != nil {
			return Set{}, err
		}

		// end >= start, so the unsigned difference is exact even when the
		// signed one would overflow.
		span := uint64(end - start)
		if span >= MaxExpand || uint64(len(results))+span >= MaxExpand {
			return Set{}, types.ErrRangeTooLarge{Start: start, End: end, Limit: MaxExpand}
		}

		for k := 0; k <= int(span); k++ {
			results = append(results, start+k)
		}
	}

	return newSet(results), nil
}

// parseSegment reads "n" or "a-b". The range dash is the first '-' after a
// digit, so "-3--1" is [-3, -1].
func parseSegment(part string) (int, int, error) {
	digit := strings.IndexFunc(part, func(r rune) bool { return r >= '0' && r <= '9' })
	if digit < 0 {
		return 0, 0, types.ErrInvalidRange{Part: part, Reason: "no digits"}
	}

	dash := strings.IndexByte(part[digit:], '-')
	if dash < 0 {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, 0, types.ErrInvalidRange{Part: part, Reason: "invalid number"}
		}
		return n, n, nil
	}
	dash += digit

	start, err1 := strconv.Atoi(strings.TrimSpace(part[:dash]))
	end, err2 := strconv.Atoi(strings.TrimSpace(part[dash+1:]))
	if err1 != nil || err2 != nil {
		return 0, 0, types.ErrInvalidRange{Part: part, Reason: "invalid numbers in range"}
	}

	if start > end {
		start, end = end, start
	}
	return start, end, nil
}
