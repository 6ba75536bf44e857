package ranges

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dylan-marx/rangesum/internal/types"
)

// Delimiter separates tokens in raw input and parts in a summary.
const Delimiter = ","

// Collect parses a comma-delimited list such as "1, 3,a,,2" into a Set.
// Empty tokens and tokens that are not base-10 integers are dropped.
func Collect(input string) Set {
	s, _ := inspect(input, false)
	return s
}

// CollectPtr is Collect for callers that model absent input as nil.
func CollectPtr(input *string) Set {
	if input == nil {
		return Set{}
	}
	return Collect(*input)
}

// Inspect parses input like Collect and also returns every token that was
// dropped because it is not an integer, in input order.
func Inspect(input string) (Set, []types.ErrMalformedToken) {
	return inspect(input, true)
}

// CollectStrict parses input like Collect, returning an error that joins one
// types.ErrMalformedToken per dropped token. The Set is returned either way.
func CollectStrict(input string) (Set, error) {
	s, bad := inspect(input, true)
	if len(bad) == 0 {
		return s, nil
	}

	errs := make([]error, len(bad))
	for i, b := range bad {
		errs[i] = b
	}
	return s, errors.Join(errs...)
}

func inspect(input string, report bool) (Set, []types.ErrMalformedToken) {
	if strings.TrimSpace(input) == "" {
		return Set{}, nil
	}

	var (
		numbers []int
		bad     []types.ErrMalformedToken
	)

	for i, part := range strings.Split(input, Delimiter) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			if report {
				bad = append(bad, types.ErrMalformedToken{Token: part, Index: i})
			}
			continue
		}
		numbers = append(numbers, n)
	}

	return newSet(numbers), bad
}
