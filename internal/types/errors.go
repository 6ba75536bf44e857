// Package types defines custom error types for rangesum.
package types

import "fmt"

// ErrMalformedToken indicates a token that is not a base-10 integer
type ErrMalformedToken struct {
	Token string
	Index int // position among the raw comma-delimited tokens
}

func (e ErrMalformedToken) Error() string {
	return fmt.Sprintf("malformed token %q at position %d", e.Token, e.Index)
}

// ErrUnsortedInput indicates a value that breaks strictly ascending order
type ErrUnsortedInput struct {
	Index int
	Prev  int
	Value int
}

func (e ErrUnsortedInput) Error() string {
	if e.Prev == e.Value {
		return fmt.Sprintf("duplicate value %d at index %d", e.Value, e.Index)
	}
	return fmt.Sprintf("value %d at index %d is not greater than %d", e.Value, e.Index, e.Prev)
}

// ErrInvalidRange indicates a part of a summary that is neither a number nor a range
type ErrInvalidRange struct {
	Part   string
	Reason string
}

func (e ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range %q: %s", e.Part, e.Reason)
}

// ErrRangeTooLarge indicates a range that would expand past the allowed size
type ErrRangeTooLarge struct {
	Start int
	End   int
	Limit int
}

func (e ErrRangeTooLarge) Error() string {
	return fmt.Sprintf("range %d-%d exceeds %d values", e.Start, e.End, e.Limit)
}

// ErrConfigInvalid indicates a configuration error
type ErrConfigInvalid struct {
	Path   string
	Reason string
}

func (e ErrConfigInvalid) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Path, e.Reason)
}

// ErrConfigNotFound indicates a configuration file doesn't exist
type ErrConfigNotFound struct {
	Path string
}

func (e ErrConfigNotFound) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

// ErrConfigExists indicates a configuration file would be overwritten
type ErrConfigExists struct {
	Path string
}

func (e ErrConfigExists) Error() string {
	return fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", e.Path)
}
