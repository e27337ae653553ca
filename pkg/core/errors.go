package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidFilterPattern = errors.New("invalid filter pattern")
	ErrUnsupportedFormat    = errors.New("unsupported notes format")
)

// InvalidFilterPatternError reports a filter argument that is not a valid
// regular expression.
type InvalidFilterPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidFilterPatternError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrInvalidFilterPattern, e.Pattern, e.Err)
}

// Unwrap exposes the underlying regexp error.
func (e *InvalidFilterPatternError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidFilterPattern as a match so callers can use errors.Is.
func (e *InvalidFilterPatternError) Is(target error) bool {
	return target == ErrInvalidFilterPattern
}
