package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput     = errors.New("malformed input")
	ErrMLUnavailable      = errors.New("ml collaborator failure")
	ErrInvariantViolation = errors.New("internal invariant violation")
)

// URLParseError reports a matched URL substring that could not be decomposed.
type URLParseError struct {
	Raw string
	Err error
}

func (e *URLParseError) Error() string {
	return fmt.Sprintf("cannot parse url %q: %v", e.Raw, e.Err)
}

func (e *URLParseError) Unwrap() error {
	return e.Err
}
