package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidFactor    = errors.New("scale factor must be greater than zero")
	ErrInvalidRange     = errors.New("range low bound exceeds high bound")
	ErrUnknownServings  = errors.New("recipe servings are unknown")
	ErrNoRecipe         = errors.New("no recipe found in document")
	ErrUnknownOperation = errors.New("unknown operation")
)

// ParseFailure reports a quantity or unit token that could not be
// understood. The line parser recovers from it locally; it never
// escapes as a fatal error.
type ParseFailure struct {
	Input  string
	Reason string
}

func (e *ParseFailure) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("cannot parse %q", e.Input)
	}
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}
