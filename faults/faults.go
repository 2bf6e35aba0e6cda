// Package faults defines the error kinds reported by the actor core.
//
// Specific errors wrap one of the kinds below, so callers can match the kind
// with errors.Is and still print a precise message.
package faults

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition marks a caller ordering bug: querying animation state
	// with none set, clamping before world bounds exist, empty frame sets.
	ErrPrecondition = errors.New("precondition violation")

	// ErrResourceLoad marks a missing or corrupt texture or tile map.
	ErrResourceLoad = errors.New("resource load failure")
)

// Precondition returns an error of kind ErrPrecondition.
func Precondition(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}

// ResourceLoad returns an error of kind ErrResourceLoad for path, keeping
// cause in the chain.
func ResourceLoad(path string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrResourceLoad, path, cause)
}
