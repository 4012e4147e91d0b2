// Package parser reads a pack's locations file into the location forest.
package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedLocation indicates a location or coordinate entry that does
// not have the expected shape.
var ErrMalformedLocation = errors.New("malformed location")

// LocationError describes a malformed node at a position in the forest.
type LocationError struct {
	// Path is the index path of the node, e.g. "[2].children[0]".
	Path string
	// Name is the node's name, if it has one.
	Name string
	Err  error
}

func (e *LocationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("location %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("location %s (%q): %v", e.Path, e.Name, e.Err)
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedLocation, fmt.Sprintf(format, args...))
}
