package graph

import (
	"errors"
	"fmt"
)

// ErrNotARoot is returned by AddLibraryPackage when the candidate element
// has an owner: only top-level elements may be registered as a library
// package (spec §4.2).
var ErrNotARoot = errors.New("graph: only top-level elements may be registered as a library package")

// ErrUnknownElement is returned when an operation references an element
// identity the graph does not contain.
var ErrUnknownElement = errors.New("graph: unknown element identity")

// ErrDuplicateID names an identity that is already present in the graph.
// AddElement and AddRelationship do not check for duplicates and return no
// error: re-inserting an identity replaces the stored value.
var ErrDuplicateID = errors.New("graph: identity already present in graph")

func wrapNotARoot(id fmt.Stringer) error {
	return fmt.Errorf("%s: %w", id.String(), ErrNotARoot)
}

func wrapUnknownElement(id fmt.Stringer) error {
	return fmt.Errorf("%s: %w", id.String(), ErrUnknownElement)
}

func wrapDuplicateID(id fmt.Stringer) error {
	return fmt.Errorf("%s: %w", id.String(), ErrDuplicateID)
}

// IsNotARootErr reports whether err is or wraps ErrNotARoot.
func IsNotARootErr(err error) bool { return errors.Is(err, ErrNotARoot) }

// IsUnknownElementErr reports whether err is or wraps ErrUnknownElement.
func IsUnknownElementErr(err error) bool { return errors.Is(err, ErrUnknownElement) }

// IsDuplicateIDErr reports whether err is or wraps ErrDuplicateID.
func IsDuplicateIDErr(err error) bool { return errors.Is(err, ErrDuplicateID) }
