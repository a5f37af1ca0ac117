package refexpand

import (
	"errors"
	"fmt"
)

// Sentinel errors for strict-mode expansion. Lenient expanders never
// return either; only sink write failures can fail a lenient expansion.
var (
	// ErrMalformedReference indicates the substitution character was
	// followed by text matching none of the configured reference forms.
	ErrMalformedReference = errors.New("malformed substitution reference")

	// ErrUnknownGroup indicates a reference resolved to no capture group.
	ErrUnknownGroup = errors.New("unknown capture group")
)

// SyntaxError reports a malformed substitution site in strict mode.
type SyntaxError struct {
	// Offset is the byte offset of the failing substitution character.
	Offset int
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid substitution sequence at position %d", e.Offset)
}

// Unwrap returns ErrMalformedReference for errors.Is support.
func (e *SyntaxError) Unwrap() error {
	return ErrMalformedReference
}

// GroupError reports a syntactically valid reference that resolved to no
// capture group in strict mode.
type GroupError struct {
	// Group is the unresolved group name or index as written.
	Group string
}

// Error implements the error interface.
func (e *GroupError) Error() string {
	return fmt.Sprintf("invalid substitution group: %q", e.Group)
}

// Unwrap returns ErrUnknownGroup for errors.Is support.
func (e *GroupError) Unwrap() error {
	return ErrUnknownGroup
}
