// Package capstore provides persistent storage for capture sets.
//
// A capture set is the named and indexed group text produced by one
// pattern match. Batch pipelines match once, save the bindings under a
// set ID, and expand templates against them later, possibly from another
// process. Bindings implements refexpand.Captures, so a loaded set plugs
// directly into an expander.
package capstore

import (
	"errors"
	"time"
)

// Bindings holds the group text of one capture set.
// The zero value resolves nothing. Indexed[0] is the whole match.
type Bindings struct {
	Named   map[string]string
	Indexed map[int]string
}

// Name implements refexpand.Captures.
func (b Bindings) Name(name string) (string, bool) {
	text, ok := b.Named[name]
	return text, ok
}

// Index implements refexpand.Captures.
func (b Bindings) Index(i int) (string, bool) {
	text, ok := b.Indexed[i]
	return text, ok
}

// clone returns a deep copy so stored bindings and caller maps stay
// independent.
func (b Bindings) clone() Bindings {
	c := Bindings{}
	if b.Named != nil {
		c.Named = make(map[string]string, len(b.Named))
		for k, v := range b.Named {
			c.Named[k] = v
		}
	}
	if b.Indexed != nil {
		c.Indexed = make(map[int]string, len(b.Indexed))
		for k, v := range b.Indexed {
			c.Indexed[k] = v
		}
	}
	return c
}

// Store persists capture sets by ID.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores the bindings for a capture set.
	// Overwrites an existing set with the same ID.
	Save(setID string, b Bindings) error

	// Load retrieves a capture set.
	// Returns ErrNotFound if the set doesn't exist.
	Load(setID string) (Bindings, error)

	// List returns metadata for all stored sets, ordered by save time.
	// Returns an empty slice (not an error) when the store is empty.
	List() ([]Info, error)

	// Delete removes a capture set.
	// Returns nil if the set doesn't exist.
	Delete(setID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides capture set metadata without loading the bindings.
type Info struct {
	SetID     string
	Groups    int
	Timestamp time.Time
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a capture set doesn't exist.
	ErrNotFound = errors.New("capture set not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("capture store closed")
)
