// Package recordstore provides a durable mapping from a logical collection
// name to a single JSON document. The portal keeps whole collections
// (students, config, tokens, logs, course catalogs) as one document each and
// rewrites them wholesale; repositories layer per-collection locking on top.
package recordstore

import (
	"context"
	"errors"
)

// ErrNoRecord is returned when a collection has never been written.
// Callers substitute a type-appropriate default.
var ErrNoRecord = errors.New("recordstore: no record")

// Store reads and writes whole collection documents.
type Store interface {
	// Read unmarshals the collection document into dest.
	Read(ctx context.Context, name string, dest interface{}) error
	// Write replaces the collection document with the given value.
	Write(ctx context.Context, name string, value interface{}) error
}
