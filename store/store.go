package store

import (
	"context"
	"errors"
	"strings"
)

// Document is one JSON-shaped record held at a key path.
type Document = map[string]any

// ErrNotFound is returned by Get, Update and Delete when no document
// exists at the requested path.
var ErrNotFound = errors.New("record not found")

// Store is a hierarchical key-path document store. Paths are
// slash-delimited ("moods/<user_id>/<entry_id>"); a scope path is the
// parent under which child documents live.
//
// There are no transactions and no optimistic concurrency: concurrent
// writers to the same path race with last-write-wins. Create followed by
// Set is not atomic either; a crash in between leaves a reserved id with
// no document behind, which List skips.
type Store interface {
	// Create generates a unique id under scope and reserves it.
	Create(ctx context.Context, scope string) (string, error)
	// Set overwrites the document at path.
	Set(ctx context.Context, path string, doc Document) error
	// Get reads the document at path, ErrNotFound when absent.
	Get(ctx context.Context, path string) (Document, error)
	// Update shallow-merges fields into the document at path.
	Update(ctx context.Context, path string, fields Document) error
	// Delete removes the document at path, ErrNotFound when absent.
	Delete(ctx context.Context, path string) error
	// List returns every child document under scope, keyed by id.
	List(ctx context.Context, scope string) (map[string]Document, error)
}

// Join builds a slash-delimited key path.
func Join(parts ...string) string {
	return strings.Join(parts, "/")
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// splitPath returns the scope and final segment of a path.
func splitPath(path string) (scope, id string) {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}
