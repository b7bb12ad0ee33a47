// Package blob stores uploaded campaign images. Two drivers exist: a
// local-disk store serving files under a static path prefix, and a Google
// Cloud Storage store returning public object URLs.
package blob

import (
	"context"
	"io"
)

// Store persists image blobs under caller-chosen names and returns the
// reference clients use to fetch them back.
type Store interface {
	// Save writes the blob and returns its public reference.
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
	// Remove deletes a previously saved blob by name.
	Remove(ctx context.Context, name string) error
}
