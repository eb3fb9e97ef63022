// Package storage defines the interface for a blob storage provider used to
// publish job snapshots. The abstraction keeps snapshot generation
// independent of where the files end up (Google Cloud Storage or the local
// filesystem).
package storage

import (
	"context"
	"io"
)

// Provider is a destination for generated snapshot files.
type Provider interface {
	// PutObject uploads the reader's content under the given object path and
	// returns a URI identifying the stored object.
	PutObject(ctx context.Context, path string, contentType string, r io.Reader) (string, error)
}

// NoOpProvider discards every object. Useful for dry runs where snapshots
// are generated but not published.
type NoOpProvider struct{}

// PutObject for NoOpProvider does nothing and returns an empty URI.
func (n *NoOpProvider) PutObject(_ context.Context, _ string, _ string, _ io.Reader) (string, error) {
	return "", nil
}
