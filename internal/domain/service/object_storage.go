// Package service defines interfaces for external collaborators of the
// pipeline: object storage, the warehouse, and the transformation tool.
package service

import (
	"context"
)

// ObjectStorage defines the interface for the raw-data bucket the pipeline
// uploads partitions to.
type ObjectStorage interface {
	// Upload copies the local file to the given bucket key, overwriting any
	// existing object.
	Upload(ctx context.Context, key string, localPath string) error

	// Exists reports whether an object is already present at the given key.
	Exists(ctx context.Context, key string) (bool, error)

	// Close releases the bucket handle.
	Close() error
}
