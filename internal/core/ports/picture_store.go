package ports

import (
	"context"
	"io"
)

// PictureStore persists uploaded profile images under generated names.
type PictureStore interface {
	// Store writes the image under a freshly generated name that keeps the
	// original file extension and returns the public path for the record's
	// picture field.
	Store(ctx context.Context, src io.Reader, originalFilename string) (string, error)
	// Delete removes a previously stored picture. A missing file is not an
	// error; callers treat any failure as non-fatal.
	Delete(ctx context.Context, path string) error
	// Managed reports whether path refers to a file this store owns, as
	// opposed to an external URL that must never be deleted.
	Managed(path string) bool
}

// CleanupQueue records picture paths whose deletion failed so a background
// worker can retry them.
type CleanupQueue interface {
	Push(ctx context.Context, path string) error
	// Pending returns the queued paths without removing them.
	Pending(ctx context.Context) ([]string, error)
	Remove(ctx context.Context, path string) error
}
