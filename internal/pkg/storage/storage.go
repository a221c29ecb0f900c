package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage holds onboarding documents. The local-disk implementation
// serves them back under the public /uploads/ path.
type FileStorage interface {
	// Upload stores a file and returns the path it is retrievable under
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a stored file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file; deleting a missing file is not an error
	Delete(ctx context.Context, path string) error

	// GetURL resolves a stored path to a client-facing URL
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// Exists reports whether a file is stored at path
	Exists(ctx context.Context, path string) (bool, error)
}
