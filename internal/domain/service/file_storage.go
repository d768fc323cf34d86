package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for persisting uploaded files.
// Implementations decide where the bytes live (local disk, GCS, S3) and
// return a URL under which the file can be served.
type FileStorage interface {
	// Save writes the file contents under the given name and returns its public URL.
	Save(ctx context.Context, name string, contentType string, r io.Reader) (string, error)

	// Delete removes a previously saved file. Deleting a missing file is not an error.
	Delete(ctx context.Context, name string) error
}
