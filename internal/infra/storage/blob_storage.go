// Package storage persists uploaded files through gocloud.dev blob buckets,
// so local disk and cloud object stores are interchangeable via configuration.
package storage

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register file:// bucket driver
	_ "gocloud.dev/blob/gcsblob"  // register gs:// bucket driver
	"gocloud.dev/gcerrors"

	"epicblogs/config"
	"epicblogs/internal/domain/service"
)

// blobStorage implements FileStorage on top of a gocloud blob bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage opens the configured bucket. Call Close on shutdown.
func NewBlobStorage(ctx context.Context, cfg *config.Config) (service.FileStorage, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s failed", cfg.Storage.BucketURL)
	}

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}, nil
}

// Save writes the file contents under the given name and returns its public URL.
func (s *blobStorage) Save(ctx context.Context, name string, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, name, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s failed", name)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", errors.Wrapf(err, "write %s failed", name)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "finish write for %s failed", name)
	}

	return s.publicBaseURL + "/" + name, nil
}

// Delete removes a previously saved file. Deleting a missing file is not an error.
func (s *blobStorage) Delete(ctx context.Context, name string) error {
	if err := s.bucket.Delete(ctx, name); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}
		return errors.Wrapf(err, "delete %s failed", name)
	}

	return nil
}

// Close releases the underlying bucket connection.
func (s *blobStorage) Close() error {
	return errors.Wrap(s.bucket.Close(), "close bucket failed")
}
