package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"epicblogs/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*blobStorage, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Storage: &config.StorageConfig{
			BucketURL:     "file://" + dir,
			PublicBaseURL: "http://localhost:8080/uploads/",
		},
	}

	fs, err := NewBlobStorage(context.Background(), cfg)
	require.NoError(t, err)

	s, ok := fs.(*blobStorage)
	require.True(t, ok)
	t.Cleanup(func() { _ = s.Close() })

	return s, dir
}

func TestBlobStorage_Save(t *testing.T) {
	s, dir := newTestStorage(t)

	url, err := s.Save(context.Background(), "covers/test.png", "image/png", strings.NewReader("fake-png-bytes"))
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/covers/test.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "covers", "test.png"))
	assert.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestBlobStorage_Delete(t *testing.T) {
	s, dir := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Save(ctx, "doomed.txt", "text/plain", strings.NewReader("bye"))
	require.NoError(t, err)

	assert.NoError(t, s.Delete(ctx, "doomed.txt"))
	_, err = os.Stat(filepath.Join(dir, "doomed.txt"))
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing file is not an error
	assert.NoError(t, s.Delete(ctx, "doomed.txt"))
}

func TestBlobStorage_MissingBucketURL(t *testing.T) {
	fs, err := NewBlobStorage(context.Background(), &config.Config{})
	assert.Error(t, err)
	assert.Nil(t, fs)
}
