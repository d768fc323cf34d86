package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "epicblogs/internal/domain/errors"
	mockSvc "epicblogs/internal/mocks/service"
	"epicblogs/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mediaServiceFixtures holds all test dependencies for media service tests.
type mediaServiceFixtures struct {
	service usecase.MediaUsecase
	storage *mockSvc.MockFileStorage
}

func createTestMediaService(t *testing.T) mediaServiceFixtures {
	storage := mockSvc.NewMockFileStorage(t)

	svc := NewMediaService(MediaServiceParams{
		Storage: storage,
		Logger:  newDiscardLogger(),
	})

	return mediaServiceFixtures{
		service: svc,
		storage: storage,
	}
}

func TestMediaService_UploadImage(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	body := strings.NewReader("fake png bytes")

	var storedName string
	fx.storage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Run(func(ctx context.Context, name string, contentType string, r io.Reader) {
			storedName = name
		}).
		Return("https://cdn.example.com/some-object.png", nil)

	output, err := fx.service.UploadImage(ctx, usecase.UploadImageInput{
		Filename:    "holiday.png",
		ContentType: "image/png",
		Size:        int64(body.Len()),
		Reader:      body,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/some-object.png", output.URL)
	assert.True(t, strings.HasPrefix(storedName, "images/"))
	assert.True(t, strings.HasSuffix(storedName, ".png"))
	// The stored name is random; the original filename never leaks into it.
	assert.NotContains(t, storedName, "holiday")
}

func TestMediaService_UploadImage_UnsupportedType(t *testing.T) {
	fx := createTestMediaService(t)

	output, err := fx.service.UploadImage(context.Background(), usecase.UploadImageInput{
		Filename:    "resume.pdf",
		ContentType: "application/pdf",
		Size:        1024,
		Reader:      strings.NewReader("pdf"),
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
}

func TestMediaService_UploadImage_TooLarge(t *testing.T) {
	fx := createTestMediaService(t)

	output, err := fx.service.UploadImage(context.Background(), usecase.UploadImageInput{
		Filename:    "huge.jpg",
		ContentType: "image/jpeg",
		Size:        maxImageSize + 1,
		Reader:      strings.NewReader("jpeg"),
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
}

func TestMediaService_UploadImage_EmptyBody(t *testing.T) {
	fx := createTestMediaService(t)

	output, err := fx.service.UploadImage(context.Background(), usecase.UploadImageInput{
		Filename:    "empty.gif",
		ContentType: "image/gif",
		Size:        0,
		Reader:      strings.NewReader(""),
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
}

func TestMediaService_UploadImage_StorageFailure(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()

	fx.storage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/webp", mock.Anything).
		Return("", errors.New("bucket unavailable"))

	output, err := fx.service.UploadImage(ctx, usecase.UploadImageInput{
		Filename:    "pic.webp",
		ContentType: "image/webp",
		Size:        2048,
		Reader:      strings.NewReader("webp"),
	})

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestMediaService_RemoveImage(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()

	fx.storage.EXPECT().
		Delete(ctx, "images/2026/09/old-avatar.png").
		Return(nil)

	err := fx.service.RemoveImage(ctx, "https://cdn.example.com/images/2026/09/old-avatar.png")

	assert.NoError(t, err)
}

func TestMediaService_RemoveImage_IgnoresExternalURL(t *testing.T) {
	fx := createTestMediaService(t)

	// Provider-hosted avatars never touch the bucket.
	err := fx.service.RemoveImage(context.Background(), "https://lh3.googleusercontent.com/a/photo.jpg")

	assert.NoError(t, err)
	fx.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestMediaService_RemoveImage_StorageFailure(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()

	fx.storage.EXPECT().
		Delete(ctx, "images/2026/09/gone.png").
		Return(errors.New("bucket unavailable"))

	err := fx.service.RemoveImage(ctx, "https://cdn.example.com/images/2026/09/gone.png")

	assert.Error(t, err)
}
