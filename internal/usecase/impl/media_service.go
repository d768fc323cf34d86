package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	deliverycontext "epicblogs/internal/delivery/context"
	domainerrors "epicblogs/internal/domain/errors"
	"epicblogs/internal/domain/service"
	"epicblogs/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Uploads above this size are rejected before touching the bucket.
const maxImageSize = 10 << 20 // 10 MiB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	storage service.FileStorage
	logger  *slog.Logger
}

// MediaServiceParams holds dependencies for mediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Storage service.FileStorage
	Logger  *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage validates and stores an image, returning its public URL.
// Stored names are random; the original filename only contributes its extension
// as a fallback when the content type is missing one.
func (srv *mediaService) UploadImage(ctx context.Context, input usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
	ext, ok := allowedImageTypes[strings.ToLower(input.ContentType)]
	if !ok {
		return nil, domainerrors.ErrUploadFailed.WrapMessage("unsupported image type")
	}
	if input.Size <= 0 || input.Size > maxImageSize {
		return nil, domainerrors.ErrUploadFailed.WrapMessage("image size out of range")
	}
	if input.Reader == nil {
		return nil, domainerrors.ErrUploadFailed.WrapMessage("empty upload")
	}

	name := path.Join(
		"images",
		time.Now().UTC().Format("2006/01"),
		uuid.New().String()+ext,
	)

	url, err := srv.storage.Save(ctx, name, input.ContentType, input.Reader)
	if err != nil {
		srv.log(ctx).Error("Failed to store uploaded image", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store image")
	}

	srv.log(ctx).Info("Image uploaded", slog.String("name", name))

	return &usecase.UploadImageOutput{URL: url}, nil
}

// RemoveImage deletes a previously uploaded image by its public URL.
// URLs that do not point into the upload area pass through untouched, so
// externally hosted avatars (e.g. from the identity provider) are safe here.
func (srv *mediaService) RemoveImage(ctx context.Context, url string) error {
	idx := strings.Index(url, "/images/")
	if idx < 0 {
		return nil
	}
	name := url[idx+1:]

	if err := srv.storage.Delete(ctx, name); err != nil {
		srv.log(ctx).Error("Failed to delete stored image", slog.String("name", name), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete image")
	}

	srv.log(ctx).Info("Image deleted", slog.String("name", name))

	return nil
}
