package usecase

import (
	"context"
	"io"
)

// UploadImageInput carries one uploaded image file.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadImageOutput returns the public URL of the stored image.
type UploadImageOutput struct {
	URL string
}

// MediaUsecase defines the interface for file upload operations.
type MediaUsecase interface {
	// UploadImage validates and stores an image, returning its public URL.
	UploadImage(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error)

	// RemoveImage deletes a previously uploaded image by its public URL.
	// URLs outside the upload area are ignored.
	RemoveImage(ctx context.Context, url string) error
}
