package handler

import (
	"log/slog"
	"net/http"

	"epicblogs/internal/delivery/http/response"
	"epicblogs/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for file upload handlers.
type UploadHandler struct {
	uc     usecase.MediaUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.MediaUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadImage stores an image from a multipart form and returns its public URL.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	output, err := h.uc.UploadImage(c.Request().Context(), usecase.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}
