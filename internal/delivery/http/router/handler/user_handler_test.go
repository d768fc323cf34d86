package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"epicblogs/internal/delivery/http/middleware"
	"epicblogs/internal/domain/entity"
	mockUc "epicblogs/internal/mocks/usecase"
	"epicblogs/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserHandler(t *testing.T) (*UserHandler, *mockUc.MockUserUsecase, *mockUc.MockMediaUsecase) {
	uc := mockUc.NewMockUserUsecase(t)
	media := mockUc.NewMockMediaUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserHandler(uc, media, logger), uc, media
}

func newAvatarUploadContext(t *testing.T, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="file"; filename="me.png"`},
		"Content-Type":        {"image/png"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("png bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/users/me/avatar", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	return c, rec
}

func TestUserHandler_UploadAvatar_RemovesReplacedAvatar(t *testing.T) {
	h, uc, media := newTestUserHandler(t)

	userID := uuid.New()
	oldURL := "https://cdn.example.com/images/2026/08/old.png"
	newURL := "https://cdn.example.com/images/2026/09/new.png"

	c, rec := newAvatarUploadContext(t, userID)

	uc.EXPECT().GetProfile(mock.Anything, userID).Return(&entity.User{
		ID:        userID,
		AvatarURL: oldURL,
	}, nil)
	media.EXPECT().
		UploadImage(mock.Anything, mock.AnythingOfType("usecase.UploadImageInput")).
		Return(&usecase.UploadImageOutput{URL: newURL}, nil)
	uc.EXPECT().
		UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(input usecase.UpdateProfileInput) bool {
			return input.AvatarURL != nil && *input.AvatarURL == newURL
		})).
		Return(&entity.User{ID: userID, AvatarURL: newURL}, nil)
	media.EXPECT().RemoveImage(mock.Anything, oldURL).Return(nil)

	err := h.UploadAvatar(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), newURL)
}

func TestUserHandler_UploadAvatar_FirstAvatarSkipsRemoval(t *testing.T) {
	h, uc, media := newTestUserHandler(t)

	userID := uuid.New()
	newURL := "https://cdn.example.com/images/2026/09/first.png"

	c, rec := newAvatarUploadContext(t, userID)

	uc.EXPECT().GetProfile(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
	media.EXPECT().
		UploadImage(mock.Anything, mock.AnythingOfType("usecase.UploadImageInput")).
		Return(&usecase.UploadImageOutput{URL: newURL}, nil)
	uc.EXPECT().
		UpdateProfile(mock.Anything, userID, mock.AnythingOfType("usecase.UpdateProfileInput")).
		Return(&entity.User{ID: userID, AvatarURL: newURL}, nil)

	err := h.UploadAvatar(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	media.AssertNotCalled(t, "RemoveImage", mock.Anything, mock.Anything)
}
