package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"epicblogs/internal/delivery/http/middleware"
	"epicblogs/internal/delivery/http/validator"
	"epicblogs/internal/domain/entity"
	mockUc "epicblogs/internal/mocks/usecase"
	"epicblogs/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestPostHandler(t *testing.T) (*PostHandler, *mockUc.MockPostUsecase) {
	uc := mockUc.NewMockPostUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewPostHandler(uc, logger), uc
}

func newPostUpdateContext(userID, postID uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPut, "/posts/"+postID.String(), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(postID.String())
	c.Set(middleware.ContextKeyUserID, userID)

	return c, rec
}

func TestPostHandler_UpdatePost_RejectsEmptyTitle(t *testing.T) {
	h, uc := newTestPostHandler(t)

	c, rec := newPostUpdateContext(uuid.New(), uuid.New(), `{"title":""}`)

	err := h.UpdatePost(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	uc.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPostHandler_UpdatePost_ValidInput(t *testing.T) {
	h, uc := newTestPostHandler(t)

	userID := uuid.New()
	postID := uuid.New()

	c, rec := newPostUpdateContext(userID, postID, `{"title":"Reworked title"}`)

	uc.EXPECT().
		UpdatePost(mock.Anything, postID, userID, mock.MatchedBy(func(input usecase.UpdatePostInput) bool {
			return input.Title != nil && *input.Title == "Reworked title"
		})).
		Return(&entity.Post{ID: postID, Title: "Reworked title", AuthorID: userID}, nil)

	err := h.UpdatePost(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reworked title")
}
