package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"epicblogs/internal/delivery/http/middleware"
	"epicblogs/internal/delivery/http/response"
	"epicblogs/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPosts handles the paginated post feed with optional filters.
func (h *PostHandler) ListPosts(c echo.Context) error {
	input := usecase.ListPostsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	if page := c.QueryParam("page"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "page must be a number")
		}
		input.Page = n
	}

	if limit := c.QueryParam("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "limit must be a number")
		}
		input.PageSize = n
	}

	if author := c.QueryParam("author"); author != "" {
		authorID, err := uuid.Parse(author)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "author must be a valid ID")
		}
		input.AuthorID = &authorID
	}

	page, err := h.uc.ListPosts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// ListCategories handles the category list with post counts.
func (h *PostHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// GetPost handles a single post read.
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post ID")
	}

	post, err := h.uc.GetPost(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post)
}

// CreatePost handles publishing a new post as the authenticated user.
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing user identity")
	}

	var input usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	post, err := h.uc.CreatePost(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post)
}

// UpdatePost handles edits to a post by its author.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing user identity")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post ID")
	}

	var input usecase.UpdatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	post, err := h.uc.UpdatePost(c.Request().Context(), postID, userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post)
}

// DeletePost handles deletion of a post by its author.
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing user identity")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post ID")
	}

	if err := h.uc.DeletePost(c.Request().Context(), postID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Post deleted"})
}

// GetRating handles the public rating summary for a post.
func (h *PostHandler) GetRating(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post ID")
	}

	summary, err := h.uc.GetRatingSummary(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// GetMyRating handles the authenticated reader's own rating for a post.
func (h *PostHandler) GetMyRating(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing user identity")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post ID")
	}

	rating, err := h.uc.GetUserRating(c.Request().Context(), postID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rating)
}

// RatePost handles a reader scoring a post. Re-rating replaces the old score.
func (h *PostHandler) RatePost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing user identity")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post ID")
	}

	var input usecase.RatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	summary, err := h.uc.RatePost(c.Request().Context(), postID, userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}
