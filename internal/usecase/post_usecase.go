package usecase

import (
	"context"

	"epicblogs/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListPostsInput defines optional filters and pagination for browsing posts.
type ListPostsInput struct {
	Category string
	AuthorID *uuid.UUID
	Search   string
	Page     int
	PageSize int
}

// CreatePostInput defines the data required to publish a post.
type CreatePostInput struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Categories []string `json:"categories"`
	CoverURL   string   `json:"coverUrl"`
}

// UpdatePostInput defines the fields an author may change on their post.
// Nil fields are left untouched.
type UpdatePostInput struct {
	Title      *string   `json:"title,omitempty" validate:"omitempty,min=1"`
	Content    *string   `json:"content,omitempty" validate:"omitempty,min=1"`
	Categories *[]string `json:"categories,omitempty"`
	CoverURL   *string   `json:"coverUrl,omitempty"`
}

// RatePostInput records a reader's score for a post.
type RatePostInput struct {
	Score int `json:"score" validate:"required,min=1,max=5"`
}

// --- Output DTOs ---

// PostPage is one page of posts plus the total match count for pagination.
type PostPage struct {
	Posts      []*entity.Post `json:"posts"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// PostUsecase defines the interface for post-related business operations.
type PostUsecase interface {
	ListPosts(ctx context.Context, input ListPostsInput) (*PostPage, error)
	GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	CreatePost(ctx context.Context, authorID uuid.UUID, input CreatePostInput) (*entity.Post, error)
	UpdatePost(ctx context.Context, postID, userID uuid.UUID, input UpdatePostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, postID, userID uuid.UUID) error
	ListCategories(ctx context.Context) ([]*entity.CategoryCount, error)
	RatePost(ctx context.Context, postID, userID uuid.UUID, input RatePostInput) (*entity.RatingSummary, error)
	GetRatingSummary(ctx context.Context, postID uuid.UUID) (*entity.RatingSummary, error)
	GetUserRating(ctx context.Context, postID, userID uuid.UUID) (*entity.Rating, error)
}
