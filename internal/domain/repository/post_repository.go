// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"epicblogs/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for content persistence.
var (
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("post not found")
	// ErrRatingNotFound is returned when a user has no rating for a post.
	ErrRatingNotFound = errors.New("rating not found")
)

// PostQuery describes optional filters and pagination for listing posts.
type PostQuery struct {
	// Category filters posts carrying the given category. Empty means no filter.
	Category string
	// AuthorID filters posts by author. Nil means no filter.
	AuthorID *uuid.UUID
	// Search matches against post titles, case insensitive. Empty means no filter.
	Search string
	// Page is the 1-based page number. Zero means the first page.
	Page int
	// PageSize limits the number of posts per page. Zero means the default.
	PageSize int
}

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post by its unique ID, including its author summary.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// List retrieves posts matching the query, newest first, with the total count
	// of posts matching before pagination.
	List(ctx context.Context, query PostQuery) ([]*entity.Post, int64, error)

	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// Update modifies an existing post entity in the storage.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post together with its comments and ratings.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListCategories returns each known category with the number of posts carrying it.
	ListCategories(ctx context.Context) ([]*entity.CategoryCount, error)

	// UpsertRating records or replaces a user's rating for a post.
	UpsertRating(ctx context.Context, rating *entity.Rating) error

	// FindRating retrieves a user's rating for a post.
	FindRating(ctx context.Context, postID, userID uuid.UUID) (*entity.Rating, error)

	// RatingSummary computes the average score and rating count for a post.
	RatingSummary(ctx context.Context, postID uuid.UUID) (*entity.RatingSummary, error)
}
