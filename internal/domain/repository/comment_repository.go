// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"epicblogs/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ListByPost retrieves all comments on a post, newest first, including author summaries.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)

	// Create persists a new comment entity to the storage.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update modifies an existing comment entity in the storage.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment.
	Delete(ctx context.Context, id uuid.UUID) error
}
