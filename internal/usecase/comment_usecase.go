package usecase

import (
	"context"

	"epicblogs/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddCommentInput defines the data required to comment on a post.
type AddCommentInput struct {
	Content string `json:"content" validate:"required"`
}

// UpdateCommentInput defines the data required to edit a comment.
type UpdateCommentInput struct {
	Content string `json:"content" validate:"required"`
}

// CommentUsecase defines the interface for comment-related business operations.
type CommentUsecase interface {
	ListComments(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)
	AddComment(ctx context.Context, postID, authorID uuid.UUID, input AddCommentInput) (*entity.Comment, error)
	UpdateComment(ctx context.Context, commentID, userID uuid.UUID, input UpdateCommentInput) (*entity.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error
}
