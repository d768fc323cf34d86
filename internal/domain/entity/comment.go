package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommentMaxLength bounds a comment body; the minimum is one character.
const CommentMaxLength = 1000

// Comment is a reader comment attached to a post.
type Comment struct {
	ID        uuid.UUID       `json:"id"`               // The unique identifier for the comment.
	PostID    uuid.UUID       `json:"postId"`           // The post this comment belongs to.
	AuthorID  uuid.UUID       `json:"authorId"`         // The account that wrote the comment.
	Author    *AccountSummary `json:"author,omitempty"` // Author projection, populated on reads.
	Content   string          `json:"content"`          // Comment body, sanitized before persistence.
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
