package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReadTime is the estimated reading time displayed on a post card.
type ReadTime struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

// Post is a published blog article.
type Post struct {
	ID         uuid.UUID       `json:"id"`                 // The unique identifier for the post.
	Title      string          `json:"title"`              // Post title.
	Content    string          `json:"content"`            // Post body, sanitized before persistence.
	Categories []string        `json:"categories"`         // Free-form category labels.
	CoverURL   string          `json:"coverUrl,omitempty"` // URL of the cover image in object storage.
	ReadTime   ReadTime        `json:"readTime"`           // Estimated reading time.
	AuthorID   uuid.UUID       `json:"authorId"`           // The account that owns the post.
	Author     *AccountSummary `json:"author,omitempty"`   // Author projection, populated on reads.
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Rating is a single user's 1..5 score for a post. A user rates a post at
// most once; re-rating replaces the previous score.
type Rating struct {
	PostID    uuid.UUID `json:"postId"`
	UserID    uuid.UUID `json:"userId"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RatingSummary aggregates all ratings of a post.
type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int64   `json:"totalRatings"`
}

// CategoryCount is a category label with the number of posts carrying it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
