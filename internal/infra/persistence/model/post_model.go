package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Content       string    `gorm:"type:text;not null"`
	CoverURL      string    `gorm:"type:text"`
	ReadTimeValue int       `gorm:"not null;default:0"`
	ReadTimeUnit  string    `gorm:"type:varchar(20);not null;default:'min'"`
	AuthorID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Author     *UserModel          `gorm:"foreignKey:AuthorID"`
	Categories []PostCategoryModel `gorm:"foreignKey:PostID"`
	Ratings    []RatingModel       `gorm:"foreignKey:PostID"`
	Comments   []CommentModel      `gorm:"foreignKey:PostID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// PostCategoryModel mirrors the 'post_categories' table. One row per category tag,
// which keeps the category aggregation a plain GROUP BY.
type PostCategoryModel struct {
	PostID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category string    `gorm:"type:varchar(100);primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (PostCategoryModel) TableName() string {
	return "post_categories"
}

// RatingModel mirrors the 'post_ratings' table. One row per user per post.
type RatingModel struct {
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Score     int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "post_ratings"
}
