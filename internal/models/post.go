// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a message-board post. Comments are a query-time
// projection of the comment rows referencing this post, loaded on demand;
// they are never kept in sync as a live in-memory collection.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"size:50;not null;index" json:"author"`
	Comments  []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostDetail is the aggregated detail view assembled by the detail service:
// the post with its comments plus an independently-fetched like count.
type PostDetail struct {
	Post      *Post `json:"post"`
	LikeCount int64 `json:"like_count"`
}
