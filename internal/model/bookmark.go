package model

import "time"

// Bookmark marks a know-your-rights article for one user. ArticleID is an
// opaque reference into the externally hosted article catalog; article
// content is not stored here.
type Bookmark struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OwnerID   string    `json:"owner_id" gorm:"size:64;uniqueIndex:idx_owner_article;not null"`
	ArticleID string    `json:"article_id" gorm:"size:100;uniqueIndex:idx_owner_article;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
