package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a reader comment attached to one article. Comments are
// created and deleted, never edited.
type Comment struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Content       string    `json:"content" db:"content" gorm:"type:varchar(1000);not null"`
	PublishedDate time.Time `json:"publishedDate" db:"published_date" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	ArticleID     uuid.UUID `json:"articleId" db:"article_id" gorm:"type:uuid;not null;index:idx_comment_article_id;constraint:OnDelete:CASCADE"`
	AuthorID      string    `json:"authorId" db:"author_id" gorm:"type:text;not null;index:idx_comment_author_id"`

	Article *Article `json:"article,omitempty" gorm:"foreignKey:ArticleID;references:ID"`
	Author  *User    `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
}
