package models

import (
	"time"

	"github.com/google/uuid"
)

// Article represents a published blog article with its author.
// AuthorID and PublishedDate are fixed at creation time and never change,
// even across edits.
type Article struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title         string    `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Content       string    `json:"content" db:"content" gorm:"type:text;not null"`
	PublishedDate time.Time `json:"publishedDate" db:"published_date" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	AuthorID      string    `json:"authorId" db:"author_id" gorm:"type:text;not null;index:idx_article_author_id"`
	Version       int64     `json:"-" db:"version" gorm:"not null;default:1"`

	Author   *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ArticleID;references:ID;constraint:OnDelete:CASCADE"`
}
