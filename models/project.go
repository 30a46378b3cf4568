package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project shown on the public site
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Description string    `json:"description" db:"description" gorm:"type:varchar(2000);not null"`
	DateCreated time.Time `json:"dateCreated" db:"date_created" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	GithubURL   *string   `json:"githubUrl,omitempty" db:"github_url" gorm:"type:varchar(500)"`
	LiveURL     *string   `json:"liveUrl,omitempty" db:"live_url" gorm:"type:varchar(500)"`
	ImagePath   *string   `json:"imagePath,omitempty" db:"image_path" gorm:"type:varchar(500)"`
	Version     int64     `json:"-" db:"version" gorm:"not null;default:1"`
}
