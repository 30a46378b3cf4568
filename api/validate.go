package api

import (
	"fmt"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxURLLen         = 500
	maxCommentLen     = 1000
)

// FieldError is one field-level validation failure. Validation always runs to
// completion so the caller gets every failure at once, not just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProjectForm is the submitted input for creating or editing a project. The
// image arrives separately as a multipart file part.
type ProjectForm struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DateCreated *time.Time `json:"dateCreated,omitempty"`
	GithubURL   string     `json:"githubUrl,omitempty"`
	LiveURL     string     `json:"liveUrl,omitempty"`
}

// ArticleForm is the submitted input for creating or editing an article.
// AuthorID and PublishedDate are accepted in the payload but never trusted:
// creation takes them from the acting principal and the clock, edits force
// the stored values back.
type ArticleForm struct {
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	AuthorID      string     `json:"authorId,omitempty"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
}

// CommentForm is the submitted input for a new comment, and doubles as the
// draft embedded in ArticleDetailsView.
type CommentForm struct {
	Content   string    `json:"content"`
	ArticleID uuid.UUID `json:"articleId"`
}

func validateProjectForm(f ProjectForm) []FieldError {
	var fieldErrs []FieldError

	fieldErrs = appendRequired(fieldErrs, "title", f.Title, maxTitleLen)
	fieldErrs = appendRequired(fieldErrs, "description", f.Description, maxDescriptionLen)
	fieldErrs = appendOptionalURL(fieldErrs, "githubUrl", f.GithubURL)
	fieldErrs = appendOptionalURL(fieldErrs, "liveUrl", f.LiveURL)

	return fieldErrs
}

func validateArticleForm(f ArticleForm) []FieldError {
	var fieldErrs []FieldError

	fieldErrs = appendRequired(fieldErrs, "title", f.Title, maxTitleLen)
	if f.Content == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "content", Message: "content is required"})
	}

	return fieldErrs
}

func validateCommentForm(f CommentForm) []FieldError {
	var fieldErrs []FieldError

	if f.Content == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "content", Message: "content is required"})
	} else if utf8.RuneCountInString(f.Content) > maxCommentLen {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   "content",
			Message: fmt.Sprintf("content must be at most %d characters", maxCommentLen),
		})
	}

	return fieldErrs
}

func appendRequired(fieldErrs []FieldError, field, value string, maxLen int) []FieldError {
	if value == "" {
		return append(fieldErrs, FieldError{Field: field, Message: field + " is required"})
	}
	// Caps are in characters, not bytes; multibyte input must not shrink them.
	if utf8.RuneCountInString(value) > maxLen {
		return append(fieldErrs, FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters", field, maxLen),
		})
	}
	return fieldErrs
}

func appendOptionalURL(fieldErrs []FieldError, field, value string) []FieldError {
	if value == "" {
		return fieldErrs
	}
	if utf8.RuneCountInString(value) > maxURLLen {
		return append(fieldErrs, FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters", field, maxURLLen),
		})
	}
	parsed, err := url.ParseRequestURI(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return append(fieldErrs, FieldError{Field: field, Message: field + " must be a valid URL"})
	}
	return fieldErrs
}
