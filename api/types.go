package api

import (
	"github.com/taijii-c/portfolio-site-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	homeHandler    homeHandler
	projectHandler projectHandler
	articleHandler articleHandler
	commentHandler commentHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// ArticleDetailsView is the composite read model for one article page: the
// article with its author, the comment thread newest first, and a draft
// comment the rendering layer turns into the reply box. After a rejected
// comment submission the draft echoes the rejected input instead of being
// empty.
type ArticleDetailsView struct {
	Article    models.Article   `json:"article"`
	Comments   []models.Comment `json:"comments"`
	NewComment CommentForm      `json:"newComment"`
}

// HomeView carries the landing page's read model: the freshest few projects
// and articles.
type HomeView struct {
	LatestProjects []*models.Project `json:"latestProjects"`
	LatestArticles []*models.Article `json:"latestArticles"`
}

// ValidationFailure is the 400 payload for rejected input. Input echoes the
// submitted values unchanged so the form can redisplay them; View is set
// instead for comment submissions, carrying the rebuilt article page with
// the draft filled in.
type ValidationFailure struct {
	Error  string              `json:"error"`
	Fields []FieldError        `json:"fields"`
	Input  any                 `json:"input,omitempty"`
	View   *ArticleDetailsView `json:"view,omitempty"`
}
