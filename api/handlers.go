package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taijii-c/portfolio-site-backend/database"
	"github.com/taijii-c/portfolio-site-backend/imagestore"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, images imagestore.Store) *routeHandlers {
	return &routeHandlers{
		homeHandler:    newHomeHandler(db.ProjectRepo(), db.ArticleRepo()),
		projectHandler: newProjectHandler(db.ProjectRepo(), images),
		articleHandler: newArticleHandler(db.ArticleRepo()),
		commentHandler: newCommentHandler(db.CommentRepo(), db.ArticleRepo()),
	}
}

// pageParam reads the optional ?page= query value. Anything missing or
// unparsable behaves as page 1; out-of-range values are clamped later by the
// pager.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// uuidParam parses a chi URL parameter as a uuid
func uuidParam(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}
