package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taijii-c/portfolio-site-backend/models"
)

// homeItemCount is how many of each entity the landing page shows.
const homeItemCount = 3

type homeHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo projectStore
	articleRepo articleStore
}

func newHomeHandler(projectRepo projectStore, articleRepo articleStore) homeHandler {
	logger := log.With().Str("handlerName", "homeHandler").Logger()

	return homeHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		articleRepo: articleRepo,
	}
}

// getHome returns the landing page read model: the latest projects and articles
func (h homeHandler) getHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindLatest(homeItemCount)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find latest projects", "projects", err))
			return
		}

		articles, err := h.articleRepo.FindLatest(homeItemCount)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find latest articles", "articles", err))
			return
		}

		if projects == nil {
			projects = []*models.Project{}
		}
		if articles == nil {
			articles = []*models.Article{}
		}

		h.responder.WriteJSON(w, HomeView{
			LatestProjects: projects,
			LatestArticles: articles,
		})
	}
}
