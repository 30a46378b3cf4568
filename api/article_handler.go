package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taijii-c/portfolio-site-backend/authz"
	"github.com/taijii-c/portfolio-site-backend/errs"
	"github.com/taijii-c/portfolio-site-backend/models"
	"github.com/taijii-c/portfolio-site-backend/pagination"
)

type articleHandler struct {
	responder   Responder
	logger      zerolog.Logger
	articleRepo articleStore
}

func newArticleHandler(articleRepo articleStore) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		articleRepo: articleRepo,
	}
}

// buildArticleDetails aggregates one article with its ordered comment thread
// and a draft comment for the reply box. The draft defaults to empty with
// the article id pre-filled; callers re-aggregating after a rejected
// submission pass the rejected draft instead so typed content is not lost.
// Returns nil when the article does not exist.
func buildArticleDetails(articles articleStore, articleID uuid.UUID, draft *CommentForm) (*ArticleDetailsView, error) {
	article, err := articles.FindByIDWithComments(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}

	comments := article.Comments
	if comments == nil {
		comments = []models.Comment{}
	}
	article.Comments = nil

	newComment := CommentForm{ArticleID: articleID}
	if draft != nil {
		newComment = *draft
		newComment.ArticleID = articleID
	}

	return &ArticleDetailsView{
		Article:    *article,
		Comments:   comments,
		NewComment: newComment,
	}, nil
}

// listArticles returns one page of articles with their authors, newest first
func (h articleHandler) listArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.articleRepo.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count articles", "articles", err))
			return
		}

		pager := pagination.New(count, pageParam(r), pagination.DefaultPageSize)

		articles, err := h.articleRepo.FindPage(pager.Offset(), pager.Limit())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find articles", "articles", err))
			return
		}

		h.responder.WriteJSON(w, pagination.NewPage(pager, articles))
	}
}

// getArticle returns the aggregated detail view for one article
func (h articleHandler) getArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, ok := uuidParam(r, "articleID")
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid articleID"))
			return
		}

		view, err := buildArticleDetails(h.articleRepo, articleID, nil)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find article", "article", err))
			return
		}
		if view == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("article not found"))
			return
		}

		h.responder.WriteJSON(w, view)
	}
}

// createArticle publishes a new article. The author is the acting principal
// and the publish date is now; any values for either in the payload are
// ignored.
func (h articleHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		form, err := h.decodeArticleForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if fieldErrs := validateArticleForm(form); len(fieldErrs) > 0 {
			h.responder.WriteValidationFailure(w, fieldErrs, form)
			return
		}

		article := models.Article{
			Title:         form.Title,
			Content:       form.Content,
			AuthorID:      principal.ID,
			PublishedDate: time.Now(),
		}

		if err := h.articleRepo.Add(&article); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create article", "article", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, article)
	}
}

// updateArticle edits an article's title and content. Ownership is decided
// against the stored record's author, so a forged author field in the
// payload cannot widen access, and the stored author and publish date are
// forced back regardless of what was submitted.
func (h articleHandler) updateArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		articleID, ok := uuidParam(r, "articleID")
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid articleID"))
			return
		}

		article, err := h.articleRepo.FindByID(articleID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find article", "article", err))
			return
		}
		if article == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("article not found"))
			return
		}

		if !authz.CanMutate(principal, article.AuthorID) {
			h.responder.WriteError(w, errs.NewForbiddenError("not the author of this article"))
			return
		}

		form, err := h.decodeArticleForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if fieldErrs := validateArticleForm(form); len(fieldErrs) > 0 {
			h.responder.WriteValidationFailure(w, fieldErrs, form)
			return
		}

		// Only title and content are mutable; author and publish date keep
		// the stored values already on the loaded record.
		article.Title = form.Title
		article.Content = form.Content

		if err := h.articleRepo.Update(article); err != nil {
			if errs.IsConcurrentUpdate(err) {
				h.writeUpdateConflict(w, articleID)
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update article", "article", err))
			return
		}

		h.responder.WriteJSON(w, article)
	}
}

// deleteArticle removes an article and, through the store, its comments
func (h articleHandler) deleteArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		articleID, ok := uuidParam(r, "articleID")
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid articleID"))
			return
		}

		article, err := h.articleRepo.FindByID(articleID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find article", "article", err))
			return
		}
		if article == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("article not found"))
			return
		}

		if !authz.CanMutate(principal, article.AuthorID) {
			h.responder.WriteError(w, errs.NewForbiddenError("not the author of this article"))
			return
		}

		if err := h.articleRepo.Delete(articleID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete article", "article", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "article deleted successfully",
		})
	}
}

func (h articleHandler) writeUpdateConflict(w http.ResponseWriter, articleID uuid.UUID) {
	exists, err := h.articleRepo.Exists(articleID)
	if err == nil && !exists {
		h.responder.WriteError(w, errs.NewNotFoundError("article not found"))
		return
	}
	h.responder.WriteError(w, errs.NewConcurrencyConflictError("article"))
}

func (h articleHandler) decodeArticleForm(r *http.Request) (ArticleForm, error) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		return ArticleForm{}, errs.NewBadRequestError("failed to read request body")
	}

	var form ArticleForm
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&form); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode article request body")
		return ArticleForm{}, errs.NewMalformedPayloadError("article", err)
	}
	return form, nil
}
