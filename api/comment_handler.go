package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taijii-c/portfolio-site-backend/authz"
	"github.com/taijii-c/portfolio-site-backend/errs"
	"github.com/taijii-c/portfolio-site-backend/models"
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo commentStore
	articleRepo articleStore
}

func newCommentHandler(commentRepo commentStore, articleRepo articleStore) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

// createComment attaches a comment to an article for the acting principal.
// A validation failure responds with the rebuilt article page carrying the
// rejected draft, so the typed content survives the round trip.
func (h commentHandler) createComment() http.HandlerFunc {
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

		exists, err := h.articleRepo.Exists(articleID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find article", "article", err))
			return
		}
		if !exists {
			h.responder.WriteError(w, errs.NewNotFoundError("article not found"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var form CommentForm
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&form); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("comment", err))
			return
		}
		form.ArticleID = articleID

		if fieldErrs := validateCommentForm(form); len(fieldErrs) > 0 {
			view, viewErr := buildArticleDetails(h.articleRepo, articleID, &form)
			if viewErr != nil || view == nil {
				h.responder.WriteValidationFailure(w, fieldErrs, form)
				return
			}
			h.responder.WriteCommentValidationFailure(w, fieldErrs, view)
			return
		}

		comment := models.Comment{
			Content:       form.Content,
			PublishedDate: time.Now(),
			ArticleID:     articleID,
			AuthorID:      principal.ID,
		}

		if err := h.commentRepo.Add(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create comment", "comment", err))
			return
		}

		view, err := buildArticleDetails(h.articleRepo, articleID, nil)
		if err != nil || view == nil {
			// The comment is in; fall back to returning it alone.
			h.responder.WriteJSONStatus(w, http.StatusCreated, comment)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, view)
	}
}

// deleteComment removes a comment its author (or an Admin) no longer wants
// and responds with the parent article's rebuilt detail view, so the caller
// lands back on the thread it was reading.
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		commentID, ok := uuidParam(r, "commentID")
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		comment, err := h.commentRepo.FindByID(commentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comment", "comment", err))
			return
		}
		if comment == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("comment not found"))
			return
		}

		if !authz.CanMutate(principal, comment.AuthorID) {
			h.responder.WriteError(w, errs.NewForbiddenError("not the author of this comment"))
			return
		}

		if err := h.commentRepo.Delete(commentID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete comment", "comment", err))
			return
		}

		// The delete succeeded; a parent that vanished in a race with an
		// article delete must not turn the response into a failure.
		view, err := buildArticleDetails(h.articleRepo, comment.ArticleID, nil)
		if err != nil || view == nil {
			h.responder.WriteJSON(w, map[string]string{
				"status":  "success",
				"message": "comment deleted successfully",
			})
			return
		}

		h.responder.WriteJSON(w, view)
	}
}
