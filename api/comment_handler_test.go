package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taijii-c/portfolio-site-backend/authz"
)

func TestCreateCommentAttachesPrincipalAndArticle(t *testing.T) {
	db := newFakeDB()
	h := newCommentHandler(fakeCommentDB{db}, fakeArticleDB{db})

	article := seedArticle(db, "author-1", time.Now())
	principal := authz.Principal{ID: "reader-1"}

	body := strings.NewReader(`{"content":"great read"}`)
	w := doRequest("/article/{articleID}/comments", http.MethodPost, "/article/"+article.ID.String()+"/comments", body, &principal, h.createComment())
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, db.comments, 1)
	for _, c := range db.comments {
		assert.Equal(t, "great read", c.Content)
		assert.Equal(t, "reader-1", c.AuthorID)
		assert.Equal(t, article.ID, c.ArticleID)
	}

	var view ArticleDetailsView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, article.ID, view.Article.ID)
	assert.Len(t, view.Comments, 1)
}

func TestCreateCommentOnMissingArticleIsNotFound(t *testing.T) {
	db := newFakeDB()
	h := newCommentHandler(fakeCommentDB{db}, fakeArticleDB{db})
	principal := authz.Principal{ID: "reader-1"}

	body := strings.NewReader(`{"content":"hello"}`)
	w := doRequest("/article/{articleID}/comments", http.MethodPost, "/article/00000000-0000-0000-0000-000000000001/comments", body, &principal, h.createComment())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, db.comments)
}

func TestCreateCommentValidationEchoesDraftInView(t *testing.T) {
	db := newFakeDB()
	h := newCommentHandler(fakeCommentDB{db}, fakeArticleDB{db})

	article := seedArticle(db, "author-1", time.Now())
	principal := authz.Principal{ID: "reader-1"}

	long := strings.Repeat("x", 1001)
	body := strings.NewReader(`{"content":"` + long + `"}`)
	w := doRequest("/article/{articleID}/comments", http.MethodPost, "/article/"+article.ID.String()+"/comments", body, &principal, h.createComment())
	require.Equal(t, http.StatusBadRequest, w.Code)

	var failure ValidationFailure
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failure))
	require.Len(t, failure.Fields, 1)
	assert.Equal(t, "content", failure.Fields[0].Field)

	// The rejected draft rides back inside the rebuilt article view so the
	// typed content is not lost.
	require.NotNil(t, failure.View)
	assert.Equal(t, article.ID, failure.View.Article.ID)
	assert.Equal(t, long, failure.View.NewComment.Content)
	assert.Equal(t, article.ID, failure.View.NewComment.ArticleID)

	assert.Empty(t, db.comments)
}

func TestDeleteCommentRespondsWithParentArticleView(t *testing.T) {
	db := newFakeDB()
	h := newCommentHandler(fakeCommentDB{db}, fakeArticleDB{db})

	article := seedArticle(db, "author-1", time.Now())
	mine := seedComment(db, article.ID, "reader-1", time.Now())
	other := seedComment(db, article.ID, "reader-2", time.Now().Add(time.Minute))
	principal := authz.Principal{ID: "reader-1"}

	w := doRequest("/comment/{commentID}", http.MethodDelete, "/comment/"+mine.ID.String(), nil, &principal, h.deleteComment())
	require.Equal(t, http.StatusOK, w.Code)

	var view ArticleDetailsView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, article.ID, view.Article.ID)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, other.ID, view.Comments[0].ID)
}

func TestDeleteCommentByNonOwnerIsForbiddenNotNotFound(t *testing.T) {
	db := newFakeDB()
	h := newCommentHandler(fakeCommentDB{db}, fakeArticleDB{db})

	article := seedArticle(db, "author-1", time.Now())
	comment := seedComment(db, article.ID, "reader-1", time.Now())
	stranger := authz.Principal{ID: "reader-2"}

	w := doRequest("/comment/{commentID}", http.MethodDelete, "/comment/"+comment.ID.String(), nil, &stranger, h.deleteComment())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Len(t, db.comments, 1)
}

func TestDeleteCommentByAdminSucceeds(t *testing.T) {
	db := newFakeDB()
	h := newCommentHandler(fakeCommentDB{db}, fakeArticleDB{db})

	article := seedArticle(db, "author-1", time.Now())
	comment := seedComment(db, article.ID, "reader-1", time.Now())
	admin := authz.Principal{ID: "admin-1", Roles: []string{authz.RoleAdmin}}

	w := doRequest("/comment/{commentID}", http.MethodDelete, "/comment/"+comment.ID.String(), nil, &admin, h.deleteComment())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, db.comments)
}

func TestDeleteCommentWithVanishedParentStillSucceeds(t *testing.T) {
	db := newFakeDB()
	h := newCommentHandler(fakeCommentDB{db}, fakeArticleDB{db})

	// The parent article is gone; the delete itself must still be reported
	// as a success, just without the rebuilt view.
	comment := seedComment(db, uuid.New(), "reader-1", time.Now())
	principal := authz.Principal{ID: "reader-1"}

	w := doRequest("/comment/{commentID}", http.MethodDelete, "/comment/"+comment.ID.String(), nil, &principal, h.deleteComment())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, db.comments)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
}

func TestDeleteMissingCommentIsNotFound(t *testing.T) {
	db := newFakeDB()
	h := newCommentHandler(fakeCommentDB{db}, fakeArticleDB{db})
	principal := authz.Principal{ID: "reader-1"}

	w := doRequest("/comment/{commentID}", http.MethodDelete, "/comment/00000000-0000-0000-0000-000000000001", nil, &principal, h.deleteComment())
	assert.Equal(t, http.StatusNotFound, w.Code)
}
