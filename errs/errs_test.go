package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsWrapSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      *ApiErr
		status   int
		sentinel error
	}{
		{"not found", NewNotFoundError("article not found"), http.StatusNotFound, ErrNotFound},
		{"forbidden", NewForbiddenError("not the author"), http.StatusForbidden, ErrForbidden},
		{"conflict", NewConcurrencyConflictError("article"), http.StatusConflict, ErrConcurrentUpdate},
		{"storage io", NewStorageIOError("save project image", errors.New("disk full")), http.StatusBadRequest, ErrStorageIO},
		{"malformed payload", NewMalformedPayloadError("comment", errors.New("bad json")), http.StatusBadRequest, ErrMalformedPayload},
		{"missing token", NewMissingTokenError(), http.StatusUnauthorized, ErrMissingToken},
		{"expired token", NewExpiredTokenError(), http.StatusUnauthorized, ErrExpiredToken},
		{"invalid token", NewInvalidTokenError(), http.StatusUnauthorized, ErrInvalidToken},
		{"insufficient role", NewInsufficientRoleError("Admin"), http.StatusForbidden, ErrInsufficientRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode)
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("gone")))
	assert.True(t, IsForbidden(NewForbiddenError("no")))
	assert.True(t, IsConcurrentUpdate(NewConcurrencyConflictError("project")))
	assert.True(t, IsStorageIO(NewStorageIOError("delete image", errors.New("io"))))

	assert.False(t, IsNotFound(NewForbiddenError("no")))
	assert.False(t, IsConcurrentUpdate(errors.New("unrelated")))
}

func TestNewDatabaseErrorClassifiesCauses(t *testing.T) {
	notFound := NewDatabaseError("find", "article", ErrNotFound)
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
	assert.True(t, IsNotFound(notFound))

	conflict := NewDatabaseError("update", "project", ErrConcurrentUpdate)
	assert.Equal(t, http.StatusConflict, conflict.StatusCode)
	assert.True(t, IsConcurrentUpdate(conflict))

	duplicate := NewDatabaseError("create", "user", errors.New(`duplicate key value violates unique constraint "users_pkey"`))
	assert.Equal(t, http.StatusConflict, duplicate.StatusCode)

	down := NewDatabaseError("find", "article", errors.New("connection refused"))
	assert.Equal(t, http.StatusServiceUnavailable, down.StatusCode)

	generic := NewDatabaseError("count", "comment", errors.New("syntax error"))
	assert.Equal(t, http.StatusInternalServerError, generic.StatusCode)
	assert.ErrorIs(t, generic, ErrDatabaseQuery)
}

func TestGetFullErrorChainsCauses(t *testing.T) {
	inner := NewStorageIOError("save project image", errors.New("disk full"))
	outer := NewDatabaseError("update", "project", inner)

	full := outer.GetFullError()
	require.Contains(t, full, "Failed to update project")
	assert.Contains(t, full, "disk full")
}

func TestErrorIncludesDetails(t *testing.T) {
	err := NewConcurrencyConflictError("article")
	assert.Contains(t, err.Error(), "modified by another request")
}
