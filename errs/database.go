package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")

	// ErrConcurrentUpdate means the record changed (or vanished) between load
	// and save. Callers must re-check existence to disambiguate: a vanished
	// record is a not-found, anything else is an unrecovered conflict.
	ErrConcurrentUpdate = errors.New("record changed concurrently")

	// ErrStorageIO means a file/object write or delete failed in the image
	// store. Handled at the handler boundary as a form-level error; nothing
	// is committed.
	ErrStorageIO = errors.New("storage operation failed")
)

func NewConcurrencyConflictError(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrConcurrentUpdate,
		Details:    fmt.Sprintf("The %s was modified by another request; reload and retry manually", entity),
	}
}

func NewStorageIOError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrStorageIO,
		Details:    fmt.Sprintf("Failed to %s", operation),
		Cause:      cause,
		Field:      "image",
	}
}

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		errStr := cause.Error()
		switch {
		case errors.Is(cause, ErrNotFound) || strings.Contains(errStr, "record not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s %w", entity, ErrNotFound),
				Details:    details,
				Cause:      cause,
			}
		case errors.Is(cause, ErrConcurrentUpdate):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        ErrConcurrentUpdate,
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "duplicate key"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s already exists", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "foreign key constraint"):
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("invalid reference in %s", entity),
				Details:    "The referenced resource does not exist or cannot be linked",
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    "Unable to connect to database",
				Cause:      cause,
			}
		}
	}

	// Generic database error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

func IsConcurrentUpdate(err error) bool {
	return errors.Is(err, ErrConcurrentUpdate)
}

func IsStorageIO(err error) bool {
	return errors.Is(err, ErrStorageIO)
}
