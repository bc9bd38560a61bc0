package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiErrKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   error
		msg    string
	}{
		{
			name:   "not found",
			err:    NewNotFound("project"),
			status: http.StatusNotFound,
			kind:   ErrNotFound,
			msg:    "project not found",
		},
		{
			name:   "conflict",
			err:    NewAlreadyExists("project", "slug", "portfolio-v1", nil),
			status: http.StatusConflict,
			kind:   ErrAlreadyExists,
			msg:    `project already exists: slug "portfolio-v1" is already in use`,
		},
		{
			name:   "missing field",
			err:    NewMissingRequiredFieldError("title"),
			status: http.StatusBadRequest,
			kind:   ErrMissingRequiredField,
			msg:    "missing required field: title is required",
		},
		{
			name:   "storage",
			err:    NewDatabaseError("insert", "project", errors.New("disk I/O error")),
			status: http.StatusInternalServerError,
			kind:   ErrDatabaseQuery,
			msg:    "database query failed: Failed to insert project",
		},
		{
			name:   "body too large",
			err:    NewMaxBodySizeExceededError(64),
			status: http.StatusRequestEntityTooLarge,
			kind:   ErrMaxBodySizeExceeded,
			msg:    "max body size exceeded: Request body size exceeded maximum allowed size of 64 bytes",
		},
		{
			name:   "missing env",
			err:    NewEnvironmentVariableError("DB_PATH"),
			status: http.StatusInternalServerError,
			kind:   ErrEnvironmentVariable,
			msg:    "environment variable error: Environment variable DB_PATH is not set or invalid",
		},
		{
			name:   "panic",
			err:    NewInternalError("panic during request"),
			status: http.StatusInternalServerError,
			kind:   ErrInternal,
			msg:    "panic during request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var apiErr *ApiErr
			if assert.True(t, errors.As(tt.err, &apiErr)) {
				assert.Equal(t, tt.status, apiErr.StatusCode)
			}
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewAlreadyExists("project", "slug", "x", nil))

	assert.True(t, IsConflict(wrapped))
	assert.ErrorIs(t, wrapped, ErrAlreadyExists)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
	assert.True(t, IsEnvironmentVariableError(fmt.Errorf("sitemap: %w", NewEnvironmentVariableError("BASE_URL"))))
}

func TestGetFullErrorFollowsCauses(t *testing.T) {
	inner := NewDatabaseError("select", "project", errors.New("database is locked"))
	outer := NewExportWriteError("data/projects.json", inner)

	assert.Equal(t,
		"export write failed: could not write data/projects.json -> database query failed: Failed to select project -> database is locked",
		outer.GetFullError())
	assert.True(t, outer.Is5xx())
	assert.False(t, NewNotFound("project").Is5xx())
}
