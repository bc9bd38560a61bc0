package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// Schema & migration errors
var (
	ErrMigrationStep  = errors.New("migration step failed")
	ErrSchemaCreation = errors.New("schema creation failed")
)

// NewAlreadyExists reports a unique-key collision on entity.field.
func NewAlreadyExists(entity, field, value string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
		Details:    fmt.Sprintf("%s %q is already in use", field, value),
		Field:      field,
		Cause:      cause,
	}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewDatabaseError wraps an engine failure that has no more specific kind.
// Callers classify conflicts and missing rows before falling back to this.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    fmt.Sprintf("Failed to %s %s", operation, entity),
		Cause:      cause,
	}
}

func NewDatabaseConnectionError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrDatabaseConnection,
		Details:    "Unable to connect to database",
		Cause:      cause,
	}
}

func NewSchemaCreationError(table string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrSchemaCreation,
		Details:    fmt.Sprintf("Failed to create table %s", table),
		Cause:      cause,
	}
}

func NewMigrationStepError(table, column string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrMigrationStep,
		Details:    fmt.Sprintf("Failed to add column %s.%s", table, column),
		Field:      column,
		Cause:      cause,
	}
}
