package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Configuration & Export Errors
var (
	ErrEnvironmentVariable = errors.New("environment variable error")
	ErrJSONMarshal         = errors.New("JSON marshal error")
	ErrExportWrite         = errors.New("export write failed")
)

func NewEnvironmentVariableError(varName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrEnvironmentVariable,
		Details:    fmt.Sprintf("Environment variable %s is not set or invalid", varName),
		Field:      varName,
	}
}

func NewJSONMarshalError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrJSONMarshal,
		Details:    fmt.Sprintf("JSON marshal error in %s", operation),
		Cause:      cause,
		Field:      "json",
	}
}

func NewExportWriteError(path string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrExportWrite,
		Details:    fmt.Sprintf("could not write %s", path),
		Cause:      cause,
	}
}

func IsEnvironmentVariableError(err error) bool {
	return errors.Is(err, ErrEnvironmentVariable)
}
