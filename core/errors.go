package core

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		if len(err.Fields) > 0 {
			return err.Fields[0].Field + ": " + err.Fields[0].Error
		}
		return ""
	}
	return err.Err.Error()
}

// UpstreamError is returned when the backend answers with a non-2xx status.
type UpstreamError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (err *UpstreamError) Error() string {
	return fmt.Sprintf("backend %s %s: %d %s", err.Method, err.Path, err.StatusCode, http.StatusText(err.StatusCode))
}

// IsUpstreamStatus reports whether err was caused by a backend answer with the given status code.
func IsUpstreamStatus(err error, code int) bool {
	uErr, ok := errors.Cause(err).(*UpstreamError)
	return ok && uErr.StatusCode == code
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
