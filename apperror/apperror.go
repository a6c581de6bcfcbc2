// Package apperror defines the error kinds surfaced by the services and their HTTP status mapping.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure
type Kind string

const (
	KindValidation     Kind = "validation_error"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindInvalidRequest Kind = "invalid_request"
	KindInternal       Kind = "internal"
)

// Error is a classified failure. Field and Value are only set for validation errors.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Value   any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports a referenced entity that does not exist
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a uniqueness or relationship violation
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidRequest reports a well-formed but semantically empty or unusable request
func InvalidRequest(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

// Validation reports a malformed or out-of-range field
func Validation(field string, value any, message string) *Error {
	return &Error{Kind: KindValidation, Message: message, Field: field, Value: value}
}

// Internal wraps an unexpected storage or runtime failure
func Internal(err error, format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of err, or KindInternal if err is not an *Error
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps err to the response status code
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInvalidRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
