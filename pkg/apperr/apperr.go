package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a service failure for the HTTP boundary.
type Kind string

const (
	KindValidation         Kind = "validation_error"
	KindConflict           Kind = "conflict"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindUnauthorized       Kind = "unauthorized"
	KindNotFound           Kind = "not_found"
	KindInternal           Kind = "internal_error"
)

// Error is a tagged service error carrying the HTTP status and a
// caller-safe message. Services return these; the delivery layer
// serializes them uniformly.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Details any
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an error with an explicit status, for the cases where the
// status deviates from the kind's default.
func New(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

func Validation(message string) *Error {
	return New(KindValidation, http.StatusBadRequest, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, http.StatusBadRequest, message)
}

func InvalidCredentials(message string) *Error {
	return New(KindInvalidCredentials, http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, http.StatusUnauthorized, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, http.StatusNotFound, message)
}

func Internal(message string) *Error {
	return New(KindInternal, http.StatusInternalServerError, message)
}

// From extracts the tagged error from err. Anything that is not an
// *Error maps to a generic 500 so store failures never leak internals.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("internal server error")
}
