// Package apperr carries client-visible failures from the service layer to
// the HTTP layer, each with the status code it should map to.
package apperr

import "net/http"

// Error is a deterministic request failure. It is never retried and never
// wraps a server fault; database errors pass through untyped and surface as
// 500s.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// BadRequest flags invalid input.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NotFound flags a missing resource.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Unauthorized flags a missing or failed credential.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}
