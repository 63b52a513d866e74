// Package apperrors defines the domain error taxonomy. Services return these;
// handlers map them to HTTP statuses at the boundary. Anything that is not an
// *Error is treated as an unexpected server error.
package apperrors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota // malformed or missing input
	KindNotFound               // referenced entity absent
	KindForbidden              // role or ownership mismatch
	KindInvalidTransition      // state-machine rule violation
	KindConflict               // duplicate or already-processed state
	KindNoDriver               // no available driver matched
	KindInternal               // unexpected persistence/integration failure
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(msg string) *Error        { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) *Error          { return &Error{Kind: KindNotFound, Message: msg} }
func Forbidden(msg string) *Error         { return &Error{Kind: KindForbidden, Message: msg} }
func InvalidTransition(msg string) *Error { return &Error{Kind: KindInvalidTransition, Message: msg} }
func Conflict(msg string) *Error          { return &Error{Kind: KindConflict, Message: msg} }
func NoDriver(msg string) *Error          { return &Error{Kind: KindNoDriver, Message: msg} }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// HTTPStatus maps a domain error to its response status. Unknown errors are
// server errors.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation, KindInvalidTransition, KindConflict:
		return http.StatusBadRequest
	case KindNotFound, KindNoDriver:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
