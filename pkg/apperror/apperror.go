// Package apperror classifies failures into the kinds the HTTP layer reports.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the machine-distinguishable class of a failure.
type Kind int

const (
	Internal Kind = iota
	Unauthorized
	InvalidInput
	NotFound
	Conflict
)

func (k Kind) String() string {
	switch k {
	case Unauthorized:
		return "UNAUTHORIZED"
	case InvalidInput:
		return "INVALID_INPUT"
	case NotFound:
		return "NOT_FOUND"
	case Conflict:
		return "CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}

// Status returns the HTTP status code reported for the kind.
func (k Kind) Status() int {
	switch k {
	case Unauthorized:
		return http.StatusUnauthorized
	case InvalidInput:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified application error. Message is safe to show to callers;
// Err is the underlying cause and is never written to a response.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so errors.Is(err, apperror.ErrConflict) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrUnauthorized = &Error{Kind: Unauthorized}
	ErrInvalidInput = &Error{Kind: InvalidInput}
	ErrNotFound     = &Error{Kind: NotFound}
	ErrConflict     = &Error{Kind: Conflict}
	ErrInternal     = &Error{Kind: Internal}
)

func NewUnauthorized(message string) *Error {
	return &Error{Kind: Unauthorized, Message: message}
}

func NewInvalidInput(message string) *Error {
	return &Error{Kind: InvalidInput, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: Conflict, Message: message}
}

// NewInternal wraps an unexpected failure. The cause is kept for logging only.
func NewInternal(err error) *Error {
	return &Error{Kind: Internal, Message: "Internal Server Error", Err: err}
}

// Wrap attaches a classified kind and public message to err.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf classifies any error. Unclassified errors are Internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

// StatusOf returns the HTTP status for err.
func StatusOf(err error) int {
	return KindOf(err).Status()
}

// PublicMessage returns the message that may be shown to the caller.
// Internal failures always collapse to a generic message.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != Internal && appErr.Message != "" {
		return appErr.Message
	}
	return "Internal Server Error"
}
