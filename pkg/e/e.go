// Package e holds the domain error kinds of the service and writes them
// to gin responses as ApiError bodies.
package e

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindBadRequest
	KindNotFound
	KindConflict
	KindIllegalState
	KindTooManyRequests
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindIllegalState:
		return "illegal_state"
	case KindTooManyRequests:
		return "too_many_requests"
	}
	return "internal"
}

// Status maps a kind to its response code.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindBadRequest, KindIllegalState:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// Violation is a single structural field failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind       Kind
	Message    string
	Violations []Violation
	Err        error
}

func (err *Error) Error() string {
	if len(err.Violations) == 0 {
		return err.Message
	}
	parts := make([]string, 0, len(err.Violations))
	for _, v := range err.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return err.Message + ": " + strings.Join(parts, "; ")
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, e.ErrNotFound) works.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == err.Kind
}

// Kind sentinels for errors.Is.
var (
	ErrValidation      = &Error{Kind: KindValidation}
	ErrBadRequest      = &Error{Kind: KindBadRequest}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrConflict        = &Error{Kind: KindConflict}
	ErrIllegalState    = &Error{Kind: KindIllegalState}
	ErrTooManyRequests = &Error{Kind: KindTooManyRequests}
)

func newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func BadRequest(format string, args ...interface{}) *Error {
	return newf(KindBadRequest, format, args...)
}

func NotFound(format string, args ...interface{}) *Error {
	return newf(KindNotFound, format, args...)
}

func Conflict(format string, args ...interface{}) *Error {
	return newf(KindConflict, format, args...)
}

func IllegalState(format string, args ...interface{}) *Error {
	return newf(KindIllegalState, format, args...)
}

func TooManyRequests(format string, args ...interface{}) *Error {
	return newf(KindTooManyRequests, format, args...)
}

// Validation builds a structural failure carrying every violation.
func Validation(violations []Violation) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Violations: violations}
}

// Wrap attaches a cause to a new error of the given kind.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	err := newf(kind, format, args...)
	err.Err = cause
	return err
}

// KindOf reports the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
