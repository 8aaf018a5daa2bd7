// Package apperr defines the error taxonomy shared by repositories, services,
// and the HTTP layer. Services return typed errors; the HTTP error handler maps
// each kind to a status code and a JSON detail message.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound means a referenced id does not resolve to a row.
	KindNotFound
	// KindConflict means the operation violates current state (room occupied,
	// dependent records exist, illegal status transition).
	KindConflict
	// KindValidation means the request body or parameters are malformed.
	KindValidation
	// KindUnavailable means a store connection could not be acquired.
	KindUnavailable
	// KindStore means a statement failed during execution.
	KindStore
)

// Error carries a kind alongside the message so the HTTP layer can pick a
// status without string matching.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func Unavailable(err error) error {
	return &Error{Kind: KindUnavailable, Msg: "database connection failed", Err: err}
}

// Store wraps a statement execution failure. msg names the failed operation.
func Store(msg string, err error) error {
	return &Error{Kind: KindStore, Msg: msg, Err: err}
}

// KindOf extracts the kind from an error chain. Unwrapped errors report
// KindUnknown and are treated as store failures by the HTTP layer.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// HTTPStatus maps an error to the status code the API contracts require.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUnavailable, KindStore:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Detail returns the message to expose to the client. Wrapped store errors
// surface their full text, matching the API's `{"detail": <error text>}` shape.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}
