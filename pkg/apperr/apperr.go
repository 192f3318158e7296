package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure into the closed set of categories the API
// exposes. Services and handlers return *Error values carrying a Kind;
// the error middleware is the only place a Kind becomes an HTTP status.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindBadRequest      Kind = "bad_request"
	KindUnauthenticated Kind = "unauthenticated"
	// KindInvalidToken covers malformed tokens and bad signatures (403).
	// KindTokenExpired is kept separate because an expired credential maps
	// to 401, matching the central mapper of the original service.
	KindInvalidToken Kind = "invalid_token"
	KindTokenExpired Kind = "token_expired"
	KindConflict     Kind = "conflict"
	KindNotFound     Kind = "not_found"
	KindForeignKey   Kind = "foreign_key"
	KindStore        Kind = "store"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

type Error struct {
	Kind       Kind
	Message    string
	Violations []Violation
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and user-facing message to an underlying error.
// The cause is kept for logging and never serialized to clients.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, cause: err}
}

// Validation builds the aggregate error for one or more field violations.
// All violations found on a request travel together in a single error.
func Validation(violations ...Violation) *Error {
	return &Error{
		Kind:       KindValidation,
		Message:    "Validation failed.",
		Violations: violations,
	}
}

func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Store wraps an unexpected store or internal failure. The client-facing
// message stays generic; err is only for the server-side log.
func Store(err error) *Error {
	return Wrap(err, KindStore, "An unexpected error occurred on the server.")
}

// From extracts the *Error from err, or classifies err as a store failure
// when it carries no kind. Nil stays nil.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Store(err)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
