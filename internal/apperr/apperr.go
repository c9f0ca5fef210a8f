// Package apperr defines the error taxonomy shared by handlers and the
// respond package. Handlers raise typed errors; the single translation stage
// in respond maps them to HTTP status codes and payload shapes.
package apperr

import "fmt"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
)

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries a kind, a client-facing message, and optionally a list of
// field errors (validation only) and a wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Validation reports malformed or missing input with a single message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Invalid reports malformed input with per-field detail.
func Invalid(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "invalid request", Fields: fields}
}

// Conflict reports a uniqueness violation.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Auth reports missing or invalid credentials or tokens.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// NotFound reports a missing resource.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps an unexpected failure. The cause is logged server-side and
// never sent to the client.
func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, cause: cause}
}
