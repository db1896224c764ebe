package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the one error currency of the service: a stable code for
// consumers, a human message for the response envelope, and the HTTP status
// the handler layer should answer with.
type Error struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New builds an Error with no underlying cause.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap builds an Error around an underlying cause, preserving it for
// errors.Is and errors.As.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// The shared catalog. Handlers clone these to attach request-specific
// wording without minting new codes.
var (
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusUnauthorized, "Invalid credentials")
	ErrUnauthorized       = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrForbidden          = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrNotFound           = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrConflict           = New("CONFLICT", http.StatusConflict, "conflict")
	ErrValidation         = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")

	// ErrRemote is the single failure shape for scheduling service requests:
	// transport failures and success:false envelopes both surface as it.
	ErrRemote = New("REMOTE_ERROR", http.StatusBadGateway, "scheduling service request failed")

	// ErrRemoteOffline reports a remote-only operation attempted in local mode.
	ErrRemoteOffline = New("REMOTE_OFFLINE", http.StatusServiceUnavailable, "scheduling service is not available in local mode")

	// ErrCacheMiss reports an absent cache key.
	ErrCacheMiss = New("CACHE_MISS", http.StatusNotFound, "cache miss")
)

// FromError coerces any error into an *Error so the response layer always
// has a status and message to work with. Unknown errors become internal
// errors with the original preserved as the cause.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone copies a catalog error and replaces its message. An empty message
// keeps the original wording.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	out := &Error{Code: err.Code, Status: err.Status, Message: err.Message, Err: err.Err}
	if message != "" {
		out.Message = message
	}
	return out
}
