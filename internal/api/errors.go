package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNoToken indicates no auth token is stored; detected before any
	// network call is made.
	ErrNoToken = errors.New("not authenticated")

	// ErrUnauthorized indicates the token was rejected (HTTP 401).
	ErrUnauthorized = errors.New("session expired")

	// ErrForbidden indicates the caller lacks permission (HTTP 403).
	ErrForbidden = errors.New("permission denied")

	// ErrGone indicates the record no longer exists (HTTP 404).
	// Delete flows treat this as idempotent success.
	ErrGone = errors.New("record not found")

	// ErrConflict indicates a dependency conflict (HTTP 409). The server
	// message is surfaced verbatim to the user.
	ErrConflict = errors.New("conflict")

	// ErrServer indicates a transient backend failure (HTTP 5xx).
	ErrServer = errors.New("server error")

	// ErrNetwork indicates the request never produced a response.
	ErrNetwork = errors.New("network unreachable")

	// ErrDecode indicates the response body did not match the expected
	// envelope shape.
	ErrDecode = errors.New("unexpected response format")
)

// statusError carries the HTTP status and server message behind a sentinel.
type statusError struct {
	sentinel error
	status   int
	message  string
}

func (e *statusError) Error() string {
	if e.message != "" {
		return fmt.Sprintf("%v (HTTP %d): %s", e.sentinel, e.status, e.message)
	}
	return fmt.Sprintf("%v (HTTP %d)", e.sentinel, e.status)
}

func (e *statusError) Unwrap() error { return e.sentinel }

// classifyStatus maps a non-2xx HTTP status to a sentinel-wrapped error.
func classifyStatus(status int, message string) error {
	var sentinel error
	switch {
	case status == 401:
		sentinel = ErrUnauthorized
	case status == 403:
		sentinel = ErrForbidden
	case status == 404:
		sentinel = ErrGone
	case status == 409:
		sentinel = ErrConflict
	case status >= 500:
		sentinel = ErrServer
	default:
		sentinel = ErrDecode
	}
	return &statusError{sentinel: sentinel, status: status, message: message}
}

// UserMessage converts any client error into a user-presentable string.
// Controllers call this at their boundary; raw errors never reach a view.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoToken), errors.Is(err, ErrUnauthorized):
		return "Your session has expired. Please log in again."
	case errors.Is(err, ErrForbidden):
		return "You don't have permission to do that."
	case errors.Is(err, ErrGone):
		return "That record no longer exists."
	case errors.Is(err, ErrConflict):
		var se *statusError
		if errors.As(err, &se) && se.message != "" {
			return se.message
		}
		return "That change conflicts with existing data."
	case errors.Is(err, ErrServer):
		return "The server had a problem. Please try again shortly."
	case errors.Is(err, ErrNetwork):
		return "Could not reach the server. Check your connection."
	default:
		return "Something went wrong. Please try again."
	}
}

// errorCode returns a short diagnostic code for observer logging.
func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoToken):
		return "NO_TOKEN"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrGone):
		return "NOT_FOUND"
	case errors.Is(err, ErrConflict):
		return "CONFLICT"
	case errors.Is(err, ErrServer):
		return "SERVER"
	case errors.Is(err, ErrNetwork):
		return "NETWORK"
	case errors.Is(err, ErrDecode):
		return "DECODE"
	default:
		return "UNKNOWN"
	}
}
