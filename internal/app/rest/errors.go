package rest

import (
	"errors"
	"fmt"
)

// NetworkError wraps a transport-level failure (no HTTP response received).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AuthenticationError is a 401 from the server. By the time the caller sees
// it the stored token has already been cleared.
type AuthenticationError struct {
	Detail string
}

func (e *AuthenticationError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "authentication failed"
}

// ServerError is any other non-2xx response, carrying the server's detail
// message when one was provided.
type ServerError struct {
	StatusCode int
	Detail     string
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server error: status %d", e.StatusCode)
}

// Detail extracts the server-provided message from an API error, or ""
// when there is none. Screens show it in place of a generic notice.
func Detail(err error) string {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Detail
	}
	var ae *AuthenticationError
	if errors.As(err, &ae) {
		return ae.Detail
	}
	return ""
}
