package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// MissingParameterMessage is returned verbatim to callers of the chat relay.
const MissingParameterMessage = "필수 매개변수값이 없습니다"

var ErrMissingParameter = errors.New(MissingParameterMessage)

// NetworkError is a transport failure or an unexpected upstream status.
type NetworkError struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream status %d: %v", e.Service, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: network: %v", e.Service, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Retryable reports whether repeating the call may succeed.
func (e *NetworkError) Retryable() bool {
	return e.StatusCode == 0 ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= http.StatusInternalServerError
}

// AuthError means the upstream rejected or was never given credentials.
type AuthError struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: auth: %v", e.Service, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) Retryable() bool { return false }

// MalformedResponseError is an upstream reply that could not be interpreted.
type MalformedResponseError struct {
	Service string
	Body    string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Service, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func (e *MalformedResponseError) Retryable() bool { return false }

// IsRetryable reports whether err carries a retryable upstream failure.
func IsRetryable(err error) bool {
	var r interface{ Retryable() bool }
	if errors.As(err, &r) {
		return r.Retryable()
	}
	return false
}
