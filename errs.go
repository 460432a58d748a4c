package aiguard

import (
	"errors"
	"fmt"
)

var (
	ErrTokenRequired   = errors.New("API token is required")
	ErrBaseURLRequired = errors.New("base URL is required")

	// ErrAPIFailure is the sentinel all *APIError values unwrap to, so callers
	// can match any API-level failure with errors.Is.
	ErrAPIFailure = errors.New("API request failed")
)

// APIError is the error view of a failed Response. It is returned by
// Response.Err for any response with a non-2xx status code, including the
// synthesized responses the transport produces for timeouts and request
// failures.
//
//	resp := client.GuardText(ctx, text)
//	if err := resp.Err(); err != nil {
//		var apiErr *aiguard.APIError
//		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusRequestTimeout {
//			// the call timed out
//		}
//	}
type APIError struct {
	// StatusCode is the HTTP status code of the response, or the synthesized
	// code (408, 400, 500) for transport-level failures.
	StatusCode int
	// Message is the "message" field of the error body, if one was present.
	Message string
	// RequestID is the X-Request-ID the client attached to the request.
	RequestID string
}

// Error returns a string representation of the error.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("pangea API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("pangea API error (status %d)", e.StatusCode)
}

// Unwrap returns ErrAPIFailure so errors.Is(err, ErrAPIFailure) matches.
func (e *APIError) Unwrap() error {
	return ErrAPIFailure
}
