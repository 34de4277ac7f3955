package flightplandb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel error kinds, one per documented API failure status. Every failed
// request returns an *APIError that unwraps to one of these (or to nothing
// for statuses the API does not document), so callers can use errors.Is.
var (
	// ErrBadRequest is returned for HTTP 400: the request was malformed or
	// failed validation.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is returned for HTTP 401: missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned for HTTP 403: valid credentials but
	// insufficient rights.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrRateLimited is returned for HTTP 429: the 24-hour request quota is
	// exhausted. The quota is per API key, or per IP address for anonymous
	// requests.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrServer is returned for any 5xx status.
	ErrServer = errors.New("server error")
)

// APIError is a classified error response from the API. StatusCode and Body
// always carry the original status and raw response body; Message is the
// server-provided description when the body could be parsed, the raw body
// otherwise.
type APIError struct {
	StatusCode int
	Message    string
	Body       string

	kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("flightplandb: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the error to its sentinel kind, enabling errors.Is checks.
func (e *APIError) Unwrap() error {
	return e.kind
}

// IsNotFound reports whether the error is a 404 response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the error is an authentication or
// authorization failure.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited reports whether the error is a quota exhaustion response.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// classifyStatus builds the APIError for a non-success status code. It is
// total: statuses outside the documented taxonomy still produce an APIError,
// just without a sentinel kind.
func classifyStatus(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    errorMessage(body),
		Body:       string(body),
	}

	switch {
	case statusCode == http.StatusBadRequest:
		apiErr.kind = ErrBadRequest
	case statusCode == http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
	case statusCode == http.StatusForbidden:
		apiErr.kind = ErrForbidden
	case statusCode == http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case statusCode == http.StatusTooManyRequests:
		apiErr.kind = ErrRateLimited
	case statusCode >= 500:
		apiErr.kind = ErrServer
	}

	return apiErr
}

// errorMessage extracts the server's message from an error body. The API
// wraps errors as {"message": ..., "errors": [...]}; anything else is
// returned verbatim.
func errorMessage(body []byte) string {
	var status StatusResponse
	if err := json.Unmarshal(body, &status); err == nil && status.Message != "" {
		if len(status.Errors) > 0 {
			return status.Message + ": " + strings.Join(status.Errors, "; ")
		}
		return status.Message
	}
	return strings.TrimSpace(string(body))
}
