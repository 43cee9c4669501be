package royale

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
)

// Common errors raised before any transport activity.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid royale configuration")
	// ErrMissingTag is returned when a required player or clan tag is empty.
	ErrMissingTag = errors.New("tag must not be empty")
	// ErrMissingTags is returned when a tag list is nil or empty.
	ErrMissingTags = errors.New("at least one tag is required")
)

// APIError is the single application-level error for failed API calls.
// Every transport failure that carries a recognizable HTTP status code is
// translated into this type; callers branch on Code to decide recoverability.
type APIError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("royale API error: status %d: %s", e.Code, e.Message)
}

// IsNotFound checks if the error indicates a not found response.
func (e *APIError) IsNotFound() bool {
	return e.Code == 404
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *APIError) IsUnauthorized() bool {
	return e.Code == 401 || e.Code == 403
}

// IsRateLimited checks if the error indicates request throttling.
func (e *APIError) IsRateLimited() bool {
	return e.Code == 429
}

// IsServerError checks if the error indicates an upstream server failure.
func (e *APIError) IsServerError() bool {
	return e.Code >= 500
}

// HTTPError is raised by the default transport for non-2xx responses. Its
// message ends with ": <status>" so callers that only see the message still
// get the status code, per the transport failure contract.
type HTTPError struct {
	Status int
	URL    string
	Body   string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("request to %s failed: %d", e.URL, e.Status)
}

// TransportError wraps a transport failure whose message carries no
// parseable status code: connection resets, DNS failures, malformed
// response bodies. The cause is reachable through errors.Unwrap.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// statusCodePattern is the extraction grammar for status codes embedded in
// failure messages: a trailing numeric token preceded by a colon.
var statusCodePattern = regexp.MustCompile(`:\s*(\d+)\s*$`)

// ParseStatusCode extracts the trailing status code from a transport failure
// message. ok is false when the message does not end in ": <digits>".
func ParseStatusCode(message string) (code int, ok bool) {
	m := statusCodePattern.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	code, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return code, true
}

// translateTransportError applies the uniform error policy: typed status
// failures pass through as *APIError, untyped failures are matched against
// the extraction grammar, and everything else becomes a *TransportError.
// No numeric default is ever guessed.
func translateTransportError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		message := httpErr.Body
		if message == "" {
			message = http.StatusText(httpErr.Status)
		}
		return &APIError{Code: httpErr.Status, Message: message}
	}

	if code, ok := ParseStatusCode(err.Error()); ok {
		return &APIError{Code: code, Message: err.Error()}
	}

	return &TransportError{Err: err}
}
