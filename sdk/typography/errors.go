package typography

import "errors"

// ErrNetwork indicates the suggestion service could not be reached at the
// connection level on the final attempt. Callers detect it with errors.Is;
// the client reacts by substituting the offline fallback suggestion.
// The message mirrors what the service surface reports for a dead link.
var ErrNetwork = errors.New("HTTP error, status=Network Error")

// UpstreamError is a non-success response from the suggestion service that
// is surfaced to the caller verbatim. The client does not substitute the
// fallback for these: the service answered, it just answered with a failure.
type UpstreamError struct {
	// StatusCode is the HTTP status of the final response.
	StatusCode int

	// Message is the details field from the error body when the service
	// provided one, or a generic "HTTP error, status=<code>" otherwise.
	Message string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return e.Message
}
