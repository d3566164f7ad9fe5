package typography

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// httpTransport handles HTTP communication with the suggestion server.
type httpTransport struct {
	client      *http.Client
	endpoint    string
	maxAttempts int
	baseBackoff time.Duration

	// sleep is swapped out in tests to capture backoff delays.
	sleep func(ctx context.Context, d time.Duration) error
}

// newHTTPTransport creates a new HTTP transport with the given configuration.
func newHTTPTransport(cfg Config) *httpTransport {
	return &httpTransport{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoint:    cfg.Endpoint,
		maxAttempts: cfg.MaxAttempts,
		baseBackoff: cfg.BaseBackoff,
		sleep:       sleepWithContext,
	}
}

// errorBody is the error payload returned by the suggestion server.
// Older deployments used "error" instead of "details"; both are accepted.
type errorBody struct {
	Details string `json:"details"`
	Error   string `json:"error"`
}

// fetchSuggestion requests a font suggestion for the given title.
// It makes up to MaxAttempts attempts, retrying transient failures with
// exponential backoff. On success it returns the decoded suggestion.
// A non-success response that is out of attempts (or not retryable at
// all) comes back as an *UpstreamError; a connection-level failure on
// the final attempt comes back wrapping ErrNetwork.
func (t *httpTransport) fetchSuggestion(ctx context.Context, title string) (*Suggestion, error) {
	body, err := json.Marshal(suggestionRequest{Prompt: title})
	if err != nil {
		return nil, fmt.Errorf("typography: failed to marshal request: %w", err)
	}

	url := t.endpoint + "/v1/suggestions"

	var lastErr error
	for attempt := 0; attempt < t.maxAttempts; attempt++ {
		if attempt > 0 {
			// Wait with exponential backoff before the retry
			if err := t.sleep(ctx, backoffDelay(t.baseBackoff, attempt-1)); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("typography: failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := t.client.Do(req)
		if err != nil {
			// Connection-level failure: retryable
			lastErr = fmt.Errorf("%w: %v", ErrNetwork, err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", ErrNetwork, err)
			continue
		}

		// Success: 2xx status codes
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			var s Suggestion
			if err := json.Unmarshal(respBody, &s); err != nil {
				return nil, fmt.Errorf("typography: failed to decode suggestion: %w", err)
			}
			return &s, nil
		}

		// Non-retryable status: give up immediately, no backoff
		if !retryableStatus(resp.StatusCode) {
			return nil, upstreamError(resp.StatusCode, respBody)
		}

		lastErr = upstreamError(resp.StatusCode, respBody)
	}

	return nil, lastErr
}

// retryableStatus reports whether a response status should be attempted
// again. Server errors are transient. 404 is treated as transient too:
// the suggestion route drops out briefly while the backend redeploys.
func retryableStatus(code int) bool {
	return code == http.StatusNotFound || code >= 500
}

// upstreamError builds the error for a non-success response, preferring
// the details field of the error body over the generic status message.
func upstreamError(statusCode int, body []byte) *UpstreamError {
	msg := fmt.Sprintf("HTTP error, status=%d", statusCode)

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Details != "" {
			msg = eb.Details
		} else if eb.Error != "" {
			msg = eb.Error
		}
	}

	return &UpstreamError{StatusCode: statusCode, Message: msg}
}

// backoffDelay returns the wait applied after failed attempt n (0-based):
// the base delay doubled n times.
func backoffDelay(base time.Duration, n int) time.Duration {
	return base * time.Duration(1<<n)
}

// sleepWithContext pauses for d, returning early with the context error
// if ctx is cancelled first.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
