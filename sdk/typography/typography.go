package typography

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// msgEmptyTitle is shown when a submission arrives with nothing to analyze.
const msgEmptyTitle = "Please enter a title to analyze."

// Client resolves font suggestions and tracks the request lifecycle.
// It is safe for concurrent use; overlapping submissions are dropped
// rather than queued.
type Client struct {
	config    Config
	transport *httpTransport

	// sleep is swapped out in tests to capture the fallback delay.
	sleep func(ctx context.Context, d time.Duration) error

	// inflight is the re-entrancy latch. It is set for the duration of
	// one submission and checked-and-set atomically at the top of Submit.
	inflight atomic.Bool

	mu        sync.Mutex
	state     State
	lastTitle string
}

// New creates a new typography client with the given configuration.
func New(cfg Config) (*Client, error) {
	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	cfg = cfg.withDefaults()

	return &Client{
		config:    cfg,
		transport: newHTTPTransport(cfg),
		sleep:     sleepWithContext,
		state:     State{Phase: PhaseIdle},
	}, nil
}

// Submit resolves a font suggestion for title, driving the client state
// through loading to a terminal phase. It blocks on the calling goroutine
// until the submission settles and returns the resulting snapshot.
//
// A blank title fails locally without a request. While another submission
// is in flight, or when the trimmed title matches the previously resolved
// one, Submit is a silent no-op that returns the current state unchanged.
// explicit marks submissions typed by the user as opposed to programmatic
// ones; both paths are handled identically.
func (c *Client) Submit(ctx context.Context, title string, explicit bool) State {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return c.failWith(msgEmptyTitle)
	}

	// Re-entrancy latch: drop overlapping submissions without touching state
	if !c.inflight.CompareAndSwap(false, true) {
		return c.State()
	}
	defer c.inflight.Store(false)

	// The previous resolution already answered this title
	if c.alreadyResolved(trimmed) {
		return c.State()
	}

	c.setLoading()

	suggestion, err := c.transport.fetchSuggestion(ctx, trimmed)
	switch {
	case err == nil:
		return c.applySuggestion(trimmed, *suggestion, PhaseSucceeded, "")
	case errors.Is(err, ErrNetwork):
		// Hold the loading phase briefly before the offline suggestion lands
		_ = c.sleep(ctx, c.config.FallbackDelay)
		advisory := fmt.Sprintf("Could not reach %s. Showing the offline %q suggestion instead.",
			c.config.Endpoint, FallbackFontName)
		return c.applySuggestion(trimmed, Suggestion{
			FontName: FallbackFontName,
			Reason:   FallbackReason,
		}, PhaseFailed, advisory)
	default:
		return c.failWith(err.Error())
	}
}

// State returns a snapshot of the current request lifecycle.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// alreadyResolved reports whether the last resolved submission answered
// this exact trimmed title.
func (c *Client) alreadyResolved(title string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return title == c.lastTitle
}

// setLoading enters the loading phase, clearing any prior error while
// leaving the displayed result in place.
func (c *Client) setLoading() {
	c.mu.Lock()
	c.state.Phase = PhaseLoading
	c.state.Err = ""
	st := c.state
	c.mu.Unlock()

	c.notifyState(st)
}

// applySuggestion installs a resolved suggestion and records the title in
// the dedup memory. The displayed result is replaced only when the value
// actually changed; otherwise the existing pointer is kept so observers
// comparing by identity see no update. OnSuggestion fires only on change.
func (c *Client) applySuggestion(title string, s Suggestion, phase Phase, errMsg string) State {
	c.mu.Lock()
	changed := c.state.Result == nil || *c.state.Result != s
	if changed {
		c.state.Result = &s
	}
	c.state.Phase = phase
	c.state.Err = errMsg
	c.lastTitle = title
	st := c.state
	c.mu.Unlock()

	c.notifyState(st)
	if changed && c.config.OnSuggestion != nil {
		c.config.OnSuggestion(s)
	}
	return st
}

// failWith enters the failed phase with the given message. The displayed
// result and the dedup memory are left untouched.
func (c *Client) failWith(msg string) State {
	c.mu.Lock()
	c.state.Phase = PhaseFailed
	c.state.Err = msg
	st := c.state
	c.mu.Unlock()

	c.notifyState(st)
	return st
}

// notifyState dispatches a state snapshot to the configured observer.
// Called without the mutex held so observers may call back into the client.
func (c *Client) notifyState(st State) {
	if c.config.OnStateChange != nil {
		c.config.OnStateChange(st)
	}
}

// setSleepForTesting replaces the delay function on the client and its
// transport for deterministic tests.
func (c *Client) setSleepForTesting(sleep func(ctx context.Context, d time.Duration) error) {
	c.sleep = sleep
	c.transport.sleep = sleep
}
