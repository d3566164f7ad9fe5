package typography

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultMaxAttempts   = 3
	DefaultBaseBackoff   = 500 * time.Millisecond
	DefaultFallbackDelay = 500 * time.Millisecond
)

// OnStateChange is called after every state transition with the new snapshot.
// Silent no-ops (duplicate or overlapping submissions) do not fire it.
type OnStateChange func(State)

// OnSuggestion is called when the displayed suggestion changes value.
// It does not fire when a submission resolves to the suggestion already
// on display.
type OnSuggestion func(Suggestion)

// Config holds the client configuration.
type Config struct {
	// Endpoint is the suggestion server URL (required, e.g., "http://localhost:8080")
	Endpoint string

	// MaxAttempts is the total number of request attempts per submission,
	// including the first (default: 3)
	MaxAttempts int

	// Timeout is the HTTP request timeout. Zero means no timeout: a hung
	// connection is bounded only by the caller's context (default: 0)
	Timeout time.Duration

	// BaseBackoff is the wait after the first failed attempt; it doubles
	// after each further failure (default: 500ms)
	BaseBackoff time.Duration

	// FallbackDelay is how long the client holds the loading phase before
	// applying the offline fallback suggestion (default: 500ms)
	FallbackDelay time.Duration

	// OnStateChange receives every state transition (optional)
	OnStateChange OnStateChange

	// OnSuggestion receives each newly displayed suggestion (optional)
	OnSuggestion OnSuggestion
}

// validate checks that required fields are set and values are valid.
func (c *Config) validate() error {
	if c.Endpoint == "" {
		return errors.New("typography: Endpoint is required")
	}

	// Validate endpoint is a valid URL
	if _, err := url.Parse(c.Endpoint); err != nil {
		return errors.New("typography: Endpoint must be a valid URL")
	}

	// Validate attempt count
	if c.MaxAttempts < 0 {
		return errors.New("typography: MaxAttempts must be non-negative")
	}

	// Validate timing fields
	if c.Timeout < 0 {
		return errors.New("typography: Timeout must be non-negative")
	}
	if c.BaseBackoff < 0 {
		return errors.New("typography: BaseBackoff must be non-negative")
	}
	if c.FallbackDelay < 0 {
		return errors.New("typography: FallbackDelay must be non-negative")
	}

	return nil
}

// withDefaults returns a copy of the config with default values applied.
func (c Config) withDefaults() Config {
	cfg := c

	// Trim trailing slash from endpoint
	cfg.Endpoint = strings.TrimSuffix(cfg.Endpoint, "/")

	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BaseBackoff == 0 {
		cfg.BaseBackoff = DefaultBaseBackoff
	}
	if cfg.FallbackDelay == 0 {
		cfg.FallbackDelay = DefaultFallbackDelay
	}

	return cfg
}
