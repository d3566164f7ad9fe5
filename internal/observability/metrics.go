package observability

import (
	otelmetric "go.opentelemetry.io/otel/metric"
)

// Metrics holds all metric instruments used across the suggestion server.
// Instruments are created once at startup and shared with middleware,
// handlers, and service components.
type Metrics struct {
	// HTTP metrics
	HTTPRequestDuration otelmetric.Float64Histogram
	HTTPRequestTotal    otelmetric.Int64Counter
	HTTPRequestErrors   otelmetric.Int64Counter

	// Provider metrics
	ProviderRequests otelmetric.Int64Counter
	ProviderErrors   otelmetric.Int64Counter
	ProviderLatency  otelmetric.Float64Histogram

	// Suggestion metrics
	SuggestionsServed   otelmetric.Int64Counter
	SuggestionFallbacks otelmetric.Int64Counter

	// Font asset metrics
	FontDownloads otelmetric.Int64Counter
}

// NewMetrics creates all metric instruments from the given Meter.
func NewMetrics(meter otelmetric.Meter) (*Metrics, error) {
	var m Metrics
	var err error

	// HTTP metrics
	m.HTTPRequestDuration, err = meter.Float64Histogram(
		"http.request.duration",
		otelmetric.WithUnit("ms"),
		otelmetric.WithDescription("HTTP request duration in milliseconds"),
	)
	if err != nil {
		return nil, err
	}

	m.HTTPRequestTotal, err = meter.Int64Counter(
		"http.request.total",
		otelmetric.WithDescription("Total HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	m.HTTPRequestErrors, err = meter.Int64Counter(
		"http.request.errors",
		otelmetric.WithDescription("HTTP request errors (4xx and 5xx)"),
	)
	if err != nil {
		return nil, err
	}

	// Provider metrics
	m.ProviderRequests, err = meter.Int64Counter(
		"provider.requests",
		otelmetric.WithDescription("Requests sent to the AI provider"),
	)
	if err != nil {
		return nil, err
	}

	m.ProviderErrors, err = meter.Int64Counter(
		"provider.errors",
		otelmetric.WithDescription("AI provider requests that failed"),
	)
	if err != nil {
		return nil, err
	}

	m.ProviderLatency, err = meter.Float64Histogram(
		"provider.latency",
		otelmetric.WithUnit("ms"),
		otelmetric.WithDescription("AI provider round-trip latency in milliseconds"),
	)
	if err != nil {
		return nil, err
	}

	// Suggestion metrics
	m.SuggestionsServed, err = meter.Int64Counter(
		"suggestions.served",
		otelmetric.WithDescription("Font suggestions served"),
	)
	if err != nil {
		return nil, err
	}

	m.SuggestionFallbacks, err = meter.Int64Counter(
		"suggestions.fallbacks",
		otelmetric.WithDescription("Suggestions answered by the secondary provider"),
	)
	if err != nil {
		return nil, err
	}

	// Font asset metrics
	m.FontDownloads, err = meter.Int64Counter(
		"fonts.downloads",
		otelmetric.WithDescription("Font files downloaded into the local cache"),
	)
	if err != nil {
		return nil, err
	}

	return &m, nil
}
