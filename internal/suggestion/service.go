// Package suggestion turns a title into a font suggestion by way of the
// configured AI provider. The service owns the prompt, the extraction of
// the suggestion object from the raw model reply, and the completeness
// check; everything else is pass-through.
package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/MishC/Gemini-typography/internal/observability"
	"github.com/MishC/Gemini-typography/internal/provider"
)

// suggestionPrompt is the fixed prompt. Prompt construction is kept
// deliberately minimal: the title is interpolated and the reply shape is
// pinned, nothing more.
const suggestionPrompt = `Suggest one Google Fonts family for displaying the title %q.
Reply with a single JSON object of the form {"font_name": "...", "reason": "..."} and nothing else.`

// Suggestion is a resolved font recommendation.
type Suggestion struct {
	FontName string `json:"font_name"`
	Reason   string `json:"reason"`
}

// Service resolves suggestions against an AI provider.
type Service struct {
	provider provider.Client
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewService creates a suggestion service backed by the given provider.
// metrics may be nil to disable instrumentation; a nil logger falls back
// to slog.Default().
func NewService(p provider.Client, metrics *observability.Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		provider: p,
		metrics:  metrics,
		logger:   logger.With("component", "suggestion"),
	}
}

// Suggest resolves a font suggestion for the given title.
func (s *Service) Suggest(ctx context.Context, title string) (*Suggestion, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, ErrEmptyTitle
	}

	prompt := fmt.Sprintf(suggestionPrompt, trimmed)

	start := time.Now()
	reply, err := s.provider.Generate(ctx, prompt)
	s.recordProviderCall(ctx, time.Since(start), err)
	if err != nil {
		s.logger.Error("provider request failed",
			"provider", s.provider.Name(),
			"error", err)
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	parsed, err := parseSuggestion(reply)
	if err != nil {
		s.logger.Error("unusable provider reply",
			"provider", s.provider.Name(),
			"error", err)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.SuggestionsServed.Add(ctx, 1)
	}
	return parsed, nil
}

// parseSuggestion extracts the suggestion object from a raw model reply.
// Models often wrap the JSON in markdown fences or prose; the first
// balanced object wins. A suggestion is never partial: both fields must
// be present.
func parseSuggestion(reply string) (*Suggestion, error) {
	payload := extractJSON(reply)
	if payload == "" {
		return nil, ErrBadReply
	}

	var s Suggestion
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReply, err)
	}

	if s.FontName == "" || s.Reason == "" {
		return nil, ErrBadReply
	}
	return &s, nil
}

func (s *Service) recordProviderCall(ctx context.Context, elapsed time.Duration, err error) {
	if s.metrics == nil {
		return
	}

	attrs := otelmetric.WithAttributes(
		attribute.String("provider", s.provider.Name()),
	)

	s.metrics.ProviderRequests.Add(ctx, 1, attrs)
	s.metrics.ProviderLatency.Record(ctx, float64(elapsed.Milliseconds()), attrs)
	if err != nil {
		s.metrics.ProviderErrors.Add(ctx, 1, attrs)
	}
}
