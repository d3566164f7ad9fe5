// Package provider contains the generative-AI clients that back the
// suggestion service. A provider takes a prompt and returns the raw model
// reply; everything above it treats that reply as opaque text.
package provider

import (
	"context"
	"fmt"
	"time"
)

// Provider kinds accepted by the factory.
const (
	KindGemini = "gemini"
	KindOpenAI = "openai"
	KindStatic = "static"
)

// Client generates a model reply for a prompt.
type Client interface {
	// Generate sends the prompt and returns the raw reply text.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the provider in logs and errors.
	Name() string
}

// Config selects and configures the provider chain.
type Config struct {
	// Kind selects the provider implementation: gemini, openai, or static
	Kind string `env:"PROVIDER" envDefault:"gemini"`

	// Fallback optionally names a second provider consulted when the
	// primary one fails (commonly "static" for keyless development)
	Fallback string `env:"PROVIDER_FALLBACK"`

	// Timeout bounds each provider call
	Timeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"30s"`

	Gemini GeminiConfig
	OpenAI OpenAIConfig
}

// GeminiConfig configures the Gemini provider.
type GeminiConfig struct {
	APIKey  string `env:"GEMINI_API_KEY"`
	Model   string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	BaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
}

// OpenAIConfig configures the OpenAI-compatible provider. Pointing BaseURL
// at Groq, Ollama, or LM Studio works the same way.
type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
}

// New builds the configured provider, wrapping it in a fallback chain when
// a secondary provider is named.
func New(cfg Config) (Client, error) {
	primary, err := build(cfg, cfg.Kind)
	if err != nil {
		return nil, err
	}

	if cfg.Fallback == "" {
		return primary, nil
	}

	secondary, err := build(cfg, cfg.Fallback)
	if err != nil {
		return nil, err
	}

	return &Fallback{Primary: primary, Secondary: secondary}, nil
}

func build(cfg Config, kind string) (Client, error) {
	switch kind {
	case KindGemini:
		return NewGemini(cfg.Gemini, cfg.Timeout), nil
	case KindOpenAI:
		return NewOpenAI(cfg.OpenAI, cfg.Timeout), nil
	case KindStatic:
		return NewStatic(), nil
	default:
		return nil, fmt.Errorf("provider: unknown provider %q", kind)
	}
}
