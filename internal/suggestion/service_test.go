// Package suggestion tests the title-to-suggestion service.
package suggestion

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeProvider is a scriptable provider for service tests.
type fakeProvider struct {
	reply  string
	err    error
	prompt string
	calls  int
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.reply, f.err
}

func (f *fakeProvider) Name() string { return "fake" }

// TestSuggest_Success verifies a plain JSON reply resolves.
func TestSuggest_Success(t *testing.T) {
	p := &fakeProvider{reply: `{"font_name":"Lora","reason":"Readable at display sizes."}`}
	svc := NewService(p, nil, nil)

	s, err := svc.Suggest(context.Background(), "Midnight Library")
	if err != nil {
		t.Fatalf("Suggest() returned error: %v", err)
	}

	if s.FontName != "Lora" {
		t.Errorf("FontName = %q, want %q", s.FontName, "Lora")
	}
	if s.Reason != "Readable at display sizes." {
		t.Errorf("Reason = %q, want %q", s.Reason, "Readable at display sizes.")
	}
}

// TestSuggest_PromptContainsTitle verifies the title reaches the provider.
func TestSuggest_PromptContainsTitle(t *testing.T) {
	p := &fakeProvider{reply: `{"font_name":"Lora","reason":"x"}`}
	svc := NewService(p, nil, nil)

	if _, err := svc.Suggest(context.Background(), "  Neon Arcade  "); err != nil {
		t.Fatalf("Suggest() returned error: %v", err)
	}

	if !strings.Contains(p.prompt, `"Neon Arcade"`) {
		t.Errorf("prompt should contain the trimmed title, got %q", p.prompt)
	}
}

// TestSuggest_FencedReply verifies markdown-fenced replies are unwrapped.
func TestSuggest_FencedReply(t *testing.T) {
	p := &fakeProvider{reply: "```json\n{\"font_name\":\"Oswald\",\"reason\":\"Punchy.\"}\n```"}
	svc := NewService(p, nil, nil)

	s, err := svc.Suggest(context.Background(), "Bold Title")
	if err != nil {
		t.Fatalf("Suggest() returned error: %v", err)
	}
	if s.FontName != "Oswald" {
		t.Errorf("FontName = %q, want %q", s.FontName, "Oswald")
	}
}

// TestSuggest_ProseWrappedReply verifies a reply with prose around the
// object still resolves.
func TestSuggest_ProseWrappedReply(t *testing.T) {
	p := &fakeProvider{reply: `Here is my pick: {"font_name":"Monoton","reason":"A neon marquee."} Enjoy!`}
	svc := NewService(p, nil, nil)

	s, err := svc.Suggest(context.Background(), "Neon Nights")
	if err != nil {
		t.Fatalf("Suggest() returned error: %v", err)
	}
	if s.FontName != "Monoton" {
		t.Errorf("FontName = %q, want %q", s.FontName, "Monoton")
	}
}

// TestSuggest_EmptyTitle verifies blank titles are rejected before the
// provider is consulted.
func TestSuggest_EmptyTitle(t *testing.T) {
	p := &fakeProvider{reply: `{"font_name":"Lora","reason":"x"}`}
	svc := NewService(p, nil, nil)

	for _, title := range []string{"", "   "} {
		_, err := svc.Suggest(context.Background(), title)
		if !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("Suggest(%q) error = %v, want ErrEmptyTitle", title, err)
		}
	}
	if p.calls != 0 {
		t.Errorf("provider calls = %d, want 0", p.calls)
	}
}

// TestSuggest_ProviderError verifies provider failures are wrapped.
func TestSuggest_ProviderError(t *testing.T) {
	p := &fakeProvider{err: errors.New("model offline")}
	svc := NewService(p, nil, nil)

	_, err := svc.Suggest(context.Background(), "Any Title")
	if !errors.Is(err, ErrProvider) {
		t.Errorf("error = %v, want ErrProvider", err)
	}
	if !strings.Contains(err.Error(), "model offline") {
		t.Errorf("error should carry the provider cause, got %q", err.Error())
	}
}

// TestSuggest_PartialReply verifies incomplete suggestions are rejected.
func TestSuggest_PartialReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"missing reason", `{"font_name":"Lora"}`},
		{"missing font", `{"reason":"Readable."}`},
		{"empty fields", `{"font_name":"","reason":""}`},
		{"not json", `the font you want is Lora`},
		{"empty reply", ``},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &fakeProvider{reply: tc.reply}
			svc := NewService(p, nil, nil)

			_, err := svc.Suggest(context.Background(), "Any Title")
			if !errors.Is(err, ErrBadReply) {
				t.Errorf("error = %v, want ErrBadReply", err)
			}
		})
	}
}
