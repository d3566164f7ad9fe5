package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// TestGemini_Generate verifies the request shape and reply extraction.
func TestGemini_Generate(t *testing.T) {
	var requestCount atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)

		if r.Method != http.MethodPost {
			t.Errorf("Method = %q, want %q", r.Method, http.MethodPost)
		}
		wantPath := "/v1beta/models/gemini-2.5-flash:generateContent"
		if r.URL.Path != wantPath {
			t.Errorf("Path = %q, want %q", r.URL.Path, wantPath)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("x-goog-api-key = %q, want %q", r.Header.Get("x-goog-api-key"), "test-key")
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Fatalf("unexpected request shape: %+v", req)
		}
		if req.Contents[0].Parts[0].Text != "suggest a font" {
			t.Errorf("prompt = %q, want %q", req.Contents[0].Parts[0].Text, "suggest a font")
		}

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"font_name\":"},{"text":"\"Lora\",\"reason\":\"x\"}"}]}}]}`))
	}))
	defer server.Close()

	g := NewGemini(GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: server.URL,
	}, 5*time.Second)

	reply, err := g.Generate(context.Background(), "suggest a font")
	if err != nil {
		t.Fatalf("Generate() returned error: %v", err)
	}

	// Parts are concatenated in order
	want := `{"font_name":"Lora","reason":"x"}`
	if reply != want {
		t.Errorf("reply = %q, want %q", reply, want)
	}
	if requestCount.Load() != 1 {
		t.Errorf("Expected 1 request, got %d", requestCount.Load())
	}
}

// TestGemini_Generate_MissingKey verifies the key check happens before any
// network activity.
func TestGemini_Generate_MissingKey(t *testing.T) {
	var requestCount atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)
	}))
	defer server.Close()

	g := NewGemini(GeminiConfig{BaseURL: server.URL, Model: "gemini-2.5-flash"}, 5*time.Second)

	_, err := g.Generate(context.Background(), "suggest a font")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}
	if requestCount.Load() != 0 {
		t.Errorf("Expected 0 requests without a key, got %d", requestCount.Load())
	}
}

// TestGemini_Generate_HTTPError verifies non-200 responses become errors.
func TestGemini_Generate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := NewGemini(GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: server.URL,
	}, 5*time.Second)

	_, err := g.Generate(context.Background(), "suggest a font")
	if err == nil {
		t.Error("Generate() should return error for 429 response")
	}
}

// TestGemini_Generate_EmptyCandidates verifies an empty reply is rejected.
func TestGemini_Generate_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	g := NewGemini(GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: server.URL,
	}, 5*time.Second)

	_, err := g.Generate(context.Background(), "suggest a font")
	if !errors.Is(err, ErrEmptyReply) {
		t.Errorf("error = %v, want ErrEmptyReply", err)
	}
}
