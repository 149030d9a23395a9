package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClaude_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Error("missing or wrong x-api-key header")
		}
		if r.Header.Get("anthropic-version") != anthropicAPIVersion {
			t.Error("missing anthropic-version header")
		}

		var req claudeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.System == "" {
			t.Error("system prompt should be a top-level field")
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		if req.MaxTokens != 4000 {
			t.Errorf("MaxTokens = %d, want 4000", req.MaxTokens)
		}

		resp := claudeResponse{
			Content: []claudeBlock{
				{Type: "text", Text: "MR summary here"},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := &Claude{
		apiKey:   "test-key",
		model:    "claude-3-7-sonnet-20250219",
		endpoint: server.URL,
		client:   server.Client(),
	}

	resp, err := c.Generate(context.Background(), Request{System: "sys", User: "diff"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if resp.Content != "MR summary here" {
		t.Errorf("Content = %q", resp.Content)
	}
}

// The first text block wins; non-text blocks are skipped.
func TestClaude_SkipsNonTextBlocks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[{"type":"thinking","text":""},{"type":"text","text":"answer"}]}`))
	}))
	defer server.Close()

	c := &Claude{apiKey: "k", model: "m", endpoint: server.URL, client: server.Client()}

	resp, err := c.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if resp.Content != "answer" {
		t.Errorf("Content = %q, want %q", resp.Content, "answer")
	}
}

func TestClaude_RequestFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(529)
		w.Write([]byte(`{"type":"error","error":{"type":"overloaded_error"}}`))
	}))
	defer server.Close()

	c := &Claude{apiKey: "k", model: "m", endpoint: server.URL, client: server.Client()}

	_, err := c.Generate(context.Background(), Request{})
	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got: %v", err)
	}
	if re.StatusCode != 529 || re.Provider != "claude" {
		t.Errorf("unexpected RequestError: %+v", re)
	}
}

func TestClaude_ParseFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	c := &Claude{apiKey: "k", model: "m", endpoint: server.URL, client: server.Client()}

	_, err := c.Generate(context.Background(), Request{})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got: %v", err)
	}
}

func TestClaude_EmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no content", `{"content":[]}`},
		{"no text blocks", `{"content":[{"type":"tool_use","text":""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := &Claude{apiKey: "k", model: "m", endpoint: server.URL, client: server.Client()}

			_, err := c.Generate(context.Background(), Request{})
			if !errors.Is(err, ErrEmptyResponse) {
				t.Fatalf("expected ErrEmptyResponse, got: %v", err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
		wantErr  bool
	}{
		{"claude", "claude", false},
		{"openai", "openai", false},
		{"gemini", "", true},
	}

	for _, tt := range tests {
		g, err := New(resolvedFor(tt.provider))
		if tt.wantErr {
			if err == nil {
				t.Errorf("New(%q): expected error", tt.provider)
			}
			continue
		}
		if err != nil {
			t.Errorf("New(%q) error: %v", tt.provider, err)
			continue
		}
		if g.Name() != tt.wantName {
			t.Errorf("New(%q).Name() = %q, want %q", tt.provider, g.Name(), tt.wantName)
		}
	}
}
