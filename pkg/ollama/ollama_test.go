package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	var got generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3.2","response":"Hello Alice","done":true,"prompt_eval_count":12,"eval_count":3}`))
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL + "/"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	resp, err := client.Generate(context.Background(), &Request{Prompt: "Greet Alice"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if got.Stream {
		t.Error("expected stream=false on the wire")
	}
	if got.Model != DefaultModel || got.Prompt != "Greet Alice" {
		t.Errorf("unexpected request body: %+v", got)
	}
	if resp.Text != "Hello Alice" {
		t.Errorf("expected 'Hello Alice', got %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
	}
}

func TestGenerateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client, _ := New(Config{BaseURL: server.URL})
	_, err := client.Generate(context.Background(), &Request{Prompt: "hi"})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestGenerateRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, _ := New(Config{BaseURL: server.URL})
	_, err := client.Generate(context.Background(), &Request{Prompt: "hi"})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestGenerateTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, _ := New(Config{BaseURL: server.URL, Timeout: 20 * time.Millisecond})
	if _, err := client.Generate(context.Background(), &Request{Prompt: "hi"}); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestGenerateRequiresPrompt(t *testing.T) {
	client, _ := New(Config{})
	if _, err := client.Generate(context.Background(), &Request{}); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{BaseURL: "localhost:11434"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for scheme-less base url")
	}

	cfg = Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL || cfg.Model != DefaultModel || cfg.HTTPClient == nil {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}
