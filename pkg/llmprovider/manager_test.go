package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"support-router/config"
	"support-router/pkg/ollama"
	"support-router/pkg/openai"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	failTimes int
	response  *Response
	err       error
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.failTimes < 0 || m.callCount <= m.failTimes {
		if m.err != nil {
			return nil, m.err
		}
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func hello() *Request {
	return &Request{Prompt: "Hello"}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:  "primary",
		model: "primary-model",
		response: &Response{
			Text:         "Hello from primary provider",
			ProviderName: "primary",
			Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
		},
	}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: 10 * time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), hello())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text != "Hello from primary provider" {
		t.Errorf("unexpected text: %s", resp.Text)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("Expected 1 info and 0 warn, got %d/%d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_RetryThenSuccess(t *testing.T) {
	primary := &mockProvider{
		name:      "primary",
		failTimes: 1,
		response:  &Response{Text: "second try"},
	}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 2, RetryDelay: time.Millisecond}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), hello())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text != "second try" || primary.callCount != 2 {
		t.Errorf("expected success on second call, got %q after %d calls", resp.Text, primary.callCount)
	}
}

func TestGenerateContent_NilUsageIsLogged(t *testing.T) {
	primary := &mockProvider{name: "primary", response: &Response{Text: "ok"}}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, logger)

	if _, err := manager.GenerateContent(context.Background(), hello()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: -1}
	secondary := &mockProvider{name: "secondary", response: &Response{Text: "from secondary", ProviderName: "secondary"}}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), hello())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: -1}
	secondary := &mockProvider{name: "secondary", failTimes: -1}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), hello())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if primary.callCount != 2 || secondary.callCount != 2 {
		t.Errorf("Expected 2 calls each, got %d/%d", primary.callCount, secondary.callCount)
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: -1}
	secondary := &mockProvider{name: "secondary", response: &Response{Text: "unused"}}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false, RetryAttempts: 2, RetryDelay: time.Millisecond}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), hello()); err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled, got nil")
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_RateLimitSkipsRetries(t *testing.T) {
	primary := &mockProvider{
		name:      "ollama",
		failTimes: -1,
		err:       wrapClientError("ollama", fmt.Errorf("%w: busy", ollama.ErrRateLimited)),
	}
	secondary := &mockProvider{name: "openai", response: &Response{Text: "from openai", ProviderName: "openai"}}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), hello())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "openai" {
		t.Errorf("Expected fallback to openai, got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected a rate-limited provider to be called once, got: %d", primary.callCount)
	}
}

func TestWrapClientError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		rateLimited bool
	}{
		{"ollama 429", fmt.Errorf("%w: slow down", ollama.ErrRateLimited), true},
		{"openai 429", fmt.Errorf("%w: quota", openai.ErrRateLimited), true},
		{"other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapClientError("p", tt.err)
			var pe *ProviderError
			if !errors.As(err, &pe) || pe.Provider != "p" {
				t.Fatalf("expected ProviderError for p, got %v", err)
			}
			if got := errors.Is(err, ErrProviderRateLimited); got != tt.rateLimited {
				t.Errorf("errors.Is(ErrProviderRateLimited) = %v, want %v", got, tt.rateLimited)
			}
			if !errors.Is(err, tt.err) {
				t.Error("expected the client error to stay in the chain")
			}
		})
	}
}

func TestGenerateContent_InvalidInput(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})
	if _, err := manager.GenerateContent(context.Background(), hello()); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}

	manager = NewManager([]Provider{&mockProvider{name: "p"}}, &Config{}, &mockLogger{})
	if _, err := manager.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got: %v", err)
	}
}

func TestInitializeProviders_SortsByPriority(t *testing.T) {
	providers, err := InitializeProviders(&config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: "openai", Enabled: true, Priority: 2, APIKey: "k", Model: "gpt-4o-mini", Timeout: "10s"},
		{Name: "ollama", Enabled: true, Priority: 1, Model: "llama3.2", Timeout: "30s"},
		{Name: "disabled", Enabled: false, Priority: 3, Model: "x"},
	}})
	if err != nil {
		t.Fatalf("InitializeProviders() error: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "ollama" || providers[1].Name() != "openai" {
		t.Errorf("unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
	}
}

func TestInitializeProviders_SkipsBroken(t *testing.T) {
	providers, err := InitializeProviders(&config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-4o-mini"}, // no API key
		{Name: "ollama", Enabled: true, Priority: 2, Model: "llama3.2"},
	}})
	if err != nil {
		t.Fatalf("InitializeProviders() error: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "ollama" {
		t.Errorf("expected only ollama, got %d providers", len(providers))
	}

	if _, err := InitializeProviders(&config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: "mystery", Enabled: true, Priority: 1, Model: "m"},
	}}); err == nil {
		t.Error("expected error when no provider initializes")
	}
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(&config.LLMConfig{RetryAttempts: 0, RetryDelay: "250ms", MaxTotalTimeout: "5s", FallbackEnabled: true})
	if err != nil {
		t.Fatalf("NewConfig() error: %v", err)
	}
	if cfg.RetryAttempts != 1 || cfg.RetryDelay != 250*time.Millisecond || cfg.MaxTotalTimeout != 5*time.Second {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, err := NewConfig(&config.LLMConfig{RetryDelay: "soon"}); err == nil {
		t.Error("expected parse error")
	}
}
