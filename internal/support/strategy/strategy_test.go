package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"support-router/internal/metrics"
	"support-router/pkg/log"
)

type mockGenerator struct {
	text    string
	err     error
	prompts []string
}

func (m *mockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.text, m.err
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		gen      *mockGenerator
		want     string
		wantErr  bool
	}{
		{name: "default", strategy: "", want: NameTemplate},
		{name: "template", strategy: NameTemplate, want: NameTemplate},
		{name: "llm", strategy: NameLLM, gen: &mockGenerator{}, want: NameLLM},
		{name: "llm without generator", strategy: NameLLM, wantErr: true},
		{name: "unknown", strategy: "poetry", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Strategy
			var err error
			if tt.gen != nil {
				s, err = New(tt.strategy, tt.gen, log.NewNop())
			} else {
				s, err = New(tt.strategy, nil, log.NewNop())
			}
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if s.Name() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, s.Name())
			}
		})
	}
}

func TestTemplateRender(t *testing.T) {
	got := NewTemplate().Render(context.Background(), Draft{Template: "fixed", Prompt: "ignored"})
	if got.Text != "fixed" || got.Degraded {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestLLMRender(t *testing.T) {
	gen := &mockGenerator{text: "generated"}
	got := NewLLM(gen, log.NewNop()).Render(context.Background(), Draft{Operation: "account_help", Template: "fixed", Prompt: "p"})
	if got.Text != "generated" || got.Degraded {
		t.Errorf("unexpected result: %+v", got)
	}
	if len(gen.prompts) != 1 || gen.prompts[0] != "p" {
		t.Errorf("unexpected prompts: %v", gen.prompts)
	}
}

func TestLLMRenderWithoutPromptSkipsGenerator(t *testing.T) {
	gen := &mockGenerator{text: "generated"}
	got := NewLLM(gen, log.NewNop()).Render(context.Background(), Draft{Template: "fixed"})
	if got.Text != "fixed" || len(gen.prompts) != 0 {
		t.Errorf("expected template text without generator call, got %+v", got)
	}
}

func TestLLMRenderDegrades(t *testing.T) {
	boom := errors.New("connection refused")
	before := testutil.ToFloat64(metrics.RepliesDegradedTotal.WithLabelValues("refund_response"))

	got := NewLLM(&mockGenerator{err: boom}, log.NewNop()).Render(context.Background(), Draft{
		Operation: "refund_response",
		Template:  "fallback text",
		Prompt:    "p",
	})
	if got.Text != "fallback text" || !got.Degraded || !errors.Is(got.Err, boom) {
		t.Errorf("unexpected result: %+v", got)
	}

	after := testutil.ToFloat64(metrics.RepliesDegradedTotal.WithLabelValues("refund_response"))
	if after-before != 1 {
		t.Errorf("expected degraded counter to grow by 1, got %v", after-before)
	}
}
