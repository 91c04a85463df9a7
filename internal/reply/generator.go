package reply

import (
	"context"
	"fmt"
	"strings"
	"time"

	"support-router/internal/metrics"
	"support-router/pkg/llmprovider"
	"support-router/pkg/log"
)

// Generator turns a prompt into natural-language text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ContentGenerator is satisfied by *llmprovider.Manager.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config is passed at construction; there are no package-level defaults to mutate.
type Config struct {
	Timeout time.Duration
	System  string
}

type generator struct {
	llm     ContentGenerator
	timeout time.Duration
	system  string
	l       log.Logger
}

// New wraps llm so every call is bounded by cfg.Timeout.
func New(llm ContentGenerator, cfg Config, l log.Logger) Generator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.System == "" {
		cfg.System = SystemPrompt
	}
	return &generator{llm: llm, timeout: cfg.Timeout, system: cfg.System, l: l}
}

func (g *generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.llm.GenerateContent(ctx, &llmprovider.Request{
		System: g.system,
		Prompt: prompt,
	})
	if err != nil {
		metrics.GenerationDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		g.l.Warnf(ctx, "%s: %v", LogPrefixGenerate, err)
		return "", fmt.Errorf("%s: %w", LogPrefixGenerate, err)
	}
	metrics.GenerationDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrEmptyReply
	}
	g.l.Debugf(ctx, "%s: %d chars from %s/%s", LogPrefixGenerate, len(text), resp.ProviderName, resp.ModelName)
	return text, nil
}
