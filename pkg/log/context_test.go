package log

import (
	"context"
	"testing"
)

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "req-123")
	if got := TraceIDFromContext(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
	if got := TraceIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}
}

func TestInitFallsBackOnUnknownLevel(t *testing.T) {
	l := Init(ZapConfig{Level: "verbose", Mode: ModeDevelopment, Encoding: EncodingJSON})
	if l == nil {
		t.Fatal("expected logger")
	}
	l.Infof(WithTraceID(context.Background(), "abc"), "hello %s", "world")
}
