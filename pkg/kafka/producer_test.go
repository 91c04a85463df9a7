package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestNoopProducer(t *testing.T) {
	p := NewProducer(nil, "support.tickets")
	if p.Enabled() {
		t.Fatal("producer without brokers must be disabled")
	}
	if err := p.Publish(context.Background(), Event{Type: EventTicketCreated}); err != nil {
		t.Fatalf("noop publish returned error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("noop close returned error: %v", err)
	}
}

func TestPublish(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w, topic: "support.tickets"}

	err := p.Publish(context.Background(), Event{Type: EventTicketCreated, TicketID: 9, CustomerID: 1, Priority: "high"})
	if err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.msgs))
	}
	if string(w.msgs[0].Key) != "1" {
		t.Errorf("expected key 1, got %s", w.msgs[0].Key)
	}

	var got map[string]any
	if err := json.Unmarshal(w.msgs[0].Value, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["event"] != EventTicketCreated || got["priority"] != "high" {
		t.Errorf("unexpected payload: %v", got)
	}
}

func TestPublishError(t *testing.T) {
	p := &Producer{writer: &fakeWriter{err: errors.New("broker down")}}
	if err := p.Publish(context.Background(), Event{Type: EventTicketCreated}); err == nil {
		t.Fatal("expected write error")
	}
}
