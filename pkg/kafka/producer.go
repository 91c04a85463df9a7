package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Event is a ticket lifecycle message written to the ticket topic.
type Event struct {
	Type       string    `json:"event"`
	TicketID   int64     `json:"ticket_id"`
	CustomerID int64     `json:"customer_id"`
	Issue      string    `json:"issue"`
	Priority   string    `json:"priority"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventTicketCreated is published after a ticket row is committed.
const EventTicketCreated = "ticket.created"

const (
	writeTimeout = 2 * time.Second
	maxAttempts  = 3
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes ticket events to a topic. A Producer built without
// brokers or topic is a no-op.
type Producer struct {
	writer messageWriter
	topic  string
}

// NewProducer creates a producer for the given brokers and topic.
func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 || topic == "" {
		return &Producer{}
	}
	return &Producer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			WriteTimeout:           writeTimeout,
			MaxAttempts:            maxAttempts,
			AllowAutoTopicCreation: true,
		},
	}
}

// Enabled reports whether events are actually sent.
func (p *Producer) Enabled() bool {
	return p.writer != nil
}

// Publish writes one event keyed by customer id so a customer's events stay ordered.
func (p *Producer) Publish(ctx context.Context, ev Event) error {
	if p.writer == nil {
		return nil
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("kafka: marshal %s: %w", ev.Type, err)
	}
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", ev.CustomerID)),
		Value: body,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write %s: %w", ev.Type, err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
