// Package events publishes relay outcomes to a message bus so other
// services can react to finished evaluations without polling history.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Event describes one finished relay call.
type Event struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	TestType   string    `json:"test_type"`
	Status     int       `json:"status"`
	DurationMs int64     `json:"duration_ms"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close()
}

// NopPublisher drops every event. Used when no bus is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close()                               {}

// NATSPublisher sends events as JSON to "<prefix>.<kind>".
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
	closed chan struct{}
}

func NewNATSPublisher(url, prefix string) (*NATSPublisher, error) {
	closed := make(chan struct{})
	conn, err := nats.Connect(url,
		nats.Name("evaluatehub-backend"),
		nats.ClosedHandler(func(*nats.Conn) { close(closed) }),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn, prefix: prefix, closed: closed}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.conn.Publish(Subject(p.prefix, ev.Kind), data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Close flushes pending messages and returns once the connection is closed.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
	<-p.closed
}

func Subject(prefix, kind string) string {
	if prefix == "" {
		return kind
	}
	return prefix + "." + kind
}
