// Package events publishes idea lifecycle events for back-office consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Type names a lifecycle transition. It is also the last token of the subject.
type Type string

const (
	Created Type = "created"
	Updated Type = "updated"
	Deleted Type = "deleted"
	Liked   Type = "liked"
	Unliked Type = "unliked"
)

// SubjectPrefix is prepended to the event type to form the NATS subject,
// e.g. "ideas.liked".
const SubjectPrefix = "ideas."

// Event is the JSON payload published for every successful idea write.
type Event struct {
	Type        Type      `json:"type"`
	IdeaID      string    `json:"ideaId"`
	PrincipalID string    `json:"principalId"`
	LikeCount   int       `json:"likeCount"`
	At          time.Time `json:"at"`
}

// Publisher sends events somewhere. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

// Publish does nothing.
func (Nop) Publish(context.Context, Event) error { return nil }

// conn is the subset of *nats.Conn the publisher needs.
type conn interface {
	Publish(subj string, data []byte) error
}

// NATSPublisher publishes events as JSON on core NATS subjects.
type NATSPublisher struct {
	conn conn
}

// NewNATSPublisher wraps an established NATS connection.
func NewNATSPublisher(nc *nats.Conn) *NATSPublisher {
	return &NATSPublisher{conn: nc}
}

// Connect dials the NATS server at url with reconnects enabled.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("ideashare-api"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("events.Connect: %w", err)
	}
	return nc, nil
}

// Publish encodes e and sends it on SubjectPrefix + e.Type.
// Core NATS publishes are fire-and-forget; ctx is only checked up front.
func (p *NATSPublisher) Publish(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("events.NATSPublisher.Publish: %w", err)
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("events.NATSPublisher.Publish: marshal: %w", err)
	}
	if err := p.conn.Publish(SubjectPrefix+string(e.Type), data); err != nil {
		return fmt.Errorf("events.NATSPublisher.Publish: %w", err)
	}
	return nil
}
