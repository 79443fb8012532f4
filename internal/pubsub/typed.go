package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event[T] binds a topic name to its payload type.
type Event[T any] struct {
	topicName   string
	description string
}

// NewEvent creates a typed event.
func NewEvent[T any](name string, description string) Event[T] {
	return Event[T]{topicName: name, description: description}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Description is the one-line summary the audit log records.
func (e Event[T]) Description() string {
	return e.description
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], source string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("pubsub: marshal %s: %w", event.Name(), err)
	}

	msg := Message{
		Topic:   event.Name(),
		Source:  source,
		Payload: data,
	}
	if id := RequestID(ctx); id != "" {
		msg.Metadata = map[string]string{metaKeyRequestID: id}
	}
	return p.Publish(ctx, msg)
}

// Decode unmarshals msg's payload as the event's type.
func Decode[T any](event Event[T], msg Message) (T, error) {
	var payload T
	if msg.Topic != event.Name() {
		return payload, fmt.Errorf("pubsub: message on %q is not a %s event", msg.Topic, event.Name())
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("pubsub: decode %s: %w", event.Name(), err)
	}
	return payload, nil
}

type requestIDKey struct{}

const metaKeyRequestID = "request_id"

// WithRequestID attaches a request id that Publish copies into message
// metadata.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
