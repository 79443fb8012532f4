package pubsub

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ErrBusClosed is returned by Publish and Subscribe after Close.
var ErrBusClosed = errors.New("pubsub: bus closed")

// Reserved watermill metadata keys. Anything else round-trips as
// Message.Metadata.
const (
	metaSource = "bloomly.source"
	metaTopic  = "bloomly.topic"
)

// ChannelBus is the in-process event bus, a watermill GoChannel behind the
// Bus interface. Events never leave the process.
type ChannelBus struct {
	channel *gochannel.GoChannel
	logger  *slog.Logger
	closed  atomic.Bool
}

var _ Bus = (*ChannelBus)(nil)

// NewChannelBus creates the bus. A nil logger uses slog.Default.
func NewChannelBus(logger *slog.Logger) *ChannelBus {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "bus")

	return &ChannelBus{
		channel: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, slogAdapter{logger: logger}),
		logger:  logger,
	}
}

func toWatermill(msg Message) *message.Message {
	out := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		out.Metadata.Set(k, v)
	}
	out.Metadata.Set(metaSource, msg.Source)
	out.Metadata.Set(metaTopic, msg.Topic)
	return out
}

func fromWatermill(in *message.Message) Message {
	msg := Message{
		Topic:   in.Metadata.Get(metaTopic),
		Source:  in.Metadata.Get(metaSource),
		Payload: in.Payload,
	}
	for k, v := range in.Metadata {
		if k == metaSource || k == metaTopic {
			continue
		}
		if msg.Metadata == nil {
			msg.Metadata = make(map[string]string)
		}
		msg.Metadata[k] = v
	}
	return msg
}

func (b *ChannelBus) Publish(_ context.Context, msg Message) error {
	if b.closed.Load() {
		return ErrBusClosed
	}
	return b.channel.Publish(msg.Topic, toWatermill(msg))
}

// Subscribe returns once the subscription is registered; handler runs on a
// goroutine owned by the bus until ctx is done or the bus is closed.
func (b *ChannelBus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	if b.closed.Load() {
		return ErrBusClosed
	}
	messages, err := b.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for in := range messages {
			if err := handler(ctx, fromWatermill(in)); err != nil {
				b.logger.Error("Event handler failed", "topic", topic, "msg_id", in.UUID, "error", err)
			}
			// Events are informational; a failed handler never triggers a
			// redelivery.
			in.Ack()
		}
		b.logger.Debug("Subscription ended", "topic", topic)
	}()
	return nil
}

func (b *ChannelBus) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	return b.channel.Close()
}
