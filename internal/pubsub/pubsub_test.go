package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelBus_PublishSubscribe(t *testing.T) {
	bus := NewChannelBus(nil)
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	require.NoError(t, bus.Subscribe(ctx, SessionLogin.Name(), func(_ context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	pubCtx := WithRequestID(context.Background(), "req-1")
	require.NoError(t, Publish(pubCtx, bus, SessionLogin, SourceWeb, SessionPayload{Authenticated: true}))

	select {
	case msg := <-received:
		assert.Equal(t, "session.login", msg.Topic)
		assert.Equal(t, SourceWeb, msg.Source)
		assert.Equal(t, "req-1", msg.Metadata["request_id"])
		p, err := Decode(SessionLogin, msg)
		require.NoError(t, err)
		assert.True(t, p.Authenticated)
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}
}

func TestDecode_WrongTopic(t *testing.T) {
	_, err := Decode(AssessmentCompleted, Message{Topic: "session.login", Payload: []byte(`{}`)})
	assert.Error(t, err)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAudit_LogsEvents(t *testing.T) {
	var out syncBuffer
	logger := slog.New(slog.NewJSONHandler(&out, nil))

	bus := NewChannelBus(nil)
	t.Cleanup(func() { _ = bus.Close() })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, NewAudit(logger).Start(ctx, bus))
	require.NoError(t, Publish(ctx, bus, AssessmentCompleted, SourceCLI, AssessmentPayload{Risk: "High", Confidence: 82.3}))

	require.Eventually(t, func() bool { return out.String() != "" }, 2*time.Second, 10*time.Millisecond)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(out.String()), &entry))
	assert.Equal(t, "A risk prediction returned", entry["msg"])
	assert.Equal(t, "assessment.completed", entry["topic"])
	assert.Equal(t, "cli", entry["source"])
	assert.Equal(t, "High", entry["pcos_risk"])
}

func TestAudit_RejectsUnknownTopic(t *testing.T) {
	err := NewAudit(slog.Default()).Handle(context.Background(), Message{Topic: "chat.message"})
	assert.Error(t, err)
}

func TestChannelBus_Closed(t *testing.T) {
	bus := NewChannelBus(nil)
	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())

	err := Publish(context.Background(), bus, SessionLogout, SourceCLI, SessionPayload{})
	assert.ErrorIs(t, err, ErrBusClosed)
	assert.ErrorIs(t, bus.Subscribe(context.Background(), SessionLogout.Name(), nil), ErrBusClosed)
}

func TestWatermillMetadata_RoundTrip(t *testing.T) {
	in := Message{Topic: "session.login", Source: SourceWeb, Payload: []byte(`{}`), Metadata: map[string]string{"request_id": "r"}}

	out := fromWatermill(toWatermill(in))

	assert.Equal(t, in, out)
}
