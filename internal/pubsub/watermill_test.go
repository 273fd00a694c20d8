package pubsub

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillBridge_RoundTrip(t *testing.T) {
	bus := NewWatermillBridge()
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	require.NoError(t, bus.Subscribe(ctx, "content.reloaded", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bus.Publish(ctx, Message{
		Topic:    "content.reloaded",
		Payload:  []byte("landing.yaml"),
		Metadata: map[string]string{"source": "watcher"},
	}))

	select {
	case msg := <-received:
		assert.Equal(t, "content.reloaded", msg.Topic)
		assert.Equal(t, []byte("landing.yaml"), msg.Payload)
		assert.Equal(t, "watcher", msg.Metadata["source"])
		_, hasTopicKey := msg.Metadata[metaKeyTopic]
		assert.False(t, hasTopicKey, "reserved keys should not leak into metadata")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestWatermillBridge_HandlerErrorDoesNotStopSubscription(t *testing.T) {
	bus := NewWatermillBridge()
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan string, 2)
	require.NoError(t, bus.Subscribe(ctx, "t", func(ctx context.Context, msg Message) error {
		calls <- string(msg.Payload)
		if string(msg.Payload) == "first" {
			return errors.New("boom")
		}
		return nil
	}))

	require.NoError(t, bus.Publish(ctx, Message{Topic: "t", Payload: []byte("first")}))

	deadline := time.After(2 * time.Second)
	select {
	case got := <-calls:
		assert.Equal(t, "first", got)
	case <-deadline:
		t.Fatal("timed out")
	}

	require.NoError(t, bus.Publish(ctx, Message{Topic: "t", Payload: []byte("second")}))
	select {
	case got := <-calls:
		assert.Equal(t, "second", got, "a failed message must not be redelivered")
	case <-deadline:
		t.Fatal("timed out waiting for second delivery")
	}
}
