package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscribers(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(EventSubmitted, map[string]int{"id": 7})

	msg := <-ch
	var envelope struct {
		Event string         `json:"event"`
		Data  map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg, &envelope))
	assert.Equal(t, EventSubmitted, envelope.Event)
	assert.Equal(t, 7, envelope.Data["id"])
}

func TestHub_CanceledSubscriberStopsReceiving(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	cancel()

	// Publish after cancel must not panic on the closed channel.
	hub.Publish(EventClaimed, "x")

	_, open := <-ch
	assert.False(t, open)
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	for i := 0; i < 100; i++ {
		hub.Publish(EventTransitioned, i)
	}
	// Buffer is bounded; the publisher never stalled to get here.
	assert.LessOrEqual(t, len(ch), 32)
}
