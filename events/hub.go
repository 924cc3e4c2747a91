package events

import (
	"encoding/json"
	"log"
	"sync"
)

const (
	EventSubmitted    = "request.submitted"
	EventClaimed      = "request.claimed"
	EventUnclaimed    = "request.unclaimed"
	EventTransitioned = "request.transitioned"
)

// Hub fans request lifecycle events out to dashboard subscribers. Sends
// never block: a subscriber that cannot keep up loses messages rather
// than stalling the operation that published them.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan []byte]struct{})}
}

// Subscribe registers a listener. The returned cancel func must be called
// when the listener goes away.
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, 32)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish sends {event, data} to every subscriber, best effort.
func (h *Hub) Publish(event string, data interface{}) {
	msg, err := json.Marshal(map[string]interface{}{
		"event": event,
		"data":  data,
	})
	if err != nil {
		log.Printf("[events] marshal failed: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- msg:
		default:
		}
	}
}
