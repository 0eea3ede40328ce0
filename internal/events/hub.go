// Package events fans incoming feed notifications out to registered
// listeners.
package events

import (
	"sync"
	"time"
)

// VideoEvent describes one entry of a feed notification pushed by the hub.
type VideoEvent struct {
	TopicID   string
	VideoID   string
	Title     string
	Author    string
	Published time.Time
}

// Hub keeps an ordered list of listener callbacks. Listeners are invoked
// synchronously in registration order; Unsubscribe is safe to call while a
// Publish is iterating because Publish walks a snapshot of the list.
type Hub struct {
	mu        sync.RWMutex
	nextID    int
	listeners []listener
}

type listener struct {
	id int
	fn func(VideoEvent)
}

func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a listener and returns its id for later removal.
func (h *Hub) Subscribe(fn func(VideoEvent)) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	h.listeners = append(h.listeners, listener{id: h.nextID, fn: fn})

	return h.nextID
}

// Unsubscribe removes the listener with the given id. Unknown ids are
// ignored.
func (h *Hub) Unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, l := range h.listeners {
		if l.id == id {
			h.listeners = append(h.listeners[:i:i], h.listeners[i+1:]...)
			return
		}
	}
}

// Publish invokes every listener with the event, in registration order.
func (h *Hub) Publish(e VideoEvent) {
	h.mu.RLock()
	snapshot := h.listeners
	h.mu.RUnlock()

	for _, l := range snapshot {
		l.fn(e)
	}
}
