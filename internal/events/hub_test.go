package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_PublishInRegistrationOrder(t *testing.T) {
	h := NewHub()

	var order []string
	h.Subscribe(func(e VideoEvent) {
		order = append(order, "first:"+e.VideoID)
	})
	h.Subscribe(func(e VideoEvent) {
		order = append(order, "second:"+e.VideoID)
	})

	h.Publish(VideoEvent{VideoID: "v1"})

	assert.Equal(t, []string{"first:v1", "second:v1"}, order)
}

func TestHub_Unsubscribe(t *testing.T) {
	h := NewHub()

	var calls int
	id := h.Subscribe(func(VideoEvent) { calls++ })
	h.Subscribe(func(VideoEvent) { calls++ })

	h.Unsubscribe(id)
	h.Publish(VideoEvent{VideoID: "v1"})

	assert.Equal(t, 1, calls)
}

func TestHub_UnsubscribeUnknownID(t *testing.T) {
	h := NewHub()

	var calls int
	h.Subscribe(func(VideoEvent) { calls++ })

	h.Unsubscribe(42)
	h.Publish(VideoEvent{})

	assert.Equal(t, 1, calls)
}

func TestHub_UnsubscribeDuringPublish(t *testing.T) {
	h := NewHub()

	var got []string
	var firstID int
	firstID = h.Subscribe(func(e VideoEvent) {
		got = append(got, "first")
		h.Unsubscribe(firstID)
	})
	h.Subscribe(func(e VideoEvent) {
		got = append(got, "second")
	})

	// The removal lands mid-iteration; the running publish still sees the
	// snapshot it started with.
	h.Publish(VideoEvent{})
	assert.Equal(t, []string{"first", "second"}, got)

	h.Publish(VideoEvent{})
	assert.Equal(t, []string{"first", "second", "second"}, got)
}
