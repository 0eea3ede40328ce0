// Package timer provides a registry of keyed one-shot timers. The registry
// is a derived cache of "what is currently armed": the durable store stays
// the source of truth and the registry is rebuilt from it on startup.
package timer

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Key identifies a scheduled entry. Each owning component uses its own Kind
// so reminder and lease timers never collide.
type Key struct {
	Kind string
	ID   string
}

// entry is the stable handle a fire callback identifies itself by. The
// callback captures the entry, never the timer: the timer is only assigned
// after AfterFunc returns, which can be after a zero-delay fire has already
// started.
type entry struct {
	timer *clock.Timer
}

// Registry maps keys to armed one-shot timers. At most one timer exists per
// key; arming an already-armed key stops the previous timer first.
type Registry struct {
	clock clock.Clock

	mu     sync.Mutex
	timers map[Key]*entry
}

func NewRegistry(clk clock.Clock) *Registry {
	return &Registry{
		clock:  clk,
		timers: make(map[Key]*entry),
	}
}

// Schedule arms a one-shot timer for key. A negative delay is treated as
// zero, so the callback fires on the next scheduling quantum. Any existing
// timer for the same key is stopped and replaced.
func (r *Registry) Schedule(key Key, delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.timers[key]; ok {
		prev.timer.Stop()
	}

	// The entry goes into the map before the timer is armed. A zero-delay
	// callback then blocks on the mutex inside claim until Schedule returns,
	// and sees a fully published entry.
	e := &entry{}
	r.timers[key] = e
	e.timer = r.clock.AfterFunc(delay, func() {
		// The entry must be claimed before the callback runs. A concurrent
		// Cancel that wins the claim turns this fire into a no-op.
		if !r.claim(key, e) {
			return
		}
		fn()
	})
}

// Replace cancels any existing timer for key and arms a new one. Used when a
// repeating task re-arms itself.
func (r *Registry) Replace(key Key, delay time.Duration, fn func()) {
	r.Cancel(key)
	r.Schedule(key, delay, fn)
}

// Cancel stops and removes the timer for key if one exists. Cancelling a
// missing key is a no-op; the return value reports whether an entry was
// removed.
func (r *Registry) Cancel(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.timers[key]
	if !ok {
		return false
	}

	delete(r.timers, key)
	e.timer.Stop()

	return true
}

// IsScheduled reports whether a timer is currently armed for key.
func (r *Registry) IsScheduled(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.timers[key]
	return ok
}

// Len returns the number of armed timers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.timers)
}

// claim removes the entry for key if it still belongs to e. It returns false
// when the entry was already cancelled or replaced, in which case the fire
// must not proceed.
func (r *Registry) claim(key Key, e *entry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.timers[key]
	if !ok || cur != e {
		return false
	}

	delete(r.timers, key)
	return true
}
