package model

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a user-created deferred message. The row in the reminders
// table is the source of truth; the in-memory timer is derived from it and
// rebuilt on startup.
type Reminder struct {
	ID        uuid.UUID     `json:"id"`
	OwnerID   string        `json:"owner_id"`
	Message   string        `json:"message"`
	RemindAt  time.Time     `json:"remind_at"`
	Delay     time.Duration `json:"delay"`
	Repeat    time.Duration `json:"repeat,omitempty"` // zero means one-shot
	CreatedAt time.Time     `json:"created_at"`
}

// Repeating reports whether the reminder re-arms itself after firing.
func (r Reminder) Repeating() bool {
	return r.Repeat > 0
}
