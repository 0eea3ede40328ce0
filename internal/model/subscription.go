package model

import "time"

// Subscription is an internal consumer of a topic: a chat channel that wants
// notifications for it. The count of subscriptions per topic is the
// authoritative "is this lease still needed" check at renewal time.
type Subscription struct {
	ID        int64     `json:"id"`
	ChannelID string    `json:"channel_id"`
	TopicID   string    `json:"topic_id"`
	CreatedAt time.Time `json:"created_at"`
}
