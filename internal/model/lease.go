package model

import "time"

// Lease is a push-subscription grant from the external hub for one topic.
// It must be renewed before RenewAt; a lease whose consumers have all gone
// is deleted at renewal time rather than proactively.
type Lease struct {
	TopicID string    `json:"topic_id"`
	RenewAt time.Time `json:"renew_at"`
}
