package dto

// CreateReminderRequest is the JSON body for creating a reminder.
type CreateReminderRequest struct {
	OwnerID       string `json:"owner_id" validate:"required"`
	Message       string `json:"message" validate:"required"`
	DelaySeconds  int64  `json:"delay_seconds" validate:"min=0"`
	RepeatSeconds int64  `json:"repeat_seconds" validate:"min=0"`
}

// SubscriptionRequest is the JSON body for adding or removing a channel's
// subscription to a topic.
type SubscriptionRequest struct {
	ChannelID string `json:"channel_id" validate:"required"`
	TopicID   string `json:"topic_id" validate:"required"`
}
