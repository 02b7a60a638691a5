package common

import "time"

// Event names pushed through the Broadcaster.
const (
	EventNewMessage          = "new-message"
	EventNewMessageOfChannel = "new-message-of-channel"
	EventDeleteMessage       = "delete-message"
	EventAddReaction         = "add-reaction"
	EventUserLastView        = "user-last-view"
)

// DeleteMessageEvent is emitted when a message is revoked.
type DeleteMessageEvent struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId"`
	ChannelID      string `json:"channelId,omitempty"`
}

// AddReactionEvent is emitted after a reaction upsert.
type AddReactionEvent struct {
	MessageID      string `json:"messageId"`
	ConversationID string `json:"conversationId"`
	ChannelID      string `json:"channelId,omitempty"`
	UserID         string `json:"userId"`
	Type           int    `json:"type"`
}

// UserLastViewEvent is emitted when a viewer's read position moves.
type UserLastViewEvent struct {
	ConversationID string    `json:"conversationId"`
	ChannelID      string    `json:"channelId,omitempty"`
	UserID         string    `json:"userId"`
	LastView       time.Time `json:"lastView"`
}
