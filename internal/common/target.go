package common

// Target is where a message is sent: either a conversation directly or a
// channel inside one, never both. The zero value is an invalid target.
type Target struct {
	conversationID string
	channelID      string
}

// ConversationTarget addresses a conversation directly.
func ConversationTarget(conversationID string) Target {
	return Target{conversationID: conversationID}
}

// ChannelTarget addresses a channel. Channel-targeted messages never carry a
// conversation id of their own; the owning conversation is resolved through
// the channel record.
func ChannelTarget(channelID string) Target {
	return Target{channelID: channelID}
}

// ResolveTarget builds a Target from the two optional request fields.
// When both are supplied the channel wins and the conversation id is dropped.
func ResolveTarget(conversationID, channelID string) Target {
	if channelID != "" {
		return ChannelTarget(channelID)
	}
	return ConversationTarget(conversationID)
}

func (t Target) IsChannel() bool { return t.channelID != "" }

func (t Target) IsZero() bool { return t.conversationID == "" && t.channelID == "" }

func (t Target) ConversationID() string { return t.conversationID }

func (t Target) ChannelID() string { return t.channelID }
