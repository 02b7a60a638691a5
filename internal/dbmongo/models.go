package dbmongo

import (
	"time"

	"gochat/internal/common"
)

// Visibility is what one viewer is allowed to see of a message.
type Visibility int

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden             // the viewer removed it from their own view
	VisibilityRevoked            // the author revoked it for everyone
)

// VoteOption is one named choice of a VOTE message.
type VoteOption struct {
	Label    string   `bson:"label" json:"label"`
	VoterIDs []string `bson:"voterIds" json:"voterIds"`
}

// Message is the persisted message record. A message targets exactly one of
// ConversationID or ChannelID; channel messages never carry a conversation id.
type Message struct {
	ID              string             `bson:"_id" json:"id"`
	AuthorID        string             `bson:"authorId" json:"authorId"`
	ConversationID  string             `bson:"conversationId,omitempty" json:"conversationId,omitempty"`
	ChannelID       string             `bson:"channelId,omitempty" json:"channelId,omitempty"`
	Kind            common.MessageKind `bson:"kind" json:"kind"`
	Content         string             `bson:"content" json:"content"`
	Revoked         bool               `bson:"revoked" json:"revoked"`
	HiddenFor       []string           `bson:"hiddenFor,omitempty" json:"-"`
	Reactions       map[string]int     `bson:"reactions,omitempty" json:"reactions,omitempty"`
	Options         []VoteOption       `bson:"options,omitempty" json:"options,omitempty"`
	AffectedUserIDs []string           `bson:"affectedUserIds,omitempty" json:"affectedUserIds,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// Target returns the message's destination as a tagged union.
func (m *Message) Target() common.Target {
	if m.ChannelID != "" {
		return common.ChannelTarget(m.ChannelID)
	}
	return common.ConversationTarget(m.ConversationID)
}

// VisibilityFor computes the tri-state visibility of the message for one
// viewer. Revocation dominates per-viewer hiding.
func (m *Message) VisibilityFor(viewerID string) Visibility {
	if m.Revoked {
		return VisibilityRevoked
	}
	for _, id := range m.HiddenFor {
		if id == viewerID {
			return VisibilityHidden
		}
	}
	return VisibilityVisible
}

// ConversationKind distinguishes direct and group conversations.
type ConversationKind string

const (
	ConversationIndividual ConversationKind = "INDIVIDUAL"
	ConversationGroup      ConversationKind = "GROUP"
)

// Conversation is a persistent membership scope owning messages and channels.
// LastMessageAt mirrors the createdAt of the message LastMessageID points to;
// it is the ordering key for the conditional pointer advance.
type Conversation struct {
	ID             string           `bson:"_id" json:"id"`
	Kind           ConversationKind `bson:"kind" json:"kind"`
	Name           string           `bson:"name,omitempty" json:"name,omitempty"`
	Members        []string         `bson:"members" json:"members"`
	ManagerIDs     []string         `bson:"managerIds,omitempty" json:"managerIds,omitempty"`
	LeaderID       string           `bson:"leaderId,omitempty" json:"leaderId,omitempty"`
	LastMessageID  string           `bson:"lastMessageId,omitempty" json:"lastMessageId,omitempty"`
	LastMessageAt  time.Time        `bson:"lastMessageAt,omitempty" json:"lastMessageAt,omitempty"`
	JoinableByLink bool             `bson:"joinableByLink" json:"joinableByLink"`
	CreatedAt      time.Time        `bson:"createdAt" json:"createdAt"`
}

func (c *Conversation) IsGroup() bool {
	return c.Kind == ConversationGroup
}

func (c *Conversation) HasMember(userID string) bool {
	for _, id := range c.Members {
		if id == userID {
			return true
		}
	}
	return false
}

func (c *Conversation) IsManager(userID string) bool {
	for _, id := range c.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Channel is a named sub-thread of a group conversation.
type Channel struct {
	ID             string    `bson:"_id" json:"id"`
	ConversationID string    `bson:"conversationId" json:"conversationId"`
	Name           string    `bson:"name,omitempty" json:"name,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
