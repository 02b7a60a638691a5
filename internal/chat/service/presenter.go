package service

import (
	"gochat/internal/common"
	"gochat/internal/dbmongo"
)

// MessageView is the viewer-facing shape of a message.
type MessageView map[string]interface{}

// Presenter maps a persisted message onto the shape a viewer receives. The
// shape differs by conversation kind: group views carry an inline sender
// object for attribution, individual views only the bare author id.
type Presenter interface {
	Shape(msg *dbmongo.Message, kind dbmongo.ConversationKind) MessageView
}

type jsonPresenter struct{}

// NewPresenter returns the default JSON presenter.
func NewPresenter() Presenter {
	return jsonPresenter{}
}

func (jsonPresenter) Shape(msg *dbmongo.Message, kind dbmongo.ConversationKind) MessageView {
	view := MessageView{
		"id":        msg.ID,
		"authorId":  msg.AuthorID,
		"kind":      msg.Kind,
		"createdAt": msg.CreatedAt,
		"revoked":   msg.Revoked,
	}
	if msg.ConversationID != "" {
		view["conversationId"] = msg.ConversationID
	}
	if msg.ChannelID != "" {
		view["channelId"] = msg.ChannelID
	}

	// Revoked messages stay listed but their content never leaves the store.
	if msg.Revoked {
		view["content"] = ""
		return view
	}

	view["content"] = msg.Content
	if len(msg.Reactions) > 0 {
		view["reactions"] = msg.Reactions
	}
	if msg.Kind == common.KindVote {
		view["options"] = msg.Options
	}
	if msg.Kind == common.KindNotify && len(msg.AffectedUserIDs) > 0 {
		view["affectedUserIds"] = msg.AffectedUserIDs
	}

	if kind == dbmongo.ConversationGroup {
		view["sender"] = map[string]interface{}{"id": msg.AuthorID}
	}

	return view
}
