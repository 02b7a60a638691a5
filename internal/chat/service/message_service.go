package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gochat/internal/common"
	"gochat/internal/dbmongo"
	"gochat/internal/dbmysql"
)

const mediaDigestLimit = 8

// Page is one slice of a conversation's or channel's history.
type Page struct {
	Data           []MessageView `json:"data"`
	Page           int           `json:"page"`
	Size           int           `json:"size"`
	TotalPages     int           `json:"totalPages"`
	ConversationID string        `json:"conversationId,omitempty"`
}

// Route identifies where fan-out for a message goes. For channel messages the
// conversation id is resolved through the channel's owner.
type Route struct {
	MessageID      string
	ConversationID string
	ChannelID      string
}

// EncodedFile is a base64-encoded upload.
type EncodedFile struct {
	Name    string `json:"fileName"`
	Ext     string `json:"fileExtension"`
	Content string `json:"fileBase64"`
}

// MediaDigest holds the most recent media items of a conversation by kind.
type MediaDigest struct {
	Images []MessageView `json:"images"`
	Videos []MessageView `json:"videos"`
	Files  []MessageView `json:"files"`
}

// ChatService is the message lifecycle surface exposed to the handler layer.
type ChatService interface {
	ListByConversation(ctx context.Context, conversationID, viewerID string, page, size int) (*Page, error)
	ListByChannel(ctx context.Context, channelID, viewerID string, page, size int) (*Page, error)
	CreateText(ctx context.Context, authorID string, target common.Target, body string) (MessageView, error)
	CreateFile(ctx context.Context, authorID string, target common.Target, kind common.MessageKind, filename string, data []byte) (MessageView, error)
	CreateFileFromEncoded(ctx context.Context, authorID string, target common.Target, kind common.MessageKind, file EncodedFile) (MessageView, error)
	Revoke(ctx context.Context, messageID, requesterID string) (*Route, error)
	HideForSelf(ctx context.Context, messageID, userID string) error
	HideAllForSelf(ctx context.Context, conversationID, userID string) error
	AddReaction(ctx context.Context, messageID, userID string, reactionType int) (*common.AddReactionEvent, error)
	Share(ctx context.Context, messageID, destConversationID, requesterID string) (MessageView, error)
	AddVote(ctx context.Context, authorID, conversationID, content string, optionLabels []string) (MessageView, error)
	AddNotify(ctx context.Context, authorID, conversationID, content string, affectedUserIDs []string) (MessageView, error)
	MediaDigest(ctx context.Context, conversationID, viewerID string) (*MediaDigest, error)
	MediaSearch(ctx context.Context, conversationID, viewerID string, kind common.MessageKind, senderID string, start, end *time.Time) ([]MessageView, error)
}

type messageService struct {
	messages  dbmongo.MessageRepository
	convs     dbmongo.ConversationRepository
	members   dbmysql.MemberRepository
	store     common.ObjectStore
	presenter Presenter
	sync      *Synchronizer
}

// Constructor used in DI/wire
func NewMessageService(
	messages dbmongo.MessageRepository,
	convs dbmongo.ConversationRepository,
	members dbmysql.MemberRepository,
	store common.ObjectStore,
	presenter Presenter,
	sync *Synchronizer,
) ChatService {
	return &messageService{
		messages:  messages,
		convs:     convs,
		members:   members,
		store:     store,
		presenter: presenter,
		sync:      sync,
	}
}

func (s *messageService) ListByConversation(ctx context.Context, conversationID, viewerID string, page, size int) (*Page, error) {
	scope := common.ConversationTarget(conversationID)

	conv, err := s.convs.GetByIDAndUserID(ctx, conversationID, viewerID)
	if err != nil {
		return nil, err
	}

	result, err := s.listPage(ctx, scope, viewerID, page, size, conv.Kind)
	if err != nil {
		return nil, err
	}

	// Listing refreshes the viewer's read position, off the request path.
	s.sync.ViewRefreshed(scope, viewerID, time.Now().UTC())

	return result, nil
}

func (s *messageService) ListByChannel(ctx context.Context, channelID, viewerID string, page, size int) (*Page, error) {
	scope := common.ChannelTarget(channelID)

	channel, err := s.convs.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if _, err := s.convs.GetByIDAndUserID(ctx, channel.ConversationID, viewerID); err != nil {
		return nil, err
	}

	// Channels exist only inside groups, so pages hydrate with the group shape.
	result, err := s.listPage(ctx, scope, viewerID, page, size, dbmongo.ConversationGroup)
	if err != nil {
		return nil, err
	}
	result.ConversationID = channel.ConversationID

	s.sync.ViewRefreshed(scope, viewerID, time.Now().UTC())

	return result, nil
}

func (s *messageService) listPage(ctx context.Context, scope common.Target, viewerID string, page, size int, kind dbmongo.ConversationKind) (*Page, error) {
	total, err := s.messages.CountVisible(ctx, scope, viewerID)
	if err != nil {
		return nil, err
	}

	p, err := common.NewPagination(page, size, total)
	if err != nil {
		return nil, err
	}

	messages, err := s.messages.ListVisible(ctx, scope, viewerID, p.Skip, p.Limit)
	if err != nil {
		return nil, err
	}

	views := make([]MessageView, 0, len(messages))
	for _, msg := range messages {
		views = append(views, s.presenter.Shape(msg, kind))
	}

	return &Page{
		Data:       views,
		Page:       page,
		Size:       size,
		TotalPages: p.TotalPages,
	}, nil
}

func (s *messageService) CreateText(ctx context.Context, authorID string, target common.Target, body string) (MessageView, error) {
	if target.IsZero() {
		return nil, common.InvalidArgumentf("message needs a target")
	}
	if err := common.ValidateContent(body); err != nil {
		return nil, err
	}

	return s.create(ctx, authorID, target, common.KindText, body, nil, nil)
}

func (s *messageService) CreateFile(ctx context.Context, authorID string, target common.Target, kind common.MessageKind, filename string, data []byte) (MessageView, error) {
	if target.IsZero() {
		return nil, common.InvalidArgumentf("message needs a target")
	}
	if !kind.IsMedia() {
		return nil, common.InvalidArgumentf("kind %s is not a media kind", kind)
	}
	if len(data) == 0 {
		return nil, common.InvalidArgumentf("file is empty")
	}

	// The object store reference must exist before the message does.
	ref, err := s.store.Put(ctx, data, filename)
	if err != nil {
		return nil, err
	}

	return s.create(ctx, authorID, target, kind, ref, nil, nil)
}

func (s *messageService) CreateFileFromEncoded(ctx context.Context, authorID string, target common.Target, kind common.MessageKind, file EncodedFile) (MessageView, error) {
	if target.IsZero() {
		return nil, common.InvalidArgumentf("message needs a target")
	}
	if !kind.IsMedia() {
		return nil, common.InvalidArgumentf("kind %s is not a media kind", kind)
	}
	if file.Content == "" || file.Name == "" || file.Ext == "" {
		return nil, common.InvalidArgumentf("encoded file needs name, extension and content")
	}

	ref, err := s.store.PutEncoded(ctx, file.Content, file.Name, file.Ext)
	if err != nil {
		return nil, err
	}

	return s.create(ctx, authorID, target, kind, ref, nil, nil)
}

// create persists a message for an authorized author and runs the post-create
// flow: synchronization is scheduled, never awaited, so its failure cannot
// undo the already-persisted message.
func (s *messageService) create(ctx context.Context, authorID string, target common.Target, kind common.MessageKind, content string, options []dbmongo.VoteOption, affected []string) (MessageView, error) {
	conv, err := s.resolveMemberConversation(ctx, target, authorID)
	if err != nil {
		return nil, err
	}

	msg := &dbmongo.Message{
		ID:              uuid.NewString(),
		AuthorID:        authorID,
		ConversationID:  target.ConversationID(),
		ChannelID:       target.ChannelID(),
		Kind:            kind,
		Content:         content,
		Options:         options,
		AffectedUserIDs: affected,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.messages.Insert(ctx, msg); err != nil {
		return nil, err
	}

	s.sync.MessageCreated(msg)

	return s.presenter.Shape(msg, conv.Kind), nil
}

// resolveMemberConversation finds the conversation owning target and checks
// the user belongs to it. For channels the owner comes from the channel record.
func (s *messageService) resolveMemberConversation(ctx context.Context, target common.Target, userID string) (*dbmongo.Conversation, error) {
	conversationID := target.ConversationID()
	if target.IsChannel() {
		channel, err := s.convs.GetChannel(ctx, target.ChannelID())
		if err != nil {
			return nil, err
		}
		conversationID = channel.ConversationID
	}
	return s.convs.GetByIDAndUserID(ctx, conversationID, userID)
}

func (s *messageService) Revoke(ctx context.Context, messageID, requesterID string) (*Route, error) {
	msg, err := s.messages.Get(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.AuthorID != requesterID {
		return nil, common.Forbiddenf("only the author may revoke a message")
	}

	if err := s.messages.SetRevoked(ctx, messageID); err != nil {
		return nil, err
	}

	return s.resolveRoute(ctx, msg)
}

func (s *messageService) HideForSelf(ctx context.Context, messageID, userID string) error {
	// Missing message is still an error; everything else is idempotent.
	if _, err := s.messages.Get(ctx, messageID); err != nil {
		return err
	}
	return s.messages.HideFor(ctx, messageID, userID)
}

func (s *messageService) HideAllForSelf(ctx context.Context, conversationID, userID string) error {
	if _, err := s.convs.GetByIDAndUserID(ctx, conversationID, userID); err != nil {
		return err
	}
	return s.messages.HideAllFor(ctx, conversationID, userID)
}

func (s *messageService) AddReaction(ctx context.Context, messageID, userID string, reactionType int) (*common.AddReactionEvent, error) {
	if !common.ValidReaction(reactionType) {
		return nil, common.InvalidArgumentf("reaction type %d", reactionType)
	}

	msg, err := s.messages.Get(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.VisibilityFor(userID) != dbmongo.VisibilityVisible {
		return nil, common.Conflictf("message %s is not visible to %s", messageID, userID)
	}

	matched, err := s.messages.UpsertReaction(ctx, messageID, userID, reactionType)
	if err != nil {
		return nil, err
	}
	if !matched {
		// Revoked or hidden between the read and the update.
		return nil, common.Conflictf("message %s is not visible to %s", messageID, userID)
	}

	route, err := s.resolveRoute(ctx, msg)
	if err != nil {
		return nil, err
	}

	return &common.AddReactionEvent{
		MessageID:      messageID,
		ConversationID: route.ConversationID,
		ChannelID:      route.ChannelID,
		UserID:         userID,
		Type:           reactionType,
	}, nil
}

func (s *messageService) Share(ctx context.Context, messageID, destConversationID, requesterID string) (MessageView, error) {
	msg, err := s.messages.Get(ctx, messageID)
	if err != nil {
		return nil, err
	}

	// Never shareable, regardless of who asks.
	if msg.Kind == common.KindNotify || msg.Kind == common.KindVote {
		return nil, common.Forbiddenf("%s messages cannot be shared", msg.Kind)
	}

	if _, err := s.convs.GetByIDAndUserID(ctx, msg.ConversationID, requesterID); err != nil {
		return nil, err
	}
	dest, err := s.convs.GetByIDAndUserID(ctx, destConversationID, requesterID)
	if err != nil {
		return nil, err
	}

	clone := &dbmongo.Message{
		ID:             uuid.NewString(),
		AuthorID:       requesterID,
		ConversationID: dest.ID,
		Kind:           msg.Kind,
		Content:        msg.Content,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.messages.Insert(ctx, clone); err != nil {
		return nil, err
	}

	s.sync.MessageCreated(clone)

	return s.presenter.Shape(clone, dest.Kind), nil
}

func (s *messageService) AddVote(ctx context.Context, authorID, conversationID, content string, optionLabels []string) (MessageView, error) {
	if err := common.ValidateContent(content); err != nil {
		return nil, err
	}
	if err := common.ValidateVoteOptions(optionLabels); err != nil {
		return nil, err
	}

	options := make([]dbmongo.VoteOption, 0, len(optionLabels))
	for _, label := range optionLabels {
		options = append(options, dbmongo.VoteOption{Label: label, VoterIDs: []string{}})
	}

	return s.create(ctx, authorID, common.ConversationTarget(conversationID), common.KindVote, content, options, nil)
}

// AddNotify appends a NOTIFY message recording a membership event. It is the
// injection point for the membership flows; those flows validate membership
// rules themselves.
func (s *messageService) AddNotify(ctx context.Context, authorID, conversationID, content string, affectedUserIDs []string) (MessageView, error) {
	conv, err := s.convs.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	msg := &dbmongo.Message{
		ID:              uuid.NewString(),
		AuthorID:        authorID,
		ConversationID:  conversationID,
		Kind:            common.KindNotify,
		Content:         content,
		AffectedUserIDs: affectedUserIDs,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.messages.Insert(ctx, msg); err != nil {
		return nil, err
	}

	s.sync.MessageCreated(msg)

	return s.presenter.Shape(msg, conv.Kind), nil
}

func (s *messageService) MediaDigest(ctx context.Context, conversationID, viewerID string) (*MediaDigest, error) {
	if _, err := s.convs.GetByIDAndUserID(ctx, conversationID, viewerID); err != nil {
		return nil, err
	}

	digest := &MediaDigest{}
	for _, section := range []struct {
		kind common.MessageKind
		dst  *[]MessageView
	}{
		{common.KindImage, &digest.Images},
		{common.KindVideo, &digest.Videos},
		{common.KindFile, &digest.Files},
	} {
		messages, err := s.messages.ListMedia(ctx, dbmongo.MediaQuery{
			ConversationID: conversationID,
			ViewerID:       viewerID,
			Kind:           section.kind,
			Limit:          mediaDigestLimit,
		})
		if err != nil {
			return nil, err
		}
		*section.dst = s.shapeAll(messages, dbmongo.ConversationGroup)
	}

	return digest, nil
}

func (s *messageService) MediaSearch(ctx context.Context, conversationID, viewerID string, kind common.MessageKind, senderID string, start, end *time.Time) ([]MessageView, error) {
	if !kind.IsMedia() {
		return nil, common.InvalidArgumentf("kind %s is not a media kind", kind)
	}
	if _, err := s.convs.GetByIDAndUserID(ctx, conversationID, viewerID); err != nil {
		return nil, err
	}

	messages, err := s.messages.ListMedia(ctx, dbmongo.MediaQuery{
		ConversationID: conversationID,
		ViewerID:       viewerID,
		Kind:           kind,
		SenderID:       senderID,
		Start:          start,
		End:            end,
	})
	if err != nil {
		return nil, err
	}

	return s.shapeAll(messages, dbmongo.ConversationGroup), nil
}

func (s *messageService) shapeAll(messages []*dbmongo.Message, kind dbmongo.ConversationKind) []MessageView {
	views := make([]MessageView, 0, len(messages))
	for _, msg := range messages {
		views = append(views, s.presenter.Shape(msg, kind))
	}
	return views
}

// resolveRoute returns the fan-out rooms for msg: its conversation and, for
// channel messages, the channel plus the owning conversation.
func (s *messageService) resolveRoute(ctx context.Context, msg *dbmongo.Message) (*Route, error) {
	route := &Route{
		MessageID:      msg.ID,
		ConversationID: msg.ConversationID,
		ChannelID:      msg.ChannelID,
	}
	if msg.ChannelID != "" {
		channel, err := s.convs.GetChannel(ctx, msg.ChannelID)
		if err != nil {
			return nil, err
		}
		route.ConversationID = channel.ConversationID
	}
	return route, nil
}
