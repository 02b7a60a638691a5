package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gochat/internal/common"
)

// MediaQuery filters the media listing of a conversation. Kind must be a
// media kind; SenderID and the time range are optional, and the range is
// applied only when both bounds are present (inclusive on both ends).
type MediaQuery struct {
	ConversationID string
	ViewerID       string
	Kind           common.MessageKind
	SenderID       string
	Start          *time.Time
	End            *time.Time
	Limit          int
}

type MessageRepository interface {
	Insert(ctx context.Context, msg *Message) error
	Get(ctx context.Context, id string) (*Message, error)
	SetRevoked(ctx context.Context, id string) error
	HideFor(ctx context.Context, id, userID string) error
	HideAllFor(ctx context.Context, conversationID, userID string) error
	UpsertReaction(ctx context.Context, id, userID string, reactionType int) (bool, error)
	CountVisible(ctx context.Context, scope common.Target, viewerID string) (int, error)
	ListVisible(ctx context.Context, scope common.Target, viewerID string, skip, limit int) ([]*Message, error)
	ListMedia(ctx context.Context, q MediaQuery) ([]*Message, error)
}

type messageRepo struct {
	coll *mongo.Collection
}

func NewMessageRepository(mc *MongoClient) MessageRepository {
	return &messageRepo{coll: mc.Database.Collection("messages")}
}

func (r *messageRepo) Insert(ctx context.Context, msg *Message) error {
	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *messageRepo) Get(ctx context.Context, id string) (*Message, error) {
	var msg Message
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&msg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NotFoundf("message %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get message %s: %w", id, err)
	}
	return &msg, nil
}

func (r *messageRepo) SetRevoked(ctx context.Context, id string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"revoked": true}},
	)
	if err != nil {
		return fmt.Errorf("revoke message %s: %w", id, err)
	}
	return nil
}

// HideFor adds userID to the hiddenFor set. $addToSet keeps it idempotent and
// the revoked guard makes it a no-op on revoked messages.
func (r *messageRepo) HideFor(ctx context.Context, id, userID string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "revoked": false},
		bson.M{"$addToSet": bson.M{"hiddenFor": userID}},
	)
	if err != nil {
		return fmt.Errorf("hide message %s for %s: %w", id, userID, err)
	}
	return nil
}

// HideAllFor hides every message of the conversation for userID. Revoked
// messages are skipped, matching HideFor, so they keep showing as masked
// entries instead of disappearing from the listing.
func (r *messageRepo) HideAllFor(ctx context.Context, conversationID, userID string) error {
	_, err := r.coll.UpdateMany(ctx,
		hideAllFilter(conversationID),
		bson.M{"$addToSet": bson.M{"hiddenFor": userID}},
	)
	if err != nil {
		return fmt.Errorf("hide conversation %s for %s: %w", conversationID, userID, err)
	}
	return nil
}

// UpsertReaction sets the single reaction entry for userID in one keyed $set.
// The whole reactions map is never read back and rewritten, so concurrent
// reactions by different users cannot lose each other. The returned bool is
// false when the message was revoked or hidden for the user by the time the
// update ran.
func (r *messageRepo) UpsertReaction(ctx context.Context, id, userID string, reactionType int) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		reactableFilter(id, userID),
		bson.M{"$set": bson.M{"reactions." + userID: reactionType}},
	)
	if err != nil {
		return false, fmt.Errorf("upsert reaction on %s: %w", id, err)
	}
	return res.MatchedCount == 1, nil
}

func (r *messageRepo) CountVisible(ctx context.Context, scope common.Target, viewerID string) (int, error) {
	total, err := r.coll.CountDocuments(ctx, visibleFilter(scope, viewerID))
	if err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return int(total), nil
}

func (r *messageRepo) ListVisible(ctx context.Context, scope common.Target, viewerID string, skip, limit int) ([]*Message, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, visibleFilter(scope, viewerID), opts)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	var messages []*Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return messages, nil
}

func (r *messageRepo) ListMedia(ctx context.Context, q MediaQuery) ([]*Message, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"authorId": 1, "content": 1, "kind": 1, "createdAt": 1})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cursor, err := r.coll.Find(ctx, mediaFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}

	var messages []*Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("decode media: %w", err)
	}
	return messages, nil
}

// scopeFilter selects the messages belonging to a conversation or a channel.
// Channel messages carry no conversationId, so the two scopes never overlap.
func scopeFilter(scope common.Target) bson.M {
	if scope.IsChannel() {
		return bson.M{"channelId": scope.ChannelID()}
	}
	return bson.M{"conversationId": scope.ConversationID()}
}

// visibleFilter excludes messages the viewer hid for themselves. Revoked
/// messages stay in: they are listed as revoked entries with masked content.
func visibleFilter(scope common.Target, viewerID string) bson.M {
	filter := scopeFilter(scope)
	filter["hiddenFor"] = bson.M{"$nin": []string{viewerID}}
	return filter
}

// hideAllFilter selects the conversation's messages that a history wipe may
// touch. Revoked messages are left alone so they stay masked, not hidden.
func hideAllFilter(conversationID string) bson.M {
	return bson.M{
		"conversationId": conversationID,
		"revoked":        false,
	}
}

// reactableFilter matches the message only while it is still visible to the
// reacting user.
func reactableFilter(id, userID string) bson.M {
	return bson.M{
		"_id":       id,
		"revoked":   false,
		"hiddenFor": bson.M{"$nin": []string{userID}},
	}
}

func mediaFilter(q MediaQuery) bson.M {
	filter := bson.M{
		"conversationId": q.ConversationID,
		"kind":           q.Kind,
		"revoked":        false,
		"hiddenFor":      bson.M{"$nin": []string{q.ViewerID}},
	}
	if q.SenderID != "" {
		filter["authorId"] = q.SenderID
	}
	if q.Start != nil && q.End != nil {
		filter["createdAt"] = bson.M{"$gte": *q.Start, "$lte": *q.End}
	}
	return filter
}
