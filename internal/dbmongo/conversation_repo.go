package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gochat/internal/common"
)

type ConversationRepository interface {
	Get(ctx context.Context, id string) (*Conversation, error)
	// GetByIDAndUserID resolves the conversation only when userID is a
	// member; a conversation the caller does not belong to is NotFound.
	GetByIDAndUserID(ctx context.Context, id, userID string) (*Conversation, error)
	AdvanceLastMessage(ctx context.Context, conversationID, messageID string, createdAt time.Time) error
	GetChannel(ctx context.Context, channelID string) (*Channel, error)
	AddMembers(ctx context.Context, conversationID string, userIDs []string) error
	RemoveMember(ctx context.Context, conversationID, userID string) error
	AddManagers(ctx context.Context, conversationID string, userIDs []string) error
}

type conversationRepo struct {
	convs    *mongo.Collection
	channels *mongo.Collection
}

func NewConversationRepository(mc *MongoClient) ConversationRepository {
	return &conversationRepo{
		convs:    mc.Database.Collection("conversations"),
		channels: mc.Database.Collection("channels"),
	}
}

func (r *conversationRepo) Get(ctx context.Context, id string) (*Conversation, error) {
	var conv Conversation
	err := r.convs.FindOne(ctx, bson.M{"_id": id}).Decode(&conv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NotFoundf("conversation %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation %s: %w", id, err)
	}
	return &conv, nil
}

func (r *conversationRepo) GetByIDAndUserID(ctx context.Context, id, userID string) (*Conversation, error) {
	var conv Conversation
	err := r.convs.FindOne(ctx, bson.M{"_id": id, "members": userID}).Decode(&conv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NotFoundf("conversation %s for user %s", id, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation %s: %w", id, err)
	}
	return &conv, nil
}

// AdvanceLastMessage moves the preview pointer forward. The filter only
// matches while the stored lastMessageAt is not newer than createdAt, so a
// slow write for an older message can never overwrite a pointer that already
// advanced past it. No match is not an error.
func (r *conversationRepo) AdvanceLastMessage(ctx context.Context, conversationID, messageID string, createdAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"lastMessageId": messageID,
		"lastMessageAt": createdAt,
	}}

	if _, err := r.convs.UpdateOne(ctx, advanceFilter(conversationID, createdAt), update); err != nil {
		return fmt.Errorf("advance last message of %s: %w", conversationID, err)
	}
	return nil
}

// advanceFilter matches the conversation only while its pointer is not newer
// than createdAt. Conversations that never held a message have no
// lastMessageAt field, so the first advance matches through the exists branch.
func advanceFilter(conversationID string, createdAt time.Time) bson.M {
	return bson.M{
		"_id": conversationID,
		"$or": []bson.M{
			{"lastMessageAt": bson.M{"$lte": createdAt}},
			{"lastMessageAt": bson.M{"$exists": false}},
		},
	}
}

func (r *conversationRepo) GetChannel(ctx context.Context, channelID string) (*Channel, error) {
	var channel Channel
	err := r.channels.FindOne(ctx, bson.M{"_id": channelID}).Decode(&channel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NotFoundf("channel %s", channelID)
	}
	if err != nil {
		return nil, fmt.Errorf("get channel %s: %w", channelID, err)
	}
	return &channel, nil
}

func (r *conversationRepo) AddMembers(ctx context.Context, conversationID string, userIDs []string) error {
	_, err := r.convs.UpdateOne(ctx,
		bson.M{"_id": conversationID},
		bson.M{"$addToSet": bson.M{"members": bson.M{"$each": userIDs}}},
	)
	if err != nil {
		return fmt.Errorf("add members to %s: %w", conversationID, err)
	}
	return nil
}

func (r *conversationRepo) RemoveMember(ctx context.Context, conversationID, userID string) error {
	_, err := r.convs.UpdateOne(ctx,
		bson.M{"_id": conversationID},
		bson.M{"$pull": bson.M{"members": userID, "managerIds": userID}},
	)
	if err != nil {
		return fmt.Errorf("remove member %s from %s: %w", userID, conversationID, err)
	}
	return nil
}

func (r *conversationRepo) AddManagers(ctx context.Context, conversationID string, userIDs []string) error {
	_, err := r.convs.UpdateOne(ctx,
		bson.M{"_id": conversationID},
		bson.M{"$addToSet": bson.M{"managerIds": bson.M{"$each": userIDs}}},
	)
	if err != nil {
		return fmt.Errorf("add managers to %s: %w", conversationID, err)
	}
	return nil
}
