package dbmysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepository interface {
	// TouchConversationView upserts the (conversationId, userId) marker to at.
	TouchConversationView(ctx context.Context, conversationID, userID string, at time.Time) error
	// TouchChannelView upserts the (channelId, userId) marker to at.
	TouchChannelView(ctx context.Context, channelID, userID string, at time.Time) error
	CreateMember(ctx context.Context, conversationID, userID string) error
	DeleteMember(ctx context.Context, conversationID, userID string) error
}

type memberRepo struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) TouchConversationView(ctx context.Context, conversationID, userID string, at time.Time) error {
	member := Member{
		ConversationID: conversationID,
		UserID:         userID,
		LastView:       at,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "conversation_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_view", "updated_at"}),
	}).Create(&member).Error
	if err != nil {
		return fmt.Errorf("touch conversation view %s/%s: %w", conversationID, userID, err)
	}
	return nil
}

func (r *memberRepo) TouchChannelView(ctx context.Context, channelID, userID string, at time.Time) error {
	member := ChannelMember{
		ChannelID: channelID,
		UserID:    userID,
		LastView:  at,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "channel_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_view", "updated_at"}),
	}).Create(&member).Error
	if err != nil {
		return fmt.Errorf("touch channel view %s/%s: %w", channelID, userID, err)
	}
	return nil
}

func (r *memberRepo) CreateMember(ctx context.Context, conversationID, userID string) error {
	member := Member{
		ConversationID: conversationID,
		UserID:         userID,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&member).Error
	if err != nil {
		return fmt.Errorf("create member %s/%s: %w", conversationID, userID, err)
	}
	return nil
}

func (r *memberRepo) DeleteMember(ctx context.Context, conversationID, userID string) error {
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Delete(&Member{}).Error
	if err != nil {
		return fmt.Errorf("delete member %s/%s: %w", conversationID, userID, err)
	}
	return nil
}
