package dbmysql

import (
	"time"
)

// Member is the per-(conversation, user) read-position marker. LastView is
// the timestamp used for read-receipt computation at conversation scope.
type Member struct {
	ConversationID string    `gorm:"primaryKey;size:36;column:conversation_id"`
	UserID         string    `gorm:"primaryKey;size:36;column:user_id"`
	LastView       time.Time `gorm:"column:last_view"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ChannelMember is the same marker at channel scope.
type ChannelMember struct {
	ChannelID string    `gorm:"primaryKey;size:36;column:channel_id"`
	UserID    string    `gorm:"primaryKey;size:36;column:user_id"`
	LastView  time.Time `gorm:"column:last_view"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
