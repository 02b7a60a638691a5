package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gochat/internal/chat/service/mocks"
	"gochat/internal/common"
	"gochat/internal/config"
	"gochat/internal/dbmongo"
)

func newSyncTestbed(t *testing.T, workers, maxRetries int) (*Synchronizer, *mocks.MockConversationRepository, *mocks.MockMemberRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	convs := mocks.NewMockConversationRepository(ctrl)
	members := mocks.NewMockMemberRepository(ctrl)

	cfg := &config.Config{Sync: config.SyncConfig{
		Workers:           workers,
		ChannelBufferSize: 16,
		MaxRetries:        maxRetries,
		RetryDelay:        0,
	}}
	s := NewSynchronizer(cfg, convs, members)
	t.Cleanup(s.Shutdown)
	return s, convs, members
}

func TestApply_ConversationMessage(t *testing.T) {
	s, convs, members := newSyncTestbed(t, 0, 0)
	at := time.Now().UTC()

	advance := convs.EXPECT().
		AdvanceLastMessage(gomock.Any(), "conv-1", "msg-1", at).
		Return(nil)
	members.EXPECT().
		TouchConversationView(gomock.Any(), "conv-1", "author", at).
		After(advance).
		Return(nil)

	err := s.apply(syncTask{messageID: "msg-1", conversationID: "conv-1", userID: "author", at: at})
	assert.NoError(t, err)
}

func TestApply_ChannelMessageSkipsConversationPointer(t *testing.T) {
	s, _, members := newSyncTestbed(t, 0, 0)
	at := time.Now().UTC()

	// AdvanceLastMessage must never run for a channel message. The mock
	// controller fails the test on any unexpected call.
	members.EXPECT().
		TouchChannelView(gomock.Any(), "chan-1", "author", at).
		Return(nil)

	err := s.apply(syncTask{messageID: "msg-1", channelID: "chan-1", userID: "author", at: at})
	assert.NoError(t, err)
}

func TestApply_ViewOnlyLeavesPointerAlone(t *testing.T) {
	s, _, members := newSyncTestbed(t, 0, 0)
	at := time.Now().UTC()

	members.EXPECT().
		TouchConversationView(gomock.Any(), "conv-1", "viewer", at).
		Return(nil)

	err := s.apply(syncTask{conversationID: "conv-1", userID: "viewer", at: at, viewOnly: true})
	assert.NoError(t, err)
}

func TestApplyWithRetry_BoundedAttempts(t *testing.T) {
	s, convs, _ := newSyncTestbed(t, 0, 2)
	at := time.Now().UTC()

	convs.EXPECT().
		AdvanceLastMessage(gomock.Any(), "conv-1", "msg-1", at).
		Return(errors.New("mongo down")).
		Times(3)

	// Gives up quietly after maxRetries+1 attempts.
	s.applyWithRetry(syncTask{messageID: "msg-1", conversationID: "conv-1", userID: "author", at: at})
}

func TestApplyWithRetry_RecoversOnSecondAttempt(t *testing.T) {
	s, convs, members := newSyncTestbed(t, 0, 2)
	at := time.Now().UTC()

	first := convs.EXPECT().
		AdvanceLastMessage(gomock.Any(), "conv-1", "msg-1", at).
		Return(errors.New("transient"))
	convs.EXPECT().
		AdvanceLastMessage(gomock.Any(), "conv-1", "msg-1", at).
		After(first).
		Return(nil)
	members.EXPECT().
		TouchConversationView(gomock.Any(), "conv-1", "author", at).
		Return(nil)

	s.applyWithRetry(syncTask{messageID: "msg-1", conversationID: "conv-1", userID: "author", at: at})
}

func TestSynchronizer_WorkerDrainsQueue(t *testing.T) {
	s, convs, members := newSyncTestbed(t, 1, 0)

	done := make(chan struct{})
	convs.EXPECT().
		AdvanceLastMessage(gomock.Any(), "conv-1", "msg-1", gomock.Any()).
		Return(nil)
	members.EXPECT().
		TouchConversationView(gomock.Any(), "conv-1", "author", gomock.Any()).
		DoAndReturn(func(context.Context, string, string, time.Time) error {
			close(done)
			return nil
		})

	s.MessageCreated(&dbmongo.Message{
		ID:             "msg-1",
		AuthorID:       "author",
		ConversationID: "conv-1",
		CreatedAt:      time.Now().UTC(),
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task was never applied")
	}
}

func TestSynchronizer_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	ctrl := gomock.NewController(t)
	convs := mocks.NewMockConversationRepository(ctrl)
	members := mocks.NewMockMemberRepository(ctrl)

	// No workers and a single slot: the second enqueue must not block.
	cfg := &config.Config{Sync: config.SyncConfig{Workers: 0, ChannelBufferSize: 1}}
	s := NewSynchronizer(cfg, convs, members)
	t.Cleanup(s.Shutdown)

	at := time.Now().UTC()
	s.ViewRefreshed(common.ConversationTarget("conv-1"), "viewer", at)

	finished := make(chan struct{})
	go func() {
		s.ViewRefreshed(common.ConversationTarget("conv-1"), "viewer", at)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}
}
