package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gochat/internal/chat/service/mocks"
	"gochat/internal/common"
	"gochat/internal/config"
	"gochat/internal/dbmongo"
)

// fakeMessageRepo is an in-memory MessageRepository with the same atomicity
// contract as the mongo one: UpsertReaction is a single keyed write under a
// lock, so concurrent reactors can never clobber each other's entries.
type fakeMessageRepo struct {
	mu       sync.Mutex
	messages map[string]*dbmongo.Message
}

func newFakeMessageRepo(msgs ...*dbmongo.Message) *fakeMessageRepo {
	r := &fakeMessageRepo{messages: make(map[string]*dbmongo.Message)}
	for _, m := range msgs {
		r.messages[m.ID] = m
	}
	return r
}

func (r *fakeMessageRepo) Insert(_ context.Context, msg *dbmongo.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[msg.ID] = msg
	return nil
}

func (r *fakeMessageRepo) Get(_ context.Context, id string) (*dbmongo.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, ok := r.messages[id]
	if !ok {
		return nil, common.NotFoundf("message %s", id)
	}
	snapshot := *msg
	return &snapshot, nil
}

func (r *fakeMessageRepo) SetRevoked(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if msg, ok := r.messages[id]; ok {
		msg.Revoked = true
	}
	return nil
}

func (r *fakeMessageRepo) HideFor(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, ok := r.messages[id]
	if !ok || msg.Revoked {
		return nil
	}
	for _, existing := range msg.HiddenFor {
		if existing == userID {
			return nil
		}
	}
	msg.HiddenFor = append(msg.HiddenFor, userID)
	return nil
}

func (r *fakeMessageRepo) HideAllFor(_ context.Context, conversationID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, msg := range r.messages {
		if msg.ConversationID == conversationID && !msg.Revoked {
			msg.HiddenFor = append(msg.HiddenFor, userID)
		}
	}
	return nil
}

func (r *fakeMessageRepo) UpsertReaction(_ context.Context, id, userID string, reactionType int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, ok := r.messages[id]
	if !ok || msg.VisibilityFor(userID) != dbmongo.VisibilityVisible {
		return false, nil
	}
	if msg.Reactions == nil {
		msg.Reactions = make(map[string]int)
	}
	msg.Reactions[userID] = reactionType
	return true, nil
}

func (r *fakeMessageRepo) CountVisible(context.Context, common.Target, string) (int, error) {
	return 0, nil
}

func (r *fakeMessageRepo) ListVisible(context.Context, common.Target, string, int, int) ([]*dbmongo.Message, error) {
	return nil, nil
}

func (r *fakeMessageRepo) ListMedia(context.Context, dbmongo.MediaQuery) ([]*dbmongo.Message, error) {
	return nil, nil
}

func newReactionTestbed(t *testing.T, repo *fakeMessageRepo) ChatService {
	t.Helper()
	ctrl := gomock.NewController(t)
	convs := mocks.NewMockConversationRepository(ctrl)
	members := mocks.NewMockMemberRepository(ctrl)
	store := mocks.NewMockObjectStore(ctrl)

	cfg := &config.Config{Sync: config.SyncConfig{Workers: 0, ChannelBufferSize: 64}}
	synchronizer := NewSynchronizer(cfg, convs, members)
	t.Cleanup(synchronizer.Shutdown)

	return NewMessageService(repo, convs, members, store, NewPresenter(), synchronizer)
}

func TestAddReaction_ConcurrentReactorsAllLand(t *testing.T) {
	const reactors = 50

	repo := newFakeMessageRepo(&dbmongo.Message{
		ID:             "msg-1",
		AuthorID:       "author",
		ConversationID: "conv-1",
		Kind:           common.KindText,
		CreatedAt:      time.Now().UTC(),
	})
	svc := newReactionTestbed(t, repo)

	var wg sync.WaitGroup
	for i := 0; i < reactors; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", n)
			_, err := svc.AddReaction(context.Background(), "msg-1", userID, 1+n%common.ReactionMax)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	msg, err := repo.Get(context.Background(), "msg-1")
	require.NoError(t, err)
	assert.Len(t, msg.Reactions, reactors, "every reactor keeps exactly one entry")
}

func TestAddReaction_RepeatReplacesOwnEntry(t *testing.T) {
	repo := newFakeMessageRepo(&dbmongo.Message{
		ID:             "msg-1",
		AuthorID:       "author",
		ConversationID: "conv-1",
		Kind:           common.KindText,
		CreatedAt:      time.Now().UTC(),
	})
	svc := newReactionTestbed(t, repo)
	ctx := context.Background()

	_, err := svc.AddReaction(ctx, "msg-1", "u1", 2)
	require.NoError(t, err)
	_, err = svc.AddReaction(ctx, "msg-1", "u1", 5)
	require.NoError(t, err)

	msg, err := repo.Get(ctx, "msg-1")
	require.NoError(t, err)
	require.Len(t, msg.Reactions, 1)
	assert.Equal(t, 5, msg.Reactions["u1"])
}

func TestAddReaction_RevokeRaceLosesCleanly(t *testing.T) {
	repo := newFakeMessageRepo(&dbmongo.Message{
		ID:             "msg-1",
		AuthorID:       "author",
		ConversationID: "conv-1",
		Kind:           common.KindText,
		CreatedAt:      time.Now().UTC(),
	})
	svc := newReactionTestbed(t, repo)
	ctx := context.Background()

	require.NoError(t, repo.SetRevoked(ctx, "msg-1"))

	_, err := svc.AddReaction(ctx, "msg-1", "u1", 3)
	assert.ErrorIs(t, err, common.ErrConflict)

	msg, err := repo.Get(ctx, "msg-1")
	require.NoError(t, err)
	assert.Empty(t, msg.Reactions)
}
