package member

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gochat/internal/chat/service"
	"gochat/internal/chat/service/mocks"
	"gochat/internal/common"
	"gochat/internal/dbmongo"
)

type notifyCall struct {
	authorID       string
	conversationID string
	content        string
	affected       []string
}

// fakeNotifier records AddNotify calls.
type fakeNotifier struct {
	calls []notifyCall
	err   error
}

func (f *fakeNotifier) AddNotify(_ context.Context, authorID, conversationID, content string, affected []string) (service.MessageView, error) {
	f.calls = append(f.calls, notifyCall{authorID, conversationID, content, affected})
	return service.MessageView{"id": "notify-1"}, f.err
}

func newTestMemberService(t *testing.T) (MemberService, *mocks.MockConversationRepository, *mocks.MockMemberRepository, *fakeNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	convs := mocks.NewMockConversationRepository(ctrl)
	members := mocks.NewMockMemberRepository(ctrl)
	notifier := &fakeNotifier{}
	return NewMemberService(convs, members, notifier), convs, members, notifier
}

func group(id, leader string, members ...string) *dbmongo.Conversation {
	return &dbmongo.Conversation{
		ID:       id,
		Kind:     dbmongo.ConversationGroup,
		LeaderID: leader,
		Members:  members,
	}
}

func TestLeave(t *testing.T) {
	svc, convs, members, notifier := newTestMemberService(t)
	ctx := context.Background()

	convs.EXPECT().
		GetByIDAndUserID(gomock.Any(), "conv-1", "u2").
		Return(group("conv-1", "leader", "leader", "u2"), nil)
	convs.EXPECT().RemoveMember(gomock.Any(), "conv-1", "u2").Return(nil)
	members.EXPECT().DeleteMember(gomock.Any(), "conv-1", "u2").Return(nil)

	require.NoError(t, svc.Leave(ctx, "conv-1", "u2"))

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "u2", notifier.calls[0].authorID)
	assert.Equal(t, []string{"u2"}, notifier.calls[0].affected)
}

func TestLeave_LeaderBlocked(t *testing.T) {
	svc, convs, _, _ := newTestMemberService(t)

	convs.EXPECT().
		GetByIDAndUserID(gomock.Any(), "conv-1", "leader").
		Return(group("conv-1", "leader", "leader", "u2"), nil)

	err := svc.Leave(context.Background(), "conv-1", "leader")
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestLeave_IndividualConversation(t *testing.T) {
	svc, convs, _, _ := newTestMemberService(t)

	convs.EXPECT().
		GetByIDAndUserID(gomock.Any(), "conv-1", "u1").
		Return(&dbmongo.Conversation{ID: "conv-1", Kind: dbmongo.ConversationIndividual, Members: []string{"u1", "u2"}}, nil)

	err := svc.Leave(context.Background(), "conv-1", "u1")
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestAddMembers_SkipsExisting(t *testing.T) {
	svc, convs, members, notifier := newTestMemberService(t)

	convs.EXPECT().
		GetByIDAndUserID(gomock.Any(), "conv-1", "u1").
		Return(group("conv-1", "leader", "leader", "u1", "u2"), nil)
	convs.EXPECT().AddMembers(gomock.Any(), "conv-1", []string{"u3"}).Return(nil)
	members.EXPECT().CreateMember(gomock.Any(), "conv-1", "u3").Return(nil)

	err := svc.AddMembers(context.Background(), "conv-1", "u1", []string{"u2", "u3"})

	require.NoError(t, err)
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, []string{"u3"}, notifier.calls[0].affected)
}

func TestAddMembers_AllAlreadyPresent(t *testing.T) {
	svc, convs, _, _ := newTestMemberService(t)

	convs.EXPECT().
		GetByIDAndUserID(gomock.Any(), "conv-1", "u1").
		Return(group("conv-1", "leader", "leader", "u1", "u2"), nil)

	err := svc.AddMembers(context.Background(), "conv-1", "u1", []string{"u2"})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestRemoveMember_RequiresManagerOrLeader(t *testing.T) {
	svc, convs, _, _ := newTestMemberService(t)

	convs.EXPECT().
		GetByIDAndUserID(gomock.Any(), "conv-1", "u2").
		Return(group("conv-1", "leader", "leader", "u2", "u3"), nil)

	err := svc.RemoveMember(context.Background(), "conv-1", "u2", "u3")
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestRemoveMember_LeaderUntouchable(t *testing.T) {
	svc, convs, _, _ := newTestMemberService(t)

	conv := group("conv-1", "leader", "leader", "u2", "u3")
	conv.ManagerIDs = []string{"u2"}
	convs.EXPECT().
		GetByIDAndUserID(gomock.Any(), "conv-1", "u2").
		Return(conv, nil)

	err := svc.RemoveMember(context.Background(), "conv-1", "u2", "leader")
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestRemoveMember_ByManager(t *testing.T) {
	svc, convs, members, notifier := newTestMemberService(t)

	conv := group("conv-1", "leader", "leader", "u2", "u3")
	conv.ManagerIDs = []string{"u2"}
	convs.EXPECT().
		GetByIDAndUserID(gomock.Any(), "conv-1", "u2").
		Return(conv, nil)
	convs.EXPECT().RemoveMember(gomock.Any(), "conv-1", "u3").Return(nil)
	members.EXPECT().DeleteMember(gomock.Any(), "conv-1", "u3").Return(nil)

	require.NoError(t, svc.RemoveMember(context.Background(), "conv-1", "u2", "u3"))
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, []string{"u3"}, notifier.calls[0].affected)
}

func TestJoinFromLink(t *testing.T) {
	svc, convs, members, notifier := newTestMemberService(t)

	conv := group("conv-1", "leader", "leader", "u2")
	conv.JoinableByLink = true
	convs.EXPECT().Get(gomock.Any(), "conv-1").Return(conv, nil)
	convs.EXPECT().AddMembers(gomock.Any(), "conv-1", []string{"u9"}).Return(nil)
	members.EXPECT().CreateMember(gomock.Any(), "conv-1", "u9").Return(nil)

	require.NoError(t, svc.JoinFromLink(context.Background(), "conv-1", "u9"))
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "u9", notifier.calls[0].authorID)
}

func TestJoinFromLink_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		conv    *dbmongo.Conversation
		userID  string
		wantErr error
	}{
		{
			name: "link disabled",
			conv: group("conv-1", "leader", "leader", "u2"),

			userID:  "u9",
			wantErr: common.ErrForbidden,
		},
		{
			name: "not a group",
			conv: &dbmongo.Conversation{
				ID: "conv-1", Kind: dbmongo.ConversationIndividual,
				Members: []string{"u1", "u2"}, JoinableByLink: true,
			},
			userID:  "u9",
			wantErr: common.ErrForbidden,
		},
		{
			name: "already a member",
			conv: func() *dbmongo.Conversation {
				c := group("conv-1", "leader", "leader", "u2")
				c.JoinableByLink = true
				return c
			}(),
			userID:  "u2",
			wantErr: common.ErrConflict,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, convs, _, _ := newTestMemberService(t)
			convs.EXPECT().Get(gomock.Any(), "conv-1").Return(tc.conv, nil)

			err := svc.JoinFromLink(context.Background(), "conv-1", tc.userID)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestPromoteManagers_LeaderOnly(t *testing.T) {
	svc, convs, _, _ := newTestMemberService(t)

	conv := group("conv-1", "leader", "leader", "u2", "u3")
	conv.ManagerIDs = []string{"u2"}
	convs.EXPECT().
		GetByIDAndUserID(gomock.Any(), "conv-1", "u2").
		Return(conv, nil)

	// managers cannot mint other managers
	err := svc.PromoteManagers(context.Background(), "conv-1", "u2", []string{"u3"})
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestPromoteManagers(t *testing.T) {
	svc, convs, _, notifier := newTestMemberService(t)

	convs.EXPECT().
		GetByIDAndUserID(gomock.Any(), "conv-1", "leader").
		Return(group("conv-1", "leader", "leader", "u2", "u3"), nil)
	convs.EXPECT().AddManagers(gomock.Any(), "conv-1", []string{"u2", "u3"}).Return(nil)

	require.NoError(t, svc.PromoteManagers(context.Background(), "conv-1", "leader", []string{"u2", "u3"}))
	require.Len(t, notifier.calls, 1)
}

func TestPromoteManagers_TargetMustBeMember(t *testing.T) {
	svc, convs, _, _ := newTestMemberService(t)

	convs.EXPECT().
		GetByIDAndUserID(gomock.Any(), "conv-1", "leader").
		Return(group("conv-1", "leader", "leader", "u2"), nil)

	err := svc.PromoteManagers(context.Background(), "conv-1", "leader", []string{"stranger"})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}
