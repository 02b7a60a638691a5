package member

import (
	"context"
	"log"

	"gochat/internal/chat/service"
	"gochat/internal/common"
	"gochat/internal/dbmongo"
	"gochat/internal/dbmysql"
)

// Notifier appends the NOTIFY message recording a membership change. The
// message lifecycle service satisfies it.
type Notifier interface {
	AddNotify(ctx context.Context, authorID, conversationID, content string, affectedUserIDs []string) (service.MessageView, error)
}

// MemberService runs the membership flows of group conversations. Each flow
// validates its own rules, applies the membership change and records it as a
// NOTIFY message in the conversation.
type MemberService interface {
	Leave(ctx context.Context, conversationID, userID string) error
	AddMembers(ctx context.Context, conversationID, requesterID string, userIDs []string) error
	RemoveMember(ctx context.Context, conversationID, requesterID, targetID string) error
	JoinFromLink(ctx context.Context, conversationID, userID string) error
	PromoteManagers(ctx context.Context, conversationID, requesterID string, userIDs []string) error
}

type memberService struct {
	convs    dbmongo.ConversationRepository
	members  dbmysql.MemberRepository
	notifier Notifier
}

func NewMemberService(convs dbmongo.ConversationRepository, members dbmysql.MemberRepository, notifier Notifier) MemberService {
	return &memberService{convs: convs, members: members, notifier: notifier}
}

func (s *memberService) Leave(ctx context.Context, conversationID, userID string) error {
	conv, err := s.convs.GetByIDAndUserID(ctx, conversationID, userID)
	if err != nil {
		return err
	}
	if !conv.IsGroup() {
		return common.InvalidArgumentf("cannot leave an individual conversation")
	}
	if conv.LeaderID == userID {
		return common.Forbiddenf("the leader must transfer leadership before leaving")
	}

	if err := s.convs.RemoveMember(ctx, conversationID, userID); err != nil {
		return err
	}
	s.dropMarker(ctx, conversationID, userID)

	return s.notify(ctx, userID, conversationID, "left the group", []string{userID})
}

func (s *memberService) AddMembers(ctx context.Context, conversationID, requesterID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return common.InvalidArgumentf("no users to add")
	}

	conv, err := s.convs.GetByIDAndUserID(ctx, conversationID, requesterID)
	if err != nil {
		return err
	}
	if !conv.IsGroup() {
		return common.InvalidArgumentf("members can only be added to a group")
	}

	newcomers := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		if !conv.HasMember(id) {
			newcomers = append(newcomers, id)
		}
	}
	if len(newcomers) == 0 {
		return common.Conflictf("all users are already members")
	}

	if err := s.convs.AddMembers(ctx, conversationID, newcomers); err != nil {
		return err
	}
	for _, id := range newcomers {
		s.createMarker(ctx, conversationID, id)
	}

	return s.notify(ctx, requesterID, conversationID, "added members", newcomers)
}

func (s *memberService) RemoveMember(ctx context.Context, conversationID, requesterID, targetID string) error {
	conv, err := s.convs.GetByIDAndUserID(ctx, conversationID, requesterID)
	if err != nil {
		return err
	}
	if !conv.IsGroup() {
		return common.InvalidArgumentf("members can only be removed from a group")
	}
	if conv.LeaderID != requesterID && !conv.IsManager(requesterID) {
		return common.Forbiddenf("only the leader or a manager may remove members")
	}
	if targetID == conv.LeaderID {
		return common.Forbiddenf("the leader cannot be removed")
	}
	if !conv.HasMember(targetID) {
		return common.NotFoundf("user %s in conversation %s", targetID, conversationID)
	}

	if err := s.convs.RemoveMember(ctx, conversationID, targetID); err != nil {
		return err
	}
	s.dropMarker(ctx, conversationID, targetID)

	return s.notify(ctx, requesterID, conversationID, "removed a member", []string{targetID})
}

func (s *memberService) JoinFromLink(ctx context.Context, conversationID, userID string) error {
	conv, err := s.convs.Get(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conv.IsGroup() || !conv.JoinableByLink {
		return common.Forbiddenf("conversation %s is not joinable by link", conversationID)
	}
	if conv.HasMember(userID) {
		return common.Conflictf("user %s is already a member", userID)
	}

	if err := s.convs.AddMembers(ctx, conversationID, []string{userID}); err != nil {
		return err
	}
	s.createMarker(ctx, conversationID, userID)

	return s.notify(ctx, userID, conversationID, "joined from link", []string{userID})
}

func (s *memberService) PromoteManagers(ctx context.Context, conversationID, requesterID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return common.InvalidArgumentf("no users to promote")
	}

	conv, err := s.convs.GetByIDAndUserID(ctx, conversationID, requesterID)
	if err != nil {
		return err
	}
	if !conv.IsGroup() {
		return common.InvalidArgumentf("managers exist only in groups")
	}
	if conv.LeaderID != requesterID {
		return common.Forbiddenf("only the leader may promote managers")
	}
	for _, id := range userIDs {
		if !conv.HasMember(id) {
			return common.InvalidArgumentf("user %s is not a member of %s", id, conversationID)
		}
	}

	if err := s.convs.AddManagers(ctx, conversationID, userIDs); err != nil {
		return err
	}

	return s.notify(ctx, requesterID, conversationID, "promoted managers", userIDs)
}

// notify records the membership change in the conversation history. The
// change already happened; a failed notification is logged, not surfaced.
func (s *memberService) notify(ctx context.Context, authorID, conversationID, content string, affected []string) error {
	if _, err := s.notifier.AddNotify(ctx, authorID, conversationID, content, affected); err != nil {
		log.Printf("membership notify for %s failed: %v", conversationID, err)
	}
	return nil
}

// Marker maintenance is best effort, the marker store is not authoritative.
func (s *memberService) createMarker(ctx context.Context, conversationID, userID string) {
	if err := s.members.CreateMember(ctx, conversationID, userID); err != nil {
		log.Printf("create member marker %s/%s: %v", conversationID, userID, err)
	}
}

func (s *memberService) dropMarker(ctx context.Context, conversationID, userID string) {
	if err := s.members.DeleteMember(ctx, conversationID, userID); err != nil {
		log.Printf("delete member marker %s/%s: %v", conversationID, userID, err)
	}
}
