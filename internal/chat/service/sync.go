package service

import (
	"context"
	"log"
	"sync"
	"time"

	"gochat/internal/common"
	"gochat/internal/config"
	"gochat/internal/dbmongo"
	"gochat/internal/dbmysql"
)

// syncTask is one unit of secondary-consistency work. Tasks are idempotent:
// re-applying the same task is always safe, which is what allows retries.
type syncTask struct {
	messageID      string
	conversationID string
	channelID      string
	userID         string
	at             time.Time
	viewOnly       bool
}

// Synchronizer applies the secondary updates that follow a message: the
// conversation's lastMessageId pointer and the author's read-position marker.
// It also refreshes read positions after listing. All work runs on a worker
// pool after the primary response is already prepared; failures are retried a
// bounded number of times, then logged and dropped. They never reach callers
// and never roll back a persisted message.
type Synchronizer struct {
	convs   dbmongo.ConversationRepository
	members dbmysql.MemberRepository

	tasks      chan syncTask
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	maxRetries int
	retryDelay time.Duration
}

func NewSynchronizer(cfg *config.Config, convs dbmongo.ConversationRepository, members dbmysql.MemberRepository) *Synchronizer {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Synchronizer{
		convs:      convs,
		members:    members,
		tasks:      make(chan syncTask, cfg.Sync.ChannelBufferSize),
		ctx:        ctx,
		cancel:     cancel,
		maxRetries: cfg.Sync.MaxRetries,
		retryDelay: time.Duration(cfg.Sync.RetryDelay) * time.Second,
	}

	for i := 0; i < cfg.Sync.Workers; i++ {
		s.wg.Add(1)
		go s.processTasks()
	}

	return s
}

// MessageCreated schedules the post-create consistency step for msg.
func (s *Synchronizer) MessageCreated(msg *dbmongo.Message) {
	s.enqueue(syncTask{
		messageID:      msg.ID,
		conversationID: msg.ConversationID,
		channelID:      msg.ChannelID,
		userID:         msg.AuthorID,
		at:             msg.CreatedAt,
	})
}

// ViewRefreshed schedules a read-position refresh for a viewer of scope.
func (s *Synchronizer) ViewRefreshed(scope common.Target, userID string, at time.Time) {
	s.enqueue(syncTask{
		conversationID: scope.ConversationID(),
		channelID:      scope.ChannelID(),
		userID:         userID,
		at:             at,
		viewOnly:       true,
	})
}

func (s *Synchronizer) enqueue(t syncTask) {
	select {
	case s.tasks <- t:
	case <-s.ctx.Done():
	default:
		log.Printf("sync queue full, dropping task for message %s", t.messageID)
	}
}

func (s *Synchronizer) processTasks() {
	defer s.wg.Done()

	for {
		select {
		case t := <-s.tasks:
			s.applyWithRetry(t)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Synchronizer) applyWithRetry(t syncTask) {
	var err error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(s.retryDelay):
			case <-s.ctx.Done():
				return
			}
		}
		if err = s.apply(t); err == nil {
			return
		}
		log.Printf("sync attempt %d for message %q failed: %v", attempt+1, t.messageID, err)
	}
	log.Printf("sync gave up on message %q after %d attempts: %v", t.messageID, s.maxRetries+1, err)
}

// apply runs one task. Channel-targeted messages only move the channel
// read-position marker; the owning conversation's lastMessageId is not
// touched. Conversation-targeted messages advance the pointer (guarded by
// createdAt ordering in the store) and the author's marker.
func (s *Synchronizer) apply(t syncTask) error {
	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Second)
	defer cancel()

	if t.channelID != "" {
		return s.members.TouchChannelView(ctx, t.channelID, t.userID, t.at)
	}

	if !t.viewOnly {
		if err := s.convs.AdvanceLastMessage(ctx, t.conversationID, t.messageID, t.at); err != nil {
			return err
		}
	}
	return s.members.TouchConversationView(ctx, t.conversationID, t.userID, t.at)
}

// Shutdown stops the workers. Queued tasks may be dropped; every task is
// idempotent and read-receipt metadata is eventually consistent.
func (s *Synchronizer) Shutdown() {
	s.cancel()
	s.wg.Wait()
}
