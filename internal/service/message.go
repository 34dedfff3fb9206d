package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/id"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/logger"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/queue"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

const (
	MaxMessageLength    = 4000
	DefaultMessageLimit = 50
	MaxMessageLimit     = 100
	MaxParticipants     = 20
)

type MessageService interface {
	// StartConversation reuses an existing direct conversation when exactly one
	// other participant is given.
	StartConversation(ctx context.Context, actor *model.User, participantIDs []int64, title *string) (*model.Conversation, error)
	Send(ctx context.Context, actor *model.User, conversationID int64, body string) (*model.Message, error)
	ListConversations(ctx context.Context, actor *model.User) ([]model.Conversation, error)
	ListMessages(ctx context.Context, actor *model.User, conversationID int64, query model.MessageQuery) ([]model.Message, error)
	// MarkRead moves the read marker forward; zero or an id past the latest
	// message marks everything read.
	MarkRead(ctx context.Context, actor *model.User, conversationID, messageID int64) (int64, error)
	UnreadTotal(ctx context.Context, actor *model.User) (int64, error)
}

type messageService struct {
	convStore    store.ConversationStore
	messageStore store.MessageStore
	userStore    store.UserStore
	txRunner     TxRunner
	notifier     *notifier
}

func NewMessageService(
	convStore store.ConversationStore,
	messageStore store.MessageStore,
	userStore store.UserStore,
	txRunner TxRunner,
	producer queue.Producer,
) MessageService {
	return &messageService{
		convStore:    convStore,
		messageStore: messageStore,
		userStore:    userStore,
		txRunner:     txRunner,
		notifier:     newNotifier(producer),
	}
}

func (s *messageService) StartConversation(ctx context.Context, actor *model.User, participantIDs []int64, title *string) (*model.Conversation, error) {
	others := lo.Without(lo.Uniq(participantIDs), actor.ID)
	if len(others) == 0 {
		return nil, invalidInput("at least one other participant is required")
	}
	if len(others) >= MaxParticipants {
		return nil, invalidInput("at most %d participants are allowed", MaxParticipants)
	}
	for _, uid := range others {
		user, err := s.userStore.GetByID(ctx, uid)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrMemberNotActive
			}
			return nil, fmt.Errorf("getting participant: %w", err)
		}
		if !user.IsActive {
			return nil, ErrMemberNotActive
		}
	}

	if len(others) == 1 {
		existingID, err := s.convStore.FindDirect(ctx, actor.ID, others[0])
		if err == nil {
			return s.withParticipants(ctx, existingID)
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("finding direct conversation: %w", err)
		}
	}

	if title != nil {
		t := strings.TrimSpace(*title)
		title = &t
		if t == "" {
			title = nil
		}
	}
	conv := &model.Conversation{
		ID:        id.New(),
		Title:     title,
		CreatedBy: actor.ID,
	}
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Conversations().Create(ctx, conv); err != nil {
			return fmt.Errorf("creating conversation: %w", err)
		}
		for _, uid := range append([]int64{actor.ID}, others...) {
			if err := sp.Conversations().AddParticipant(ctx, conv.ID, uid); err != nil {
				return fmt.Errorf("adding participant: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{ConversationID: &conv.ID})
	slog.InfoContext(ctx, "conversation started",
		"user_id", actor.ID,
		"participants", len(others)+1,
	)
	return s.withParticipants(ctx, conv.ID)
}

func (s *messageService) Send(ctx context.Context, actor *model.User, conversationID int64, body string) (*model.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, invalidInput("message cannot be empty")
	}
	if utf8.RuneCountInString(body) > MaxMessageLength {
		return nil, invalidInput("message must be at most %d characters", MaxMessageLength)
	}
	if err := s.requireParticipant(ctx, actor, conversationID); err != nil {
		return nil, err
	}

	msg := &model.Message{
		ID:             id.New(),
		ConversationID: conversationID,
		SenderID:       actor.ID,
		Body:           body,
	}
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Messages().Create(ctx, msg); err != nil {
			return fmt.Errorf("creating message: %w", err)
		}
		if err := sp.Conversations().Touch(ctx, conversationID, msg.CreatedAt); err != nil {
			return fmt.Errorf("touching conversation: %w", err)
		}
		if _, err := sp.Conversations().MarkRead(ctx, conversationID, actor.ID, msg.ID); err != nil {
			return fmt.Errorf("marking sender read: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{ConversationID: &conversationID})
	slog.InfoContext(ctx, "message sent", "user_id", actor.ID, "chat_message_id", msg.ID)

	s.notifyRecipients(ctx, actor, conversationID, msg)
	return msg, nil
}

func (s *messageService) notifyRecipients(ctx context.Context, sender *model.User, conversationID int64, msg *model.Message) {
	conv, err := s.convStore.GetByID(ctx, conversationID)
	if err != nil {
		slog.WarnContext(ctx, "skipping message notification", "error", err)
		return
	}
	participants, err := s.convStore.ListParticipants(ctx, conversationID)
	if err != nil {
		slog.WarnContext(ctx, "skipping message notification", "error", err)
		return
	}
	for _, p := range participants {
		if p.UserID == sender.ID {
			continue
		}
		s.notifier.newMessage(ctx, sender, p, conv, msg)
	}
}

func (s *messageService) ListConversations(ctx context.Context, actor *model.User) ([]model.Conversation, error) {
	convs, err := s.convStore.ListForUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	for i := range convs {
		participants, err := s.convStore.ListParticipants(ctx, convs[i].ID)
		if err != nil {
			return nil, fmt.Errorf("listing participants: %w", err)
		}
		convs[i].Participants = participants
	}
	return convs, nil
}

func (s *messageService) ListMessages(ctx context.Context, actor *model.User, conversationID int64, query model.MessageQuery) ([]model.Message, error) {
	if err := s.requireParticipant(ctx, actor, conversationID); err != nil {
		return nil, err
	}
	if query.Limit <= 0 {
		query.Limit = DefaultMessageLimit
	}
	if query.Limit > MaxMessageLimit {
		query.Limit = MaxMessageLimit
	}

	if query.After != nil {
		msgs, err := s.messageStore.ListAfter(ctx, conversationID, *query.After, query.Limit)
		if err != nil {
			return nil, fmt.Errorf("listing new messages: %w", err)
		}
		return msgs, nil
	}

	msgs, err := s.messageStore.ListBefore(ctx, conversationID, query.Before, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	// Pages are fetched newest first and returned in reading order.
	return lo.Reverse(msgs), nil
}

func (s *messageService) MarkRead(ctx context.Context, actor *model.User, conversationID, messageID int64) (int64, error) {
	if err := s.requireParticipant(ctx, actor, conversationID); err != nil {
		return 0, err
	}
	// The marker never moves back, so it is capped at the newest message.
	latest, err := s.convStore.LatestMessageID(ctx, conversationID)
	if err != nil {
		return 0, fmt.Errorf("getting latest message: %w", err)
	}
	if messageID <= 0 || messageID > latest {
		messageID = latest
	}

	marker, err := s.convStore.MarkRead(ctx, conversationID, actor.ID, messageID)
	if err != nil {
		return 0, fmt.Errorf("marking conversation read: %w", err)
	}
	return marker, nil
}

func (s *messageService) UnreadTotal(ctx context.Context, actor *model.User) (int64, error) {
	n, err := s.convStore.CountUnread(ctx, actor.ID)
	if err != nil {
		return 0, fmt.Errorf("counting unread messages: %w", err)
	}
	return n, nil
}

// requireParticipant reports conversations the actor is not part of as missing.
func (s *messageService) requireParticipant(ctx context.Context, actor *model.User, conversationID int64) error {
	if _, err := s.convStore.GetParticipant(ctx, conversationID, actor.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrConversationNotFound
		}
		return fmt.Errorf("getting participant: %w", err)
	}
	return nil
}

func (s *messageService) withParticipants(ctx context.Context, conversationID int64) (*model.Conversation, error) {
	conv, err := s.convStore.GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("getting conversation: %w", err)
	}
	participants, err := s.convStore.ListParticipants(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}
	conv.Participants = participants
	return conv, nil
}
