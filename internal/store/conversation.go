package store

import (
	"context"
	"time"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/db/sqlc"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

type conversationStore struct {
	queries *sqlc.Queries
}

func newConversationStore(queries *sqlc.Queries) ConversationStore {
	return &conversationStore{queries: queries}
}

func (s *conversationStore) Create(ctx context.Context, conv *model.Conversation) error {
	row, err := s.queries.CreateConversation(ctx, sqlc.CreateConversationParams{
		ID:        conv.ID,
		Title:     conv.Title,
		CreatedBy: conv.CreatedBy,
	})
	if err != nil {
		return translate(err)
	}
	*conv = *toConversationModel(row)
	return nil
}

func (s *conversationStore) GetByID(ctx context.Context, id int64) (*model.Conversation, error) {
	row, err := s.queries.GetConversation(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toConversationModel(row), nil
}

func (s *conversationStore) AddParticipant(ctx context.Context, conversationID, userID int64) error {
	return s.queries.AddConversationParticipant(ctx, sqlc.AddConversationParticipantParams{
		ConversationID: conversationID,
		UserID:         userID,
	})
}

func (s *conversationStore) GetParticipant(ctx context.Context, conversationID, userID int64) (*model.Participant, error) {
	row, err := s.queries.GetConversationParticipant(ctx, sqlc.GetConversationParticipantParams{
		ConversationID: conversationID,
		UserID:         userID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return &model.Participant{
		UserID:            row.UserID,
		LastReadMessageID: row.LastReadMessageID,
	}, nil
}

func (s *conversationStore) ListParticipants(ctx context.Context, conversationID int64) ([]model.Participant, error) {
	rows, err := s.queries.ListConversationParticipants(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Participant, len(rows))
	for i, row := range rows {
		result[i] = model.Participant{
			UserID:            row.UserID,
			Name:              row.Name,
			Email:             row.Email,
			AvatarURL:         row.AvatarUrl,
			LastReadMessageID: row.LastReadMessageID,
		}
	}
	return result, nil
}

// FindDirect returns ErrNotFound when the two users share no two-person conversation.
func (s *conversationStore) FindDirect(ctx context.Context, userA, userB int64) (int64, error) {
	id, err := s.queries.FindDirectConversation(ctx, sqlc.FindDirectConversationParams{
		UserA: userA,
		UserB: userB,
	})
	if err != nil {
		return 0, translate(err)
	}
	return id, nil
}

func (s *conversationStore) ListForUser(ctx context.Context, userID int64) ([]model.Conversation, error) {
	rows, err := s.queries.ListConversationsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Conversation, len(rows))
	for i, row := range rows {
		result[i] = model.Conversation{
			ID:                row.ID,
			Title:             row.Title,
			CreatedBy:         row.CreatedBy,
			LastReadMessageID: row.LastReadMessageID,
			UnreadCount:       row.UnreadCount,
			CreatedAt:         row.CreatedAt.Time,
			LastMessageAt:     fromOptTS(row.LastMessageAt),
		}
	}
	return result, nil
}

func (s *conversationStore) Touch(ctx context.Context, conversationID int64, at time.Time) error {
	return s.queries.TouchConversation(ctx, sqlc.TouchConversationParams{
		LastMessageAt: ts(at),
		ID:            conversationID,
	})
}

// MarkRead never moves the read marker backwards and returns the resulting marker.
func (s *conversationStore) MarkRead(ctx context.Context, conversationID, userID, messageID int64) (int64, error) {
	row, err := s.queries.MarkConversationRead(ctx, sqlc.MarkConversationReadParams{
		MessageID:      messageID,
		ConversationID: conversationID,
		UserID:         userID,
	})
	if err != nil {
		return 0, translate(err)
	}
	return row.LastReadMessageID, nil
}

func (s *conversationStore) LatestMessageID(ctx context.Context, conversationID int64) (int64, error) {
	return s.queries.GetLatestMessageID(ctx, conversationID)
}

func (s *conversationStore) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return s.queries.CountUnreadMessages(ctx, userID)
}

func toConversationModel(row sqlc.Conversation) *model.Conversation {
	return &model.Conversation{
		ID:            row.ID,
		Title:         row.Title,
		CreatedBy:     row.CreatedBy,
		CreatedAt:     row.CreatedAt.Time,
		LastMessageAt: fromOptTS(row.LastMessageAt),
	}
}
