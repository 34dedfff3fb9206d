package store

import (
	"context"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/db/sqlc"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

type messageStore struct {
	queries *sqlc.Queries
}

func newMessageStore(queries *sqlc.Queries) MessageStore {
	return &messageStore{queries: queries}
}

func (s *messageStore) Create(ctx context.Context, msg *model.Message) error {
	row, err := s.queries.CreateMessage(ctx, sqlc.CreateMessageParams{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Body:           msg.Body,
	})
	if err != nil {
		return translate(err)
	}
	*msg = *toMessageModel(row)
	return nil
}

// ListAfter returns messages newer than afterID, oldest first.
func (s *messageStore) ListAfter(ctx context.Context, conversationID, afterID int64, limit int32) ([]model.Message, error) {
	rows, err := s.queries.ListMessagesAfter(ctx, sqlc.ListMessagesAfterParams{
		ConversationID: conversationID,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, err
	}
	return toMessageModels(rows), nil
}

// ListBefore returns messages older than beforeID (or the newest when nil), newest first.
func (s *messageStore) ListBefore(ctx context.Context, conversationID int64, beforeID *int64, limit int32) ([]model.Message, error) {
	rows, err := s.queries.ListMessagesBefore(ctx, sqlc.ListMessagesBeforeParams{
		ConversationID: conversationID,
		BeforeID:       beforeID,
		Limit:          limit,
	})
	if err != nil {
		return nil, err
	}
	return toMessageModels(rows), nil
}

func toMessageModel(row sqlc.Message) *model.Message {
	return &model.Message{
		ID:             row.ID,
		ConversationID: row.ConversationID,
		SenderID:       row.SenderID,
		Body:           row.Body,
		CreatedAt:      row.CreatedAt.Time,
	}
}

func toMessageModels(rows []sqlc.Message) []model.Message {
	result := make([]model.Message, len(rows))
	for i, row := range rows {
		result[i] = *toMessageModel(row)
	}
	return result
}
