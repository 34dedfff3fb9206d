package dto

import "github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"

type StartConversationRequest struct {
	ParticipantIDs []string `json:"participant_ids" binding:"required,min=1,max=20"`
	Title          *string  `json:"title,omitempty" binding:"omitempty,max=255"`
}

func (r StartConversationRequest) IDs() ([]int64, error) {
	ids := make([]int64, 0, len(r.ParticipantIDs))
	for _, raw := range r.ParticipantIDs {
		id, err := ParseID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

type MarkReadRequest struct {
	MessageID int64 `json:"message_id,string" binding:"required"`
}

type MarkReadResponse struct {
	LastReadMessageID int64 `json:"last_read_message_id,string"`
}

type ConversationsResponse struct {
	Conversations []model.Conversation `json:"conversations"`
}

type MessagesResponse struct {
	Messages []model.Message `json:"messages"`
}

type UnreadResponse struct {
	Unread int64 `json:"unread"`
}
