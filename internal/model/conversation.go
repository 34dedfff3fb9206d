package model

import "time"

type Conversation struct {
	ID                int64         `json:"id,string"`
	Title             *string       `json:"title,omitempty"`
	CreatedBy         int64         `json:"created_by,string"`
	Participants      []Participant `json:"participants,omitempty"`
	LastReadMessageID int64         `json:"last_read_message_id,string"`
	UnreadCount       int64         `json:"unread_count"`
	CreatedAt         time.Time     `json:"created_at"`
	LastMessageAt     *time.Time    `json:"last_message_at,omitempty"`
}

type Participant struct {
	UserID            int64   `json:"user_id,string"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	AvatarURL         *string `json:"avatar_url,omitempty"`
	LastReadMessageID int64   `json:"last_read_message_id,string"`
}

type Message struct {
	ID             int64     `json:"id,string"`
	ConversationID int64     `json:"conversation_id,string"`
	SenderID       int64     `json:"sender_id,string"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

// MessageQuery selects a page of messages. After takes precedence over Before.
type MessageQuery struct {
	After  *int64
	Before *int64
	Limit  int32
}
