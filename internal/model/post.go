package model

import "time"

type Post struct {
	ID              int64     `json:"id,string"`
	AuthorID        int64     `json:"author_id,string"`
	AuthorName      string    `json:"author_name,omitempty"`
	AuthorAvatarURL *string   `json:"author_avatar_url,omitempty"`
	GroupID         *int64    `json:"group_id,omitempty,string"`
	GroupName       *string   `json:"group_name,omitempty"`
	BatchID         *int64    `json:"batch_id,omitempty,string"`
	Body            string    `json:"body"`
	IsPinned        bool      `json:"is_pinned"`
	LikeCount       int32     `json:"like_count"`
	CommentCount    int32     `json:"comment_count"`
	LikedByViewer   bool      `json:"liked_by_viewer"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Comment struct {
	ID              int64     `json:"id,string"`
	PostID          int64     `json:"post_id,string"`
	AuthorID        int64     `json:"author_id,string"`
	AuthorName      string    `json:"author_name,omitempty"`
	AuthorAvatarURL *string   `json:"author_avatar_url,omitempty"`
	Body            string    `json:"body"`
	CreatedAt       time.Time `json:"created_at"`
}

type FeedFilter struct {
	GroupID  *int64
	BatchID  *int64
	AuthorID *int64
	Before   *int64
	Pinned   *bool
	Limit    int32
}

// FeedPage is one page of the feed. NextCursor is the id to pass as before for the next page.
type FeedPage struct {
	Posts      []Post `json:"posts"`
	NextCursor *int64 `json:"next_cursor,omitempty,string"`
}

type PostInput struct {
	Body    string
	GroupID *int64
	BatchID *int64
}
