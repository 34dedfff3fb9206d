package dto

import "github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"

type CreatePostRequest struct {
	Body    string `json:"body" binding:"required"`
	GroupID *int64 `json:"group_id,omitempty,string"`
	BatchID *int64 `json:"batch_id,omitempty,string"`
}

func (r CreatePostRequest) ToInput() model.PostInput {
	return model.PostInput{Body: r.Body, GroupID: r.GroupID, BatchID: r.BatchID}
}

type UpdatePostRequest struct {
	Body string `json:"body" binding:"required"`
}

type CommentRequest struct {
	Body string `json:"body" binding:"required"`
}

type CommentsResponse struct {
	Comments []model.Comment `json:"comments"`
}
