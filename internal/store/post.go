package store

import (
	"context"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/db/sqlc"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

type postStore struct {
	queries *sqlc.Queries
}

func newPostStore(queries *sqlc.Queries) PostStore {
	return &postStore{queries: queries}
}

func (s *postStore) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	row, err := s.queries.GetPost(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toPostModel(row), nil
}

func (s *postStore) Create(ctx context.Context, post *model.Post) error {
	row, err := s.queries.CreatePost(ctx, sqlc.CreatePostParams{
		ID:       post.ID,
		AuthorID: post.AuthorID,
		GroupID:  post.GroupID,
		BatchID:  post.BatchID,
		Body:     post.Body,
	})
	if err != nil {
		return translate(err)
	}
	*post = *toPostModel(row)
	return nil
}

func (s *postStore) UpdateBody(ctx context.Context, id int64, body string) (*model.Post, error) {
	row, err := s.queries.UpdatePostBody(ctx, sqlc.UpdatePostBodyParams{Body: body, ID: id})
	if err != nil {
		return nil, translate(err)
	}
	return toPostModel(row), nil
}

func (s *postStore) SetPinned(ctx context.Context, id int64, pinned bool) (*model.Post, error) {
	row, err := s.queries.SetPostPinned(ctx, sqlc.SetPostPinnedParams{IsPinned: pinned, ID: id})
	if err != nil {
		return nil, translate(err)
	}
	return toPostModel(row), nil
}

func (s *postStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeletePost(ctx, id)
}

func (s *postStore) ListFeed(ctx context.Context, viewer FeedViewer, filter model.FeedFilter) ([]model.Post, error) {
	rows, err := s.queries.ListFeed(ctx, sqlc.ListFeedParams{
		ViewerID:      viewer.UserID,
		GroupID:       filter.GroupID,
		BatchID:       filter.BatchID,
		AuthorID:      filter.AuthorID,
		Before:        filter.Before,
		Pinned:        filter.Pinned,
		IsStaff:       viewer.IsStaff,
		ViewerBatchID: viewer.BatchID,
		Limit:         filter.Limit,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Post, len(rows))
	for i, row := range rows {
		result[i] = model.Post{
			ID:              row.ID,
			AuthorID:        row.AuthorID,
			AuthorName:      row.AuthorName,
			AuthorAvatarURL: row.AuthorAvatarUrl,
			GroupID:         row.GroupID,
			GroupName:       row.GroupName,
			BatchID:         row.BatchID,
			Body:            row.Body,
			IsPinned:        row.IsPinned,
			LikeCount:       row.LikeCount,
			CommentCount:    row.CommentCount,
			LikedByViewer:   row.LikedByViewer,
			CreatedAt:       row.CreatedAt.Time,
			UpdatedAt:       row.UpdatedAt.Time,
		}
	}
	return result, nil
}

func (s *postStore) Count(ctx context.Context) (int64, error) {
	return s.queries.CountPosts(ctx)
}

func (s *postStore) Like(ctx context.Context, postID, userID int64) (bool, error) {
	n, err := s.queries.LikePost(ctx, sqlc.LikePostParams{PostID: postID, UserID: userID})
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (s *postStore) Unlike(ctx context.Context, postID, userID int64) (bool, error) {
	n, err := s.queries.UnlikePost(ctx, sqlc.UnlikePostParams{PostID: postID, UserID: userID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *postStore) HasLiked(ctx context.Context, postID, userID int64) (bool, error) {
	return s.queries.HasLikedPost(ctx, sqlc.HasLikedPostParams{PostID: postID, UserID: userID})
}

func (s *postStore) AdjustLikeCount(ctx context.Context, postID int64, delta int32) error {
	return s.queries.AdjustPostLikeCount(ctx, sqlc.AdjustPostLikeCountParams{Delta: delta, ID: postID})
}

func (s *postStore) AdjustCommentCount(ctx context.Context, postID int64, delta int32) error {
	return s.queries.AdjustPostCommentCount(ctx, sqlc.AdjustPostCommentCountParams{Delta: delta, ID: postID})
}

func (s *postStore) CreateComment(ctx context.Context, comment *model.Comment) error {
	row, err := s.queries.CreatePostComment(ctx, sqlc.CreatePostCommentParams{
		ID:       comment.ID,
		PostID:   comment.PostID,
		AuthorID: comment.AuthorID,
		Body:     comment.Body,
	})
	if err != nil {
		return translate(err)
	}
	name, avatar := comment.AuthorName, comment.AuthorAvatarURL
	*comment = *toCommentModel(row)
	comment.AuthorName, comment.AuthorAvatarURL = name, avatar
	return nil
}

func (s *postStore) GetComment(ctx context.Context, id int64) (*model.Comment, error) {
	row, err := s.queries.GetPostComment(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toCommentModel(row), nil
}

func (s *postStore) DeleteComment(ctx context.Context, id int64) error {
	return s.queries.DeletePostComment(ctx, id)
}

func (s *postStore) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	rows, err := s.queries.ListPostComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Comment, len(rows))
	for i, row := range rows {
		result[i] = model.Comment{
			ID:              row.ID,
			PostID:          row.PostID,
			AuthorID:        row.AuthorID,
			AuthorName:      row.AuthorName,
			AuthorAvatarURL: row.AuthorAvatarUrl,
			Body:            row.Body,
			CreatedAt:       row.CreatedAt.Time,
		}
	}
	return result, nil
}

func toPostModel(row sqlc.Post) *model.Post {
	return &model.Post{
		ID:           row.ID,
		AuthorID:     row.AuthorID,
		GroupID:      row.GroupID,
		BatchID:      row.BatchID,
		Body:         row.Body,
		IsPinned:     row.IsPinned,
		LikeCount:    row.LikeCount,
		CommentCount: row.CommentCount,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}

func toCommentModel(row sqlc.PostComment) *model.Comment {
	return &model.Comment{
		ID:        row.ID,
		PostID:    row.PostID,
		AuthorID:  row.AuthorID,
		Body:      row.Body,
		CreatedAt: row.CreatedAt.Time,
	}
}
