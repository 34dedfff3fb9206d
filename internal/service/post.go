package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/cache"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/id"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 50
	MaxPostLength    = 5000
	MaxCommentLength = 2000
)

type PostService interface {
	Create(ctx context.Context, actor *model.User, input model.PostInput) (*model.Post, error)
	Get(ctx context.Context, actor *model.User, id int64) (*model.Post, error)
	// Feed returns posts newest first. The first page leads with pinned posts.
	Feed(ctx context.Context, actor *model.User, filter model.FeedFilter) (*model.FeedPage, error)
	UpdateBody(ctx context.Context, actor *model.User, id int64, body string) (*model.Post, error)
	Delete(ctx context.Context, actor *model.User, id int64) error
	SetPinned(ctx context.Context, actor *model.User, id int64, pinned bool) (*model.Post, error)
	Like(ctx context.Context, actor *model.User, id int64) (*model.Post, error)
	Unlike(ctx context.Context, actor *model.User, id int64) (*model.Post, error)

	ListComments(ctx context.Context, actor *model.User, postID int64) ([]model.Comment, error)
	AddComment(ctx context.Context, actor *model.User, postID int64, body string) (*model.Comment, error)
	DeleteComment(ctx context.Context, actor *model.User, postID, commentID int64) error
}

type postService struct {
	postStore  store.PostStore
	groupStore store.GroupStore
	txRunner   TxRunner
	cache      cache.Cache
	cacheTTL   time.Duration
}

func NewPostService(postStore store.PostStore, groupStore store.GroupStore, txRunner TxRunner, c cache.Cache, cacheTTL time.Duration) PostService {
	return &postService{
		postStore:  postStore,
		groupStore: groupStore,
		txRunner:   txRunner,
		cache:      c,
		cacheTTL:   cacheTTL,
	}
}

func (s *postService) Create(ctx context.Context, actor *model.User, input model.PostInput) (*model.Post, error) {
	body, err := cleanBody(input.Body, MaxPostLength)
	if err != nil {
		return nil, err
	}

	if input.GroupID != nil {
		group, err := s.groupStore.GetByID(ctx, *input.GroupID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrGroupNotFound
			}
			return nil, fmt.Errorf("getting group: %w", err)
		}
		if !actor.IsAdmin() {
			if _, err := s.groupStore.GetMember(ctx, group.ID, actor.ID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return nil, ErrNotGroupMember
				}
				return nil, fmt.Errorf("getting group membership: %w", err)
			}
		}
	}
	if input.BatchID != nil && !actor.IsStaff() && !actor.InBatch(*input.BatchID) {
		return nil, ErrForbidden
	}

	post := &model.Post{
		ID:       id.New(),
		AuthorID: actor.ID,
		GroupID:  input.GroupID,
		BatchID:  input.BatchID,
		Body:     body,
	}
	if err := s.postStore.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	post.AuthorName = actor.Name
	post.AuthorAvatarURL = actor.AvatarURL

	cache.Invalidate(ctx, s.cache, TagFeed)
	slog.InfoContext(ctx, "post created",
		"post_id", post.ID,
		"user_id", actor.ID,
		"group_id", post.GroupID,
		"batch_id", post.BatchID,
	)
	return post, nil
}

func (s *postService) Get(ctx context.Context, actor *model.User, id int64) (*model.Post, error) {
	post, err := s.visiblePost(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	liked, err := s.postStore.HasLiked(ctx, id, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("checking like: %w", err)
	}
	post.LikedByViewer = liked
	return post, nil
}

func (s *postService) Feed(ctx context.Context, actor *model.User, filter model.FeedFilter) (*model.FeedPage, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultFeedLimit
	}
	if filter.Limit > MaxFeedLimit {
		filter.Limit = MaxFeedLimit
	}
	viewer := store.FeedViewer{
		UserID:  actor.ID,
		BatchID: actor.BatchID,
		IsStaff: actor.IsStaff(),
	}

	return cache.Remember(ctx, s.cache, feedCacheKey(actor.ID, filter), s.cacheTTL, []string{TagFeed}, func() (*model.FeedPage, error) {
		return s.loadFeed(ctx, viewer, filter)
	})
}

func (s *postService) loadFeed(ctx context.Context, viewer store.FeedViewer, filter model.FeedFilter) (*model.FeedPage, error) {
	page := &model.FeedPage{Posts: []model.Post{}}

	regular := filter
	if filter.Pinned == nil {
		notPinned := false
		regular.Pinned = &notPinned

		if filter.Before == nil {
			pinned := true
			pinnedFilter := filter
			pinnedFilter.Pinned = &pinned
			posts, err := s.postStore.ListFeed(ctx, viewer, pinnedFilter)
			if err != nil {
				return nil, fmt.Errorf("listing pinned posts: %w", err)
			}
			page.Posts = append(page.Posts, posts...)
		}
	}

	posts, err := s.postStore.ListFeed(ctx, viewer, regular)
	if err != nil {
		return nil, fmt.Errorf("listing feed: %w", err)
	}
	page.Posts = append(page.Posts, posts...)

	if int32(len(posts)) == filter.Limit {
		cursor := posts[len(posts)-1].ID
		page.NextCursor = &cursor
	}
	return page, nil
}

func (s *postService) UpdateBody(ctx context.Context, actor *model.User, id int64, body string) (*model.Post, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actor.ID {
		return nil, ErrForbidden
	}
	body, err = cleanBody(body, MaxPostLength)
	if err != nil {
		return nil, err
	}

	updated, err := s.postStore.UpdateBody(ctx, id, body)
	if err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	cache.Invalidate(ctx, s.cache, TagFeed)
	slog.InfoContext(ctx, "post updated", "post_id", id, "user_id", actor.ID)
	return updated, nil
}

func (s *postService) Delete(ctx context.Context, actor *model.User, id int64) error {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}
	if err := s.postStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	cache.Invalidate(ctx, s.cache, TagFeed)
	slog.InfoContext(ctx, "post deleted", "post_id", id, "user_id", actor.ID)
	return nil
}

func (s *postService) SetPinned(ctx context.Context, actor *model.User, id int64, pinned bool) (*model.Post, error) {
	if !actor.IsStaff() {
		return nil, ErrForbidden
	}
	post, err := s.postStore.SetPinned(ctx, id, pinned)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("pinning post: %w", err)
	}

	cache.Invalidate(ctx, s.cache, TagFeed)
	slog.InfoContext(ctx, "post pin changed", "post_id", id, "pinned", pinned, "user_id", actor.ID)
	return post, nil
}

func (s *postService) Like(ctx context.Context, actor *model.User, id int64) (*model.Post, error) {
	return s.setLike(ctx, actor, id, true)
}

func (s *postService) Unlike(ctx context.Context, actor *model.User, id int64) (*model.Post, error) {
	return s.setLike(ctx, actor, id, false)
}

func (s *postService) setLike(ctx context.Context, actor *model.User, id int64, like bool) (*model.Post, error) {
	if _, err := s.visiblePost(ctx, actor, id); err != nil {
		return nil, err
	}

	var post *model.Post
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		posts := sp.Posts()
		var (
			changed bool
			err     error
			delta   int32 = 1
		)
		if like {
			changed, err = posts.Like(ctx, id, actor.ID)
		} else {
			changed, err = posts.Unlike(ctx, id, actor.ID)
			delta = -1
		}
		if err != nil {
			return fmt.Errorf("updating like: %w", err)
		}
		if changed {
			if err := posts.AdjustLikeCount(ctx, id, delta); err != nil {
				return fmt.Errorf("adjusting like count: %w", err)
			}
		}
		post, err = posts.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	post.LikedByViewer = like

	cache.Invalidate(ctx, s.cache, TagFeed)
	return post, nil
}

func (s *postService) ListComments(ctx context.Context, actor *model.User, postID int64) ([]model.Comment, error) {
	if _, err := s.visiblePost(ctx, actor, postID); err != nil {
		return nil, err
	}
	comments, err := s.postStore.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

func (s *postService) AddComment(ctx context.Context, actor *model.User, postID int64, body string) (*model.Comment, error) {
	if _, err := s.visiblePost(ctx, actor, postID); err != nil {
		return nil, err
	}
	body, err := cleanBody(body, MaxCommentLength)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:       id.New(),
		PostID:   postID,
		AuthorID: actor.ID,
		Body:     body,
	}
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Posts().CreateComment(ctx, comment); err != nil {
			return fmt.Errorf("creating comment: %w", err)
		}
		return sp.Posts().AdjustCommentCount(ctx, postID, 1)
	})
	if err != nil {
		return nil, err
	}
	comment.AuthorName = actor.Name
	comment.AuthorAvatarURL = actor.AvatarURL

	cache.Invalidate(ctx, s.cache, TagFeed)
	slog.InfoContext(ctx, "comment added", "post_id", postID, "comment_id", comment.ID, "user_id", actor.ID)
	return comment, nil
}

func (s *postService) DeleteComment(ctx context.Context, actor *model.User, postID, commentID int64) error {
	comment, err := s.postStore.GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("getting comment: %w", err)
	}
	if comment.PostID != postID {
		return ErrCommentNotFound
	}

	if comment.AuthorID != actor.ID && !actor.IsAdmin() {
		post, err := s.getPost(ctx, postID)
		if err != nil {
			return err
		}
		if post.AuthorID != actor.ID {
			return ErrForbidden
		}
	}

	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Posts().DeleteComment(ctx, commentID); err != nil {
			return fmt.Errorf("deleting comment: %w", err)
		}
		return sp.Posts().AdjustCommentCount(ctx, postID, -1)
	})
	if err != nil {
		return err
	}

	cache.Invalidate(ctx, s.cache, TagFeed)
	slog.InfoContext(ctx, "comment deleted", "post_id", postID, "comment_id", commentID, "user_id", actor.ID)
	return nil
}

func (s *postService) getPost(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("getting post: %w", err)
	}
	return post, nil
}

// visiblePost applies the same rules as the feed query: private group posts
// are limited to members and staff, batch posts to the batch and staff.
func (s *postService) visiblePost(ctx context.Context, actor *model.User, id int64) (*model.Post, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsStaff() || post.AuthorID == actor.ID {
		return post, nil
	}
	if post.BatchID != nil && !actor.InBatch(*post.BatchID) {
		return nil, ErrPostNotFound
	}
	if post.GroupID != nil {
		group, err := s.groupStore.GetByID(ctx, *post.GroupID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrPostNotFound
			}
			return nil, fmt.Errorf("getting group: %w", err)
		}
		if group.IsPrivate {
			if _, err := s.groupStore.GetMember(ctx, group.ID, actor.ID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return nil, ErrPostNotFound
				}
				return nil, fmt.Errorf("getting group membership: %w", err)
			}
		}
	}
	return post, nil
}

func cleanBody(body string, maxLen int) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", invalidInput("body cannot be empty")
	}
	if utf8.RuneCountInString(body) > maxLen {
		return "", invalidInput("body must be at most %d characters", maxLen)
	}
	return body, nil
}

func feedCacheKey(viewerID int64, filter model.FeedFilter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "feed:u%d", viewerID)
	if filter.GroupID != nil {
		fmt.Fprintf(&b, ":g%d", *filter.GroupID)
	}
	if filter.BatchID != nil {
		fmt.Fprintf(&b, ":b%d", *filter.BatchID)
	}
	if filter.AuthorID != nil {
		fmt.Fprintf(&b, ":a%d", *filter.AuthorID)
	}
	if filter.Before != nil {
		fmt.Fprintf(&b, ":before%d", *filter.Before)
	}
	if filter.Pinned != nil {
		fmt.Fprintf(&b, ":p%t", *filter.Pinned)
	}
	fmt.Fprintf(&b, ":%d", filter.Limit)
	return b.String()
}
