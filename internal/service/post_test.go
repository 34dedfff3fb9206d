package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

var _ = Describe("PostService", func() {
	var (
		svc      service.PostService
		posts    *mockPostStore
		groups   *mockGroupStore
		c        *recordingCache
		txRunner *mockTxRunner
		ctx      context.Context

		batchID int64
		admin   *model.User
		staff   *model.User
		founder *model.User
		outside *model.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		batchID = 900
		otherBatch := int64(901)
		admin = &model.User{ID: 1, Name: "Admin", Role: model.RoleAdmin, IsActive: true}
		staff = &model.User{ID: 2, Name: "Staff", Role: model.RoleStaff, IsActive: true}
		founder = &model.User{ID: 3, Name: "Founder", Role: model.RoleFounder, BatchID: &batchID, IsActive: true}
		outside = &model.User{ID: 4, Name: "Outside", Role: model.RoleFounder, BatchID: &otherBatch, IsActive: true}

		posts = &mockPostStore{}
		groups = &mockGroupStore{}
		c = &recordingCache{}
		txRunner = &mockTxRunner{provider: &mockStoreProvider{posts: posts, groups: groups}}
		svc = service.NewPostService(posts, groups, txRunner, c, time.Minute)
	})

	Describe("Create", func() {
		It("creates a post and invalidates the feed", func() {
			var stored *model.Post
			posts.createFn = func(_ context.Context, post *model.Post) error {
				stored = post
				return nil
			}

			post, err := svc.Create(ctx, founder, model.PostInput{Body: "  Shipped v1 today  "})

			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(Equal(post))
			Expect(post.Body).To(Equal("Shipped v1 today"))
			Expect(post.AuthorName).To(Equal("Founder"))
			Expect(c.tags()).To(ConsistOf(service.TagFeed))
		})

		It("rejects empty and oversized bodies", func() {
			_, err := svc.Create(ctx, founder, model.PostInput{Body: " \n "})
			Expect(err).To(MatchError(service.ErrInvalidInput))

			long := make([]rune, service.MaxPostLength+1)
			for i := range long {
				long[i] = 'é'
			}
			_, err = svc.Create(ctx, founder, model.PostInput{Body: string(long)})
			Expect(err).To(MatchError(service.ErrInvalidInput))
		})

		It("requires group membership to post in a group", func() {
			groupID := int64(70)
			groups.getByIDFn = func(context.Context, int64) (*model.Group, error) {
				return &model.Group{ID: groupID}, nil
			}

			_, err := svc.Create(ctx, founder, model.PostInput{Body: "hi", GroupID: &groupID})
			Expect(err).To(MatchError(service.ErrNotGroupMember))

			_, err = svc.Create(ctx, admin, model.PostInput{Body: "hi", GroupID: &groupID})
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns ErrGroupNotFound for unknown groups", func() {
			groupID := int64(71)
			_, err := svc.Create(ctx, founder, model.PostInput{Body: "hi", GroupID: &groupID})
			Expect(err).To(MatchError(service.ErrGroupNotFound))
		})

		It("limits batch posts to the batch and staff", func() {
			_, err := svc.Create(ctx, outside, model.PostInput{Body: "hi", BatchID: &batchID})
			Expect(err).To(MatchError(service.ErrForbidden))

			_, err = svc.Create(ctx, founder, model.PostInput{Body: "hi", BatchID: &batchID})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Create(ctx, staff, model.PostInput{Body: "hi", BatchID: &batchID})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Feed", func() {
		var calls []model.FeedFilter

		BeforeEach(func() {
			calls = nil
			posts.listFeedFn = func(_ context.Context, viewer store.FeedViewer, filter model.FeedFilter) ([]model.Post, error) {
				Expect(viewer.UserID).To(Equal(founder.ID))
				Expect(*viewer.BatchID).To(Equal(batchID))
				Expect(viewer.IsStaff).To(BeFalse())
				calls = append(calls, filter)
				if filter.Pinned != nil && *filter.Pinned {
					return []model.Post{{ID: 1, IsPinned: true}}, nil
				}
				return []model.Post{{ID: 30}, {ID: 20}}, nil
			}
		})

		It("leads the first page with pinned posts", func() {
			page, err := svc.Feed(ctx, founder, model.FeedFilter{Limit: 2})

			Expect(err).NotTo(HaveOccurred())
			Expect(calls).To(HaveLen(2))
			ids := []int64{}
			for _, p := range page.Posts {
				ids = append(ids, p.ID)
			}
			Expect(ids).To(Equal([]int64{1, 30, 20}))
			Expect(page.NextCursor).NotTo(BeNil())
			Expect(*page.NextCursor).To(Equal(int64(20)))
			Expect(c.sets).To(Equal(1))
		})

		It("skips pinned posts on later pages", func() {
			before := int64(20)

			page, err := svc.Feed(ctx, founder, model.FeedFilter{Before: &before, Limit: 10})

			Expect(err).NotTo(HaveOccurred())
			Expect(calls).To(HaveLen(1))
			Expect(*calls[0].Pinned).To(BeFalse())
			Expect(page.Posts).To(HaveLen(2))
			Expect(page.NextCursor).To(BeNil())
		})

		It("clamps the limit", func() {
			_, err := svc.Feed(ctx, founder, model.FeedFilter{Limit: 500})

			Expect(err).NotTo(HaveOccurred())
			Expect(calls[len(calls)-1].Limit).To(Equal(int32(service.MaxFeedLimit)))
		})
	})

	Describe("visibility", func() {
		It("hides posts in private groups from non-members", func() {
			groupID := int64(70)
			posts.getByIDFn = func(context.Context, int64) (*model.Post, error) {
				return &model.Post{ID: 5, AuthorID: admin.ID, GroupID: &groupID}, nil
			}
			groups.getByIDFn = func(context.Context, int64) (*model.Group, error) {
				return &model.Group{ID: groupID, IsPrivate: true}, nil
			}

			_, err := svc.Get(ctx, founder, 5)
			Expect(err).To(MatchError(service.ErrPostNotFound))

			_, err = svc.Get(ctx, staff, 5)
			Expect(err).NotTo(HaveOccurred())
		})

		It("hides batch posts from other batches", func() {
			posts.getByIDFn = func(context.Context, int64) (*model.Post, error) {
				return &model.Post{ID: 6, AuthorID: founder.ID, BatchID: &batchID}, nil
			}

			_, err := svc.Get(ctx, outside, 6)
			Expect(err).To(MatchError(service.ErrPostNotFound))

			post, err := svc.Get(ctx, founder, 6)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.ID).To(Equal(int64(6)))
		})
	})

	Describe("Like and Unlike", func() {
		var (
			liked map[int64]bool
			count int32
		)

		BeforeEach(func() {
			liked = map[int64]bool{}
			count = 0
			posts.getByIDFn = func(context.Context, int64) (*model.Post, error) {
				return &model.Post{ID: 8, AuthorID: admin.ID, LikeCount: count}, nil
			}
			posts.likeFn = func(_ context.Context, _, userID int64) (bool, error) {
				if liked[userID] {
					return false, nil
				}
				liked[userID] = true
				return true, nil
			}
			posts.unlikeFn = func(_ context.Context, _, userID int64) (bool, error) {
				if !liked[userID] {
					return false, nil
				}
				delete(liked, userID)
				return true, nil
			}
			posts.adjustLikeCountFn = func(_ context.Context, _ int64, delta int32) error {
				count += delta
				return nil
			}
		})

		It("counts each user once", func() {
			post, err := svc.Like(ctx, founder, 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.LikeCount).To(Equal(int32(1)))
			Expect(post.LikedByViewer).To(BeTrue())

			post, err = svc.Like(ctx, founder, 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.LikeCount).To(Equal(int32(1)))

			post, err = svc.Unlike(ctx, founder, 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.LikeCount).To(BeZero())
			Expect(post.LikedByViewer).To(BeFalse())

			_, err = svc.Unlike(ctx, founder, 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})
	})

	Describe("editing", func() {
		BeforeEach(func() {
			posts.getByIDFn = func(context.Context, int64) (*model.Post, error) {
				return &model.Post{ID: 9, AuthorID: founder.ID}, nil
			}
			posts.updateBodyFn = func(_ context.Context, id int64, body string) (*model.Post, error) {
				return &model.Post{ID: id, AuthorID: founder.ID, Body: body}, nil
			}
		})

		It("lets only the author edit", func() {
			_, err := svc.UpdateBody(ctx, admin, 9, "edited")
			Expect(err).To(MatchError(service.ErrForbidden))

			post, err := svc.UpdateBody(ctx, founder, 9, " edited ")
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Body).To(Equal("edited"))
		})

		It("lets the author or an admin delete", func() {
			Expect(svc.Delete(ctx, outside, 9)).To(MatchError(service.ErrForbidden))
			Expect(svc.Delete(ctx, admin, 9)).To(Succeed())
			Expect(svc.Delete(ctx, founder, 9)).To(Succeed())
		})

		It("lets only staff pin", func() {
			posts.setPinnedFn = func(_ context.Context, id int64, pinned bool) (*model.Post, error) {
				return &model.Post{ID: id, IsPinned: pinned}, nil
			}

			_, err := svc.SetPinned(ctx, founder, 9, true)
			Expect(err).To(MatchError(service.ErrForbidden))

			post, err := svc.SetPinned(ctx, staff, 9, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.IsPinned).To(BeTrue())
		})

		It("maps a missing post when pinning", func() {
			posts.setPinnedFn = func(context.Context, int64, bool) (*model.Post, error) {
				return nil, store.ErrNotFound
			}
			_, err := svc.SetPinned(ctx, admin, 404, true)
			Expect(err).To(MatchError(service.ErrPostNotFound))
		})
	})

	Describe("comments", func() {
		var commentDelta int32

		BeforeEach(func() {
			commentDelta = 0
			posts.getByIDFn = func(context.Context, int64) (*model.Post, error) {
				return &model.Post{ID: 10, AuthorID: founder.ID}, nil
			}
			posts.adjustCommentCountFn = func(_ context.Context, _ int64, delta int32) error {
				commentDelta += delta
				return nil
			}
		})

		It("adds a comment and bumps the count in one transaction", func() {
			comment, err := svc.AddComment(ctx, outside, 10, "  Congrats!  ")

			Expect(err).NotTo(HaveOccurred())
			Expect(comment.Body).To(Equal("Congrats!"))
			Expect(comment.AuthorName).To(Equal("Outside"))
			Expect(commentDelta).To(Equal(int32(1)))
			Expect(txRunner.calls).To(Equal(1))
		})

		It("lets the post author remove someone else's comment", func() {
			posts.getCommentFn = func(context.Context, int64) (*model.Comment, error) {
				return &model.Comment{ID: 50, PostID: 10, AuthorID: outside.ID}, nil
			}

			Expect(svc.DeleteComment(ctx, staff, 10, 50)).To(MatchError(service.ErrForbidden))
			Expect(svc.DeleteComment(ctx, founder, 10, 50)).To(Succeed())
			Expect(commentDelta).To(Equal(int32(-1)))
		})

		It("rejects a comment that belongs to another post", func() {
			posts.getCommentFn = func(context.Context, int64) (*model.Comment, error) {
				return &model.Comment{ID: 51, PostID: 11, AuthorID: founder.ID}, nil
			}
			Expect(svc.DeleteComment(ctx, founder, 10, 51)).To(MatchError(service.ErrCommentNotFound))
		})
	})
})
