package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/dto"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Feed pages posts newest first. Filters: group_id, batch_id, author_id, before, limit.
func (h *PostHandler) Feed(c *gin.Context) {
	var filter model.FeedFilter
	var ok bool

	if filter.GroupID, ok = queryID(c, "group_id"); !ok {
		return
	}
	if filter.BatchID, ok = queryID(c, "batch_id"); !ok {
		return
	}
	if filter.AuthorID, ok = queryID(c, "author_id"); !ok {
		return
	}
	if filter.Before, ok = queryID(c, "before"); !ok {
		return
	}
	if filter.Limit, ok = queryInt32(c, "limit"); !ok {
		return
	}

	page, err := h.postService.Feed(c.Request.Context(), currentUser(c), filter)
	if err != nil {
		respondError(c, err, "load feed")
		return
	}
	page.Posts = nonNil(page.Posts)
	c.JSON(http.StatusOK, page)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body is required")
		return
	}

	post, err := h.postService.Create(c.Request.Context(), currentUser(c), req.ToInput())
	if err != nil {
		respondError(c, err, "create post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err, "get post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body is required")
		return
	}

	post, err := h.postService.UpdateBody(c.Request.Context(), currentUser(c), id, req.Body)
	if err != nil {
		respondError(c, err, "update post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err, "delete post")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PostHandler) Pin(c *gin.Context) {
	h.setPinned(c, true)
}

func (h *PostHandler) Unpin(c *gin.Context) {
	h.setPinned(c, false)
}

func (h *PostHandler) setPinned(c *gin.Context, pinned bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.SetPinned(c.Request.Context(), currentUser(c), id, pinned)
	if err != nil {
		respondError(c, err, "pin post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Like(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.Like(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err, "like post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Unlike(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.Unlike(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err, "unlike post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) ListComments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.postService.ListComments(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err, "list comments")
		return
	}
	c.JSON(http.StatusOK, dto.CommentsResponse{Comments: nonNil(comments)})
}

func (h *PostHandler) AddComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body is required")
		return
	}

	comment, err := h.postService.AddComment(c.Request.Context(), currentUser(c), id, req.Body)
	if err != nil {
		respondError(c, err, "add comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	if err := h.postService.DeleteComment(c.Request.Context(), currentUser(c), postID, commentID); err != nil {
		respondError(c, err, "delete comment")
		return
	}
	c.Status(http.StatusNoContent)
}
