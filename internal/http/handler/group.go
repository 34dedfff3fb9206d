package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/dto"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

type GroupHandler struct {
	groupService service.GroupService
}

func NewGroupHandler(groupService service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.groupService.List(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err, "list groups")
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": nonNil(groups)})
}

func (h *GroupHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid group: name is required")
		return
	}

	group, err := h.groupService.Create(ctx, currentUser(c), req.ToInput())
	if err != nil {
		respondError(c, err, "create group")
		return
	}

	slog.InfoContext(ctx, "group created", "group_id", group.ID, "slug", group.Slug, "private", group.IsPrivate)
	c.JSON(http.StatusCreated, group)
}

func (h *GroupHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	group, err := h.groupService.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err, "get group")
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *GroupHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid group: name is required")
		return
	}

	group, err := h.groupService.Update(c.Request.Context(), currentUser(c), id, req.ToInput())
	if err != nil {
		respondError(c, err, "update group")
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *GroupHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.groupService.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err, "delete group")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GroupHandler) Join(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	member, err := h.groupService.Join(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err, "join group")
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *GroupHandler) Leave(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.groupService.Leave(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err, "leave group")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GroupHandler) ListMembers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	members, err := h.groupService.ListMembers(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err, "list group members")
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": nonNil(members)})
}

func (h *GroupHandler) AddMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AddGroupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "user_id is required")
		return
	}

	member, err := h.groupService.AddMember(c.Request.Context(), currentUser(c), id, req.UserID)
	if err != nil {
		respondError(c, err, "add group member")
		return
	}
	c.JSON(http.StatusCreated, member)
}
