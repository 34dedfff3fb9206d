package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/dto"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Me(c *gin.Context) {
	profile, err := h.userService.GetProfile(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err, "get profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid profile update")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), currentUser(c), req.ToUpdate())
	if err != nil {
		respondError(c, err, "update profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListMembers is the member directory. Filters: batch_id, company_id, role, q, limit, offset.
func (h *UserHandler) ListMembers(c *gin.Context) {
	filter, ok := memberFilter(c)
	if !ok {
		return
	}

	page, err := h.userService.ListMembers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "list members")
		return
	}
	page.Members = nonNil(page.Members)
	c.JSON(http.StatusOK, page)
}

func (h *UserHandler) GetMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get member")
		return
	}
	if !profile.IsActive && !currentUser(c).IsStaff() {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrUserNotFound.Error(), "code": "user_not_found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AdminList lists every user, inactive included unless active_only is set.
func (h *UserHandler) AdminList(c *gin.Context) {
	filter, ok := memberFilter(c)
	if !ok {
		return
	}
	filter.IncludeInactive = !queryBool(c, "active_only")

	page, err := h.userService.ListAll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "list users")
		return
	}
	page.Members = nonNil(page.Members)
	c.JSON(http.StatusOK, page)
}

func (h *UserHandler) UpdateMembership(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid membership update")
		return
	}
	update, err := req.ToUpdate()
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.userService.UpdateMembership(ctx, id, update)
	if err != nil {
		respondError(c, err, "update user")
		return
	}

	slog.InfoContext(ctx, "user membership updated", "target_user_id", id, "role", user.Role)
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Deactivate(ctx, userOrSystem(c), id)
	if err != nil {
		respondError(c, err, "deactivate user")
		return
	}

	slog.InfoContext(ctx, "user deactivated", "target_user_id", id)
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Reactivate(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Reactivate(ctx, id)
	if err != nil {
		respondError(c, err, "reactivate user")
		return
	}

	slog.InfoContext(ctx, "user reactivated", "target_user_id", id)
	c.JSON(http.StatusOK, user)
}

func memberFilter(c *gin.Context) (model.MemberFilter, bool) {
	var filter model.MemberFilter
	var ok bool

	if filter.BatchID, ok = queryID(c, "batch_id"); !ok {
		return filter, false
	}
	if filter.CompanyID, ok = queryID(c, "company_id"); !ok {
		return filter, false
	}
	if raw := c.Query("role"); raw != "" {
		role, err := model.ParseRole(raw)
		if err != nil {
			badRequest(c, "invalid role")
			return filter, false
		}
		filter.Role = &role
	}
	filter.Query = queryString(c, "q")
	if filter.Limit, ok = queryInt32(c, "limit"); !ok {
		return filter, false
	}
	if filter.Offset, ok = queryInt32(c, "offset"); !ok {
		return filter, false
	}
	return filter, true
}
