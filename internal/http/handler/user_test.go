package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/handler"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/router"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

var _ = Describe("UserHandler", func() {
	var (
		engine *gin.Engine
		svc    *mockUserService
		user   *model.User
	)

	BeforeEach(func() {
		user = &model.User{ID: 3, Name: "Fran", Role: model.RoleFounder, IsActive: true}
		svc = &mockUserService{}

		var group *gin.RouterGroup
		engine, group = memberRouter(&user)
		router.UserRouter(group, group.Group("/admin"), handler.NewUserHandler(svc))
	})

	Describe("GetMember", func() {
		inactive := func(context.Context, int64) (*model.MemberProfile, error) {
			return &model.MemberProfile{User: model.User{ID: 8, Name: "Gone", IsActive: false}}, nil
		}

		It("hides deactivated members from founders", func() {
			svc.getProfileFn = inactive

			w := perform(engine, http.MethodGet, "/members/8", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeBody(w)["code"]).To(Equal("user_not_found"))
		})

		It("shows deactivated members to staff", func() {
			svc.getProfileFn = inactive
			user = &model.User{ID: 2, Role: model.RoleStaff, IsActive: true}

			w := perform(engine, http.MethodGet, "/members/8", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(w)["is_active"]).To(BeFalse())
		})

		It("rejects non-numeric ids", func() {
			Expect(perform(engine, http.MethodGet, "/members/fran", nil).Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("UpdateMembership", func() {
		It("clears the company on an empty string", func() {
			var got model.MembershipUpdate
			svc.updateMembershipFn = func(_ context.Context, id int64, update model.MembershipUpdate) (*model.User, error) {
				got = update
				return &model.User{ID: id, Role: model.RoleMentor}, nil
			}

			w := perform(engine, http.MethodPatch, "/admin/users/8", map[string]string{"role": "mentor", "company_id": ""})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got.ClearCompany).To(BeTrue())
			Expect(got.CompanyID).To(BeNil())
			Expect(*got.Role).To(Equal(model.RoleMentor))
			Expect(got.ClearBatch).To(BeFalse())
		})

		It("rejects unknown roles", func() {
			w := perform(engine, http.MethodPatch, "/admin/users/8", map[string]string{"role": "owner"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for unknown users", func() {
			svc.updateMembershipFn = func(context.Context, int64, model.MembershipUpdate) (*model.User, error) {
				return nil, service.ErrUserNotFound
			}

			w := perform(engine, http.MethodPatch, "/admin/users/8", map[string]string{"batch_id": "4"})
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Deactivate", func() {
		It("passes the acting admin", func() {
			user = &model.User{ID: 1, Role: model.RoleAdmin, IsActive: true}
			svc.deactivateFn = func(_ context.Context, actor *model.User, id int64) (*model.User, error) {
				Expect(actor.ID).To(Equal(int64(1)))
				return &model.User{ID: id, IsActive: false}, nil
			}

			w := perform(engine, http.MethodPost, "/admin/users/8/deactivate", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(w)["is_active"]).To(BeFalse())
		})

		It("refuses self-deactivation", func() {
			svc.deactivateFn = func(context.Context, *model.User, int64) (*model.User, error) {
				return nil, service.ErrCannotDeactivateSelf
			}

			w := perform(engine, http.MethodPost, "/admin/users/3/deactivate", nil)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(decodeBody(w)["code"]).To(Equal("cannot_deactivate_self"))
		})
	})
})
