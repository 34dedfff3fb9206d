package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/handler"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/router"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

var _ = Describe("OfficeHourHandler", func() {
	var (
		engine *gin.Engine
		svc    *mockOfficeHourService
		user   *model.User
	)

	startsAt := time.Date(2030, 3, 4, 15, 0, 0, 0, time.UTC)

	BeforeEach(func() {
		user = &model.User{ID: 2, Name: "Maya Mentor", Role: model.RoleMentor, IsActive: true}
		svc = &mockOfficeHourService{}

		var group *gin.RouterGroup
		engine, group = memberRouter(&user)
		router.OfficeHourRouter(group.Group("/office-hours"), handler.NewOfficeHourHandler(svc))
	})

	Describe("CreateSlot", func() {
		It("passes the slot input for the caller", func() {
			svc.createSlotFn = func(_ context.Context, actor *model.User, input model.SlotInput) (*model.OfficeHourSlot, error) {
				Expect(actor.ID).To(Equal(int64(2)))
				Expect(input.StartsAt.Equal(startsAt)).To(BeTrue())
				Expect(*input.MeetingURL).To(Equal("https://meet.example.com/maya"))
				return &model.OfficeHourSlot{ID: 10, HostID: actor.ID, StartsAt: input.StartsAt, EndsAt: input.EndsAt, Status: model.SlotStatusAvailable}, nil
			}

			w := perform(engine, http.MethodPost, "/office-hours/slots", map[string]any{
				"starts_at":   startsAt,
				"ends_at":     startsAt.Add(30 * time.Minute),
				"meeting_url": "https://meet.example.com/maya",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			resp := decodeBody(w)
			Expect(resp["id"]).To(Equal("10"))
			Expect(resp["status"]).To(Equal("available"))
		})

		It("requires start and end times", func() {
			w := perform(engine, http.MethodPost, "/office-hours/slots", map[string]any{"location": "Room 1"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		DescribeTable("maps domain errors",
			func(err error, status int, code string) {
				svc.createSlotFn = func(context.Context, *model.User, model.SlotInput) (*model.OfficeHourSlot, error) {
					return nil, err
				}

				w := perform(engine, http.MethodPost, "/office-hours/slots", map[string]any{
					"starts_at": startsAt,
					"ends_at":   startsAt.Add(time.Hour),
				})

				Expect(w.Code).To(Equal(status))
				Expect(decodeBody(w)["code"]).To(Equal(code))
			},
			Entry("overlap", service.ErrSlotOverlap, http.StatusConflict, "slot_overlap"),
			Entry("not a host", service.ErrNotHost, http.StatusForbidden, "not_host"),
			Entry("invalid input", service.ErrInvalidInput, http.StatusBadRequest, "invalid_input"),
		)

		It("keeps the detail of invalid input errors", func() {
			svc.createSlotFn = func(context.Context, *model.User, model.SlotInput) (*model.OfficeHourSlot, error) {
				return nil, fmtInvalid("slot may last at most 4h")
			}

			w := perform(engine, http.MethodPost, "/office-hours/slots", map[string]any{
				"starts_at": startsAt,
				"ends_at":   startsAt.Add(5 * time.Hour),
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeBody(w)["error"]).To(Equal("invalid input: slot may last at most 4h"))
		})

		It("hides infrastructure errors", func() {
			svc.createSlotFn = func(context.Context, *model.User, model.SlotInput) (*model.OfficeHourSlot, error) {
				return nil, errBoom
			}

			w := perform(engine, http.MethodPost, "/office-hours/slots", map[string]any{
				"starts_at": startsAt,
				"ends_at":   startsAt.Add(time.Hour),
			})

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("boom"))
		})
	})

	Describe("ListSlots", func() {
		It("parses filters and the mine flag", func() {
			svc.listSlotsFn = func(_ context.Context, _ *model.User, filter model.SlotFilter, mine bool) ([]model.OfficeHourSlot, error) {
				Expect(mine).To(BeTrue())
				Expect(*filter.HostID).To(Equal(int64(5)))
				Expect(filter.From.Equal(startsAt)).To(BeTrue())
				Expect(filter.To).To(BeNil())
				Expect(filter.Limit).To(Equal(int32(20)))
				return nil, nil
			}

			w := perform(engine, http.MethodGet, "/office-hours/slots?mine=true&host_id=5&limit=20&from="+startsAt.Format(time.RFC3339), nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"slots": []}`))
		})

		It("rejects malformed times", func() {
			w := perform(engine, http.MethodGet, "/office-hours/slots?from=tomorrow", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("RequestSlot", func() {
		It("creates a pending request", func() {
			svc.requestSlotFn = func(_ context.Context, _ *model.User, slotID int64, topic string) (*model.OfficeHourRequest, error) {
				return &model.OfficeHourRequest{ID: 30, SlotID: slotID, Topic: topic, Status: model.RequestStatusPending}, nil
			}

			w := perform(engine, http.MethodPost, "/office-hours/slots/10/request", map[string]string{"topic": "Fundraising"})

			Expect(w.Code).To(Equal(http.StatusCreated))
			resp := decodeBody(w)
			Expect(resp["slot_id"]).To(Equal("10"))
			Expect(resp["status"]).To(Equal("pending"))
		})

		It("returns 409 when the slot is taken", func() {
			svc.requestSlotFn = func(context.Context, *model.User, int64, string) (*model.OfficeHourRequest, error) {
				return nil, service.ErrSlotNotAvailable
			}

			w := perform(engine, http.MethodPost, "/office-hours/slots/10/request", map[string]string{"topic": "Hiring"})
			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("returns 403 deactivated for deactivated members", func() {
			svc.requestSlotFn = func(context.Context, *model.User, int64, string) (*model.OfficeHourRequest, error) {
				return nil, service.ErrUserDeactivated
			}

			w := perform(engine, http.MethodPost, "/office-hours/slots/10/request", map[string]string{"topic": "Hiring"})
			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(decodeBody(w)["code"]).To(Equal("deactivated"))
		})

		It("rejects non-numeric slot ids", func() {
			w := perform(engine, http.MethodPost, "/office-hours/slots/abc/request", map[string]string{"topic": "Hiring"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ConfirmRequest and DeclineRequest", func() {
		It("forwards the host note", func() {
			svc.confirmRequestFn = func(_ context.Context, _ *model.User, id int64, note *string) (*model.OfficeHourRequest, error) {
				Expect(*note).To(Equal("See you there"))
				return &model.OfficeHourRequest{ID: id, Status: model.RequestStatusConfirmed, HostNote: note}, nil
			}

			w := perform(engine, http.MethodPost, "/office-hours/requests/30/confirm", map[string]string{"note": "See you there"})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(w)["status"]).To(Equal("confirmed"))
		})

		It("accepts an empty body", func() {
			svc.declineRequestFn = func(_ context.Context, _ *model.User, id int64, note *string) (*model.OfficeHourRequest, error) {
				Expect(note).To(BeNil())
				return &model.OfficeHourRequest{ID: id, Status: model.RequestStatusDeclined}, nil
			}

			w := perform(engine, http.MethodPost, "/office-hours/requests/30/decline", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("maps invalid transitions to 409", func() {
			svc.confirmRequestFn = func(context.Context, *model.User, int64, *string) (*model.OfficeHourRequest, error) {
				return nil, service.ErrInvalidTransition
			}

			w := perform(engine, http.MethodPost, "/office-hours/requests/30/confirm", nil)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decodeBody(w)["code"]).To(Equal("invalid_transition"))
		})
	})

	Describe("ListRequests", func() {
		It("lists requests on hosted slots with role=host", func() {
			called := false
			svc.listHostRequestsFn = func(context.Context, *model.User) ([]model.OfficeHourRequest, error) {
				called = true
				return []model.OfficeHourRequest{{ID: 1, Status: model.RequestStatusPending}}, nil
			}

			w := perform(engine, http.MethodGet, "/office-hours/requests?role=host", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(called).To(BeTrue())
		})

		It("defaults to the caller's own requests", func() {
			called := false
			svc.listMyRequestsFn = func(context.Context, *model.User) ([]model.OfficeHourRequest, error) {
				called = true
				return nil, nil
			}

			Expect(perform(engine, http.MethodGet, "/office-hours/requests", nil).Code).To(Equal(http.StatusOK))
			Expect(called).To(BeTrue())
		})

		It("rejects unknown roles", func() {
			Expect(perform(engine, http.MethodGet, "/office-hours/requests?role=guest", nil).Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("slot lifecycle", func() {
		It("cancels, completes and deletes slots", func() {
			svc.cancelSlotFn = func(_ context.Context, _ *model.User, id int64) (*model.OfficeHourSlot, error) {
				return &model.OfficeHourSlot{ID: id, Status: model.SlotStatusCancelled}, nil
			}
			svc.completeSlotFn = func(context.Context, *model.User, int64) (*model.OfficeHourSlot, error) {
				return nil, service.ErrSlotNotStarted
			}

			Expect(perform(engine, http.MethodPost, "/office-hours/slots/10/cancel", nil).Code).To(Equal(http.StatusOK))
			Expect(perform(engine, http.MethodPost, "/office-hours/slots/10/complete", nil).Code).To(Equal(http.StatusConflict))
			Expect(perform(engine, http.MethodDelete, "/office-hours/slots/10", nil).Code).To(Equal(http.StatusNoContent))
		})
	})
})
