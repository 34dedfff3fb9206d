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

var _ = Describe("MessageHandler", func() {
	var (
		engine *gin.Engine
		svc    *mockMessageService
		user   *model.User
	)

	BeforeEach(func() {
		user = &model.User{ID: 3, Name: "Fran", Role: model.RoleFounder, IsActive: true}
		svc = &mockMessageService{}

		var group *gin.RouterGroup
		engine, group = memberRouter(&user)
		router.MessageRouter(group, handler.NewMessageHandler(svc))
	})

	Describe("StartConversation", func() {
		It("parses participant ids", func() {
			svc.startConversationFn = func(_ context.Context, _ *model.User, ids []int64, title *string) (*model.Conversation, error) {
				Expect(ids).To(Equal([]int64{4, 5}))
				Expect(title).To(BeNil())
				return &model.Conversation{ID: 60, CreatedBy: 3}, nil
			}

			w := perform(engine, http.MethodPost, "/conversations", map[string]any{"participant_ids": []string{"4", "5"}})

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(decodeBody(w)["id"]).To(Equal("60"))
		})

		It("rejects malformed participant ids", func() {
			w := perform(engine, http.MethodPost, "/conversations", map[string]any{"participant_ids": []string{"four"}})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("requires at least one participant", func() {
			w := perform(engine, http.MethodPost, "/conversations", map[string]any{"participant_ids": []string{}})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ListMessages", func() {
		It("polls with an after cursor", func() {
			svc.listMessagesFn = func(_ context.Context, _ *model.User, convID int64, query model.MessageQuery) ([]model.Message, error) {
				Expect(convID).To(Equal(int64(60)))
				Expect(*query.After).To(Equal(int64(100)))
				Expect(query.Before).To(BeNil())
				return []model.Message{{ID: 101, ConversationID: 60, Body: "hey"}}, nil
			}

			w := perform(engine, http.MethodGet, "/conversations/60/messages?after=100", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(w)["messages"]).To(HaveLen(1))
		})

		It("returns an empty list when nothing is new", func() {
			w := perform(engine, http.MethodGet, "/conversations/60/messages?after=100", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"messages": []}`))
		})

		It("returns 404 for non-participants", func() {
			svc.listMessagesFn = func(context.Context, *model.User, int64, model.MessageQuery) ([]model.Message, error) {
				return nil, service.ErrConversationNotFound
			}

			w := perform(engine, http.MethodGet, "/conversations/60/messages", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeBody(w)["code"]).To(Equal("conversation_not_found"))
		})
	})

	Describe("Send", func() {
		It("returns the stored message", func() {
			svc.sendFn = func(_ context.Context, _ *model.User, convID int64, body string) (*model.Message, error) {
				return &model.Message{ID: 102, ConversationID: convID, SenderID: 3, Body: body}, nil
			}

			w := perform(engine, http.MethodPost, "/conversations/60/messages", map[string]string{"body": "hello"})

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(decodeBody(w)["sender_id"]).To(Equal("3"))
		})

		It("surfaces body validation", func() {
			svc.sendFn = func(context.Context, *model.User, int64, string) (*model.Message, error) {
				return nil, fmtInvalid("message body must be at most 4000 characters")
			}

			w := perform(engine, http.MethodPost, "/conversations/60/messages", map[string]string{"body": "long"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeBody(w)["error"]).To(ContainSubstring("4000"))
		})
	})

	Describe("MarkRead and Unread", func() {
		It("returns the read marker", func() {
			svc.markReadFn = func(_ context.Context, _ *model.User, _ int64, messageID int64) (int64, error) {
				return messageID + 5, nil
			}

			w := perform(engine, http.MethodPost, "/conversations/60/read", map[string]string{"message_id": "101"})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(w)["last_read_message_id"]).To(Equal("106"))
		})

		It("returns the unread total", func() {
			svc.unreadTotalFn = func(context.Context, *model.User) (int64, error) {
				return 4, nil
			}

			w := perform(engine, http.MethodGet, "/messages/unread", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(w)["unread"]).To(BeEquivalentTo(4))
		})
	})
})
