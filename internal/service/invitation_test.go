package service_test

import (
	"context"
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/queue"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

var _ = Describe("InvitationService", func() {
	var (
		svc          service.InvitationService
		invitations  *mockInvitationStore
		users        *mockUserStore
		batches      *mockBatchStore
		txRunner     *mockTxRunner
		producer     *mockProducer
		c            *recordingCache
		ctx          context.Context
		dashboardURL string
		admin        *model.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		invitations = &mockInvitationStore{}
		users = &mockUserStore{}
		batches = &mockBatchStore{}
		producer = &mockProducer{}
		c = &recordingCache{}
		txRunner = &mockTxRunner{provider: &mockStoreProvider{invitations: invitations, users: users}}
		dashboardURL = "https://sprint.example.com"
		admin = &model.User{ID: 1, Role: model.RoleAdmin, IsActive: true}

		svc = service.NewInvitationService(invitations, users, batches, txRunner, producer, c, dashboardURL)
	})

	Describe("Create", func() {
		Context("when email is valid and no pending invitation exists", func() {
			It("creates the invitation and enqueues the invitation email", func() {
				var captured *model.Invitation
				invitations.createFn = func(_ context.Context, inv *model.Invitation) error {
					captured = inv
					return nil
				}

				inv, inviteURL, err := svc.Create(ctx, admin, service.InvitationInput{Email: "  Grace@Example.com ", Role: model.RoleMentor})

				Expect(err).NotTo(HaveOccurred())
				Expect(captured).NotTo(BeNil())
				Expect(inv.ID).NotTo(BeZero())
				Expect(inv.Email).To(Equal("grace@example.com"))
				Expect(inv.Role).To(Equal(model.RoleMentor))
				Expect(inv.Token).NotTo(BeEmpty())
				Expect(*inv.InvitedBy).To(Equal(int64(1)))
				Expect(inv.ExpiresAt).To(BeTemporally("~", time.Now().Add(7*24*time.Hour), time.Minute))
				Expect(inviteURL).To(HavePrefix(dashboardURL + "/invite?token="))

				emails := producer.tasksOfType(queue.TaskTypeSendEmail)
				Expect(emails).To(HaveLen(1))
				var payload queue.EmailPayload
				Expect(json.Unmarshal(emails[0].Payload, &payload)).To(Succeed())
				Expect(payload.To).To(ConsistOf("grace@example.com"))
				Expect(payload.Template).To(Equal(service.TemplateInvitation))
				Expect(payload.Data["invite_url"]).To(Equal(inviteURL))
			})

			It("defaults the role to founder", func() {
				inv, _, err := svc.Create(ctx, admin, service.InvitationInput{Email: "f@example.com"})
				Expect(err).NotTo(HaveOccurred())
				Expect(inv.Role).To(Equal(model.RoleFounder))
			})

			It("leaves invited_by empty for the system actor", func() {
				inv, _, err := svc.Create(ctx, model.SystemActor(), service.InvitationInput{Email: "f@example.com"})
				Expect(err).NotTo(HaveOccurred())
				Expect(inv.InvitedBy).To(BeNil())
			})
		})

		Context("when a pending invitation already exists for the email", func() {
			It("returns ErrInvitePendingExists", func() {
				invitations.getByEmailFn = func(_ context.Context, _ string) (*model.Invitation, error) {
					return &model.Invitation{
						ID:        9,
						Status:    model.InvitationStatusPending,
						ExpiresAt: time.Now().Add(time.Hour),
					}, nil
				}

				inv, inviteURL, err := svc.Create(ctx, admin, service.InvitationInput{Email: "f@example.com"})

				Expect(err).To(MatchError(service.ErrInvitePendingExists))
				Expect(inv).To(BeNil())
				Expect(inviteURL).To(BeEmpty())
				Expect(producer.tasks).To(BeEmpty())
			})
		})

		Context("when an active member already uses the email", func() {
			It("returns ErrUserAlreadyMember", func() {
				users.getByEmailFn = func(_ context.Context, _ string) (*model.User, error) {
					return &model.User{ID: 4, IsActive: true}, nil
				}

				_, _, err := svc.Create(ctx, admin, service.InvitationInput{Email: "f@example.com"})
				Expect(err).To(MatchError(service.ErrUserAlreadyMember))
			})
		})

		Context("when the batch does not exist", func() {
			It("returns ErrBatchNotFound", func() {
				batchID := int64(77)
				_, _, err := svc.Create(ctx, admin, service.InvitationInput{Email: "f@example.com", BatchID: &batchID})
				Expect(err).To(MatchError(service.ErrBatchNotFound))
			})
		})

		Context("when the input is invalid", func() {
			It("rejects an empty email and unknown roles", func() {
				_, _, err := svc.Create(ctx, admin, service.InvitationInput{Email: " "})
				Expect(err).To(MatchError(service.ErrInvalidInput))

				_, _, err = svc.Create(ctx, admin, service.InvitationInput{Email: "a@b.c", Role: "owner"})
				Expect(err).To(MatchError(service.ErrInvalidInput))
			})
		})
	})

	Describe("ValidateToken", func() {
		BeforeEach(func() {
			invitations.getValidByTokenFn = func(_ context.Context, _ string) (*model.Invitation, error) {
				return nil, store.ErrNotFound
			}
		})

		DescribeTable("reports why a token is unusable",
			func(inv *model.Invitation, expected error) {
				invitations.getByTokenFn = func(_ context.Context, _ string) (*model.Invitation, error) {
					if inv == nil {
						return nil, store.ErrNotFound
					}
					return inv, nil
				}

				got, err := svc.ValidateToken(ctx, "token")
				Expect(err).To(MatchError(expected))
				Expect(got).To(BeNil())
			},
			Entry("unknown", nil, service.ErrInviteNotFound),
			Entry("accepted", &model.Invitation{Status: model.InvitationStatusAccepted}, service.ErrInviteAlreadyUsed),
			Entry("revoked", &model.Invitation{Status: model.InvitationStatusRevoked}, service.ErrInviteRevoked),
			Entry("marked expired", &model.Invitation{Status: model.InvitationStatusExpired}, service.ErrInviteExpired),
			Entry("pending past expiry", &model.Invitation{Status: model.InvitationStatusPending, ExpiresAt: time.Now().Add(-time.Hour)}, service.ErrInviteExpired),
		)

		It("returns valid invitations", func() {
			expected := &model.Invitation{ID: 1, Token: "token", Status: model.InvitationStatusPending, ExpiresAt: time.Now().Add(time.Hour)}
			invitations.getValidByTokenFn = func(_ context.Context, token string) (*model.Invitation, error) {
				Expect(token).To(Equal("token"))
				return expected, nil
			}

			got, err := svc.ValidateToken(ctx, "token")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(expected))
		})
	})

	Describe("Accept", func() {
		var (
			batchID int64
			pending *model.Invitation
			user    *model.User
		)

		BeforeEach(func() {
			batchID = 55
			pending = &model.Invitation{
				ID:        1,
				Email:     "grace@example.com",
				Token:     "token",
				Status:    model.InvitationStatusPending,
				Role:      model.RoleMentor,
				BatchID:   &batchID,
				ExpiresAt: time.Now().Add(time.Hour),
			}
			user = &model.User{ID: 42, Email: "Grace@example.com", Role: model.RoleFounder, IsActive: true}
			invitations.getValidByTokenFn = func(_ context.Context, _ string) (*model.Invitation, error) {
				return pending, nil
			}
		})

		Context("when the email matches", func() {
			It("accepts and applies role and batch in one transaction", func() {
				invitations.acceptFn = func(_ context.Context, invID, userID int64) (*model.Invitation, error) {
					Expect(invID).To(Equal(int64(1)))
					Expect(userID).To(Equal(int64(42)))
					accepted := *pending
					accepted.Status = model.InvitationStatusAccepted
					return &accepted, nil
				}
				var applied *model.User
				users.updateMembershipFn = func(_ context.Context, u *model.User) error {
					applied = u
					return nil
				}

				inv, err := svc.Accept(ctx, "token", user)

				Expect(err).NotTo(HaveOccurred())
				Expect(inv.Status).To(Equal(model.InvitationStatusAccepted))
				Expect(txRunner.calls).To(Equal(1))
				Expect(applied.Role).To(Equal(model.RoleMentor))
				Expect(*applied.BatchID).To(Equal(batchID))
				Expect(user.Role).To(Equal(model.RoleMentor))
				Expect(c.tags()).To(ContainElements(service.TagDirectory, "batch:55"))
			})
		})

		Context("when the email does not match", func() {
			It("returns ErrEmailMismatch and leaves the user untouched", func() {
				user.Email = "someone@else.com"

				_, err := svc.Accept(ctx, "token", user)

				Expect(err).To(MatchError(service.ErrEmailMismatch))
				Expect(txRunner.calls).To(BeZero())
				Expect(user.Role).To(Equal(model.RoleFounder))
			})
		})

		Context("when the invitation was accepted concurrently", func() {
			It("returns ErrInviteAlreadyUsed", func() {
				invitations.acceptFn = func(_ context.Context, _, _ int64) (*model.Invitation, error) {
					return nil, store.ErrNotFound
				}

				_, err := svc.Accept(ctx, "token", user)
				Expect(err).To(MatchError(service.ErrInviteAlreadyUsed))
				Expect(user.Role).To(Equal(model.RoleFounder))
			})
		})
	})

	Describe("Revoke", func() {
		It("maps missing pending invitations to ErrInviteNotFound", func() {
			invitations.revokeFn = func(_ context.Context, _ int64) (*model.Invitation, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Revoke(ctx, 3)
			Expect(err).To(MatchError(service.ErrInviteNotFound))
		})
	})
})
