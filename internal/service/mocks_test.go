package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/queue"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

type mockUserStore struct {
	getByIDFn           func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn        func(ctx context.Context, email string) (*model.User, error)
	getByWorkOSIDFn     func(ctx context.Context, workosID string) (*model.User, error)
	createFn            func(ctx context.Context, user *model.User) error
	updateIdentityFn    func(ctx context.Context, user *model.User) error
	updateProfileFn     func(ctx context.Context, user *model.User) error
	updateMembershipFn  func(ctx context.Context, user *model.User) error
	setActiveFn         func(ctx context.Context, id int64, active bool) (*model.User, error)
	listMembersFn       func(ctx context.Context, filter model.MemberFilter) ([]model.Member, error)
	countMembersFn      func(ctx context.Context, filter model.MemberFilter) (int64, error)
	listByBatchFn       func(ctx context.Context, batchID int64) ([]model.User, error)
	listByCompanyFn     func(ctx context.Context, companyID int64) ([]model.User, error)
	countByBatchFn      func(ctx context.Context, batchID int64) (int64, error)
	countActiveByRoleFn func(ctx context.Context) (map[model.Role]int64, error)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByWorkOSID(ctx context.Context, workosID string) (*model.User, error) {
	if m.getByWorkOSIDFn != nil {
		return m.getByWorkOSIDFn(ctx, workosID)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) UpdateIdentity(ctx context.Context, user *model.User) error {
	if m.updateIdentityFn != nil {
		return m.updateIdentityFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) UpdateProfile(ctx context.Context, user *model.User) error {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) UpdateMembership(ctx context.Context, user *model.User) error {
	if m.updateMembershipFn != nil {
		return m.updateMembershipFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) SetActive(ctx context.Context, id int64, active bool) (*model.User, error) {
	if m.setActiveFn != nil {
		return m.setActiveFn(ctx, id, active)
	}
	return nil, nil
}

func (m *mockUserStore) ListMembers(ctx context.Context, filter model.MemberFilter) ([]model.Member, error) {
	if m.listMembersFn != nil {
		return m.listMembersFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockUserStore) CountMembers(ctx context.Context, filter model.MemberFilter) (int64, error) {
	if m.countMembersFn != nil {
		return m.countMembersFn(ctx, filter)
	}
	return 0, nil
}

func (m *mockUserStore) ListByBatch(ctx context.Context, batchID int64) ([]model.User, error) {
	if m.listByBatchFn != nil {
		return m.listByBatchFn(ctx, batchID)
	}
	return nil, nil
}

func (m *mockUserStore) ListByCompany(ctx context.Context, companyID int64) ([]model.User, error) {
	if m.listByCompanyFn != nil {
		return m.listByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (m *mockUserStore) CountByBatch(ctx context.Context, batchID int64) (int64, error) {
	if m.countByBatchFn != nil {
		return m.countByBatchFn(ctx, batchID)
	}
	return 0, nil
}

func (m *mockUserStore) CountActiveByRole(ctx context.Context) (map[model.Role]int64, error) {
	if m.countActiveByRoleFn != nil {
		return m.countActiveByRoleFn(ctx)
	}
	return nil, nil
}

type mockSessionStore struct {
	getByIDFn       func(ctx context.Context, id int64) (*model.Session, error)
	getValidFn      func(ctx context.Context, id int64) (*model.Session, error)
	createFn        func(ctx context.Context, session *model.Session) error
	deleteFn        func(ctx context.Context, id int64) error
	deleteByUserFn  func(ctx context.Context, userID int64) error
	deleteExpiredFn func(ctx context.Context) (int64, error)
}

func (m *mockSessionStore) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockSessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	if m.getValidFn != nil {
		return m.getValidFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSessionStore) DeleteByUser(ctx context.Context, userID int64) error {
	if m.deleteByUserFn != nil {
		return m.deleteByUserFn(ctx, userID)
	}
	return nil
}

func (m *mockSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return 0, nil
}

type mockInvitationStore struct {
	createFn          func(ctx context.Context, inv *model.Invitation) error
	getByIDFn         func(ctx context.Context, id int64) (*model.Invitation, error)
	getByTokenFn      func(ctx context.Context, token string) (*model.Invitation, error)
	getValidByTokenFn func(ctx context.Context, token string) (*model.Invitation, error)
	getByEmailFn      func(ctx context.Context, email string) (*model.Invitation, error)
	acceptFn          func(ctx context.Context, id int64, userID int64) (*model.Invitation, error)
	revokeFn          func(ctx context.Context, id int64) (*model.Invitation, error)
	listFn            func(ctx context.Context, limit, offset int32) ([]model.Invitation, error)
	listPendingFn     func(ctx context.Context) ([]model.Invitation, error)
	expireOldFn       func(ctx context.Context) (int64, error)
}

func (m *mockInvitationStore) Create(ctx context.Context, inv *model.Invitation) error {
	if m.createFn != nil {
		return m.createFn(ctx, inv)
	}
	return nil
}

func (m *mockInvitationStore) GetByID(ctx context.Context, id int64) (*model.Invitation, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockInvitationStore) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, store.ErrNotFound
}

func (m *mockInvitationStore) GetValidByToken(ctx context.Context, token string) (*model.Invitation, error) {
	if m.getValidByTokenFn != nil {
		return m.getValidByTokenFn(ctx, token)
	}
	return nil, store.ErrNotFound
}

func (m *mockInvitationStore) GetByEmail(ctx context.Context, email string) (*model.Invitation, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrNotFound
}

func (m *mockInvitationStore) Accept(ctx context.Context, id int64, userID int64) (*model.Invitation, error) {
	if m.acceptFn != nil {
		return m.acceptFn(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockInvitationStore) Revoke(ctx context.Context, id int64) (*model.Invitation, error) {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, id)
	}
	return nil, nil
}

func (m *mockInvitationStore) List(ctx context.Context, limit, offset int32) ([]model.Invitation, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockInvitationStore) ListPending(ctx context.Context) ([]model.Invitation, error) {
	if m.listPendingFn != nil {
		return m.listPendingFn(ctx)
	}
	return nil, nil
}

func (m *mockInvitationStore) ExpireOld(ctx context.Context) (int64, error) {
	if m.expireOldFn != nil {
		return m.expireOldFn(ctx)
	}
	return 0, nil
}

type mockBatchStore struct {
	getByIDFn   func(ctx context.Context, id int64) (*model.Batch, error)
	getBySlugFn func(ctx context.Context, slug string) (*model.Batch, error)
	createFn    func(ctx context.Context, batch *model.Batch) error
	updateFn    func(ctx context.Context, batch *model.Batch) error
	listFn      func(ctx context.Context, includeArchived bool) ([]model.Batch, error)
	countFn     func(ctx context.Context) (int64, error)
}

func (m *mockBatchStore) GetByID(ctx context.Context, id int64) (*model.Batch, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockBatchStore) GetBySlug(ctx context.Context, slug string) (*model.Batch, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, store.ErrNotFound
}

func (m *mockBatchStore) Create(ctx context.Context, batch *model.Batch) error {
	if m.createFn != nil {
		return m.createFn(ctx, batch)
	}
	return nil
}

func (m *mockBatchStore) Update(ctx context.Context, batch *model.Batch) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, batch)
	}
	return nil
}

func (m *mockBatchStore) List(ctx context.Context, includeArchived bool) ([]model.Batch, error) {
	if m.listFn != nil {
		return m.listFn(ctx, includeArchived)
	}
	return nil, nil
}

func (m *mockBatchStore) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockCompanyStore struct {
	getByIDFn   func(ctx context.Context, id int64) (*model.Company, error)
	getBySlugFn func(ctx context.Context, slug string) (*model.Company, error)
	createFn    func(ctx context.Context, company *model.Company) error
	updateFn    func(ctx context.Context, company *model.Company) error
	deleteFn    func(ctx context.Context, id int64) error
	listFn      func(ctx context.Context, batchID *int64) ([]model.Company, error)
}

func (m *mockCompanyStore) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockCompanyStore) GetBySlug(ctx context.Context, slug string) (*model.Company, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, store.ErrNotFound
}

func (m *mockCompanyStore) Create(ctx context.Context, company *model.Company) error {
	if m.createFn != nil {
		return m.createFn(ctx, company)
	}
	return nil
}

func (m *mockCompanyStore) Update(ctx context.Context, company *model.Company) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, company)
	}
	return nil
}

func (m *mockCompanyStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCompanyStore) List(ctx context.Context, batchID *int64) ([]model.Company, error) {
	if m.listFn != nil {
		return m.listFn(ctx, batchID)
	}
	return nil, nil
}

type mockGroupStore struct {
	getByIDFn      func(ctx context.Context, id int64) (*model.Group, error)
	getForUpdateFn func(ctx context.Context, id int64) (*model.Group, error)
	getBySlugFn    func(ctx context.Context, slug string) (*model.Group, error)
	createFn       func(ctx context.Context, group *model.Group) error
	updateFn       func(ctx context.Context, group *model.Group) error
	deleteFn       func(ctx context.Context, id int64) error
	listVisibleFn  func(ctx context.Context, userID int64, isAdmin bool) ([]model.Group, error)
	countFn        func(ctx context.Context) (int64, error)
	addMemberFn    func(ctx context.Context, groupID, userID int64, role model.GroupRole) (*model.GroupMember, error)
	getMemberFn    func(ctx context.Context, groupID, userID int64) (*model.GroupMember, error)
	removeMemberFn func(ctx context.Context, groupID, userID int64) (bool, error)
	listMembersFn  func(ctx context.Context, groupID int64) ([]model.GroupMember, error)
	countMembersFn func(ctx context.Context, groupID int64) (int64, error)
	countOwnersFn  func(ctx context.Context, groupID int64) (int64, error)
}

func (m *mockGroupStore) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockGroupStore) GetForUpdate(ctx context.Context, id int64) (*model.Group, error) {
	if m.getForUpdateFn != nil {
		return m.getForUpdateFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockGroupStore) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, store.ErrNotFound
}

func (m *mockGroupStore) Create(ctx context.Context, group *model.Group) error {
	if m.createFn != nil {
		return m.createFn(ctx, group)
	}
	return nil
}

func (m *mockGroupStore) Update(ctx context.Context, group *model.Group) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, group)
	}
	return nil
}

func (m *mockGroupStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockGroupStore) ListVisible(ctx context.Context, userID int64, isAdmin bool) ([]model.Group, error) {
	if m.listVisibleFn != nil {
		return m.listVisibleFn(ctx, userID, isAdmin)
	}
	return nil, nil
}

func (m *mockGroupStore) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockGroupStore) AddMember(ctx context.Context, groupID, userID int64, role model.GroupRole) (*model.GroupMember, error) {
	if m.addMemberFn != nil {
		return m.addMemberFn(ctx, groupID, userID, role)
	}
	return nil, nil
}

func (m *mockGroupStore) GetMember(ctx context.Context, groupID, userID int64) (*model.GroupMember, error) {
	if m.getMemberFn != nil {
		return m.getMemberFn(ctx, groupID, userID)
	}
	return nil, store.ErrNotFound
}

func (m *mockGroupStore) RemoveMember(ctx context.Context, groupID, userID int64) (bool, error) {
	if m.removeMemberFn != nil {
		return m.removeMemberFn(ctx, groupID, userID)
	}
	return false, nil
}

func (m *mockGroupStore) ListMembers(ctx context.Context, groupID int64) ([]model.GroupMember, error) {
	if m.listMembersFn != nil {
		return m.listMembersFn(ctx, groupID)
	}
	return nil, nil
}

func (m *mockGroupStore) CountMembers(ctx context.Context, groupID int64) (int64, error) {
	if m.countMembersFn != nil {
		return m.countMembersFn(ctx, groupID)
	}
	return 0, nil
}

func (m *mockGroupStore) CountOwners(ctx context.Context, groupID int64) (int64, error) {
	if m.countOwnersFn != nil {
		return m.countOwnersFn(ctx, groupID)
	}
	return 0, nil
}

type mockPostStore struct {
	getByIDFn            func(ctx context.Context, id int64) (*model.Post, error)
	createFn             func(ctx context.Context, post *model.Post) error
	updateBodyFn         func(ctx context.Context, id int64, body string) (*model.Post, error)
	setPinnedFn          func(ctx context.Context, id int64, pinned bool) (*model.Post, error)
	deleteFn             func(ctx context.Context, id int64) error
	listFeedFn           func(ctx context.Context, viewer store.FeedViewer, filter model.FeedFilter) ([]model.Post, error)
	countFn              func(ctx context.Context) (int64, error)
	likeFn               func(ctx context.Context, postID, userID int64) (bool, error)
	unlikeFn             func(ctx context.Context, postID, userID int64) (bool, error)
	hasLikedFn           func(ctx context.Context, postID, userID int64) (bool, error)
	adjustLikeCountFn    func(ctx context.Context, postID int64, delta int32) error
	adjustCommentCountFn func(ctx context.Context, postID int64, delta int32) error
	createCommentFn      func(ctx context.Context, comment *model.Comment) error
	getCommentFn         func(ctx context.Context, id int64) (*model.Comment, error)
	deleteCommentFn      func(ctx context.Context, id int64) error
	listCommentsFn       func(ctx context.Context, postID int64) ([]model.Comment, error)
}

func (m *mockPostStore) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockPostStore) Create(ctx context.Context, post *model.Post) error {
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	return nil
}

func (m *mockPostStore) UpdateBody(ctx context.Context, id int64, body string) (*model.Post, error) {
	if m.updateBodyFn != nil {
		return m.updateBodyFn(ctx, id, body)
	}
	return nil, nil
}

func (m *mockPostStore) SetPinned(ctx context.Context, id int64, pinned bool) (*model.Post, error) {
	if m.setPinnedFn != nil {
		return m.setPinnedFn(ctx, id, pinned)
	}
	return nil, nil
}

func (m *mockPostStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockPostStore) ListFeed(ctx context.Context, viewer store.FeedViewer, filter model.FeedFilter) ([]model.Post, error) {
	if m.listFeedFn != nil {
		return m.listFeedFn(ctx, viewer, filter)
	}
	return nil, nil
}

func (m *mockPostStore) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockPostStore) Like(ctx context.Context, postID, userID int64) (bool, error) {
	if m.likeFn != nil {
		return m.likeFn(ctx, postID, userID)
	}
	return false, nil
}

func (m *mockPostStore) Unlike(ctx context.Context, postID, userID int64) (bool, error) {
	if m.unlikeFn != nil {
		return m.unlikeFn(ctx, postID, userID)
	}
	return false, nil
}

func (m *mockPostStore) HasLiked(ctx context.Context, postID, userID int64) (bool, error) {
	if m.hasLikedFn != nil {
		return m.hasLikedFn(ctx, postID, userID)
	}
	return false, nil
}

func (m *mockPostStore) AdjustLikeCount(ctx context.Context, postID int64, delta int32) error {
	if m.adjustLikeCountFn != nil {
		return m.adjustLikeCountFn(ctx, postID, delta)
	}
	return nil
}

func (m *mockPostStore) AdjustCommentCount(ctx context.Context, postID int64, delta int32) error {
	if m.adjustCommentCountFn != nil {
		return m.adjustCommentCountFn(ctx, postID, delta)
	}
	return nil
}

func (m *mockPostStore) CreateComment(ctx context.Context, comment *model.Comment) error {
	if m.createCommentFn != nil {
		return m.createCommentFn(ctx, comment)
	}
	return nil
}

func (m *mockPostStore) GetComment(ctx context.Context, id int64) (*model.Comment, error) {
	if m.getCommentFn != nil {
		return m.getCommentFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockPostStore) DeleteComment(ctx context.Context, id int64) error {
	if m.deleteCommentFn != nil {
		return m.deleteCommentFn(ctx, id)
	}
	return nil
}

func (m *mockPostStore) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	if m.listCommentsFn != nil {
		return m.listCommentsFn(ctx, postID)
	}
	return nil, nil
}

type mockConversationStore struct {
	createFn           func(ctx context.Context, conv *model.Conversation) error
	getByIDFn          func(ctx context.Context, id int64) (*model.Conversation, error)
	addParticipantFn   func(ctx context.Context, conversationID, userID int64) error
	getParticipantFn   func(ctx context.Context, conversationID, userID int64) (*model.Participant, error)
	listParticipantsFn func(ctx context.Context, conversationID int64) ([]model.Participant, error)
	findDirectFn       func(ctx context.Context, userA, userB int64) (int64, error)
	listForUserFn      func(ctx context.Context, userID int64) ([]model.Conversation, error)
	touchFn            func(ctx context.Context, conversationID int64, at time.Time) error
	markReadFn         func(ctx context.Context, conversationID, userID, messageID int64) (int64, error)
	latestMessageIDFn  func(ctx context.Context, conversationID int64) (int64, error)
	countUnreadFn      func(ctx context.Context, userID int64) (int64, error)
}

func (m *mockConversationStore) Create(ctx context.Context, conv *model.Conversation) error {
	if m.createFn != nil {
		return m.createFn(ctx, conv)
	}
	return nil
}

func (m *mockConversationStore) GetByID(ctx context.Context, id int64) (*model.Conversation, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockConversationStore) AddParticipant(ctx context.Context, conversationID, userID int64) error {
	if m.addParticipantFn != nil {
		return m.addParticipantFn(ctx, conversationID, userID)
	}
	return nil
}

func (m *mockConversationStore) GetParticipant(ctx context.Context, conversationID, userID int64) (*model.Participant, error) {
	if m.getParticipantFn != nil {
		return m.getParticipantFn(ctx, conversationID, userID)
	}
	return nil, store.ErrNotFound
}

func (m *mockConversationStore) ListParticipants(ctx context.Context, conversationID int64) ([]model.Participant, error) {
	if m.listParticipantsFn != nil {
		return m.listParticipantsFn(ctx, conversationID)
	}
	return nil, nil
}

func (m *mockConversationStore) FindDirect(ctx context.Context, userA, userB int64) (int64, error) {
	if m.findDirectFn != nil {
		return m.findDirectFn(ctx, userA, userB)
	}
	return 0, store.ErrNotFound
}

func (m *mockConversationStore) ListForUser(ctx context.Context, userID int64) ([]model.Conversation, error) {
	if m.listForUserFn != nil {
		return m.listForUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockConversationStore) Touch(ctx context.Context, conversationID int64, at time.Time) error {
	if m.touchFn != nil {
		return m.touchFn(ctx, conversationID, at)
	}
	return nil
}

func (m *mockConversationStore) MarkRead(ctx context.Context, conversationID, userID, messageID int64) (int64, error) {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, conversationID, userID, messageID)
	}
	return 0, nil
}

func (m *mockConversationStore) LatestMessageID(ctx context.Context, conversationID int64) (int64, error) {
	if m.latestMessageIDFn != nil {
		return m.latestMessageIDFn(ctx, conversationID)
	}
	return 0, nil
}

func (m *mockConversationStore) CountUnread(ctx context.Context, userID int64) (int64, error) {
	if m.countUnreadFn != nil {
		return m.countUnreadFn(ctx, userID)
	}
	return 0, nil
}

type mockMessageStore struct {
	createFn     func(ctx context.Context, msg *model.Message) error
	listAfterFn  func(ctx context.Context, conversationID, afterID int64, limit int32) ([]model.Message, error)
	listBeforeFn func(ctx context.Context, conversationID int64, beforeID *int64, limit int32) ([]model.Message, error)
}

func (m *mockMessageStore) Create(ctx context.Context, msg *model.Message) error {
	if m.createFn != nil {
		return m.createFn(ctx, msg)
	}
	return nil
}

func (m *mockMessageStore) ListAfter(ctx context.Context, conversationID, afterID int64, limit int32) ([]model.Message, error) {
	if m.listAfterFn != nil {
		return m.listAfterFn(ctx, conversationID, afterID, limit)
	}
	return nil, nil
}

func (m *mockMessageStore) ListBefore(ctx context.Context, conversationID int64, beforeID *int64, limit int32) ([]model.Message, error) {
	if m.listBeforeFn != nil {
		return m.listBeforeFn(ctx, conversationID, beforeID, limit)
	}
	return nil, nil
}

type mockOfficeHourStore struct {
	createSlotFn              func(ctx context.Context, slot *model.OfficeHourSlot) error
	getSlotFn                 func(ctx context.Context, id int64) (*model.OfficeHourSlot, error)
	getSlotForUpdateFn        func(ctx context.Context, id int64) (*model.OfficeHourSlot, error)
	updateSlotFn              func(ctx context.Context, slot *model.OfficeHourSlot) error
	setSlotStatusFn           func(ctx context.Context, id int64, status model.SlotStatus) (*model.OfficeHourSlot, error)
	setSlotCalendarEventFn    func(ctx context.Context, id int64, eventID *string) error
	deleteSlotFn              func(ctx context.Context, id int64) error
	countOverlappingFn        func(ctx context.Context, hostID int64, startsAt, endsAt time.Time, excludeID *int64) (int64, error)
	listAvailableFn           func(ctx context.Context, filter model.SlotFilter) ([]model.OfficeHourSlot, error)
	listByHostFn              func(ctx context.Context, hostID int64, limit int32) ([]model.OfficeHourSlot, error)
	listEndedWithStatusFn     func(ctx context.Context, status model.SlotStatus, endedBefore time.Time, limit int32) ([]model.OfficeHourSlot, error)
	countUpcomingAvailableFn  func(ctx context.Context) (int64, error)
	createRequestFn           func(ctx context.Context, req *model.OfficeHourRequest) error
	getRequestFn              func(ctx context.Context, id int64) (*model.OfficeHourRequest, error)
	getRequestForUpdateFn     func(ctx context.Context, id int64) (*model.OfficeHourRequest, error)
	getActiveRequestForSlotFn func(ctx context.Context, slotID int64) (*model.OfficeHourRequest, error)
	setRequestStatusFn        func(ctx context.Context, id int64, status model.RequestStatus, hostNote *string) (*model.OfficeHourRequest, error)
	listRequestsByRequesterFn func(ctx context.Context, requesterID int64, limit int32) ([]model.OfficeHourRequest, error)
	listRequestsForHostFn     func(ctx context.Context, hostID int64, limit int32) ([]model.OfficeHourRequest, error)
	countPendingRequestsFn    func(ctx context.Context) (int64, error)
}

func (m *mockOfficeHourStore) CreateSlot(ctx context.Context, slot *model.OfficeHourSlot) error {
	if m.createSlotFn != nil {
		return m.createSlotFn(ctx, slot)
	}
	return nil
}

func (m *mockOfficeHourStore) GetSlot(ctx context.Context, id int64) (*model.OfficeHourSlot, error) {
	if m.getSlotFn != nil {
		return m.getSlotFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockOfficeHourStore) GetSlotForUpdate(ctx context.Context, id int64) (*model.OfficeHourSlot, error) {
	if m.getSlotForUpdateFn != nil {
		return m.getSlotForUpdateFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockOfficeHourStore) UpdateSlot(ctx context.Context, slot *model.OfficeHourSlot) error {
	if m.updateSlotFn != nil {
		return m.updateSlotFn(ctx, slot)
	}
	return nil
}

func (m *mockOfficeHourStore) SetSlotStatus(ctx context.Context, id int64, status model.SlotStatus) (*model.OfficeHourSlot, error) {
	if m.setSlotStatusFn != nil {
		return m.setSlotStatusFn(ctx, id, status)
	}
	return nil, nil
}

func (m *mockOfficeHourStore) SetSlotCalendarEvent(ctx context.Context, id int64, eventID *string) error {
	if m.setSlotCalendarEventFn != nil {
		return m.setSlotCalendarEventFn(ctx, id, eventID)
	}
	return nil
}

func (m *mockOfficeHourStore) DeleteSlot(ctx context.Context, id int64) error {
	if m.deleteSlotFn != nil {
		return m.deleteSlotFn(ctx, id)
	}
	return nil
}

func (m *mockOfficeHourStore) CountOverlapping(ctx context.Context, hostID int64, startsAt, endsAt time.Time, excludeID *int64) (int64, error) {
	if m.countOverlappingFn != nil {
		return m.countOverlappingFn(ctx, hostID, startsAt, endsAt, excludeID)
	}
	return 0, nil
}

func (m *mockOfficeHourStore) ListAvailable(ctx context.Context, filter model.SlotFilter) ([]model.OfficeHourSlot, error) {
	if m.listAvailableFn != nil {
		return m.listAvailableFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockOfficeHourStore) ListByHost(ctx context.Context, hostID int64, limit int32) ([]model.OfficeHourSlot, error) {
	if m.listByHostFn != nil {
		return m.listByHostFn(ctx, hostID, limit)
	}
	return nil, nil
}

func (m *mockOfficeHourStore) ListEndedWithStatus(ctx context.Context, status model.SlotStatus, endedBefore time.Time, limit int32) ([]model.OfficeHourSlot, error) {
	if m.listEndedWithStatusFn != nil {
		return m.listEndedWithStatusFn(ctx, status, endedBefore, limit)
	}
	return nil, nil
}

func (m *mockOfficeHourStore) CountUpcomingAvailable(ctx context.Context) (int64, error) {
	if m.countUpcomingAvailableFn != nil {
		return m.countUpcomingAvailableFn(ctx)
	}
	return 0, nil
}

func (m *mockOfficeHourStore) CreateRequest(ctx context.Context, req *model.OfficeHourRequest) error {
	if m.createRequestFn != nil {
		return m.createRequestFn(ctx, req)
	}
	return nil
}

func (m *mockOfficeHourStore) GetRequest(ctx context.Context, id int64) (*model.OfficeHourRequest, error) {
	if m.getRequestFn != nil {
		return m.getRequestFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockOfficeHourStore) GetRequestForUpdate(ctx context.Context, id int64) (*model.OfficeHourRequest, error) {
	if m.getRequestForUpdateFn != nil {
		return m.getRequestForUpdateFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockOfficeHourStore) GetActiveRequestForSlot(ctx context.Context, slotID int64) (*model.OfficeHourRequest, error) {
	if m.getActiveRequestForSlotFn != nil {
		return m.getActiveRequestForSlotFn(ctx, slotID)
	}
	return nil, store.ErrNotFound
}

func (m *mockOfficeHourStore) SetRequestStatus(ctx context.Context, id int64, status model.RequestStatus, hostNote *string) (*model.OfficeHourRequest, error) {
	if m.setRequestStatusFn != nil {
		return m.setRequestStatusFn(ctx, id, status, hostNote)
	}
	return nil, nil
}

func (m *mockOfficeHourStore) ListRequestsByRequester(ctx context.Context, requesterID int64, limit int32) ([]model.OfficeHourRequest, error) {
	if m.listRequestsByRequesterFn != nil {
		return m.listRequestsByRequesterFn(ctx, requesterID, limit)
	}
	return nil, nil
}

func (m *mockOfficeHourStore) ListRequestsForHost(ctx context.Context, hostID int64, limit int32) ([]model.OfficeHourRequest, error) {
	if m.listRequestsForHostFn != nil {
		return m.listRequestsForHostFn(ctx, hostID, limit)
	}
	return nil, nil
}

func (m *mockOfficeHourStore) CountPendingRequests(ctx context.Context) (int64, error) {
	if m.countPendingRequestsFn != nil {
		return m.countPendingRequestsFn(ctx)
	}
	return 0, nil
}

type mockStoreProvider struct {
	users         store.UserStore
	sessions      store.SessionStore
	invitations   store.InvitationStore
	groups        store.GroupStore
	posts         store.PostStore
	conversations store.ConversationStore
	messages      store.MessageStore
	officeHours   store.OfficeHourStore
}

func (m *mockStoreProvider) Users() store.UserStore                 { return m.users }
func (m *mockStoreProvider) Sessions() store.SessionStore           { return m.sessions }
func (m *mockStoreProvider) Invitations() store.InvitationStore     { return m.invitations }
func (m *mockStoreProvider) Groups() store.GroupStore               { return m.groups }
func (m *mockStoreProvider) Posts() store.PostStore                 { return m.posts }
func (m *mockStoreProvider) Conversations() store.ConversationStore { return m.conversations }
func (m *mockStoreProvider) Messages() store.MessageStore           { return m.messages }
func (m *mockStoreProvider) OfficeHours() store.OfficeHourStore     { return m.officeHours }

type mockTxRunner struct {
	provider *mockStoreProvider
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
	calls    int
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	m.calls++
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	if m.provider == nil {
		return fn(&mockStoreProvider{})
	}
	return fn(m.provider)
}

type mockProducer struct {
	mu         sync.Mutex
	tasks      []queue.Task
	enqueueErr error
}

func (m *mockProducer) Enqueue(_ context.Context, task queue.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.enqueueErr != nil {
		return m.enqueueErr
	}
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *mockProducer) Close() error { return nil }

func (m *mockProducer) tasksOfType(taskType queue.TaskType) []queue.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []queue.Task
	for _, t := range m.tasks {
		if t.TaskType == taskType {
			out = append(out, t)
		}
	}
	return out
}

type mockIdentityProvider struct {
	authorizationURLFn func(state, loginHint string) (string, error)
	authenticateFn     func(ctx context.Context, code string) (*service.Identity, error)
	logoutURLFn        func(sessionID, returnTo string) (string, error)
}

func (m *mockIdentityProvider) AuthorizationURL(state, loginHint string) (string, error) {
	if m.authorizationURLFn != nil {
		return m.authorizationURLFn(state, loginHint)
	}
	return "https://auth.example.com/authorize?state=" + state, nil
}

func (m *mockIdentityProvider) Authenticate(ctx context.Context, code string) (*service.Identity, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, code)
	}
	return nil, nil
}

func (m *mockIdentityProvider) LogoutURL(sessionID, returnTo string) (string, error) {
	if m.logoutURLFn != nil {
		return m.logoutURLFn(sessionID, returnTo)
	}
	return "https://auth.example.com/logout?session_id=" + sessionID, nil
}

// recordingCache never hits and remembers invalidated tags.
type recordingCache struct {
	mu          sync.Mutex
	invalidated []string
	sets        int
}

func (c *recordingCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (c *recordingCache) Set(context.Context, string, any, time.Duration, ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	return nil
}

func (c *recordingCache) InvalidateTags(_ context.Context, tags ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, tags...)
	return nil
}

func (c *recordingCache) tags() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.invalidated...)
}
