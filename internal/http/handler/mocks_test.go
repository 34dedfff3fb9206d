package handler_test

import (
	"context"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

type mockAuthService struct {
	getAuthorizationURLFn func(state string, opts ...service.AuthURLOption) (string, error)
	handleCallbackFn      func(ctx context.Context, code string) (*service.CallbackResult, error)
	handleSignInFn        func(ctx context.Context, code string) (*service.CallbackResult, error)
	validateSessionFn     func(ctx context.Context, sessionID int64) (*model.User, error)
	getSessionByIDFn      func(ctx context.Context, sessionID int64) (*model.Session, error)
	logoutFn              func(ctx context.Context, sessionID int64) error
	getLogoutURLFn        func(workOSSessionID string, returnTo string) (string, error)
}

func (m *mockAuthService) GetAuthorizationURL(state string, opts ...service.AuthURLOption) (string, error) {
	if m.getAuthorizationURLFn != nil {
		return m.getAuthorizationURLFn(state, opts...)
	}
	return "", nil
}

func (m *mockAuthService) HandleCallback(ctx context.Context, code string) (*service.CallbackResult, error) {
	if m.handleCallbackFn != nil {
		return m.handleCallbackFn(ctx, code)
	}
	return nil, nil
}

func (m *mockAuthService) HandleSignIn(ctx context.Context, code string) (*service.CallbackResult, error) {
	if m.handleSignInFn != nil {
		return m.handleSignInFn(ctx, code)
	}
	return nil, nil
}

func (m *mockAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	if m.validateSessionFn != nil {
		return m.validateSessionFn(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockAuthService) GetSessionByID(ctx context.Context, sessionID int64) (*model.Session, error) {
	if m.getSessionByIDFn != nil {
		return m.getSessionByIDFn(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID int64) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, sessionID)
	}
	return nil
}

func (m *mockAuthService) GetLogoutURL(workOSSessionID string, returnTo string) (string, error) {
	if m.getLogoutURLFn != nil {
		return m.getLogoutURLFn(workOSSessionID, returnTo)
	}
	return "", nil
}

type mockInvitationService struct {
	createFn        func(ctx context.Context, actor *model.User, input service.InvitationInput) (*model.Invitation, string, error)
	validateTokenFn func(ctx context.Context, token string) (*model.Invitation, error)
	getByTokenFn    func(ctx context.Context, token string) (*model.Invitation, error)
	acceptFn        func(ctx context.Context, token string, user *model.User) (*model.Invitation, error)
	revokeFn        func(ctx context.Context, id int64) (*model.Invitation, error)
	listFn          func(ctx context.Context, limit int32, offset int32) ([]model.Invitation, error)
	listPendingFn   func(ctx context.Context) ([]model.Invitation, error)
}

func (m *mockInvitationService) Create(ctx context.Context, actor *model.User, input service.InvitationInput) (*model.Invitation, string, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, input)
	}
	return nil, "", nil
}

func (m *mockInvitationService) ValidateToken(ctx context.Context, token string) (*model.Invitation, error) {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(ctx, token)
	}
	return nil, nil
}

func (m *mockInvitationService) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, nil
}

func (m *mockInvitationService) Accept(ctx context.Context, token string, user *model.User) (*model.Invitation, error) {
	if m.acceptFn != nil {
		return m.acceptFn(ctx, token, user)
	}
	return nil, nil
}

func (m *mockInvitationService) Revoke(ctx context.Context, id int64) (*model.Invitation, error) {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, id)
	}
	return nil, nil
}

func (m *mockInvitationService) List(ctx context.Context, limit int32, offset int32) ([]model.Invitation, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockInvitationService) ListPending(ctx context.Context) ([]model.Invitation, error) {
	if m.listPendingFn != nil {
		return m.listPendingFn(ctx)
	}
	return nil, nil
}

type mockUserService struct {
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn       func(ctx context.Context, email string) (*model.User, error)
	getProfileFn       func(ctx context.Context, id int64) (*model.MemberProfile, error)
	listMembersFn      func(ctx context.Context, filter model.MemberFilter) (*model.MemberPage, error)
	listAllFn          func(ctx context.Context, filter model.MemberFilter) (*model.MemberPage, error)
	updateProfileFn    func(ctx context.Context, user *model.User, update model.ProfileUpdate) (*model.User, error)
	updateMembershipFn func(ctx context.Context, id int64, update model.MembershipUpdate) (*model.User, error)
	deactivateFn       func(ctx context.Context, actor *model.User, id int64) (*model.User, error)
	reactivateFn       func(ctx context.Context, id int64) (*model.User, error)
}

func (m *mockUserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserService) GetProfile(ctx context.Context, id int64) (*model.MemberProfile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserService) ListMembers(ctx context.Context, filter model.MemberFilter) (*model.MemberPage, error) {
	if m.listMembersFn != nil {
		return m.listMembersFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockUserService) ListAll(ctx context.Context, filter model.MemberFilter) (*model.MemberPage, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, user *model.User, update model.ProfileUpdate) (*model.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, user, update)
	}
	return nil, nil
}

func (m *mockUserService) UpdateMembership(ctx context.Context, id int64, update model.MembershipUpdate) (*model.User, error) {
	if m.updateMembershipFn != nil {
		return m.updateMembershipFn(ctx, id, update)
	}
	return nil, nil
}

func (m *mockUserService) Deactivate(ctx context.Context, actor *model.User, id int64) (*model.User, error) {
	if m.deactivateFn != nil {
		return m.deactivateFn(ctx, actor, id)
	}
	return nil, nil
}

func (m *mockUserService) Reactivate(ctx context.Context, id int64) (*model.User, error) {
	if m.reactivateFn != nil {
		return m.reactivateFn(ctx, id)
	}
	return nil, nil
}

type mockBatchService struct {
	createFn      func(ctx context.Context, input model.BatchInput) (*model.Batch, error)
	updateFn      func(ctx context.Context, id int64, input model.BatchInput) (*model.Batch, error)
	archiveFn     func(ctx context.Context, id int64) (*model.Batch, error)
	getFn         func(ctx context.Context, id int64) (*model.Batch, error)
	getBySlugFn   func(ctx context.Context, slug string) (*model.Batch, error)
	listFn        func(ctx context.Context, includeArchived bool) ([]model.Batch, error)
	listMembersFn func(ctx context.Context, id int64) ([]model.User, error)
	rosterFn      func(ctx context.Context, id int64) (*model.Roster, error)
}

func (m *mockBatchService) Create(ctx context.Context, input model.BatchInput) (*model.Batch, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return nil, nil
}

func (m *mockBatchService) Update(ctx context.Context, id int64, input model.BatchInput) (*model.Batch, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, input)
	}
	return nil, nil
}

func (m *mockBatchService) Archive(ctx context.Context, id int64) (*model.Batch, error) {
	if m.archiveFn != nil {
		return m.archiveFn(ctx, id)
	}
	return nil, nil
}

func (m *mockBatchService) Get(ctx context.Context, id int64) (*model.Batch, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockBatchService) GetBySlug(ctx context.Context, slug string) (*model.Batch, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, nil
}

func (m *mockBatchService) List(ctx context.Context, includeArchived bool) ([]model.Batch, error) {
	if m.listFn != nil {
		return m.listFn(ctx, includeArchived)
	}
	return nil, nil
}

func (m *mockBatchService) ListMembers(ctx context.Context, id int64) ([]model.User, error) {
	if m.listMembersFn != nil {
		return m.listMembersFn(ctx, id)
	}
	return nil, nil
}

func (m *mockBatchService) Roster(ctx context.Context, id int64) (*model.Roster, error) {
	if m.rosterFn != nil {
		return m.rosterFn(ctx, id)
	}
	return nil, nil
}

type mockCompanyService struct {
	createFn func(ctx context.Context, input model.CompanyInput) (*model.Company, error)
	updateFn func(ctx context.Context, actor *model.User, id int64, input model.CompanyInput) (*model.Company, error)
	deleteFn func(ctx context.Context, id int64) error
	getFn    func(ctx context.Context, id int64) (*model.Company, error)
	listFn   func(ctx context.Context, batchID *int64) ([]model.Company, error)
}

func (m *mockCompanyService) Create(ctx context.Context, input model.CompanyInput) (*model.Company, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return nil, nil
}

func (m *mockCompanyService) Update(ctx context.Context, actor *model.User, id int64, input model.CompanyInput) (*model.Company, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, actor, id, input)
	}
	return nil, nil
}

func (m *mockCompanyService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCompanyService) Get(ctx context.Context, id int64) (*model.Company, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCompanyService) List(ctx context.Context, batchID *int64) ([]model.Company, error) {
	if m.listFn != nil {
		return m.listFn(ctx, batchID)
	}
	return nil, nil
}

type mockGroupService struct {
	createFn      func(ctx context.Context, actor *model.User, input model.GroupInput) (*model.Group, error)
	getFn         func(ctx context.Context, actor *model.User, id int64) (*model.Group, error)
	updateFn      func(ctx context.Context, actor *model.User, id int64, input model.GroupInput) (*model.Group, error)
	deleteFn      func(ctx context.Context, actor *model.User, id int64) error
	listFn        func(ctx context.Context, actor *model.User) ([]model.Group, error)
	joinFn        func(ctx context.Context, actor *model.User, id int64) (*model.GroupMember, error)
	leaveFn       func(ctx context.Context, actor *model.User, id int64) error
	addMemberFn   func(ctx context.Context, actor *model.User, id int64, userID int64) (*model.GroupMember, error)
	listMembersFn func(ctx context.Context, actor *model.User, id int64) ([]model.GroupMember, error)
}

func (m *mockGroupService) Create(ctx context.Context, actor *model.User, input model.GroupInput) (*model.Group, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, input)
	}
	return nil, nil
}

func (m *mockGroupService) Get(ctx context.Context, actor *model.User, id int64) (*model.Group, error) {
	if m.getFn != nil {
		return m.getFn(ctx, actor, id)
	}
	return nil, nil
}

func (m *mockGroupService) Update(ctx context.Context, actor *model.User, id int64, input model.GroupInput) (*model.Group, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, actor, id, input)
	}
	return nil, nil
}

func (m *mockGroupService) Delete(ctx context.Context, actor *model.User, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, actor, id)
	}
	return nil
}

func (m *mockGroupService) List(ctx context.Context, actor *model.User) ([]model.Group, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actor)
	}
	return nil, nil
}

func (m *mockGroupService) Join(ctx context.Context, actor *model.User, id int64) (*model.GroupMember, error) {
	if m.joinFn != nil {
		return m.joinFn(ctx, actor, id)
	}
	return nil, nil
}

func (m *mockGroupService) Leave(ctx context.Context, actor *model.User, id int64) error {
	if m.leaveFn != nil {
		return m.leaveFn(ctx, actor, id)
	}
	return nil
}

func (m *mockGroupService) AddMember(ctx context.Context, actor *model.User, id int64, userID int64) (*model.GroupMember, error) {
	if m.addMemberFn != nil {
		return m.addMemberFn(ctx, actor, id, userID)
	}
	return nil, nil
}

func (m *mockGroupService) ListMembers(ctx context.Context, actor *model.User, id int64) ([]model.GroupMember, error) {
	if m.listMembersFn != nil {
		return m.listMembersFn(ctx, actor, id)
	}
	return nil, nil
}

type mockPostService struct {
	createFn        func(ctx context.Context, actor *model.User, input model.PostInput) (*model.Post, error)
	getFn           func(ctx context.Context, actor *model.User, id int64) (*model.Post, error)
	feedFn          func(ctx context.Context, actor *model.User, filter model.FeedFilter) (*model.FeedPage, error)
	updateBodyFn    func(ctx context.Context, actor *model.User, id int64, body string) (*model.Post, error)
	deleteFn        func(ctx context.Context, actor *model.User, id int64) error
	setPinnedFn     func(ctx context.Context, actor *model.User, id int64, pinned bool) (*model.Post, error)
	likeFn          func(ctx context.Context, actor *model.User, id int64) (*model.Post, error)
	unlikeFn        func(ctx context.Context, actor *model.User, id int64) (*model.Post, error)
	listCommentsFn  func(ctx context.Context, actor *model.User, postID int64) ([]model.Comment, error)
	addCommentFn    func(ctx context.Context, actor *model.User, postID int64, body string) (*model.Comment, error)
	deleteCommentFn func(ctx context.Context, actor *model.User, postID int64, commentID int64) error
}

func (m *mockPostService) Create(ctx context.Context, actor *model.User, input model.PostInput) (*model.Post, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, input)
	}
	return nil, nil
}

func (m *mockPostService) Get(ctx context.Context, actor *model.User, id int64) (*model.Post, error) {
	if m.getFn != nil {
		return m.getFn(ctx, actor, id)
	}
	return nil, nil
}

func (m *mockPostService) Feed(ctx context.Context, actor *model.User, filter model.FeedFilter) (*model.FeedPage, error) {
	if m.feedFn != nil {
		return m.feedFn(ctx, actor, filter)
	}
	return nil, nil
}

func (m *mockPostService) UpdateBody(ctx context.Context, actor *model.User, id int64, body string) (*model.Post, error) {
	if m.updateBodyFn != nil {
		return m.updateBodyFn(ctx, actor, id, body)
	}
	return nil, nil
}

func (m *mockPostService) Delete(ctx context.Context, actor *model.User, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, actor, id)
	}
	return nil
}

func (m *mockPostService) SetPinned(ctx context.Context, actor *model.User, id int64, pinned bool) (*model.Post, error) {
	if m.setPinnedFn != nil {
		return m.setPinnedFn(ctx, actor, id, pinned)
	}
	return nil, nil
}

func (m *mockPostService) Like(ctx context.Context, actor *model.User, id int64) (*model.Post, error) {
	if m.likeFn != nil {
		return m.likeFn(ctx, actor, id)
	}
	return nil, nil
}

func (m *mockPostService) Unlike(ctx context.Context, actor *model.User, id int64) (*model.Post, error) {
	if m.unlikeFn != nil {
		return m.unlikeFn(ctx, actor, id)
	}
	return nil, nil
}

func (m *mockPostService) ListComments(ctx context.Context, actor *model.User, postID int64) ([]model.Comment, error) {
	if m.listCommentsFn != nil {
		return m.listCommentsFn(ctx, actor, postID)
	}
	return nil, nil
}

func (m *mockPostService) AddComment(ctx context.Context, actor *model.User, postID int64, body string) (*model.Comment, error) {
	if m.addCommentFn != nil {
		return m.addCommentFn(ctx, actor, postID, body)
	}
	return nil, nil
}

func (m *mockPostService) DeleteComment(ctx context.Context, actor *model.User, postID int64, commentID int64) error {
	if m.deleteCommentFn != nil {
		return m.deleteCommentFn(ctx, actor, postID, commentID)
	}
	return nil
}

type mockMessageService struct {
	startConversationFn func(ctx context.Context, actor *model.User, participantIDs []int64, title *string) (*model.Conversation, error)
	sendFn              func(ctx context.Context, actor *model.User, conversationID int64, body string) (*model.Message, error)
	listConversationsFn func(ctx context.Context, actor *model.User) ([]model.Conversation, error)
	listMessagesFn      func(ctx context.Context, actor *model.User, conversationID int64, query model.MessageQuery) ([]model.Message, error)
	markReadFn          func(ctx context.Context, actor *model.User, conversationID int64, messageID int64) (int64, error)
	unreadTotalFn       func(ctx context.Context, actor *model.User) (int64, error)
}

func (m *mockMessageService) StartConversation(ctx context.Context, actor *model.User, participantIDs []int64, title *string) (*model.Conversation, error) {
	if m.startConversationFn != nil {
		return m.startConversationFn(ctx, actor, participantIDs, title)
	}
	return nil, nil
}

func (m *mockMessageService) Send(ctx context.Context, actor *model.User, conversationID int64, body string) (*model.Message, error) {
	if m.sendFn != nil {
		return m.sendFn(ctx, actor, conversationID, body)
	}
	return nil, nil
}

func (m *mockMessageService) ListConversations(ctx context.Context, actor *model.User) ([]model.Conversation, error) {
	if m.listConversationsFn != nil {
		return m.listConversationsFn(ctx, actor)
	}
	return nil, nil
}

func (m *mockMessageService) ListMessages(ctx context.Context, actor *model.User, conversationID int64, query model.MessageQuery) ([]model.Message, error) {
	if m.listMessagesFn != nil {
		return m.listMessagesFn(ctx, actor, conversationID, query)
	}
	return nil, nil
}

func (m *mockMessageService) MarkRead(ctx context.Context, actor *model.User, conversationID int64, messageID int64) (int64, error) {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, actor, conversationID, messageID)
	}
	return 0, nil
}

func (m *mockMessageService) UnreadTotal(ctx context.Context, actor *model.User) (int64, error) {
	if m.unreadTotalFn != nil {
		return m.unreadTotalFn(ctx, actor)
	}
	return 0, nil
}

type mockOfficeHourService struct {
	createSlotFn       func(ctx context.Context, actor *model.User, input model.SlotInput) (*model.OfficeHourSlot, error)
	updateSlotFn       func(ctx context.Context, actor *model.User, slotID int64, input model.SlotInput) (*model.OfficeHourSlot, error)
	deleteSlotFn       func(ctx context.Context, actor *model.User, slotID int64) error
	listSlotsFn        func(ctx context.Context, actor *model.User, filter model.SlotFilter, mine bool) ([]model.OfficeHourSlot, error)
	requestSlotFn      func(ctx context.Context, actor *model.User, slotID int64, topic string) (*model.OfficeHourRequest, error)
	confirmRequestFn   func(ctx context.Context, actor *model.User, requestID int64, note *string) (*model.OfficeHourRequest, error)
	declineRequestFn   func(ctx context.Context, actor *model.User, requestID int64, note *string) (*model.OfficeHourRequest, error)
	cancelRequestFn    func(ctx context.Context, actor *model.User, requestID int64) (*model.OfficeHourRequest, error)
	cancelSlotFn       func(ctx context.Context, actor *model.User, slotID int64) (*model.OfficeHourSlot, error)
	completeSlotFn     func(ctx context.Context, actor *model.User, slotID int64) (*model.OfficeHourSlot, error)
	listMyRequestsFn   func(ctx context.Context, actor *model.User) ([]model.OfficeHourRequest, error)
	listHostRequestsFn func(ctx context.Context, actor *model.User) ([]model.OfficeHourRequest, error)
	runMaintenanceFn   func(ctx context.Context) (model.SlotMaintenanceResult, error)
}

func (m *mockOfficeHourService) CreateSlot(ctx context.Context, actor *model.User, input model.SlotInput) (*model.OfficeHourSlot, error) {
	if m.createSlotFn != nil {
		return m.createSlotFn(ctx, actor, input)
	}
	return nil, nil
}

func (m *mockOfficeHourService) UpdateSlot(ctx context.Context, actor *model.User, slotID int64, input model.SlotInput) (*model.OfficeHourSlot, error) {
	if m.updateSlotFn != nil {
		return m.updateSlotFn(ctx, actor, slotID, input)
	}
	return nil, nil
}

func (m *mockOfficeHourService) DeleteSlot(ctx context.Context, actor *model.User, slotID int64) error {
	if m.deleteSlotFn != nil {
		return m.deleteSlotFn(ctx, actor, slotID)
	}
	return nil
}

func (m *mockOfficeHourService) ListSlots(ctx context.Context, actor *model.User, filter model.SlotFilter, mine bool) ([]model.OfficeHourSlot, error) {
	if m.listSlotsFn != nil {
		return m.listSlotsFn(ctx, actor, filter, mine)
	}
	return nil, nil
}

func (m *mockOfficeHourService) RequestSlot(ctx context.Context, actor *model.User, slotID int64, topic string) (*model.OfficeHourRequest, error) {
	if m.requestSlotFn != nil {
		return m.requestSlotFn(ctx, actor, slotID, topic)
	}
	return nil, nil
}

func (m *mockOfficeHourService) ConfirmRequest(ctx context.Context, actor *model.User, requestID int64, note *string) (*model.OfficeHourRequest, error) {
	if m.confirmRequestFn != nil {
		return m.confirmRequestFn(ctx, actor, requestID, note)
	}
	return nil, nil
}

func (m *mockOfficeHourService) DeclineRequest(ctx context.Context, actor *model.User, requestID int64, note *string) (*model.OfficeHourRequest, error) {
	if m.declineRequestFn != nil {
		return m.declineRequestFn(ctx, actor, requestID, note)
	}
	return nil, nil
}

func (m *mockOfficeHourService) CancelRequest(ctx context.Context, actor *model.User, requestID int64) (*model.OfficeHourRequest, error) {
	if m.cancelRequestFn != nil {
		return m.cancelRequestFn(ctx, actor, requestID)
	}
	return nil, nil
}

func (m *mockOfficeHourService) CancelSlot(ctx context.Context, actor *model.User, slotID int64) (*model.OfficeHourSlot, error) {
	if m.cancelSlotFn != nil {
		return m.cancelSlotFn(ctx, actor, slotID)
	}
	return nil, nil
}

func (m *mockOfficeHourService) CompleteSlot(ctx context.Context, actor *model.User, slotID int64) (*model.OfficeHourSlot, error) {
	if m.completeSlotFn != nil {
		return m.completeSlotFn(ctx, actor, slotID)
	}
	return nil, nil
}

func (m *mockOfficeHourService) ListMyRequests(ctx context.Context, actor *model.User) ([]model.OfficeHourRequest, error) {
	if m.listMyRequestsFn != nil {
		return m.listMyRequestsFn(ctx, actor)
	}
	return nil, nil
}

func (m *mockOfficeHourService) ListHostRequests(ctx context.Context, actor *model.User) ([]model.OfficeHourRequest, error) {
	if m.listHostRequestsFn != nil {
		return m.listHostRequestsFn(ctx, actor)
	}
	return nil, nil
}

func (m *mockOfficeHourService) RunMaintenance(ctx context.Context) (model.SlotMaintenanceResult, error) {
	if m.runMaintenanceFn != nil {
		return m.runMaintenanceFn(ctx)
	}
	return model.SlotMaintenanceResult{}, nil
}

type mockAdminService struct {
	statsFn          func(ctx context.Context) (*model.AdminStats, error)
	runMaintenanceFn func(ctx context.Context) (*model.MaintenanceReport, error)
}

func (m *mockAdminService) Stats(ctx context.Context) (*model.AdminStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return nil, nil
}

func (m *mockAdminService) RunMaintenance(ctx context.Context) (*model.MaintenanceReport, error) {
	if m.runMaintenanceFn != nil {
		return m.runMaintenanceFn(ctx)
	}
	return nil, nil
}
