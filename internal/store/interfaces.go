package store

import (
	"context"
	"errors"
	"time"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write violates a unique constraint
var ErrConflict = errors.New("conflict")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByWorkOSID(ctx context.Context, workosID string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpdateIdentity(ctx context.Context, user *model.User) error
	UpdateProfile(ctx context.Context, user *model.User) error
	UpdateMembership(ctx context.Context, user *model.User) error
	SetActive(ctx context.Context, id int64, active bool) (*model.User, error)
	ListMembers(ctx context.Context, filter model.MemberFilter) ([]model.Member, error)
	CountMembers(ctx context.Context, filter model.MemberFilter) (int64, error)
	ListByBatch(ctx context.Context, batchID int64) ([]model.User, error)
	ListByCompany(ctx context.Context, companyID int64) ([]model.User, error)
	CountByBatch(ctx context.Context, batchID int64) (int64, error)
	CountActiveByRole(ctx context.Context) (map[model.Role]int64, error)
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// InvitationStore defines the contract for invitation data access
type InvitationStore interface {
	Create(ctx context.Context, inv *model.Invitation) error
	GetByID(ctx context.Context, id int64) (*model.Invitation, error)
	GetByToken(ctx context.Context, token string) (*model.Invitation, error)
	GetValidByToken(ctx context.Context, token string) (*model.Invitation, error)
	GetByEmail(ctx context.Context, email string) (*model.Invitation, error)
	Accept(ctx context.Context, id int64, userID int64) (*model.Invitation, error)
	Revoke(ctx context.Context, id int64) (*model.Invitation, error)
	List(ctx context.Context, limit, offset int32) ([]model.Invitation, error)
	ListPending(ctx context.Context) ([]model.Invitation, error)
	ExpireOld(ctx context.Context) (int64, error)
}

type BatchStore interface {
	GetByID(ctx context.Context, id int64) (*model.Batch, error)
	GetBySlug(ctx context.Context, slug string) (*model.Batch, error)
	Create(ctx context.Context, batch *model.Batch) error
	Update(ctx context.Context, batch *model.Batch) error
	List(ctx context.Context, includeArchived bool) ([]model.Batch, error)
	Count(ctx context.Context) (int64, error)
}

type CompanyStore interface {
	GetByID(ctx context.Context, id int64) (*model.Company, error)
	GetBySlug(ctx context.Context, slug string) (*model.Company, error)
	Create(ctx context.Context, company *model.Company) error
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, batchID *int64) ([]model.Company, error)
}

type GroupStore interface {
	GetByID(ctx context.Context, id int64) (*model.Group, error)
	// GetForUpdate locks the group row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	Create(ctx context.Context, group *model.Group) error
	Update(ctx context.Context, group *model.Group) error
	Delete(ctx context.Context, id int64) error
	ListVisible(ctx context.Context, userID int64, isAdmin bool) ([]model.Group, error)
	Count(ctx context.Context) (int64, error)

	AddMember(ctx context.Context, groupID, userID int64, role model.GroupRole) (*model.GroupMember, error)
	GetMember(ctx context.Context, groupID, userID int64) (*model.GroupMember, error)
	RemoveMember(ctx context.Context, groupID, userID int64) (bool, error)
	ListMembers(ctx context.Context, groupID int64) ([]model.GroupMember, error)
	CountMembers(ctx context.Context, groupID int64) (int64, error)
	CountOwners(ctx context.Context, groupID int64) (int64, error)
}

// FeedViewer carries the visibility inputs for feed queries.
type FeedViewer struct {
	UserID  int64
	BatchID *int64
	IsStaff bool
}

type PostStore interface {
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	Create(ctx context.Context, post *model.Post) error
	UpdateBody(ctx context.Context, id int64, body string) (*model.Post, error)
	SetPinned(ctx context.Context, id int64, pinned bool) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	ListFeed(ctx context.Context, viewer FeedViewer, filter model.FeedFilter) ([]model.Post, error)
	Count(ctx context.Context) (int64, error)

	// Like and Unlike report whether a row changed so counters stay idempotent.
	Like(ctx context.Context, postID, userID int64) (bool, error)
	Unlike(ctx context.Context, postID, userID int64) (bool, error)
	HasLiked(ctx context.Context, postID, userID int64) (bool, error)
	AdjustLikeCount(ctx context.Context, postID int64, delta int32) error
	AdjustCommentCount(ctx context.Context, postID int64, delta int32) error

	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id int64) (*model.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
	ListComments(ctx context.Context, postID int64) ([]model.Comment, error)
}

type ConversationStore interface {
	Create(ctx context.Context, conv *model.Conversation) error
	GetByID(ctx context.Context, id int64) (*model.Conversation, error)
	AddParticipant(ctx context.Context, conversationID, userID int64) error
	GetParticipant(ctx context.Context, conversationID, userID int64) (*model.Participant, error)
	ListParticipants(ctx context.Context, conversationID int64) ([]model.Participant, error)
	FindDirect(ctx context.Context, userA, userB int64) (int64, error)
	ListForUser(ctx context.Context, userID int64) ([]model.Conversation, error)
	Touch(ctx context.Context, conversationID int64, at time.Time) error
	MarkRead(ctx context.Context, conversationID, userID, messageID int64) (int64, error)
	LatestMessageID(ctx context.Context, conversationID int64) (int64, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

type MessageStore interface {
	Create(ctx context.Context, msg *model.Message) error
	ListAfter(ctx context.Context, conversationID, afterID int64, limit int32) ([]model.Message, error)
	ListBefore(ctx context.Context, conversationID int64, beforeID *int64, limit int32) ([]model.Message, error)
}

type OfficeHourStore interface {
	CreateSlot(ctx context.Context, slot *model.OfficeHourSlot) error
	GetSlot(ctx context.Context, id int64) (*model.OfficeHourSlot, error)
	// GetSlotForUpdate locks the slot row until the surrounding transaction ends.
	GetSlotForUpdate(ctx context.Context, id int64) (*model.OfficeHourSlot, error)
	UpdateSlot(ctx context.Context, slot *model.OfficeHourSlot) error
	// SetSlotStatus clears calendar_event_id unless the new status is confirmed.
	SetSlotStatus(ctx context.Context, id int64, status model.SlotStatus) (*model.OfficeHourSlot, error)
	SetSlotCalendarEvent(ctx context.Context, id int64, eventID *string) error
	DeleteSlot(ctx context.Context, id int64) error
	CountOverlapping(ctx context.Context, hostID int64, startsAt, endsAt time.Time, excludeID *int64) (int64, error)
	ListAvailable(ctx context.Context, filter model.SlotFilter) ([]model.OfficeHourSlot, error)
	ListByHost(ctx context.Context, hostID int64, limit int32) ([]model.OfficeHourSlot, error)
	ListEndedWithStatus(ctx context.Context, status model.SlotStatus, endedBefore time.Time, limit int32) ([]model.OfficeHourSlot, error)
	CountUpcomingAvailable(ctx context.Context) (int64, error)

	CreateRequest(ctx context.Context, req *model.OfficeHourRequest) error
	GetRequest(ctx context.Context, id int64) (*model.OfficeHourRequest, error)
	GetRequestForUpdate(ctx context.Context, id int64) (*model.OfficeHourRequest, error)
	GetActiveRequestForSlot(ctx context.Context, slotID int64) (*model.OfficeHourRequest, error)
	SetRequestStatus(ctx context.Context, id int64, status model.RequestStatus, hostNote *string) (*model.OfficeHourRequest, error)
	ListRequestsByRequester(ctx context.Context, requesterID int64, limit int32) ([]model.OfficeHourRequest, error)
	ListRequestsForHost(ctx context.Context, hostID int64, limit int32) ([]model.OfficeHourRequest, error)
	CountPendingRequests(ctx context.Context) (int64, error)
}
