package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/cache"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/id"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/queue"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

const (
	InviteTokenLength = 32
	InviteExpiryDays  = 7
)

var (
	ErrInviteNotFound      = errors.New("invitation not found")
	ErrInviteExpired       = errors.New("invitation has expired")
	ErrInviteAlreadyUsed   = errors.New("invitation has already been used")
	ErrInviteRevoked       = errors.New("invitation has been revoked")
	ErrEmailMismatch       = errors.New("authenticated email does not match invitation")
	ErrInvitePendingExists = errors.New("a pending invitation already exists for this email")
	ErrUserAlreadyMember   = errors.New("a member with this email already exists")
)

type InvitationInput struct {
	Email   string
	Role    model.Role
	BatchID *int64
}

type InvitationService interface {
	Create(ctx context.Context, actor *model.User, input InvitationInput) (*model.Invitation, string, error)
	ValidateToken(ctx context.Context, token string) (*model.Invitation, error)
	GetByToken(ctx context.Context, token string) (*model.Invitation, error)
	// Accept consumes the invitation and applies its role and batch to user.
	Accept(ctx context.Context, token string, user *model.User) (*model.Invitation, error)
	Revoke(ctx context.Context, id int64) (*model.Invitation, error)
	List(ctx context.Context, limit, offset int32) ([]model.Invitation, error)
	ListPending(ctx context.Context) ([]model.Invitation, error)
}

type invitationService struct {
	invStore     store.InvitationStore
	userStore    store.UserStore
	batchStore   store.BatchStore
	txRunner     TxRunner
	notifier     *notifier
	cache        cache.Cache
	dashboardURL string
}

func NewInvitationService(
	invStore store.InvitationStore,
	userStore store.UserStore,
	batchStore store.BatchStore,
	txRunner TxRunner,
	producer queue.Producer,
	c cache.Cache,
	dashboardURL string,
) InvitationService {
	return &invitationService{
		invStore:     invStore,
		userStore:    userStore,
		batchStore:   batchStore,
		txRunner:     txRunner,
		notifier:     newNotifier(producer),
		cache:        c,
		dashboardURL: dashboardURL,
	}
}

func (s *invitationService) Create(ctx context.Context, actor *model.User, input InvitationInput) (*model.Invitation, string, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, "", invalidInput("email is required")
	}
	if input.Role == "" {
		input.Role = model.RoleFounder
	}
	if !input.Role.IsValid() {
		return nil, "", invalidInput("unknown role %q", input.Role)
	}

	if input.BatchID != nil {
		if _, err := s.batchStore.GetByID(ctx, *input.BatchID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, "", ErrBatchNotFound
			}
			return nil, "", fmt.Errorf("getting batch: %w", err)
		}
	}

	if existing, err := s.userStore.GetByEmail(ctx, email); err == nil && existing.IsActive {
		return nil, "", ErrUserAlreadyMember
	} else if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, "", fmt.Errorf("checking existing user: %w", err)
	}

	existing, err := s.invStore.GetByEmail(ctx, email)
	if err == nil && existing != nil && existing.IsValid() {
		return nil, "", ErrInvitePendingExists
	}

	token, err := generateSecureToken(InviteTokenLength)
	if err != nil {
		return nil, "", fmt.Errorf("generating token: %w", err)
	}

	inv := &model.Invitation{
		ID:        id.New(),
		Email:     email,
		Token:     token,
		Status:    model.InvitationStatusPending,
		Role:      input.Role,
		BatchID:   input.BatchID,
		ExpiresAt: time.Now().Add(InviteExpiryDays * 24 * time.Hour),
	}
	if actor != nil && !actor.IsSystem() {
		inv.InvitedBy = &actor.ID
	}

	if err := s.invStore.Create(ctx, inv); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, "", ErrInvitePendingExists
		}
		return nil, "", fmt.Errorf("creating invitation: %w", err)
	}

	inviteURL := fmt.Sprintf("%s/invite?token=%s", s.dashboardURL, url.QueryEscape(token))

	slog.InfoContext(ctx, "invitation created",
		"invitation_id", inv.ID,
		"email", email,
		"role", inv.Role,
		"expires_at", inv.ExpiresAt,
	)

	s.notifier.invitation(ctx, inv, inviteURL)

	return inv, inviteURL, nil
}

func (s *invitationService) ValidateToken(ctx context.Context, token string) (*model.Invitation, error) {
	inv, err := s.invStore.GetValidByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Look the token up again to report why it is unusable.
			inv, err := s.invStore.GetByToken(ctx, token)
			if err != nil {
				return nil, ErrInviteNotFound
			}
			switch inv.Status {
			case model.InvitationStatusAccepted:
				return nil, ErrInviteAlreadyUsed
			case model.InvitationStatusRevoked:
				return nil, ErrInviteRevoked
			case model.InvitationStatusExpired:
				return nil, ErrInviteExpired
			default:
				if time.Now().After(inv.ExpiresAt) {
					return nil, ErrInviteExpired
				}
				return nil, ErrInviteNotFound
			}
		}
		return nil, fmt.Errorf("getting invitation: %w", err)
	}

	return inv, nil
}

func (s *invitationService) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	inv, err := s.invStore.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("getting invitation: %w", err)
	}
	return inv, nil
}

func (s *invitationService) Accept(ctx context.Context, token string, user *model.User) (*model.Invitation, error) {
	inv, err := s.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if normalizeEmail(inv.Email) != normalizeEmail(user.Email) {
		slog.WarnContext(ctx, "email mismatch on invitation acceptance",
			"invitation_email", inv.Email,
			"user_email", user.Email,
			"invitation_id", inv.ID,
		)
		return nil, ErrEmailMismatch
	}

	var accepted *model.Invitation
	updated := *user
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		accepted, err = sp.Invitations().Accept(ctx, inv.ID, user.ID)
		if err != nil {
			return fmt.Errorf("accepting invitation: %w", err)
		}

		updated.Role = inv.Role
		if inv.BatchID != nil {
			updated.BatchID = inv.BatchID
		}
		if err := sp.Users().UpdateMembership(ctx, &updated); err != nil {
			return fmt.Errorf("applying invitation membership: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Accepted concurrently.
			return nil, ErrInviteAlreadyUsed
		}
		return nil, err
	}
	*user = updated

	tags := []string{TagDirectory}
	if user.BatchID != nil {
		tags = append(tags, batchTag(*user.BatchID))
	}
	cache.Invalidate(ctx, s.cache, tags...)

	slog.InfoContext(ctx, "invitation accepted",
		"invitation_id", inv.ID,
		"user_id", user.ID,
		"email", user.Email,
		"role", user.Role,
	)

	return accepted, nil
}

func (s *invitationService) Revoke(ctx context.Context, id int64) (*model.Invitation, error) {
	inv, err := s.invStore.Revoke(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("revoking invitation: %w", err)
	}

	slog.InfoContext(ctx, "invitation revoked",
		"invitation_id", id,
		"email", inv.Email,
	)

	return inv, nil
}

func (s *invitationService) List(ctx context.Context, limit, offset int32) ([]model.Invitation, error) {
	return s.invStore.List(ctx, limit, offset)
}

func (s *invitationService) ListPending(ctx context.Context) ([]model.Invitation, error) {
	return s.invStore.ListPending(ctx)
}

func generateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
