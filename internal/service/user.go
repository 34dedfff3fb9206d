package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/cache"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

// Cache tags.
const (
	TagDirectory = "directory"
	TagFeed      = "feed"
)

func batchTag(batchID int64) string {
	return fmt.Sprintf("batch:%d", batchID)
}

const (
	DefaultMemberLimit = 50
	MaxMemberLimit     = 100
)

var ErrCannotDeactivateSelf = errors.New("cannot deactivate your own account")

type UserService interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetProfile(ctx context.Context, id int64) (*model.MemberProfile, error)
	ListMembers(ctx context.Context, filter model.MemberFilter) (*model.MemberPage, error)
	// ListAll includes deactivated users.
	ListAll(ctx context.Context, filter model.MemberFilter) (*model.MemberPage, error)
	UpdateProfile(ctx context.Context, user *model.User, update model.ProfileUpdate) (*model.User, error)
	UpdateMembership(ctx context.Context, id int64, update model.MembershipUpdate) (*model.User, error)
	Deactivate(ctx context.Context, actor *model.User, id int64) (*model.User, error)
	Reactivate(ctx context.Context, id int64) (*model.User, error)
}

type userService struct {
	userStore    store.UserStore
	batchStore   store.BatchStore
	companyStore store.CompanyStore
	txRunner     TxRunner
	cache        cache.Cache
	cacheTTL     time.Duration
}

func NewUserService(
	userStore store.UserStore,
	batchStore store.BatchStore,
	companyStore store.CompanyStore,
	txRunner TxRunner,
	c cache.Cache,
	cacheTTL time.Duration,
) UserService {
	return &userService{
		userStore:    userStore,
		batchStore:   batchStore,
		companyStore: companyStore,
		txRunner:     txRunner,
		cache:        c,
		cacheTTL:     cacheTTL,
	}
}

func (s *userService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userStore.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, id int64) (*model.MemberProfile, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserNotFound
	}

	profile := &model.MemberProfile{User: *user}
	if user.CompanyID != nil {
		company, err := s.companyStore.GetByID(ctx, *user.CompanyID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("getting company: %w", err)
		}
		profile.Company = company
	}
	if user.BatchID != nil {
		batch, err := s.batchStore.GetByID(ctx, *user.BatchID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("getting batch: %w", err)
		}
		profile.Batch = batch
	}
	return profile, nil
}

func (s *userService) ListMembers(ctx context.Context, filter model.MemberFilter) (*model.MemberPage, error) {
	filter.IncludeInactive = false
	filter = normalizeMemberFilter(filter)

	tags := []string{TagDirectory}
	if filter.BatchID != nil {
		tags = append(tags, batchTag(*filter.BatchID))
	}

	return cache.Remember(ctx, s.cache, memberCacheKey(filter), s.cacheTTL, tags, func() (*model.MemberPage, error) {
		return s.listMembers(ctx, filter)
	})
}

func (s *userService) ListAll(ctx context.Context, filter model.MemberFilter) (*model.MemberPage, error) {
	filter.IncludeInactive = true
	return s.listMembers(ctx, normalizeMemberFilter(filter))
}

func (s *userService) listMembers(ctx context.Context, filter model.MemberFilter) (*model.MemberPage, error) {
	members, err := s.userStore.ListMembers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	total, err := s.userStore.CountMembers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("counting members: %w", err)
	}
	if members == nil {
		members = []model.Member{}
	}
	return &model.MemberPage{
		Members: members,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, user *model.User, update model.ProfileUpdate) (*model.User, error) {
	updated := *user
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, invalidInput("name cannot be empty")
		}
		updated.Name = name
	}
	updated.Title = mergeOptional(updated.Title, update.Title)
	updated.Bio = mergeOptional(updated.Bio, update.Bio)
	updated.Location = mergeOptional(updated.Location, update.Location)
	updated.LinkedInURL = mergeOptional(updated.LinkedInURL, update.LinkedInURL)
	updated.TwitterURL = mergeOptional(updated.TwitterURL, update.TwitterURL)
	updated.AvatarURL = mergeOptional(updated.AvatarURL, update.AvatarURL)

	if err := s.userStore.UpdateProfile(ctx, &updated); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	s.invalidateMember(ctx, &updated)
	slog.InfoContext(ctx, "profile updated", "user_id", updated.ID)
	return &updated, nil
}

func (s *userService) UpdateMembership(ctx context.Context, id int64, update model.MembershipUpdate) (*model.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousBatch := user.BatchID

	if update.Role != nil {
		if !update.Role.IsValid() {
			return nil, invalidInput("unknown role %q", *update.Role)
		}
		user.Role = *update.Role
	}
	switch {
	case update.ClearBatch:
		user.BatchID = nil
	case update.BatchID != nil:
		if _, err := s.batchStore.GetByID(ctx, *update.BatchID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrBatchNotFound
			}
			return nil, fmt.Errorf("getting batch: %w", err)
		}
		user.BatchID = update.BatchID
	}
	switch {
	case update.ClearCompany:
		user.CompanyID = nil
	case update.CompanyID != nil:
		if _, err := s.companyStore.GetByID(ctx, *update.CompanyID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, fmt.Errorf("getting company: %w", err)
		}
		user.CompanyID = update.CompanyID
	}

	if err := s.userStore.UpdateMembership(ctx, user); err != nil {
		return nil, fmt.Errorf("updating membership: %w", err)
	}

	if previousBatch != nil {
		cache.Invalidate(ctx, s.cache, batchTag(*previousBatch))
	}
	s.invalidateMember(ctx, user)

	slog.InfoContext(ctx, "membership updated",
		"user_id", user.ID,
		"role", user.Role,
		"batch_id", user.BatchID,
		"company_id", user.CompanyID,
	)
	return user, nil
}

func (s *userService) Deactivate(ctx context.Context, actor *model.User, id int64) (*model.User, error) {
	if actor != nil && actor.ID == id {
		return nil, ErrCannotDeactivateSelf
	}

	var user *model.User
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		user, err = sp.Users().SetActive(ctx, id, false)
		if err != nil {
			return err
		}
		return sp.Sessions().DeleteByUser(ctx, id)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("deactivating user: %w", err)
	}

	s.invalidateMember(ctx, user)
	slog.InfoContext(ctx, "user deactivated", "user_id", id)
	return user, nil
}

func (s *userService) Reactivate(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userStore.SetActive(ctx, id, true)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("reactivating user: %w", err)
	}

	s.invalidateMember(ctx, user)
	slog.InfoContext(ctx, "user reactivated", "user_id", id)
	return user, nil
}

func (s *userService) invalidateMember(ctx context.Context, user *model.User) {
	tags := []string{TagDirectory, TagFeed}
	if user.BatchID != nil {
		tags = append(tags, batchTag(*user.BatchID))
	}
	cache.Invalidate(ctx, s.cache, tags...)
}

func normalizeMemberFilter(filter model.MemberFilter) model.MemberFilter {
	if filter.Limit <= 0 {
		filter.Limit = DefaultMemberLimit
	}
	if filter.Limit > MaxMemberLimit {
		filter.Limit = MaxMemberLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Query != nil {
		q := strings.TrimSpace(*filter.Query)
		if q == "" {
			filter.Query = nil
		} else {
			filter.Query = &q
		}
	}
	return filter
}

func memberCacheKey(filter model.MemberFilter) string {
	var b strings.Builder
	b.WriteString("members")
	if filter.BatchID != nil {
		fmt.Fprintf(&b, ":b%d", *filter.BatchID)
	}
	if filter.CompanyID != nil {
		fmt.Fprintf(&b, ":c%d", *filter.CompanyID)
	}
	if filter.Role != nil {
		fmt.Fprintf(&b, ":r%s", *filter.Role)
	}
	if filter.Query != nil {
		fmt.Fprintf(&b, ":q%s", strings.ToLower(*filter.Query))
	}
	fmt.Fprintf(&b, ":%d:%d", filter.Limit, filter.Offset)
	return b.String()
}

// mergeOptional applies a profile edit. A pointer to an empty string clears the field.
func mergeOptional(current, update *string) *string {
	if update == nil {
		return current
	}
	v := strings.TrimSpace(*update)
	if v == "" {
		return nil
	}
	return &v
}
