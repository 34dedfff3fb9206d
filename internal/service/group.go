package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/cache"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/id"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

var (
	ErrGroupPrivate    = errors.New("group is private")
	ErrAlreadyMember   = errors.New("already a member of this group")
	ErrNotGroupMember  = errors.New("not a member of this group")
	ErrLastOwner       = errors.New("the last owner cannot leave while other members remain")
	ErrMemberNotActive = errors.New("member not found or inactive")
)

type GroupService interface {
	Create(ctx context.Context, actor *model.User, input model.GroupInput) (*model.Group, error)
	Get(ctx context.Context, actor *model.User, id int64) (*model.Group, error)
	Update(ctx context.Context, actor *model.User, id int64, input model.GroupInput) (*model.Group, error)
	Delete(ctx context.Context, actor *model.User, id int64) error
	List(ctx context.Context, actor *model.User) ([]model.Group, error)
	Join(ctx context.Context, actor *model.User, id int64) (*model.GroupMember, error)
	Leave(ctx context.Context, actor *model.User, id int64) error
	// AddMember lets an owner or admin add someone, including to private groups.
	AddMember(ctx context.Context, actor *model.User, id, userID int64) (*model.GroupMember, error)
	ListMembers(ctx context.Context, actor *model.User, id int64) ([]model.GroupMember, error)
}

// groupService invalidates the feed tag on every write that changes which
// group posts a member can see.
type groupService struct {
	groupStore store.GroupStore
	userStore  store.UserStore
	batchStore store.BatchStore
	txRunner   TxRunner
	cache      cache.Cache
}

func NewGroupService(groupStore store.GroupStore, userStore store.UserStore, batchStore store.BatchStore, txRunner TxRunner, c cache.Cache) GroupService {
	return &groupService{
		groupStore: groupStore,
		userStore:  userStore,
		batchStore: batchStore,
		txRunner:   txRunner,
		cache:      c,
	}
}

func (s *groupService) Create(ctx context.Context, actor *model.User, input model.GroupInput) (*model.Group, error) {
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	slug, err := common.Slugify(input.Name, "group")
	if err != nil {
		return nil, invalidInput("%v", err)
	}
	slug, err = common.UniqueSlug(slug, func(candidate string) (bool, error) {
		_, err := s.groupStore.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return err == nil, err
	})
	if err != nil {
		return nil, fmt.Errorf("choosing group slug: %w", err)
	}

	group := &model.Group{
		ID:          id.New(),
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		BatchID:     input.BatchID,
		IsPrivate:   input.IsPrivate,
		CreatedBy:   actor.ID,
	}

	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Groups().Create(ctx, group); err != nil {
			return fmt.Errorf("creating group: %w", err)
		}
		if _, err := sp.Groups().AddMember(ctx, group.ID, actor.ID, model.GroupRoleOwner); err != nil {
			return fmt.Errorf("adding group owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	group.MemberCount = 1
	group.IsMember = true

	slog.InfoContext(ctx, "group created",
		"group_id", group.ID,
		"slug", group.Slug,
		"private", group.IsPrivate,
		"user_id", actor.ID,
	)
	return group, nil
}

func (s *groupService) Get(ctx context.Context, actor *model.User, id int64) (*model.Group, error) {
	group, member, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	group.IsMember = member != nil

	count, err := s.groupStore.CountMembers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("counting group members: %w", err)
	}
	group.MemberCount = count
	return group, nil
}

func (s *groupService) Update(ctx context.Context, actor *model.User, id int64, input model.GroupInput) (*model.Group, error) {
	group, member, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !isGroupOwner(actor, member) {
		return nil, ErrForbidden
	}

	input.BatchID = group.BatchID
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}
	group.Name = input.Name
	group.Description = input.Description
	group.IsPrivate = input.IsPrivate
	group.IsMember = member != nil

	if err := s.groupStore.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("updating group: %w", err)
	}
	cache.Invalidate(ctx, s.cache, TagFeed)

	slog.InfoContext(ctx, "group updated", "group_id", id, "user_id", actor.ID)
	return group, nil
}

func (s *groupService) Delete(ctx context.Context, actor *model.User, id int64) error {
	_, member, err := s.load(ctx, actor, id)
	if err != nil {
		return err
	}
	if !isGroupOwner(actor, member) {
		return ErrForbidden
	}
	// Deleting the group cascades to its posts.
	if err := s.groupStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}
	cache.Invalidate(ctx, s.cache, TagFeed)

	slog.InfoContext(ctx, "group deleted", "group_id", id, "user_id", actor.ID)
	return nil
}

func (s *groupService) List(ctx context.Context, actor *model.User) ([]model.Group, error) {
	groups, err := s.groupStore.ListVisible(ctx, actor.ID, actor.IsAdmin())
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}
	return groups, nil
}

func (s *groupService) Join(ctx context.Context, actor *model.User, id int64) (*model.GroupMember, error) {
	group, member, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if member != nil {
		return nil, ErrAlreadyMember
	}
	if group.IsPrivate {
		return nil, ErrGroupPrivate
	}

	joined, err := s.groupStore.AddMember(ctx, id, actor.ID, model.GroupRoleMember)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("joining group: %w", err)
	}
	cache.Invalidate(ctx, s.cache, TagFeed)

	slog.InfoContext(ctx, "group joined", "group_id", id, "user_id", actor.ID)
	return joined, nil
}

// Leave checks the last-owner rule with the group row locked so two owners
// leaving together cannot both pass it.
func (s *groupService) Leave(ctx context.Context, actor *model.User, id int64) error {
	if _, _, err := s.load(ctx, actor, id); err != nil {
		return err
	}

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		groups := sp.Groups()
		if _, err := groups.GetForUpdate(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrGroupNotFound
			}
			return fmt.Errorf("locking group: %w", err)
		}

		member, err := groups.GetMember(ctx, id, actor.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotGroupMember
			}
			return fmt.Errorf("getting group membership: %w", err)
		}

		if member.Role == model.GroupRoleOwner {
			owners, err := groups.CountOwners(ctx, id)
			if err != nil {
				return fmt.Errorf("counting group owners: %w", err)
			}
			members, err := groups.CountMembers(ctx, id)
			if err != nil {
				return fmt.Errorf("counting group members: %w", err)
			}
			if owners <= 1 && members > 1 {
				return ErrLastOwner
			}
		}

		removed, err := groups.RemoveMember(ctx, id, actor.ID)
		if err != nil {
			return fmt.Errorf("leaving group: %w", err)
		}
		if !removed {
			return ErrNotGroupMember
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.Invalidate(ctx, s.cache, TagFeed)

	slog.InfoContext(ctx, "group left", "group_id", id, "user_id", actor.ID)
	return nil
}

func (s *groupService) AddMember(ctx context.Context, actor *model.User, id, userID int64) (*model.GroupMember, error) {
	_, member, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !isGroupOwner(actor, member) {
		return nil, ErrForbidden
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMemberNotActive
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrMemberNotActive
	}

	added, err := s.groupStore.AddMember(ctx, id, userID, model.GroupRoleMember)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("adding group member: %w", err)
	}
	cache.Invalidate(ctx, s.cache, TagFeed)

	slog.InfoContext(ctx, "group member added", "group_id", id, "user_id", userID, "actor_id", actor.ID)
	return added, nil
}

func (s *groupService) ListMembers(ctx context.Context, actor *model.User, id int64) ([]model.GroupMember, error) {
	if _, _, err := s.load(ctx, actor, id); err != nil {
		return nil, err
	}
	members, err := s.groupStore.ListMembers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing group members: %w", err)
	}
	return members, nil
}

// load fetches the group and the actor's membership. Private groups are
// reported as missing to non-members.
func (s *groupService) load(ctx context.Context, actor *model.User, id int64) (*model.Group, *model.GroupMember, error) {
	group, err := s.groupStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrGroupNotFound
		}
		return nil, nil, fmt.Errorf("getting group: %w", err)
	}

	member, err := s.groupStore.GetMember(ctx, id, actor.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, nil, fmt.Errorf("getting group membership: %w", err)
		}
		member = nil
	}

	if group.IsPrivate && member == nil && !actor.IsAdmin() {
		return nil, nil, ErrGroupNotFound
	}
	return group, member, nil
}

func (s *groupService) validate(ctx context.Context, input *model.GroupInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return invalidInput("name is required")
	}
	if len(input.Name) > 100 {
		return invalidInput("name must be at most 100 characters")
	}
	if input.BatchID != nil {
		if _, err := s.batchStore.GetByID(ctx, *input.BatchID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrBatchNotFound
			}
			return fmt.Errorf("getting batch: %w", err)
		}
	}
	return nil
}

func isGroupOwner(actor *model.User, member *model.GroupMember) bool {
	return actor.IsAdmin() || (member != nil && member.Role == model.GroupRoleOwner)
}
