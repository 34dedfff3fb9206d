package store

import (
	"context"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/db/sqlc"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

type groupStore struct {
	queries *sqlc.Queries
}

func newGroupStore(queries *sqlc.Queries) GroupStore {
	return &groupStore{queries: queries}
}

func (s *groupStore) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	row, err := s.queries.GetGroup(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toGroupModel(row), nil
}

func (s *groupStore) GetForUpdate(ctx context.Context, id int64) (*model.Group, error) {
	row, err := s.queries.GetGroupForUpdate(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toGroupModel(row), nil
}

func (s *groupStore) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	row, err := s.queries.GetGroupBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err)
	}
	return toGroupModel(row), nil
}

func (s *groupStore) Create(ctx context.Context, group *model.Group) error {
	row, err := s.queries.CreateGroup(ctx, sqlc.CreateGroupParams{
		ID:          group.ID,
		Name:        group.Name,
		Slug:        group.Slug,
		Description: group.Description,
		BatchID:     group.BatchID,
		IsPrivate:   group.IsPrivate,
		CreatedBy:   group.CreatedBy,
	})
	if err != nil {
		return translate(err)
	}
	*group = *toGroupModel(row)
	return nil
}

func (s *groupStore) Update(ctx context.Context, group *model.Group) error {
	row, err := s.queries.UpdateGroup(ctx, sqlc.UpdateGroupParams{
		Name:        group.Name,
		Description: group.Description,
		IsPrivate:   group.IsPrivate,
		ID:          group.ID,
	})
	if err != nil {
		return translate(err)
	}
	memberCount, isMember := group.MemberCount, group.IsMember
	*group = *toGroupModel(row)
	group.MemberCount, group.IsMember = memberCount, isMember
	return nil
}

func (s *groupStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteGroup(ctx, id)
}

func (s *groupStore) ListVisible(ctx context.Context, userID int64, isAdmin bool) ([]model.Group, error) {
	rows, err := s.queries.ListVisibleGroups(ctx, sqlc.ListVisibleGroupsParams{
		UserID:  userID,
		IsAdmin: isAdmin,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Group, len(rows))
	for i, row := range rows {
		result[i] = model.Group{
			ID:          row.ID,
			Name:        row.Name,
			Slug:        row.Slug,
			Description: row.Description,
			BatchID:     row.BatchID,
			IsPrivate:   row.IsPrivate,
			CreatedBy:   row.CreatedBy,
			MemberCount: row.MemberCount,
			IsMember:    row.IsMember,
			CreatedAt:   row.CreatedAt.Time,
			UpdatedAt:   row.UpdatedAt.Time,
		}
	}
	return result, nil
}

func (s *groupStore) Count(ctx context.Context) (int64, error) {
	return s.queries.CountGroups(ctx)
}

func (s *groupStore) AddMember(ctx context.Context, groupID, userID int64, role model.GroupRole) (*model.GroupMember, error) {
	row, err := s.queries.AddGroupMember(ctx, sqlc.AddGroupMemberParams{
		GroupID: groupID,
		UserID:  userID,
		Role:    string(role),
	})
	if err != nil {
		return nil, translate(err)
	}
	return toGroupMemberModel(row), nil
}

func (s *groupStore) GetMember(ctx context.Context, groupID, userID int64) (*model.GroupMember, error) {
	row, err := s.queries.GetGroupMember(ctx, sqlc.GetGroupMemberParams{
		GroupID: groupID,
		UserID:  userID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toGroupMemberModel(row), nil
}

func (s *groupStore) RemoveMember(ctx context.Context, groupID, userID int64) (bool, error) {
	n, err := s.queries.RemoveGroupMember(ctx, sqlc.RemoveGroupMemberParams{
		GroupID: groupID,
		UserID:  userID,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *groupStore) ListMembers(ctx context.Context, groupID int64) ([]model.GroupMember, error) {
	rows, err := s.queries.ListGroupMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	result := make([]model.GroupMember, len(rows))
	for i, row := range rows {
		result[i] = model.GroupMember{
			GroupID:   row.GroupID,
			UserID:    row.UserID,
			Role:      model.GroupRole(row.Role),
			Name:      row.Name,
			AvatarURL: row.AvatarUrl,
			Title:     row.Title,
			JoinedAt:  row.JoinedAt.Time,
		}
	}
	return result, nil
}

func (s *groupStore) CountMembers(ctx context.Context, groupID int64) (int64, error) {
	return s.queries.CountGroupMembers(ctx, groupID)
}

func (s *groupStore) CountOwners(ctx context.Context, groupID int64) (int64, error) {
	return s.queries.CountGroupOwners(ctx, groupID)
}

func toGroupModel(row sqlc.CommunityGroup) *model.Group {
	return &model.Group{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		BatchID:     row.BatchID,
		IsPrivate:   row.IsPrivate,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toGroupMemberModel(row sqlc.GroupMember) *model.GroupMember {
	return &model.GroupMember{
		GroupID:  row.GroupID,
		UserID:   row.UserID,
		Role:     model.GroupRole(row.Role),
		JoinedAt: row.JoinedAt.Time,
	}
}
