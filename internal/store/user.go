package store

import (
	"context"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/db/sqlc"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, translate(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByWorkOSID(ctx context.Context, workosID string) (*model.User, error) {
	row, err := s.queries.GetUserByWorkOSID(ctx, workosID)
	if err != nil {
		return nil, translate(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:        user.ID,
		WorkosID:  user.WorkOSID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarUrl: user.AvatarURL,
		Role:      string(user.Role),
		BatchID:   user.BatchID,
		CompanyID: user.CompanyID,
	})
	if err != nil {
		return translate(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) UpdateIdentity(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpdateUserIdentity(ctx, sqlc.UpdateUserIdentityParams{
		WorkosID:  user.WorkOSID,
		Name:      user.Name,
		AvatarUrl: user.AvatarURL,
		ID:        user.ID,
	})
	if err != nil {
		return translate(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) UpdateProfile(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpdateUserProfile(ctx, sqlc.UpdateUserProfileParams{
		Name:        user.Name,
		Title:       user.Title,
		Bio:         user.Bio,
		Location:    user.Location,
		LinkedinUrl: user.LinkedInURL,
		TwitterUrl:  user.TwitterURL,
		AvatarUrl:   user.AvatarURL,
		ID:          user.ID,
	})
	if err != nil {
		return translate(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) UpdateMembership(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpdateUserMembership(ctx, sqlc.UpdateUserMembershipParams{
		Role:      string(user.Role),
		BatchID:   user.BatchID,
		CompanyID: user.CompanyID,
		ID:        user.ID,
	})
	if err != nil {
		return translate(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) SetActive(ctx context.Context, id int64, active bool) (*model.User, error) {
	row, err := s.queries.SetUserActive(ctx, sqlc.SetUserActiveParams{
		IsActive: active,
		ID:       id,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) ListMembers(ctx context.Context, filter model.MemberFilter) ([]model.Member, error) {
	rows, err := s.queries.ListMembers(ctx, sqlc.ListMembersParams{
		IncludeInactive: filter.IncludeInactive,
		BatchID:         filter.BatchID,
		Role:            roleParam(filter.Role),
		CompanyID:       filter.CompanyID,
		Query:           filter.Query,
		Limit:           filter.Limit,
		Offset:          filter.Offset,
	})
	if err != nil {
		return nil, err
	}

	members := make([]model.Member, len(rows))
	for i, row := range rows {
		members[i] = model.Member{
			User: *toUserModel(sqlc.User{
				ID:          row.ID,
				WorkosID:    row.WorkosID,
				Email:       row.Email,
				Name:        row.Name,
				AvatarUrl:   row.AvatarUrl,
				Role:        row.Role,
				BatchID:     row.BatchID,
				CompanyID:   row.CompanyID,
				Title:       row.Title,
				Bio:         row.Bio,
				Location:    row.Location,
				LinkedinUrl: row.LinkedinUrl,
				TwitterUrl:  row.TwitterUrl,
				IsActive:    row.IsActive,
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
			}),
			CompanyName: row.CompanyName,
			BatchName:   row.BatchName,
		}
	}
	return members, nil
}

func (s *userStore) CountMembers(ctx context.Context, filter model.MemberFilter) (int64, error) {
	return s.queries.CountMembers(ctx, sqlc.CountMembersParams{
		IncludeInactive: filter.IncludeInactive,
		BatchID:         filter.BatchID,
		Role:            roleParam(filter.Role),
		CompanyID:       filter.CompanyID,
		Query:           filter.Query,
	})
}

func (s *userStore) ListByBatch(ctx context.Context, batchID int64) ([]model.User, error) {
	rows, err := s.queries.ListUsersByBatch(ctx, &batchID)
	if err != nil {
		return nil, err
	}
	return toUserModels(rows), nil
}

func (s *userStore) ListByCompany(ctx context.Context, companyID int64) ([]model.User, error) {
	rows, err := s.queries.ListUsersByCompany(ctx, &companyID)
	if err != nil {
		return nil, err
	}
	return toUserModels(rows), nil
}

func (s *userStore) CountByBatch(ctx context.Context, batchID int64) (int64, error) {
	return s.queries.CountUsersByBatch(ctx, &batchID)
}

func (s *userStore) CountActiveByRole(ctx context.Context) (map[model.Role]int64, error) {
	rows, err := s.queries.CountActiveUsersByRole(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[model.Role]int64, len(rows))
	for _, row := range rows {
		counts[model.Role(row.Role)] = row.Count
	}
	return counts, nil
}

func roleParam(r *model.Role) *string {
	if r == nil {
		return nil
	}
	s := string(*r)
	return &s
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:          row.ID,
		WorkOSID:    row.WorkosID,
		Email:       row.Email,
		Name:        row.Name,
		AvatarURL:   row.AvatarUrl,
		Role:        model.Role(row.Role),
		BatchID:     row.BatchID,
		CompanyID:   row.CompanyID,
		Title:       row.Title,
		Bio:         row.Bio,
		Location:    row.Location,
		LinkedInURL: row.LinkedinUrl,
		TwitterURL:  row.TwitterUrl,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toUserModels(rows []sqlc.User) []model.User {
	result := make([]model.User, len(rows))
	for i, row := range rows {
		result[i] = *toUserModel(row)
	}
	return result
}
