package store

import (
	"context"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/db/sqlc"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

type invitationStore struct {
	queries *sqlc.Queries
}

func newInvitationStore(queries *sqlc.Queries) InvitationStore {
	return &invitationStore{queries: queries}
}

func (s *invitationStore) Create(ctx context.Context, inv *model.Invitation) error {
	row, err := s.queries.CreateInvitation(ctx, sqlc.CreateInvitationParams{
		ID:        inv.ID,
		Email:     inv.Email,
		Token:     inv.Token,
		Status:    string(inv.Status),
		Role:      string(inv.Role),
		BatchID:   inv.BatchID,
		InvitedBy: inv.InvitedBy,
		ExpiresAt: ts(inv.ExpiresAt),
	})
	if err != nil {
		return translate(err)
	}
	*inv = *toInvitationModel(row)
	return nil
}

func (s *invitationStore) GetByID(ctx context.Context, id int64) (*model.Invitation, error) {
	row, err := s.queries.GetInvitationByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	row, err := s.queries.GetInvitationByToken(ctx, token)
	if err != nil {
		return nil, translate(err)
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) GetValidByToken(ctx context.Context, token string) (*model.Invitation, error) {
	row, err := s.queries.GetValidInvitationByToken(ctx, token)
	if err != nil {
		return nil, translate(err)
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) GetByEmail(ctx context.Context, email string) (*model.Invitation, error) {
	row, err := s.queries.GetInvitationByEmail(ctx, email)
	if err != nil {
		return nil, translate(err)
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) Accept(ctx context.Context, id int64, userID int64) (*model.Invitation, error) {
	row, err := s.queries.AcceptInvitation(ctx, sqlc.AcceptInvitationParams{
		AcceptedBy: &userID,
		ID:         id,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) Revoke(ctx context.Context, id int64) (*model.Invitation, error) {
	row, err := s.queries.RevokeInvitation(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) List(ctx context.Context, limit, offset int32) ([]model.Invitation, error) {
	rows, err := s.queries.ListInvitations(ctx, sqlc.ListInvitationsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return toInvitationModels(rows), nil
}

func (s *invitationStore) ListPending(ctx context.Context) ([]model.Invitation, error) {
	rows, err := s.queries.ListPendingInvitations(ctx)
	if err != nil {
		return nil, err
	}
	return toInvitationModels(rows), nil
}

func (s *invitationStore) ExpireOld(ctx context.Context) (int64, error) {
	return s.queries.ExpireOldInvitations(ctx)
}

func toInvitationModel(row sqlc.Invitation) *model.Invitation {
	return &model.Invitation{
		ID:         row.ID,
		Email:      row.Email,
		Token:      row.Token,
		Status:     model.InvitationStatus(row.Status),
		Role:       model.Role(row.Role),
		BatchID:    row.BatchID,
		InvitedBy:  row.InvitedBy,
		AcceptedBy: row.AcceptedBy,
		ExpiresAt:  row.ExpiresAt.Time,
		CreatedAt:  row.CreatedAt.Time,
		AcceptedAt: fromOptTS(row.AcceptedAt),
	}
}

func toInvitationModels(rows []sqlc.Invitation) []model.Invitation {
	result := make([]model.Invitation, len(rows))
	for i, row := range rows {
		result[i] = *toInvitationModel(row)
	}
	return result
}
