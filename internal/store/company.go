package store

import (
	"context"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/db/sqlc"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

type companyStore struct {
	queries *sqlc.Queries
}

func newCompanyStore(queries *sqlc.Queries) CompanyStore {
	return &companyStore{queries: queries}
}

func (s *companyStore) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	row, err := s.queries.GetCompany(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toCompanyModel(row), nil
}

func (s *companyStore) GetBySlug(ctx context.Context, slug string) (*model.Company, error) {
	row, err := s.queries.GetCompanyBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err)
	}
	return toCompanyModel(row), nil
}

func (s *companyStore) Create(ctx context.Context, company *model.Company) error {
	row, err := s.queries.CreateCompany(ctx, sqlc.CreateCompanyParams{
		ID:       company.ID,
		Name:     company.Name,
		Slug:     company.Slug,
		OneLiner: company.OneLiner,
		Website:  company.Website,
		LogoUrl:  company.LogoURL,
		BatchID:  company.BatchID,
	})
	if err != nil {
		return translate(err)
	}
	*company = *toCompanyModel(row)
	return nil
}

func (s *companyStore) Update(ctx context.Context, company *model.Company) error {
	row, err := s.queries.UpdateCompany(ctx, sqlc.UpdateCompanyParams{
		Name:     company.Name,
		OneLiner: company.OneLiner,
		Website:  company.Website,
		LogoUrl:  company.LogoURL,
		BatchID:  company.BatchID,
		ID:       company.ID,
	})
	if err != nil {
		return translate(err)
	}
	*company = *toCompanyModel(row)
	return nil
}

func (s *companyStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteCompany(ctx, id)
}

func (s *companyStore) List(ctx context.Context, batchID *int64) ([]model.Company, error) {
	rows, err := s.queries.ListCompanies(ctx, batchID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Company, len(rows))
	for i, row := range rows {
		result[i] = *toCompanyModel(row)
	}
	return result, nil
}

func toCompanyModel(row sqlc.Company) *model.Company {
	return &model.Company{
		ID:        row.ID,
		Name:      row.Name,
		Slug:      row.Slug,
		OneLiner:  row.OneLiner,
		Website:   row.Website,
		LogoURL:   row.LogoUrl,
		BatchID:   row.BatchID,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
