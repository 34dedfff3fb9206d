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

type CompanyService interface {
	Create(ctx context.Context, input model.CompanyInput) (*model.Company, error)
	// Update is allowed for admins and for founders of the company.
	Update(ctx context.Context, actor *model.User, id int64, input model.CompanyInput) (*model.Company, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*model.Company, error)
	List(ctx context.Context, batchID *int64) ([]model.Company, error)
}

type companyService struct {
	companyStore store.CompanyStore
	batchStore   store.BatchStore
	userStore    store.UserStore
	cache        cache.Cache
}

func NewCompanyService(companyStore store.CompanyStore, batchStore store.BatchStore, userStore store.UserStore, c cache.Cache) CompanyService {
	return &companyService{
		companyStore: companyStore,
		batchStore:   batchStore,
		userStore:    userStore,
		cache:        c,
	}
}

func (s *companyService) Create(ctx context.Context, input model.CompanyInput) (*model.Company, error) {
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	slug, err := common.Slugify(input.Name, "company")
	if err != nil {
		return nil, invalidInput("%v", err)
	}
	slug, err = common.UniqueSlug(slug, func(candidate string) (bool, error) {
		_, err := s.companyStore.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return err == nil, err
	})
	if err != nil {
		return nil, fmt.Errorf("choosing company slug: %w", err)
	}

	company := &model.Company{
		ID:       id.New(),
		Name:     input.Name,
		Slug:     slug,
		OneLiner: input.OneLiner,
		Website:  input.Website,
		LogoURL:  input.LogoURL,
		BatchID:  input.BatchID,
	}
	if err := s.companyStore.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("creating company: %w", err)
	}

	slog.InfoContext(ctx, "company created", "company_id", company.ID, "slug", company.Slug)
	return company, nil
}

func (s *companyService) Update(ctx context.Context, actor *model.User, id int64, input model.CompanyInput) (*model.Company, error) {
	company, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canEditCompany(actor, company) {
		return nil, ErrForbidden
	}
	// Founders cannot move their company between batches.
	if !actor.IsAdmin() {
		input.BatchID = company.BatchID
	}
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	company.Name = input.Name
	company.OneLiner = input.OneLiner
	company.Website = input.Website
	company.LogoURL = input.LogoURL
	company.BatchID = input.BatchID
	if err := s.companyStore.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("updating company: %w", err)
	}

	cache.Invalidate(ctx, s.cache, TagDirectory)
	slog.InfoContext(ctx, "company updated", "company_id", id, "actor_id", actor.ID)
	return company, nil
}

func (s *companyService) Delete(ctx context.Context, id int64) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.companyStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}

	cache.Invalidate(ctx, s.cache, TagDirectory)
	slog.InfoContext(ctx, "company deleted", "company_id", id)
	return nil
}

func (s *companyService) Get(ctx context.Context, id int64) (*model.Company, error) {
	company, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	founders, err := s.userStore.ListByCompany(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing founders: %w", err)
	}
	company.Founders = founders
	return company, nil
}

func (s *companyService) List(ctx context.Context, batchID *int64) ([]model.Company, error) {
	companies, err := s.companyStore.List(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	return companies, nil
}

func (s *companyService) get(ctx context.Context, id int64) (*model.Company, error) {
	company, err := s.companyStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("getting company: %w", err)
	}
	return company, nil
}

func (s *companyService) validate(ctx context.Context, input *model.CompanyInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return invalidInput("name is required")
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

func canEditCompany(actor *model.User, company *model.Company) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.Role == model.RoleFounder && actor.CompanyID != nil && *actor.CompanyID == company.ID
}
