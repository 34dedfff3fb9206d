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

type BatchService interface {
	Create(ctx context.Context, input model.BatchInput) (*model.Batch, error)
	Update(ctx context.Context, id int64, input model.BatchInput) (*model.Batch, error)
	Archive(ctx context.Context, id int64) (*model.Batch, error)
	Get(ctx context.Context, id int64) (*model.Batch, error)
	GetBySlug(ctx context.Context, slug string) (*model.Batch, error)
	List(ctx context.Context, includeArchived bool) ([]model.Batch, error)
	ListMembers(ctx context.Context, id int64) ([]model.User, error)
	// Roster collects a batch with its members and their companies for export.
	Roster(ctx context.Context, id int64) (*model.Roster, error)
}

type batchService struct {
	batchStore   store.BatchStore
	userStore    store.UserStore
	companyStore store.CompanyStore
	cache        cache.Cache
}

func NewBatchService(batchStore store.BatchStore, userStore store.UserStore, companyStore store.CompanyStore, c cache.Cache) BatchService {
	return &batchService{
		batchStore:   batchStore,
		userStore:    userStore,
		companyStore: companyStore,
		cache:        c,
	}
}

func (s *batchService) Create(ctx context.Context, input model.BatchInput) (*model.Batch, error) {
	if err := validateBatchInput(&input); err != nil {
		return nil, err
	}

	base := input.Name
	if input.Slug != nil && strings.TrimSpace(*input.Slug) != "" {
		base = *input.Slug
	}
	slug, err := common.Slugify(base, "batch")
	if err != nil {
		return nil, invalidInput("%v", err)
	}
	slug, err = common.UniqueSlug(slug, func(candidate string) (bool, error) {
		_, err := s.batchStore.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return err == nil, err
	})
	if err != nil {
		return nil, fmt.Errorf("choosing batch slug: %w", err)
	}

	batch := &model.Batch{
		ID:          id.New(),
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		StartsOn:    input.StartsOn,
		EndsOn:      input.EndsOn,
		Status:      input.Status,
	}
	if err := s.batchStore.Create(ctx, batch); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, invalidInput("batch slug %q is taken", slug)
		}
		return nil, fmt.Errorf("creating batch: %w", err)
	}

	slog.InfoContext(ctx, "batch created", "batch_id", batch.ID, "slug", batch.Slug)
	return batch, nil
}

func (s *batchService) Update(ctx context.Context, id int64, input model.BatchInput) (*model.Batch, error) {
	batch, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = batch.Status
	}
	if err := validateBatchInput(&input); err != nil {
		return nil, err
	}

	batch.Name = input.Name
	batch.Description = input.Description
	batch.StartsOn = input.StartsOn
	batch.EndsOn = input.EndsOn
	batch.Status = input.Status
	if err := s.batchStore.Update(ctx, batch); err != nil {
		return nil, fmt.Errorf("updating batch: %w", err)
	}

	cache.Invalidate(ctx, s.cache, TagDirectory, batchTag(id))
	slog.InfoContext(ctx, "batch updated", "batch_id", id, "status", batch.Status)
	return batch, nil
}

func (s *batchService) Archive(ctx context.Context, id int64) (*model.Batch, error) {
	batch, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if batch.Status == model.BatchStatusArchived {
		return batch, nil
	}

	batch.Status = model.BatchStatusArchived
	if err := s.batchStore.Update(ctx, batch); err != nil {
		return nil, fmt.Errorf("archiving batch: %w", err)
	}

	cache.Invalidate(ctx, s.cache, TagDirectory, batchTag(id))
	slog.InfoContext(ctx, "batch archived", "batch_id", id)
	return batch, nil
}

func (s *batchService) Get(ctx context.Context, id int64) (*model.Batch, error) {
	batch, err := s.batchStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, fmt.Errorf("getting batch: %w", err)
	}
	count, err := s.userStore.CountByBatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("counting batch members: %w", err)
	}
	batch.MemberCount = count
	return batch, nil
}

func (s *batchService) GetBySlug(ctx context.Context, slug string) (*model.Batch, error) {
	batch, err := s.batchStore.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, fmt.Errorf("getting batch: %w", err)
	}
	return batch, nil
}

func (s *batchService) List(ctx context.Context, includeArchived bool) ([]model.Batch, error) {
	batches, err := s.batchStore.List(ctx, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("listing batches: %w", err)
	}
	return batches, nil
}

func (s *batchService) ListMembers(ctx context.Context, id int64) ([]model.User, error) {
	if _, err := s.batchStore.GetByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, fmt.Errorf("getting batch: %w", err)
	}
	users, err := s.userStore.ListByBatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing batch members: %w", err)
	}
	return users, nil
}

func (s *batchService) Roster(ctx context.Context, id int64) (*model.Roster, error) {
	batch, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	members, err := s.userStore.ListByBatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing batch members: %w", err)
	}
	companies, err := s.companyStore.List(ctx, &id)
	if err != nil {
		return nil, fmt.Errorf("listing batch companies: %w", err)
	}

	roster := &model.Roster{
		Batch:     *batch,
		Members:   members,
		Companies: make(map[int64]model.Company, len(companies)),
	}
	for _, c := range companies {
		roster.Companies[c.ID] = c
	}
	return roster, nil
}

func validateBatchInput(input *model.BatchInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return invalidInput("name is required")
	}
	if input.StartsOn.IsZero() || input.EndsOn.IsZero() {
		return invalidInput("starts_on and ends_on are required")
	}
	if input.EndsOn.Before(input.StartsOn) {
		return invalidInput("ends_on must not be before starts_on")
	}
	if input.Status == "" {
		input.Status = model.BatchStatusUpcoming
	}
	if !input.Status.IsValid() {
		return invalidInput("unknown batch status %q", input.Status)
	}
	return nil
}
