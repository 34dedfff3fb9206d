package store

import (
	"context"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/db/sqlc"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

type batchStore struct {
	queries *sqlc.Queries
}

func newBatchStore(queries *sqlc.Queries) BatchStore {
	return &batchStore{queries: queries}
}

func (s *batchStore) GetByID(ctx context.Context, id int64) (*model.Batch, error) {
	row, err := s.queries.GetBatch(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toBatchModel(row), nil
}

func (s *batchStore) GetBySlug(ctx context.Context, slug string) (*model.Batch, error) {
	row, err := s.queries.GetBatchBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err)
	}
	return toBatchModel(row), nil
}

func (s *batchStore) Create(ctx context.Context, batch *model.Batch) error {
	row, err := s.queries.CreateBatch(ctx, sqlc.CreateBatchParams{
		ID:          batch.ID,
		Name:        batch.Name,
		Slug:        batch.Slug,
		Description: batch.Description,
		StartsOn:    date(batch.StartsOn),
		EndsOn:      date(batch.EndsOn),
		Status:      string(batch.Status),
	})
	if err != nil {
		return translate(err)
	}
	*batch = *toBatchModel(row)
	return nil
}

func (s *batchStore) Update(ctx context.Context, batch *model.Batch) error {
	row, err := s.queries.UpdateBatch(ctx, sqlc.UpdateBatchParams{
		Name:        batch.Name,
		Description: batch.Description,
		StartsOn:    date(batch.StartsOn),
		EndsOn:      date(batch.EndsOn),
		Status:      string(batch.Status),
		ID:          batch.ID,
	})
	if err != nil {
		return translate(err)
	}
	*batch = *toBatchModel(row)
	return nil
}

func (s *batchStore) List(ctx context.Context, includeArchived bool) ([]model.Batch, error) {
	rows, err := s.queries.ListBatches(ctx, includeArchived)
	if err != nil {
		return nil, err
	}
	result := make([]model.Batch, len(rows))
	for i, row := range rows {
		result[i] = *toBatchModel(row)
	}
	return result, nil
}

func (s *batchStore) Count(ctx context.Context) (int64, error) {
	return s.queries.CountBatches(ctx)
}

func toBatchModel(row sqlc.Batch) *model.Batch {
	return &model.Batch{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		StartsOn:    row.StartsOn.Time,
		EndsOn:      row.EndsOn.Time,
		Status:      model.BatchStatus(row.Status),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
