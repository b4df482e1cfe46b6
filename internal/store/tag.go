package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"organizame.app/api/core/db/sqlc"
	"organizame.app/api/internal/model"
)

type tagStore struct {
	queries *sqlc.Queries
}

func newTagStore(queries *sqlc.Queries) TagStore {
	return &tagStore{queries: queries}
}

func (s *tagStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Tag, error) {
	row, err := s.queries.GetTagForOwner(ctx, sqlc.GetTagForOwnerParams{
		ID:       id,
		OwnerUid: ownerUID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTagModel(row), nil
}

func (s *tagStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Tag, error) {
	rows, err := s.queries.ListTagsForOwner(ctx, ownerUID)
	if err != nil {
		return nil, err
	}
	return toTagModels(rows), nil
}

func (s *tagStore) ListByWorkspaceForOwner(ctx context.Context, workspaceID int64, ownerUID string) ([]model.Tag, error) {
	rows, err := s.queries.ListTagsByWorkspaceForOwner(ctx, sqlc.ListTagsByWorkspaceForOwnerParams{
		OwnerUid:    ownerUID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		return nil, err
	}
	return toTagModels(rows), nil
}

func (s *tagStore) Create(ctx context.Context, t *model.Tag) error {
	row, err := s.queries.CreateTag(ctx, sqlc.CreateTagParams{
		ID:          t.ID,
		Name:        t.Name,
		Color:       t.Color,
		WorkspaceID: t.WorkspaceID,
	})
	if err != nil {
		return err
	}
	*t = *toTagModel(row)
	return nil
}

func (s *tagStore) Update(ctx context.Context, t *model.Tag) error {
	row, err := s.queries.UpdateTag(ctx, sqlc.UpdateTagParams{
		ID:    t.ID,
		Name:  t.Name,
		Color: t.Color,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*t = *toTagModel(row)
	return nil
}

func (s *tagStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	rows, err := s.queries.DeleteTagForOwner(ctx, sqlc.DeleteTagForOwnerParams{
		ID:       id,
		OwnerUid: ownerUID,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func toTagModel(row sqlc.Tag) *model.Tag {
	return &model.Tag{
		ID:          row.ID,
		Name:        row.Name,
		Color:       row.Color,
		WorkspaceID: row.WorkspaceID,
	}
}

func toTagModels(rows []sqlc.Tag) []model.Tag {
	result := make([]model.Tag, len(rows))
	for i, row := range rows {
		result[i] = *toTagModel(row)
	}
	return result
}
