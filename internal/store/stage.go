package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"organizame.app/api/core/db/sqlc"
	"organizame.app/api/internal/model"
)

type stageStore struct {
	queries *sqlc.Queries
}

func newStageStore(queries *sqlc.Queries) StageStore {
	return &stageStore{queries: queries}
}

func (s *stageStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Stage, error) {
	row, err := s.queries.GetStageForOwner(ctx, sqlc.GetStageForOwnerParams{
		ID:       id,
		OwnerUid: ownerUID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toStageModel(row), nil
}

func (s *stageStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Stage, error) {
	rows, err := s.queries.ListStagesForOwner(ctx, ownerUID)
	if err != nil {
		return nil, err
	}
	return toStageModels(rows), nil
}

func (s *stageStore) ListByBoardForOwner(ctx context.Context, boardID int64, ownerUID string) ([]model.Stage, error) {
	rows, err := s.queries.ListStagesByBoardForOwner(ctx, sqlc.ListStagesByBoardForOwnerParams{
		OwnerUid: ownerUID,
		BoardID:  boardID,
	})
	if err != nil {
		return nil, err
	}
	return toStageModels(rows), nil
}

func (s *stageStore) Create(ctx context.Context, st *model.Stage) error {
	row, err := s.queries.CreateStage(ctx, sqlc.CreateStageParams{
		ID:       st.ID,
		Name:     st.Name,
		BoardID:  st.BoardID,
		Position: st.Position,
		Color:    st.Color,
	})
	if err != nil {
		return err
	}
	*st = *toStageModel(row)
	return nil
}

func (s *stageStore) Update(ctx context.Context, st *model.Stage) error {
	row, err := s.queries.UpdateStage(ctx, sqlc.UpdateStageParams{
		ID:       st.ID,
		Name:     st.Name,
		Position: st.Position,
		Color:    st.Color,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*st = *toStageModel(row)
	return nil
}

func (s *stageStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	rows, err := s.queries.DeleteStageForOwner(ctx, sqlc.DeleteStageForOwnerParams{
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

func toStageModel(row sqlc.Stage) *model.Stage {
	return &model.Stage{
		ID:       row.ID,
		Name:     row.Name,
		BoardID:  row.BoardID,
		Position: row.Position,
		Color:    row.Color,
	}
}

func toStageModels(rows []sqlc.Stage) []model.Stage {
	result := make([]model.Stage, len(rows))
	for i, row := range rows {
		result[i] = *toStageModel(row)
	}
	return result
}
