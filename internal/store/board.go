package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"organizame.app/api/core/db/sqlc"
	"organizame.app/api/internal/model"
)

type boardStore struct {
	queries *sqlc.Queries
}

func newBoardStore(queries *sqlc.Queries) BoardStore {
	return &boardStore{queries: queries}
}

func (s *boardStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Board, error) {
	row, err := s.queries.GetBoardForOwner(ctx, sqlc.GetBoardForOwnerParams{
		ID:       id,
		OwnerUid: ownerUID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toBoardModel(row), nil
}

func (s *boardStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Board, error) {
	rows, err := s.queries.ListBoardsForOwner(ctx, ownerUID)
	if err != nil {
		return nil, err
	}
	return toBoardModels(rows), nil
}

func (s *boardStore) ListByWorkspaceForOwner(ctx context.Context, workspaceID int64, ownerUID string) ([]model.Board, error) {
	rows, err := s.queries.ListBoardsByWorkspaceForOwner(ctx, sqlc.ListBoardsByWorkspaceForOwnerParams{
		OwnerUid:    ownerUID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		return nil, err
	}
	return toBoardModels(rows), nil
}

func (s *boardStore) Create(ctx context.Context, b *model.Board) error {
	row, err := s.queries.CreateBoard(ctx, sqlc.CreateBoardParams{
		ID:          b.ID,
		Name:        b.Name,
		WorkspaceID: b.WorkspaceID,
		Position:    b.Position,
	})
	if err != nil {
		return err
	}
	*b = *toBoardModel(row)
	return nil
}

func (s *boardStore) Update(ctx context.Context, b *model.Board) error {
	row, err := s.queries.UpdateBoard(ctx, sqlc.UpdateBoardParams{
		ID:       b.ID,
		Name:     b.Name,
		Position: b.Position,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*b = *toBoardModel(row)
	return nil
}

func (s *boardStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	rows, err := s.queries.DeleteBoardForOwner(ctx, sqlc.DeleteBoardForOwnerParams{
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

func toBoardModel(row sqlc.Board) *model.Board {
	return &model.Board{
		ID:          row.ID,
		Name:        row.Name,
		WorkspaceID: row.WorkspaceID,
		Position:    row.Position,
		CreatedAt:   row.CreatedAt.Time,
	}
}

func toBoardModels(rows []sqlc.Board) []model.Board {
	result := make([]model.Board, len(rows))
	for i, row := range rows {
		result[i] = *toBoardModel(row)
	}
	return result
}
