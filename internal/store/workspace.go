package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"organizame.app/api/core/db/sqlc"
	"organizame.app/api/internal/model"
)

type workspaceStore struct {
	queries *sqlc.Queries
}

func newWorkspaceStore(queries *sqlc.Queries) WorkspaceStore {
	return &workspaceStore{queries: queries}
}

func (s *workspaceStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspaceForOwner(ctx, sqlc.GetWorkspaceForOwnerParams{
		ID:       id,
		OwnerUid: ownerUID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Workspace, error) {
	rows, err := s.queries.ListWorkspacesForOwner(ctx, ownerUID)
	if err != nil {
		return nil, err
	}
	return toWorkspaceModels(rows), nil
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.CreateWorkspace(ctx, sqlc.CreateWorkspaceParams{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
		OwnerUid:    ws.OwnerUID,
	})
	if err != nil {
		return err
	}
	*ws = *toWorkspaceModel(row)
	return nil
}

func (s *workspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.UpdateWorkspace(ctx, sqlc.UpdateWorkspaceParams{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*ws = *toWorkspaceModel(row)
	return nil
}

func (s *workspaceStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	rows, err := s.queries.DeleteWorkspaceForOwner(ctx, sqlc.DeleteWorkspaceForOwnerParams{
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

func toWorkspaceModel(row sqlc.Workspace) *model.Workspace {
	return &model.Workspace{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		OwnerUID:    row.OwnerUid,
		CreatedAt:   row.CreatedAt.Time,
	}
}

func toWorkspaceModels(rows []sqlc.Workspace) []model.Workspace {
	result := make([]model.Workspace, len(rows))
	for i, row := range rows {
		result[i] = *toWorkspaceModel(row)
	}
	return result
}
