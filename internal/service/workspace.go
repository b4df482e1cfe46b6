package service

import (
	"context"
	"fmt"

	"organizame.app/api/common/id"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/store"
)

type WorkspaceService interface {
	Create(ctx context.Context, ownerUID, name string, description *string) (*model.Workspace, error)
	Get(ctx context.Context, id int64, ownerUID string) (*model.Workspace, error)
	List(ctx context.Context, ownerUID string) ([]model.Workspace, error)
	Update(ctx context.Context, id int64, ownerUID string, patch model.WorkspacePatch) (*model.Workspace, error)
	Delete(ctx context.Context, id int64, ownerUID string) error
}

type workspaceService struct {
	workspaceStore store.WorkspaceStore
	txRunner       TxRunner
}

func NewWorkspaceService(workspaceStore store.WorkspaceStore, txRunner TxRunner) WorkspaceService {
	return &workspaceService{workspaceStore: workspaceStore, txRunner: txRunner}
}

func (s *workspaceService) Create(ctx context.Context, ownerUID, name string, description *string) (*model.Workspace, error) {
	ws := &model.Workspace{
		ID:          id.New(),
		Name:        name,
		Description: description,
		OwnerUID:    ownerUID,
	}

	if err := s.workspaceStore.Create(ctx, ws); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	return ws, nil
}

func (s *workspaceService) Get(ctx context.Context, id int64, ownerUID string) (*model.Workspace, error) {
	return s.workspaceStore.GetForOwner(ctx, id, ownerUID)
}

func (s *workspaceService) List(ctx context.Context, ownerUID string) ([]model.Workspace, error) {
	return s.workspaceStore.ListForOwner(ctx, ownerUID)
}

func (s *workspaceService) Update(ctx context.Context, id int64, ownerUID string, patch model.WorkspacePatch) (*model.Workspace, error) {
	var updated *model.Workspace

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		ws, err := stores.Workspaces().GetForOwner(ctx, id, ownerUID)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			ws.Name = *patch.Name
		}
		if patch.Description != nil {
			ws.Description = patch.Description
		}

		if err := stores.Workspaces().Update(ctx, ws); err != nil {
			return fmt.Errorf("updating workspace: %w", err)
		}

		updated = ws
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *workspaceService) Delete(ctx context.Context, id int64, ownerUID string) error {
	return s.workspaceStore.DeleteForOwner(ctx, id, ownerUID)
}
