package service

import (
	"context"
	"fmt"

	"organizame.app/api/common/id"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/store"
)

type TagService interface {
	Create(ctx context.Context, ownerUID string, workspaceID int64, name, color string) (*model.Tag, error)
	Get(ctx context.Context, id int64, ownerUID string) (*model.Tag, error)
	List(ctx context.Context, ownerUID string, workspaceID *int64) ([]model.Tag, error)
	Update(ctx context.Context, id int64, ownerUID string, patch model.TagPatch) (*model.Tag, error)
	Delete(ctx context.Context, id int64, ownerUID string) error
}

type tagService struct {
	tagStore store.TagStore
	txRunner TxRunner
}

func NewTagService(tagStore store.TagStore, txRunner TxRunner) TagService {
	return &tagService{tagStore: tagStore, txRunner: txRunner}
}

func (s *tagService) Create(ctx context.Context, ownerUID string, workspaceID int64, name, color string) (*model.Tag, error) {
	tag := &model.Tag{
		ID:          id.New(),
		Name:        name,
		Color:       color,
		WorkspaceID: workspaceID,
	}

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Workspaces().GetForOwner(ctx, workspaceID, ownerUID); err != nil {
			return err
		}
		if err := stores.Tags().Create(ctx, tag); err != nil {
			return fmt.Errorf("creating tag: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) Get(ctx context.Context, id int64, ownerUID string) (*model.Tag, error) {
	return s.tagStore.GetForOwner(ctx, id, ownerUID)
}

func (s *tagService) List(ctx context.Context, ownerUID string, workspaceID *int64) ([]model.Tag, error) {
	if workspaceID != nil {
		return s.tagStore.ListByWorkspaceForOwner(ctx, *workspaceID, ownerUID)
	}
	return s.tagStore.ListForOwner(ctx, ownerUID)
}

func (s *tagService) Update(ctx context.Context, id int64, ownerUID string, patch model.TagPatch) (*model.Tag, error) {
	var updated *model.Tag

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		tag, err := stores.Tags().GetForOwner(ctx, id, ownerUID)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			tag.Name = *patch.Name
		}
		if patch.Color != nil {
			tag.Color = *patch.Color
		}

		if err := stores.Tags().Update(ctx, tag); err != nil {
			return fmt.Errorf("updating tag: %w", err)
		}

		updated = tag
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *tagService) Delete(ctx context.Context, id int64, ownerUID string) error {
	return s.tagStore.DeleteForOwner(ctx, id, ownerUID)
}
