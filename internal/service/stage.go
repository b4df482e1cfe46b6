package service

import (
	"context"
	"fmt"

	"organizame.app/api/common/id"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/store"
)

type StageService interface {
	Create(ctx context.Context, ownerUID string, boardID int64, name string, position int32, color string) (*model.Stage, error)
	Get(ctx context.Context, id int64, ownerUID string) (*model.Stage, error)
	List(ctx context.Context, ownerUID string, boardID *int64) ([]model.Stage, error)
	Update(ctx context.Context, id int64, ownerUID string, patch model.StagePatch) (*model.Stage, error)
	Delete(ctx context.Context, id int64, ownerUID string) error
}

type stageService struct {
	stageStore store.StageStore
	txRunner   TxRunner
}

func NewStageService(stageStore store.StageStore, txRunner TxRunner) StageService {
	return &stageService{stageStore: stageStore, txRunner: txRunner}
}

func (s *stageService) Create(ctx context.Context, ownerUID string, boardID int64, name string, position int32, color string) (*model.Stage, error) {
	stage := &model.Stage{
		ID:       id.New(),
		Name:     name,
		BoardID:  boardID,
		Position: position,
		Color:    color,
	}

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Boards().GetForOwner(ctx, boardID, ownerUID); err != nil {
			return err
		}
		if err := stores.Stages().Create(ctx, stage); err != nil {
			return fmt.Errorf("creating stage: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stage, nil
}

func (s *stageService) Get(ctx context.Context, id int64, ownerUID string) (*model.Stage, error) {
	return s.stageStore.GetForOwner(ctx, id, ownerUID)
}

func (s *stageService) List(ctx context.Context, ownerUID string, boardID *int64) ([]model.Stage, error) {
	if boardID != nil {
		return s.stageStore.ListByBoardForOwner(ctx, *boardID, ownerUID)
	}
	return s.stageStore.ListForOwner(ctx, ownerUID)
}

func (s *stageService) Update(ctx context.Context, id int64, ownerUID string, patch model.StagePatch) (*model.Stage, error) {
	var updated *model.Stage

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		stage, err := stores.Stages().GetForOwner(ctx, id, ownerUID)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			stage.Name = *patch.Name
		}
		if patch.Position != nil {
			stage.Position = *patch.Position
		}
		if patch.Color != nil {
			stage.Color = *patch.Color
		}

		if err := stores.Stages().Update(ctx, stage); err != nil {
			return fmt.Errorf("updating stage: %w", err)
		}

		updated = stage
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *stageService) Delete(ctx context.Context, id int64, ownerUID string) error {
	return s.stageStore.DeleteForOwner(ctx, id, ownerUID)
}
