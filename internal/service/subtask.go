package service

import (
	"context"
	"fmt"

	"organizame.app/api/common/id"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/store"
)

type SubtaskService interface {
	Create(ctx context.Context, ownerUID string, taskID int64, title string, isCompleted bool, position int32) (*model.Subtask, error)
	Get(ctx context.Context, id int64, ownerUID string) (*model.Subtask, error)
	List(ctx context.Context, ownerUID string, taskID *int64) ([]model.Subtask, error)
	Update(ctx context.Context, id int64, ownerUID string, patch model.SubtaskPatch) (*model.Subtask, error)
	Delete(ctx context.Context, id int64, ownerUID string) error
}

type subtaskService struct {
	subtaskStore store.SubtaskStore
	txRunner     TxRunner
}

func NewSubtaskService(subtaskStore store.SubtaskStore, txRunner TxRunner) SubtaskService {
	return &subtaskService{subtaskStore: subtaskStore, txRunner: txRunner}
}

func (s *subtaskService) Create(ctx context.Context, ownerUID string, taskID int64, title string, isCompleted bool, position int32) (*model.Subtask, error) {
	sub := &model.Subtask{
		ID:          id.New(),
		Title:       title,
		TaskID:      taskID,
		IsCompleted: isCompleted,
		Position:    position,
	}

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Tasks().GetForOwner(ctx, taskID, ownerUID); err != nil {
			return err
		}
		if err := stores.Subtasks().Create(ctx, sub); err != nil {
			return fmt.Errorf("creating subtask: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (s *subtaskService) Get(ctx context.Context, id int64, ownerUID string) (*model.Subtask, error) {
	return s.subtaskStore.GetForOwner(ctx, id, ownerUID)
}

func (s *subtaskService) List(ctx context.Context, ownerUID string, taskID *int64) ([]model.Subtask, error) {
	if taskID != nil {
		return s.subtaskStore.ListByTaskForOwner(ctx, *taskID, ownerUID)
	}
	return s.subtaskStore.ListForOwner(ctx, ownerUID)
}

func (s *subtaskService) Update(ctx context.Context, id int64, ownerUID string, patch model.SubtaskPatch) (*model.Subtask, error) {
	var updated *model.Subtask

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		sub, err := stores.Subtasks().GetForOwner(ctx, id, ownerUID)
		if err != nil {
			return err
		}

		if patch.Title != nil {
			sub.Title = *patch.Title
		}
		if patch.IsCompleted != nil {
			sub.IsCompleted = *patch.IsCompleted
		}
		if patch.Position != nil {
			sub.Position = *patch.Position
		}

		if err := stores.Subtasks().Update(ctx, sub); err != nil {
			return fmt.Errorf("updating subtask: %w", err)
		}

		updated = sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *subtaskService) Delete(ctx context.Context, id int64, ownerUID string) error {
	return s.subtaskStore.DeleteForOwner(ctx, id, ownerUID)
}
