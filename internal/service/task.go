package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"organizame.app/api/common/id"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/store"
)

// CreateTaskInput carries the fields accepted when creating a task.
type CreateTaskInput struct {
	StageID     int64
	Title       string
	Description *string
	Position    int32
	StartDate   *time.Time
	DueDate     *time.Time
}

type TaskService interface {
	Create(ctx context.Context, ownerUID string, in CreateTaskInput) (*model.Task, error)
	Get(ctx context.Context, id int64, ownerUID string) (*model.Task, error)
	List(ctx context.Context, ownerUID string, stageID *int64) ([]model.Task, error)
	Update(ctx context.Context, id int64, ownerUID string, patch model.TaskPatch) (*model.Task, error)
	Delete(ctx context.Context, id int64, ownerUID string) error
	Move(ctx context.Context, id int64, ownerUID string, placement model.TaskPlacement) (*model.Task, error)
	AddTag(ctx context.Context, taskID, tagID int64, ownerUID string) error
	RemoveTag(ctx context.Context, taskID, tagID int64, ownerUID string) error
	ListTags(ctx context.Context, taskID int64, ownerUID string) ([]model.TagSummary, error)
}

type taskService struct {
	taskStore store.TaskStore
	txRunner  TxRunner
}

func NewTaskService(taskStore store.TaskStore, txRunner TxRunner) TaskService {
	return &taskService{taskStore: taskStore, txRunner: txRunner}
}

func (s *taskService) Create(ctx context.Context, ownerUID string, in CreateTaskInput) (*model.Task, error) {
	task := &model.Task{
		ID:          id.New(),
		Title:       in.Title,
		Description: in.Description,
		StageID:     in.StageID,
		Position:    in.Position,
		StartDate:   in.StartDate,
		DueDate:     in.DueDate,
	}

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Stages().GetForOwner(ctx, in.StageID, ownerUID); err != nil {
			return err
		}
		if err := stores.Tasks().Create(ctx, task); err != nil {
			return fmt.Errorf("creating task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) Get(ctx context.Context, id int64, ownerUID string) (*model.Task, error) {
	return s.taskStore.GetForOwner(ctx, id, ownerUID)
}

// List returns tasks ordered by position, each with its tag summaries.
func (s *taskService) List(ctx context.Context, ownerUID string, stageID *int64) ([]model.Task, error) {
	var tasks []model.Task
	var err error

	if stageID != nil {
		tasks, err = s.taskStore.ListByStageForOwner(ctx, *stageID, ownerUID)
	} else {
		tasks, err = s.taskStore.ListForOwner(ctx, ownerUID)
	}
	if err != nil {
		return nil, err
	}

	if len(tasks) == 0 {
		return tasks, nil
	}

	taskIDs := make([]int64, len(tasks))
	for i, t := range tasks {
		taskIDs[i] = t.ID
	}

	tagsByTask, err := s.taskStore.ListTagsForTasks(ctx, taskIDs)
	if err != nil {
		return nil, fmt.Errorf("listing task tags: %w", err)
	}
	for i := range tasks {
		tasks[i].Tags = tagsByTask[tasks[i].ID]
	}

	return tasks, nil
}

func (s *taskService) Update(ctx context.Context, id int64, ownerUID string, patch model.TaskPatch) (*model.Task, error) {
	var updated *model.Task

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		task, err := stores.Tasks().GetForOwner(ctx, id, ownerUID)
		if err != nil {
			return err
		}

		if patch.Title != nil {
			task.Title = *patch.Title
		}
		if patch.Description != nil {
			task.Description = patch.Description
		}
		if patch.StageID != nil && *patch.StageID != task.StageID {
			if _, err := stores.Stages().GetForOwner(ctx, *patch.StageID, ownerUID); err != nil {
				return err
			}
			task.StageID = *patch.StageID
		}
		if patch.Position != nil {
			task.Position = *patch.Position
		}
		if patch.StartDate != nil {
			task.StartDate = patch.StartDate
		}
		if patch.DueDate != nil {
			task.DueDate = patch.DueDate
		}

		if err := stores.Tasks().Update(ctx, task); err != nil {
			return fmt.Errorf("updating task: %w", err)
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *taskService) Delete(ctx context.Context, id int64, ownerUID string) error {
	return s.taskStore.DeleteForOwner(ctx, id, ownerUID)
}

// Move reassigns a task to a stage at a position, touching nothing else.
// Both the task and the destination stage must belong to the owner.
func (s *taskService) Move(ctx context.Context, id int64, ownerUID string, placement model.TaskPlacement) (*model.Task, error) {
	var moved *model.Task

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Tasks().GetForOwner(ctx, id, ownerUID); err != nil {
			return err
		}
		if _, err := stores.Stages().GetForOwner(ctx, placement.StageID, ownerUID); err != nil {
			return err
		}

		task, err := stores.Tasks().UpdatePlacement(ctx, id, placement)
		if err != nil {
			return fmt.Errorf("moving task: %w", err)
		}

		moved = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return moved, nil
}

// AddTag links a tag to a task. Task and tag ownership are checked
// independently, so a tag may come from another workspace of the same owner.
// Linking an already linked tag is a no-op.
func (s *taskService) AddTag(ctx context.Context, taskID, tagID int64, ownerUID string) error {
	return s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Tasks().GetForOwner(ctx, taskID, ownerUID); err != nil {
			return err
		}
		if _, err := stores.Tags().GetForOwner(ctx, tagID, ownerUID); err != nil {
			return err
		}
		if err := stores.Tasks().AddTag(ctx, taskID, tagID); err != nil {
			return fmt.Errorf("adding tag to task: %w", err)
		}
		return nil
	})
}

// RemoveTag unlinks a tag from a task. Removing a tag that is not linked
// succeeds without effect.
func (s *taskService) RemoveTag(ctx context.Context, taskID, tagID int64, ownerUID string) error {
	return s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Tasks().GetForOwner(ctx, taskID, ownerUID); err != nil {
			return err
		}
		if _, err := stores.Tags().GetForOwner(ctx, tagID, ownerUID); err != nil {
			return err
		}
		if err := stores.Tasks().RemoveTag(ctx, taskID, tagID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("removing tag from task: %w", err)
		}
		return nil
	})
}

func (s *taskService) ListTags(ctx context.Context, taskID int64, ownerUID string) ([]model.TagSummary, error) {
	if _, err := s.taskStore.GetForOwner(ctx, taskID, ownerUID); err != nil {
		return nil, err
	}
	return s.taskStore.ListTags(ctx, taskID)
}
