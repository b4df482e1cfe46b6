package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"organizame.app/api/core/db/sqlc"
	"organizame.app/api/internal/model"
)

type taskStore struct {
	queries *sqlc.Queries
}

func newTaskStore(queries *sqlc.Queries) TaskStore {
	return &taskStore{queries: queries}
}

func (s *taskStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Task, error) {
	row, err := s.queries.GetTaskForOwner(ctx, sqlc.GetTaskForOwnerParams{
		ID:       id,
		OwnerUid: ownerUID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTaskModel(row), nil
}

func (s *taskStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Task, error) {
	rows, err := s.queries.ListTasksForOwner(ctx, ownerUID)
	if err != nil {
		return nil, err
	}
	return toTaskModels(rows), nil
}

func (s *taskStore) ListByStageForOwner(ctx context.Context, stageID int64, ownerUID string) ([]model.Task, error) {
	rows, err := s.queries.ListTasksByStageForOwner(ctx, sqlc.ListTasksByStageForOwnerParams{
		OwnerUid: ownerUID,
		StageID:  stageID,
	})
	if err != nil {
		return nil, err
	}
	return toTaskModels(rows), nil
}

func (s *taskStore) Create(ctx context.Context, t *model.Task) error {
	row, err := s.queries.CreateTask(ctx, sqlc.CreateTaskParams{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		StageID:     t.StageID,
		Position:    t.Position,
		StartDate:   toDate(t.StartDate),
		DueDate:     toDate(t.DueDate),
	})
	if err != nil {
		return err
	}
	*t = *toTaskModel(row)
	return nil
}

func (s *taskStore) Update(ctx context.Context, t *model.Task) error {
	row, err := s.queries.UpdateTask(ctx, sqlc.UpdateTaskParams{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		StageID:     t.StageID,
		Position:    t.Position,
		StartDate:   toDate(t.StartDate),
		DueDate:     toDate(t.DueDate),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*t = *toTaskModel(row)
	return nil
}

func (s *taskStore) UpdatePlacement(ctx context.Context, id int64, placement model.TaskPlacement) (*model.Task, error) {
	row, err := s.queries.UpdateTaskPlacement(ctx, sqlc.UpdateTaskPlacementParams{
		ID:       id,
		StageID:  placement.StageID,
		Position: placement.Position,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTaskModel(row), nil
}

func (s *taskStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	rows, err := s.queries.DeleteTaskForOwner(ctx, sqlc.DeleteTaskForOwnerParams{
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

func (s *taskStore) AddTag(ctx context.Context, taskID, tagID int64) error {
	return s.queries.AddTaskTag(ctx, sqlc.AddTaskTagParams{
		TaskID: taskID,
		TagID:  tagID,
	})
}

func (s *taskStore) RemoveTag(ctx context.Context, taskID, tagID int64) error {
	rows, err := s.queries.RemoveTaskTag(ctx, sqlc.RemoveTaskTagParams{
		TaskID: taskID,
		TagID:  tagID,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *taskStore) ListTags(ctx context.Context, taskID int64) ([]model.TagSummary, error) {
	rows, err := s.queries.ListTagsForTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	result := make([]model.TagSummary, len(rows))
	for i, row := range rows {
		result[i] = model.TagSummary{ID: row.ID, Name: row.Name, Color: row.Color}
	}
	return result, nil
}

func (s *taskStore) ListTagsForTasks(ctx context.Context, taskIDs []int64) (map[int64][]model.TagSummary, error) {
	if len(taskIDs) == 0 {
		return map[int64][]model.TagSummary{}, nil
	}
	rows, err := s.queries.ListTagsForTasks(ctx, taskIDs)
	if err != nil {
		return nil, err
	}
	result := make(map[int64][]model.TagSummary, len(taskIDs))
	for _, row := range rows {
		result[row.TaskID] = append(result[row.TaskID], model.TagSummary{
			ID:    row.ID,
			Name:  row.Name,
			Color: row.Color,
		})
	}
	return result, nil
}

func toTaskModel(row sqlc.Task) *model.Task {
	return &model.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		StageID:     row.StageID,
		Position:    row.Position,
		StartDate:   fromDate(row.StartDate),
		DueDate:     fromDate(row.DueDate),
		CreatedAt:   row.CreatedAt.Time,
	}
}

func toTaskModels(rows []sqlc.Task) []model.Task {
	result := make([]model.Task, len(rows))
	for i, row := range rows {
		result[i] = *toTaskModel(row)
	}
	return result
}
