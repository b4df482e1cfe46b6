package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"organizame.app/api/core/db/sqlc"
	"organizame.app/api/internal/model"
)

type subtaskStore struct {
	queries *sqlc.Queries
}

func newSubtaskStore(queries *sqlc.Queries) SubtaskStore {
	return &subtaskStore{queries: queries}
}

func (s *subtaskStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Subtask, error) {
	row, err := s.queries.GetSubtaskForOwner(ctx, sqlc.GetSubtaskForOwnerParams{
		ID:       id,
		OwnerUid: ownerUID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSubtaskModel(row), nil
}

func (s *subtaskStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Subtask, error) {
	rows, err := s.queries.ListSubtasksForOwner(ctx, ownerUID)
	if err != nil {
		return nil, err
	}
	return toSubtaskModels(rows), nil
}

func (s *subtaskStore) ListByTaskForOwner(ctx context.Context, taskID int64, ownerUID string) ([]model.Subtask, error) {
	rows, err := s.queries.ListSubtasksByTaskForOwner(ctx, sqlc.ListSubtasksByTaskForOwnerParams{
		OwnerUid: ownerUID,
		TaskID:   taskID,
	})
	if err != nil {
		return nil, err
	}
	return toSubtaskModels(rows), nil
}

func (s *subtaskStore) Create(ctx context.Context, sub *model.Subtask) error {
	row, err := s.queries.CreateSubtask(ctx, sqlc.CreateSubtaskParams{
		ID:          sub.ID,
		Title:       sub.Title,
		TaskID:      sub.TaskID,
		IsCompleted: sub.IsCompleted,
		Position:    sub.Position,
	})
	if err != nil {
		return err
	}
	*sub = *toSubtaskModel(row)
	return nil
}

func (s *subtaskStore) Update(ctx context.Context, sub *model.Subtask) error {
	row, err := s.queries.UpdateSubtask(ctx, sqlc.UpdateSubtaskParams{
		ID:          sub.ID,
		Title:       sub.Title,
		IsCompleted: sub.IsCompleted,
		Position:    sub.Position,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*sub = *toSubtaskModel(row)
	return nil
}

func (s *subtaskStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	rows, err := s.queries.DeleteSubtaskForOwner(ctx, sqlc.DeleteSubtaskForOwnerParams{
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

func toSubtaskModel(row sqlc.Subtask) *model.Subtask {
	return &model.Subtask{
		ID:          row.ID,
		Title:       row.Title,
		TaskID:      row.TaskID,
		IsCompleted: row.IsCompleted,
		Position:    row.Position,
	}
}

func toSubtaskModels(rows []sqlc.Subtask) []model.Subtask {
	result := make([]model.Subtask, len(rows))
	for i, row := range rows {
		result[i] = *toSubtaskModel(row)
	}
	return result
}
