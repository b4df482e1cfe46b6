package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"organizame.app/api/core/db/sqlc"
	"organizame.app/api/internal/model"
)

type attachmentStore struct {
	queries *sqlc.Queries
}

func newAttachmentStore(queries *sqlc.Queries) AttachmentStore {
	return &attachmentStore{queries: queries}
}

func (s *attachmentStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Attachment, error) {
	row, err := s.queries.GetAttachmentForOwner(ctx, sqlc.GetAttachmentForOwnerParams{
		ID:       id,
		OwnerUid: ownerUID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toAttachmentModel(row), nil
}

func (s *attachmentStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Attachment, error) {
	rows, err := s.queries.ListAttachmentsForOwner(ctx, ownerUID)
	if err != nil {
		return nil, err
	}
	return toAttachmentModels(rows), nil
}

func (s *attachmentStore) ListByTaskForOwner(ctx context.Context, taskID int64, ownerUID string) ([]model.Attachment, error) {
	rows, err := s.queries.ListAttachmentsByTaskForOwner(ctx, sqlc.ListAttachmentsByTaskForOwnerParams{
		OwnerUid: ownerUID,
		TaskID:   taskID,
	})
	if err != nil {
		return nil, err
	}
	return toAttachmentModels(rows), nil
}

func (s *attachmentStore) Create(ctx context.Context, a *model.Attachment) error {
	row, err := s.queries.CreateAttachment(ctx, sqlc.CreateAttachmentParams{
		ID:       a.ID,
		FileUrl:  a.FileURL,
		FileName: a.FileName,
		TaskID:   a.TaskID,
	})
	if err != nil {
		return err
	}
	*a = *toAttachmentModel(row)
	return nil
}

func (s *attachmentStore) Update(ctx context.Context, a *model.Attachment) error {
	row, err := s.queries.UpdateAttachment(ctx, sqlc.UpdateAttachmentParams{
		ID:       a.ID,
		FileUrl:  a.FileURL,
		FileName: a.FileName,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*a = *toAttachmentModel(row)
	return nil
}

func (s *attachmentStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	rows, err := s.queries.DeleteAttachmentForOwner(ctx, sqlc.DeleteAttachmentForOwnerParams{
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

func toAttachmentModel(row sqlc.Attachment) *model.Attachment {
	return &model.Attachment{
		ID:         row.ID,
		FileURL:    row.FileUrl,
		FileName:   row.FileName,
		TaskID:     row.TaskID,
		UploadedAt: row.UploadedAt.Time,
	}
}

func toAttachmentModels(rows []sqlc.Attachment) []model.Attachment {
	result := make([]model.Attachment, len(rows))
	for i, row := range rows {
		result[i] = *toAttachmentModel(row)
	}
	return result
}
