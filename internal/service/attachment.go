package service

import (
	"context"
	"fmt"

	"organizame.app/api/common/id"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/store"
)

type AttachmentService interface {
	Create(ctx context.Context, ownerUID string, taskID int64, fileURL, fileName string) (*model.Attachment, error)
	Get(ctx context.Context, id int64, ownerUID string) (*model.Attachment, error)
	List(ctx context.Context, ownerUID string, taskID *int64) ([]model.Attachment, error)
	Update(ctx context.Context, id int64, ownerUID string, patch model.AttachmentPatch) (*model.Attachment, error)
	Delete(ctx context.Context, id int64, ownerUID string) error
}

type attachmentService struct {
	attachmentStore store.AttachmentStore
	txRunner        TxRunner
}

func NewAttachmentService(attachmentStore store.AttachmentStore, txRunner TxRunner) AttachmentService {
	return &attachmentService{attachmentStore: attachmentStore, txRunner: txRunner}
}

func (s *attachmentService) Create(ctx context.Context, ownerUID string, taskID int64, fileURL, fileName string) (*model.Attachment, error) {
	att := &model.Attachment{
		ID:       id.New(),
		FileURL:  fileURL,
		FileName: fileName,
		TaskID:   taskID,
	}

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Tasks().GetForOwner(ctx, taskID, ownerUID); err != nil {
			return err
		}
		if err := stores.Attachments().Create(ctx, att); err != nil {
			return fmt.Errorf("creating attachment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return att, nil
}

func (s *attachmentService) Get(ctx context.Context, id int64, ownerUID string) (*model.Attachment, error) {
	return s.attachmentStore.GetForOwner(ctx, id, ownerUID)
}

func (s *attachmentService) List(ctx context.Context, ownerUID string, taskID *int64) ([]model.Attachment, error) {
	if taskID != nil {
		return s.attachmentStore.ListByTaskForOwner(ctx, *taskID, ownerUID)
	}
	return s.attachmentStore.ListForOwner(ctx, ownerUID)
}

func (s *attachmentService) Update(ctx context.Context, id int64, ownerUID string, patch model.AttachmentPatch) (*model.Attachment, error) {
	var updated *model.Attachment

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		att, err := stores.Attachments().GetForOwner(ctx, id, ownerUID)
		if err != nil {
			return err
		}

		if patch.FileURL != nil {
			att.FileURL = *patch.FileURL
		}
		if patch.FileName != nil {
			att.FileName = *patch.FileName
		}

		if err := stores.Attachments().Update(ctx, att); err != nil {
			return fmt.Errorf("updating attachment: %w", err)
		}

		updated = att
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *attachmentService) Delete(ctx context.Context, id int64, ownerUID string) error {
	return s.attachmentStore.DeleteForOwner(ctx, id, ownerUID)
}
