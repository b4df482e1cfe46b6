package dto

import (
	"time"

	"organizame.app/api/internal/model"
)

type CreateAttachmentRequest struct {
	FileURL  string `json:"file_url" binding:"required,max=200,url"`
	FileName string `json:"file_name" binding:"required,min=1,max=100"`
	TaskID   int64  `json:"task_id,string" binding:"required"`
}

type UpdateAttachmentRequest struct {
	FileURL  *string `json:"file_url,omitempty" binding:"omitempty,max=200,url"`
	FileName *string `json:"file_name,omitempty" binding:"omitempty,min=1,max=100"`
}

type AttachmentResponse struct {
	ID         int64     `json:"id,string"`
	FileURL    string    `json:"file_url"`
	FileName   string    `json:"file_name"`
	TaskID     int64     `json:"task_id,string"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func ToAttachmentResponse(a *model.Attachment) *AttachmentResponse {
	return &AttachmentResponse{
		ID:         a.ID,
		FileURL:    a.FileURL,
		FileName:   a.FileName,
		TaskID:     a.TaskID,
		UploadedAt: a.UploadedAt,
	}
}

func ToAttachmentResponses(attachments []model.Attachment) []AttachmentResponse {
	result := make([]AttachmentResponse, len(attachments))
	for i := range attachments {
		result[i] = *ToAttachmentResponse(&attachments[i])
	}
	return result
}
