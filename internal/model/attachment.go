package model

import "time"

type Attachment struct {
	ID         int64     `json:"id"`
	FileURL    string    `json:"file_url"`
	FileName   string    `json:"file_name"`
	TaskID     int64     `json:"task_id"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type AttachmentPatch struct {
	FileURL  *string
	FileName *string
}
