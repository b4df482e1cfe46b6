package dto

import (
	"organizame.app/api/internal/model"
)

type CreateSubtaskRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	TaskID      int64  `json:"task_id,string" binding:"required"`
	IsCompleted bool   `json:"is_completed"`
	Position    int32  `json:"position"`
}

type UpdateSubtaskRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=100"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
	Position    *int32  `json:"position,omitempty"`
}

type SubtaskResponse struct {
	ID          int64  `json:"id,string"`
	Title       string `json:"title"`
	TaskID      int64  `json:"task_id,string"`
	IsCompleted bool   `json:"is_completed"`
	Position    int32  `json:"position"`
}

func ToSubtaskResponse(s *model.Subtask) *SubtaskResponse {
	return &SubtaskResponse{
		ID:          s.ID,
		Title:       s.Title,
		TaskID:      s.TaskID,
		IsCompleted: s.IsCompleted,
		Position:    s.Position,
	}
}

func ToSubtaskResponses(subtasks []model.Subtask) []SubtaskResponse {
	result := make([]SubtaskResponse, len(subtasks))
	for i := range subtasks {
		result[i] = *ToSubtaskResponse(&subtasks[i])
	}
	return result
}
