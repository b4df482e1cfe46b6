package dto

import (
	"time"

	"organizame.app/api/internal/model"
)

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	StageID     int64   `json:"stage_id,string" binding:"required"`
	Position    int32   `json:"position"`
	StartDate   *string `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	DueDate     *string `json:"due_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	StageID     *int64  `json:"stage_id,omitempty,string"`
	Position    *int32  `json:"position,omitempty"`
	StartDate   *string `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	DueDate     *string `json:"due_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type MoveTaskRequest struct {
	StageID  int64  `json:"stage_id,string" binding:"required"`
	Position *int32 `json:"position" binding:"required"`
}

type TagSummaryResponse struct {
	ID    int64  `json:"id,string"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type TaskResponse struct {
	ID          int64                `json:"id,string"`
	Title       string               `json:"title"`
	Description *string              `json:"description,omitempty"`
	StageID     int64                `json:"stage_id,string"`
	Position    int32                `json:"position"`
	StartDate   *string              `json:"start_date,omitempty"`
	DueDate     *string              `json:"due_date,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	Tags        []TagSummaryResponse `json:"tags"`
}

func ToTaskResponse(t *model.Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		StageID:     t.StageID,
		Position:    t.Position,
		StartDate:   FormatDate(t.StartDate),
		DueDate:     FormatDate(t.DueDate),
		CreatedAt:   t.CreatedAt,
		Tags:        ToTagSummaryResponses(t.Tags),
	}
}

func ToTaskResponses(tasks []model.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i := range tasks {
		result[i] = *ToTaskResponse(&tasks[i])
	}
	return result
}

func ToTagSummaryResponses(tags []model.TagSummary) []TagSummaryResponse {
	result := make([]TagSummaryResponse, len(tags))
	for i, tag := range tags {
		result[i] = TagSummaryResponse{ID: tag.ID, Name: tag.Name, Color: tag.Color}
	}
	return result
}
