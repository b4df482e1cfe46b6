package dto

import (
	"organizame.app/api/internal/model"
)

type OverviewTaskResponse struct {
	ID            int64   `json:"id,string"`
	Title         string  `json:"title"`
	DueDate       *string `json:"due_date,omitempty"`
	StageID       int64   `json:"stage_id,string"`
	StageName     string  `json:"stage_name"`
	BoardID       int64   `json:"board_id,string"`
	BoardName     string  `json:"board_name"`
	WorkspaceID   int64   `json:"workspace_id,string"`
	WorkspaceName string  `json:"workspace_name"`
}

func ToOverviewTaskResponses(tasks []model.TaskOverview) []OverviewTaskResponse {
	result := make([]OverviewTaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = OverviewTaskResponse{
			ID:            t.ID,
			Title:         t.Title,
			DueDate:       FormatDate(t.DueDate),
			StageID:       t.StageID,
			StageName:     t.StageName,
			BoardID:       t.BoardID,
			BoardName:     t.BoardName,
			WorkspaceID:   t.WorkspaceID,
			WorkspaceName: t.WorkspaceName,
		}
	}
	return result
}
