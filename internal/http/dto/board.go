package dto

import (
	"time"

	"organizame.app/api/internal/model"
)

type CreateBoardRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=30"`
	WorkspaceID int64  `json:"workspace_id,string" binding:"required"`
	Position    int32  `json:"position"`
}

type UpdateBoardRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=30"`
	Position *int32  `json:"position,omitempty"`
}

type BoardResponse struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	WorkspaceID int64     `json:"workspace_id,string"`
	Position    int32     `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToBoardResponse(b *model.Board) *BoardResponse {
	return &BoardResponse{
		ID:          b.ID,
		Name:        b.Name,
		WorkspaceID: b.WorkspaceID,
		Position:    b.Position,
		CreatedAt:   b.CreatedAt,
	}
}

func ToBoardResponses(boards []model.Board) []BoardResponse {
	result := make([]BoardResponse, len(boards))
	for i := range boards {
		result[i] = *ToBoardResponse(&boards[i])
	}
	return result
}
