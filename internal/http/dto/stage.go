package dto

import (
	"organizame.app/api/internal/model"
)

type CreateStageRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=20"`
	BoardID  int64  `json:"board_id,string" binding:"required"`
	Position int32  `json:"position"`
	Color    string `json:"color" binding:"omitempty,hexcolor"`
}

type UpdateStageRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=20"`
	Position *int32  `json:"position,omitempty"`
	Color    *string `json:"color,omitempty" binding:"omitempty,hexcolor"`
}

type StageResponse struct {
	ID       int64  `json:"id,string"`
	Name     string `json:"name"`
	BoardID  int64  `json:"board_id,string"`
	Position int32  `json:"position"`
	Color    string `json:"color"`
}

func ToStageResponse(st *model.Stage) *StageResponse {
	return &StageResponse{
		ID:       st.ID,
		Name:     st.Name,
		BoardID:  st.BoardID,
		Position: st.Position,
		Color:    st.Color,
	}
}

func ToStageResponses(stages []model.Stage) []StageResponse {
	result := make([]StageResponse, len(stages))
	for i := range stages {
		result[i] = *ToStageResponse(&stages[i])
	}
	return result
}
