package dto

import (
	"organizame.app/api/internal/model"
)

type CreateTagRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=10"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
	WorkspaceID int64  `json:"workspace_id,string" binding:"required"`
}

type UpdateTagRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=10"`
	Color *string `json:"color,omitempty" binding:"omitempty,hexcolor"`
}

type TagResponse struct {
	ID          int64  `json:"id,string"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	WorkspaceID int64  `json:"workspace_id,string"`
}

func ToTagResponse(t *model.Tag) *TagResponse {
	return &TagResponse{
		ID:          t.ID,
		Name:        t.Name,
		Color:       t.Color,
		WorkspaceID: t.WorkspaceID,
	}
}

func ToTagResponses(tags []model.Tag) []TagResponse {
	result := make([]TagResponse, len(tags))
	for i := range tags {
		result[i] = *ToTagResponse(&tags[i])
	}
	return result
}
