package dto

import (
	"time"

	"organizame.app/api/internal/model"
)

type CreateWorkspaceRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=30"`
	Description *string `json:"description,omitempty"`
}

type UpdateWorkspaceRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=30"`
	Description *string `json:"description,omitempty"`
}

type WorkspaceResponse struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToWorkspaceResponse(ws *model.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
		CreatedAt:   ws.CreatedAt,
	}
}

func ToWorkspaceResponses(workspaces []model.Workspace) []WorkspaceResponse {
	result := make([]WorkspaceResponse, len(workspaces))
	for i := range workspaces {
		result[i] = *ToWorkspaceResponse(&workspaces[i])
	}
	return result
}
