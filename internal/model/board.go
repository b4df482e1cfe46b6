package model

import "time"

type Board struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	WorkspaceID int64     `json:"workspace_id"`
	Position    int32     `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

type BoardPatch struct {
	Name     *string
	Position *int32
}
