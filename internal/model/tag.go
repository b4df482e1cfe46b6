package model

type Tag struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	WorkspaceID int64  `json:"workspace_id"`
}

type TagPatch struct {
	Name  *string
	Color *string
}
