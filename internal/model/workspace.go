package model

import "time"

type Workspace struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	OwnerUID    string    `json:"-"` // internal, not exposed in API
	CreatedAt   time.Time `json:"created_at"`
}

// WorkspacePatch carries a partial update. Nil fields are left unchanged.
type WorkspacePatch struct {
	Name        *string
	Description *string
}
