package model

import "time"

type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	StageID     int64        `json:"stage_id"`
	Position    int32        `json:"position"`
	StartDate   *time.Time   `json:"start_date,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	Tags        []TagSummary `json:"tags,omitempty"`
}

// TagSummary is the slim tag projection embedded in task listings.
type TagSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TaskPatch carries a partial update. Nil fields are left unchanged;
// dates and description cannot be cleared through a patch. A StageID
// change requires the requester to own the destination stage.
type TaskPatch struct {
	Title       *string
	Description *string
	StageID     *int64
	Position    *int32
	StartDate   *time.Time
	DueDate     *time.Time
}

// TaskPlacement is the target of a move operation.
type TaskPlacement struct {
	StageID  int64
	Position int32
}
