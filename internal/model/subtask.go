package model

type Subtask struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	TaskID      int64  `json:"task_id"`
	IsCompleted bool   `json:"is_completed"`
	Position    int32  `json:"position"`
}

type SubtaskPatch struct {
	Title       *string
	IsCompleted *bool
	Position    *int32
}
