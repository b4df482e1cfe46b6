package model

type Stage struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	BoardID  int64  `json:"board_id"`
	Position int32  `json:"position"`
	Color    string `json:"color"`
}

type StagePatch struct {
	Name     *string
	Position *int32
	Color    *string
}
