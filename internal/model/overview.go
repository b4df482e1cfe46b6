package model

import "time"

// OverviewPeriod selects the due-date window for the overview listing.
type OverviewPeriod string

const (
	PeriodDay   OverviewPeriod = "day"
	PeriodWeek  OverviewPeriod = "week"
	PeriodMonth OverviewPeriod = "month"
)

func (p OverviewPeriod) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// TaskOverview is a task row flattened with its stage, board and workspace
// context for cross-board listings.
type TaskOverview struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	StageID       int64      `json:"stage_id"`
	StageName     string     `json:"stage_name"`
	BoardID       int64      `json:"board_id"`
	BoardName     string     `json:"board_name"`
	WorkspaceID   int64      `json:"workspace_id"`
	WorkspaceName string     `json:"workspace_name"`
}
