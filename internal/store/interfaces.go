package store

import (
	"context"
	"errors"
	"time"

	"organizame.app/api/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist or is not
// visible to the requesting owner. Callers cannot distinguish the two cases.
var ErrNotFound = errors.New("not found")

// WorkspaceStore defines the contract for workspace data access
type WorkspaceStore interface {
	GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Workspace, error)
	ListForOwner(ctx context.Context, ownerUID string) ([]model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	Update(ctx context.Context, ws *model.Workspace) error
	DeleteForOwner(ctx context.Context, id int64, ownerUID string) error // cascades
}

// BoardStore defines the contract for board data access
type BoardStore interface {
	GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Board, error)
	ListForOwner(ctx context.Context, ownerUID string) ([]model.Board, error)
	ListByWorkspaceForOwner(ctx context.Context, workspaceID int64, ownerUID string) ([]model.Board, error)
	Create(ctx context.Context, b *model.Board) error
	Update(ctx context.Context, b *model.Board) error
	DeleteForOwner(ctx context.Context, id int64, ownerUID string) error // cascades
}

// StageStore defines the contract for stage data access
type StageStore interface {
	GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Stage, error)
	ListForOwner(ctx context.Context, ownerUID string) ([]model.Stage, error)
	ListByBoardForOwner(ctx context.Context, boardID int64, ownerUID string) ([]model.Stage, error)
	Create(ctx context.Context, st *model.Stage) error
	Update(ctx context.Context, st *model.Stage) error
	DeleteForOwner(ctx context.Context, id int64, ownerUID string) error // cascades
}

// TaskStore defines the contract for task data access, including the
// task-tag relation
type TaskStore interface {
	GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Task, error)
	ListForOwner(ctx context.Context, ownerUID string) ([]model.Task, error)
	ListByStageForOwner(ctx context.Context, stageID int64, ownerUID string) ([]model.Task, error)
	Create(ctx context.Context, t *model.Task) error
	Update(ctx context.Context, t *model.Task) error
	UpdatePlacement(ctx context.Context, id int64, placement model.TaskPlacement) (*model.Task, error)
	DeleteForOwner(ctx context.Context, id int64, ownerUID string) error // cascades
	AddTag(ctx context.Context, taskID, tagID int64) error
	RemoveTag(ctx context.Context, taskID, tagID int64) error
	ListTags(ctx context.Context, taskID int64) ([]model.TagSummary, error)
	ListTagsForTasks(ctx context.Context, taskIDs []int64) (map[int64][]model.TagSummary, error)
}

// TagStore defines the contract for tag data access
type TagStore interface {
	GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Tag, error)
	ListForOwner(ctx context.Context, ownerUID string) ([]model.Tag, error)
	ListByWorkspaceForOwner(ctx context.Context, workspaceID int64, ownerUID string) ([]model.Tag, error)
	Create(ctx context.Context, t *model.Tag) error
	Update(ctx context.Context, t *model.Tag) error
	DeleteForOwner(ctx context.Context, id int64, ownerUID string) error
}

// SubtaskStore defines the contract for subtask data access
type SubtaskStore interface {
	GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Subtask, error)
	ListForOwner(ctx context.Context, ownerUID string) ([]model.Subtask, error)
	ListByTaskForOwner(ctx context.Context, taskID int64, ownerUID string) ([]model.Subtask, error)
	Create(ctx context.Context, s *model.Subtask) error
	Update(ctx context.Context, s *model.Subtask) error
	DeleteForOwner(ctx context.Context, id int64, ownerUID string) error
}

// AttachmentStore defines the contract for attachment metadata access
type AttachmentStore interface {
	GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Attachment, error)
	ListForOwner(ctx context.Context, ownerUID string) ([]model.Attachment, error)
	ListByTaskForOwner(ctx context.Context, taskID int64, ownerUID string) ([]model.Attachment, error)
	Create(ctx context.Context, a *model.Attachment) error
	Update(ctx context.Context, a *model.Attachment) error
	DeleteForOwner(ctx context.Context, id int64, ownerUID string) error
}

// OverviewStore defines the contract for cross-board task listings
type OverviewStore interface {
	ListForOwner(ctx context.Context, ownerUID string, from, to time.Time) ([]model.TaskOverview, error)
}
