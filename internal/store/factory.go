package store

import (
	"organizame.app/api/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Workspaces() WorkspaceStore {
	return newWorkspaceStore(s.queries)
}

func (s *Stores) Boards() BoardStore {
	return newBoardStore(s.queries)
}

func (s *Stores) Stages() StageStore {
	return newStageStore(s.queries)
}

func (s *Stores) Tasks() TaskStore {
	return newTaskStore(s.queries)
}

func (s *Stores) Tags() TagStore {
	return newTagStore(s.queries)
}

func (s *Stores) Subtasks() SubtaskStore {
	return newSubtaskStore(s.queries)
}

func (s *Stores) Attachments() AttachmentStore {
	return newAttachmentStore(s.queries)
}

func (s *Stores) Overview() OverviewStore {
	return newOverviewStore(s.queries)
}
