package service_test

import (
	"context"
	"time"

	"organizame.app/api/internal/model"
	"organizame.app/api/internal/service"
	"organizame.app/api/internal/store"
)

type mockWorkspaceStore struct {
	getForOwnerFn    func(ctx context.Context, id int64, ownerUID string) (*model.Workspace, error)
	listForOwnerFn   func(ctx context.Context, ownerUID string) ([]model.Workspace, error)
	createFn         func(ctx context.Context, ws *model.Workspace) error
	updateFn         func(ctx context.Context, ws *model.Workspace) error
	deleteForOwnerFn func(ctx context.Context, id int64, ownerUID string) error
}

func (m *mockWorkspaceStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Workspace, error) {
	if m.getForOwnerFn != nil {
		return m.getForOwnerFn(ctx, id, ownerUID)
	}
	return nil, nil
}

func (m *mockWorkspaceStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Workspace, error) {
	if m.listForOwnerFn != nil {
		return m.listForOwnerFn(ctx, ownerUID)
	}
	return nil, nil
}

func (m *mockWorkspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	if m.createFn != nil {
		return m.createFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	if m.deleteForOwnerFn != nil {
		return m.deleteForOwnerFn(ctx, id, ownerUID)
	}
	return nil
}

type mockBoardStore struct {
	getForOwnerFn             func(ctx context.Context, id int64, ownerUID string) (*model.Board, error)
	listForOwnerFn            func(ctx context.Context, ownerUID string) ([]model.Board, error)
	listByWorkspaceForOwnerFn func(ctx context.Context, workspaceID int64, ownerUID string) ([]model.Board, error)
	createFn                  func(ctx context.Context, b *model.Board) error
	updateFn                  func(ctx context.Context, b *model.Board) error
	deleteForOwnerFn          func(ctx context.Context, id int64, ownerUID string) error
	createCalls               int
}

func (m *mockBoardStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Board, error) {
	if m.getForOwnerFn != nil {
		return m.getForOwnerFn(ctx, id, ownerUID)
	}
	return nil, nil
}

func (m *mockBoardStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Board, error) {
	if m.listForOwnerFn != nil {
		return m.listForOwnerFn(ctx, ownerUID)
	}
	return nil, nil
}

func (m *mockBoardStore) ListByWorkspaceForOwner(ctx context.Context, workspaceID int64, ownerUID string) ([]model.Board, error) {
	if m.listByWorkspaceForOwnerFn != nil {
		return m.listByWorkspaceForOwnerFn(ctx, workspaceID, ownerUID)
	}
	return nil, nil
}

func (m *mockBoardStore) Create(ctx context.Context, b *model.Board) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, b)
	}
	return nil
}

func (m *mockBoardStore) Update(ctx context.Context, b *model.Board) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, b)
	}
	return nil
}

func (m *mockBoardStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	if m.deleteForOwnerFn != nil {
		return m.deleteForOwnerFn(ctx, id, ownerUID)
	}
	return nil
}

type mockStageStore struct {
	getForOwnerFn         func(ctx context.Context, id int64, ownerUID string) (*model.Stage, error)
	listForOwnerFn        func(ctx context.Context, ownerUID string) ([]model.Stage, error)
	listByBoardForOwnerFn func(ctx context.Context, boardID int64, ownerUID string) ([]model.Stage, error)
	createFn              func(ctx context.Context, st *model.Stage) error
	updateFn              func(ctx context.Context, st *model.Stage) error
	deleteForOwnerFn      func(ctx context.Context, id int64, ownerUID string) error
	createCalls           int
}

func (m *mockStageStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Stage, error) {
	if m.getForOwnerFn != nil {
		return m.getForOwnerFn(ctx, id, ownerUID)
	}
	return nil, nil
}

func (m *mockStageStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Stage, error) {
	if m.listForOwnerFn != nil {
		return m.listForOwnerFn(ctx, ownerUID)
	}
	return nil, nil
}

func (m *mockStageStore) ListByBoardForOwner(ctx context.Context, boardID int64, ownerUID string) ([]model.Stage, error) {
	if m.listByBoardForOwnerFn != nil {
		return m.listByBoardForOwnerFn(ctx, boardID, ownerUID)
	}
	return nil, nil
}

func (m *mockStageStore) Create(ctx context.Context, st *model.Stage) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, st)
	}
	return nil
}

func (m *mockStageStore) Update(ctx context.Context, st *model.Stage) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, st)
	}
	return nil
}

func (m *mockStageStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	if m.deleteForOwnerFn != nil {
		return m.deleteForOwnerFn(ctx, id, ownerUID)
	}
	return nil
}

type mockTaskStore struct {
	getForOwnerFn         func(ctx context.Context, id int64, ownerUID string) (*model.Task, error)
	listForOwnerFn        func(ctx context.Context, ownerUID string) ([]model.Task, error)
	listByStageForOwnerFn func(ctx context.Context, stageID int64, ownerUID string) ([]model.Task, error)
	createFn              func(ctx context.Context, t *model.Task) error
	updateFn              func(ctx context.Context, t *model.Task) error
	updatePlacementFn     func(ctx context.Context, id int64, placement model.TaskPlacement) (*model.Task, error)
	deleteForOwnerFn      func(ctx context.Context, id int64, ownerUID string) error
	addTagFn              func(ctx context.Context, taskID, tagID int64) error
	removeTagFn           func(ctx context.Context, taskID, tagID int64) error
	listTagsFn            func(ctx context.Context, taskID int64) ([]model.TagSummary, error)
	listTagsForTasksFn    func(ctx context.Context, taskIDs []int64) (map[int64][]model.TagSummary, error)
	updateCalls           int
	updatePlacementCalls  int
	addTagCalls           int
	removeTagCalls        int
}

func (m *mockTaskStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Task, error) {
	if m.getForOwnerFn != nil {
		return m.getForOwnerFn(ctx, id, ownerUID)
	}
	return nil, nil
}

func (m *mockTaskStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Task, error) {
	if m.listForOwnerFn != nil {
		return m.listForOwnerFn(ctx, ownerUID)
	}
	return nil, nil
}

func (m *mockTaskStore) ListByStageForOwner(ctx context.Context, stageID int64, ownerUID string) ([]model.Task, error) {
	if m.listByStageForOwnerFn != nil {
		return m.listByStageForOwnerFn(ctx, stageID, ownerUID)
	}
	return nil, nil
}

func (m *mockTaskStore) Create(ctx context.Context, t *model.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	return nil
}

func (m *mockTaskStore) Update(ctx context.Context, t *model.Task) error {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return nil
}

func (m *mockTaskStore) UpdatePlacement(ctx context.Context, id int64, placement model.TaskPlacement) (*model.Task, error) {
	m.updatePlacementCalls++
	if m.updatePlacementFn != nil {
		return m.updatePlacementFn(ctx, id, placement)
	}
	return nil, nil
}

func (m *mockTaskStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	if m.deleteForOwnerFn != nil {
		return m.deleteForOwnerFn(ctx, id, ownerUID)
	}
	return nil
}

func (m *mockTaskStore) AddTag(ctx context.Context, taskID, tagID int64) error {
	m.addTagCalls++
	if m.addTagFn != nil {
		return m.addTagFn(ctx, taskID, tagID)
	}
	return nil
}

func (m *mockTaskStore) RemoveTag(ctx context.Context, taskID, tagID int64) error {
	m.removeTagCalls++
	if m.removeTagFn != nil {
		return m.removeTagFn(ctx, taskID, tagID)
	}
	return nil
}

func (m *mockTaskStore) ListTags(ctx context.Context, taskID int64) ([]model.TagSummary, error) {
	if m.listTagsFn != nil {
		return m.listTagsFn(ctx, taskID)
	}
	return nil, nil
}

func (m *mockTaskStore) ListTagsForTasks(ctx context.Context, taskIDs []int64) (map[int64][]model.TagSummary, error) {
	if m.listTagsForTasksFn != nil {
		return m.listTagsForTasksFn(ctx, taskIDs)
	}
	return map[int64][]model.TagSummary{}, nil
}

type mockTagStore struct {
	getForOwnerFn             func(ctx context.Context, id int64, ownerUID string) (*model.Tag, error)
	listForOwnerFn            func(ctx context.Context, ownerUID string) ([]model.Tag, error)
	listByWorkspaceForOwnerFn func(ctx context.Context, workspaceID int64, ownerUID string) ([]model.Tag, error)
	createFn                  func(ctx context.Context, t *model.Tag) error
	updateFn                  func(ctx context.Context, t *model.Tag) error
	deleteForOwnerFn          func(ctx context.Context, id int64, ownerUID string) error
}

func (m *mockTagStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Tag, error) {
	if m.getForOwnerFn != nil {
		return m.getForOwnerFn(ctx, id, ownerUID)
	}
	return nil, nil
}

func (m *mockTagStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Tag, error) {
	if m.listForOwnerFn != nil {
		return m.listForOwnerFn(ctx, ownerUID)
	}
	return nil, nil
}

func (m *mockTagStore) ListByWorkspaceForOwner(ctx context.Context, workspaceID int64, ownerUID string) ([]model.Tag, error) {
	if m.listByWorkspaceForOwnerFn != nil {
		return m.listByWorkspaceForOwnerFn(ctx, workspaceID, ownerUID)
	}
	return nil, nil
}

func (m *mockTagStore) Create(ctx context.Context, t *model.Tag) error {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	return nil
}

func (m *mockTagStore) Update(ctx context.Context, t *model.Tag) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return nil
}

func (m *mockTagStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	if m.deleteForOwnerFn != nil {
		return m.deleteForOwnerFn(ctx, id, ownerUID)
	}
	return nil
}

type mockSubtaskStore struct {
	getForOwnerFn        func(ctx context.Context, id int64, ownerUID string) (*model.Subtask, error)
	listForOwnerFn       func(ctx context.Context, ownerUID string) ([]model.Subtask, error)
	listByTaskForOwnerFn func(ctx context.Context, taskID int64, ownerUID string) ([]model.Subtask, error)
	createFn             func(ctx context.Context, s *model.Subtask) error
	updateFn             func(ctx context.Context, s *model.Subtask) error
	deleteForOwnerFn     func(ctx context.Context, id int64, ownerUID string) error
}

func (m *mockSubtaskStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Subtask, error) {
	if m.getForOwnerFn != nil {
		return m.getForOwnerFn(ctx, id, ownerUID)
	}
	return nil, nil
}

func (m *mockSubtaskStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Subtask, error) {
	if m.listForOwnerFn != nil {
		return m.listForOwnerFn(ctx, ownerUID)
	}
	return nil, nil
}

func (m *mockSubtaskStore) ListByTaskForOwner(ctx context.Context, taskID int64, ownerUID string) ([]model.Subtask, error) {
	if m.listByTaskForOwnerFn != nil {
		return m.listByTaskForOwnerFn(ctx, taskID, ownerUID)
	}
	return nil, nil
}

func (m *mockSubtaskStore) Create(ctx context.Context, s *model.Subtask) error {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return nil
}

func (m *mockSubtaskStore) Update(ctx context.Context, s *model.Subtask) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, s)
	}
	return nil
}

func (m *mockSubtaskStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	if m.deleteForOwnerFn != nil {
		return m.deleteForOwnerFn(ctx, id, ownerUID)
	}
	return nil
}

type mockAttachmentStore struct {
	getForOwnerFn        func(ctx context.Context, id int64, ownerUID string) (*model.Attachment, error)
	listForOwnerFn       func(ctx context.Context, ownerUID string) ([]model.Attachment, error)
	listByTaskForOwnerFn func(ctx context.Context, taskID int64, ownerUID string) ([]model.Attachment, error)
	createFn             func(ctx context.Context, a *model.Attachment) error
	updateFn             func(ctx context.Context, a *model.Attachment) error
	deleteForOwnerFn     func(ctx context.Context, id int64, ownerUID string) error
}

func (m *mockAttachmentStore) GetForOwner(ctx context.Context, id int64, ownerUID string) (*model.Attachment, error) {
	if m.getForOwnerFn != nil {
		return m.getForOwnerFn(ctx, id, ownerUID)
	}
	return nil, nil
}

func (m *mockAttachmentStore) ListForOwner(ctx context.Context, ownerUID string) ([]model.Attachment, error) {
	if m.listForOwnerFn != nil {
		return m.listForOwnerFn(ctx, ownerUID)
	}
	return nil, nil
}

func (m *mockAttachmentStore) ListByTaskForOwner(ctx context.Context, taskID int64, ownerUID string) ([]model.Attachment, error) {
	if m.listByTaskForOwnerFn != nil {
		return m.listByTaskForOwnerFn(ctx, taskID, ownerUID)
	}
	return nil, nil
}

func (m *mockAttachmentStore) Create(ctx context.Context, a *model.Attachment) error {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return nil
}

func (m *mockAttachmentStore) Update(ctx context.Context, a *model.Attachment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, a)
	}
	return nil
}

func (m *mockAttachmentStore) DeleteForOwner(ctx context.Context, id int64, ownerUID string) error {
	if m.deleteForOwnerFn != nil {
		return m.deleteForOwnerFn(ctx, id, ownerUID)
	}
	return nil
}

type mockOverviewStore struct {
	listForOwnerFn func(ctx context.Context, ownerUID string, from, to time.Time) ([]model.TaskOverview, error)
}

func (m *mockOverviewStore) ListForOwner(ctx context.Context, ownerUID string, from, to time.Time) ([]model.TaskOverview, error) {
	if m.listForOwnerFn != nil {
		return m.listForOwnerFn(ctx, ownerUID, from, to)
	}
	return nil, nil
}

type mockStoreProvider struct {
	workspaces  store.WorkspaceStore
	boards      store.BoardStore
	stages      store.StageStore
	tasks       store.TaskStore
	tags        store.TagStore
	subtasks    store.SubtaskStore
	attachments store.AttachmentStore
}

func (m *mockStoreProvider) Workspaces() store.WorkspaceStore {
	return m.workspaces
}

func (m *mockStoreProvider) Boards() store.BoardStore {
	return m.boards
}

func (m *mockStoreProvider) Stages() store.StageStore {
	return m.stages
}

func (m *mockStoreProvider) Tasks() store.TaskStore {
	return m.tasks
}

func (m *mockStoreProvider) Tags() store.TagStore {
	return m.tags
}

func (m *mockStoreProvider) Subtasks() store.SubtaskStore {
	return m.subtasks
}

func (m *mockStoreProvider) Attachments() store.AttachmentStore {
	return m.attachments
}

type mockTxRunner struct {
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	return fn(&mockStoreProvider{})
}
