package handler_test

import (
	"context"
	"time"

	"organizame.app/api/internal/model"
	"organizame.app/api/internal/service"
)

type mockWorkspaceService struct {
	createFn func(ctx context.Context, ownerUID, name string, description *string) (*model.Workspace, error)
	getFn    func(ctx context.Context, id int64, ownerUID string) (*model.Workspace, error)
	listFn   func(ctx context.Context, ownerUID string) ([]model.Workspace, error)
	updateFn func(ctx context.Context, id int64, ownerUID string, patch model.WorkspacePatch) (*model.Workspace, error)
	deleteFn func(ctx context.Context, id int64, ownerUID string) error
}

func (m *mockWorkspaceService) Create(ctx context.Context, ownerUID, name string, description *string) (*model.Workspace, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerUID, name, description)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Get(ctx context.Context, id int64, ownerUID string) (*model.Workspace, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id, ownerUID)
	}
	return nil, nil
}

func (m *mockWorkspaceService) List(ctx context.Context, ownerUID string) ([]model.Workspace, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerUID)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Update(ctx context.Context, id int64, ownerUID string, patch model.WorkspacePatch) (*model.Workspace, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, ownerUID, patch)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Delete(ctx context.Context, id int64, ownerUID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, ownerUID)
	}
	return nil
}

type mockTaskService struct {
	createFn    func(ctx context.Context, ownerUID string, in service.CreateTaskInput) (*model.Task, error)
	getFn       func(ctx context.Context, id int64, ownerUID string) (*model.Task, error)
	listFn      func(ctx context.Context, ownerUID string, stageID *int64) ([]model.Task, error)
	updateFn    func(ctx context.Context, id int64, ownerUID string, patch model.TaskPatch) (*model.Task, error)
	deleteFn    func(ctx context.Context, id int64, ownerUID string) error
	moveFn      func(ctx context.Context, id int64, ownerUID string, placement model.TaskPlacement) (*model.Task, error)
	addTagFn    func(ctx context.Context, taskID, tagID int64, ownerUID string) error
	removeTagFn func(ctx context.Context, taskID, tagID int64, ownerUID string) error
	listTagsFn  func(ctx context.Context, taskID int64, ownerUID string) ([]model.TagSummary, error)
	moveCalls   int
}

func (m *mockTaskService) Create(ctx context.Context, ownerUID string, in service.CreateTaskInput) (*model.Task, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerUID, in)
	}
	return nil, nil
}

func (m *mockTaskService) Get(ctx context.Context, id int64, ownerUID string) (*model.Task, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id, ownerUID)
	}
	return nil, nil
}

func (m *mockTaskService) List(ctx context.Context, ownerUID string, stageID *int64) ([]model.Task, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerUID, stageID)
	}
	return nil, nil
}

func (m *mockTaskService) Update(ctx context.Context, id int64, ownerUID string, patch model.TaskPatch) (*model.Task, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, ownerUID, patch)
	}
	return nil, nil
}

func (m *mockTaskService) Delete(ctx context.Context, id int64, ownerUID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, ownerUID)
	}
	return nil
}

func (m *mockTaskService) Move(ctx context.Context, id int64, ownerUID string, placement model.TaskPlacement) (*model.Task, error) {
	m.moveCalls++
	if m.moveFn != nil {
		return m.moveFn(ctx, id, ownerUID, placement)
	}
	return nil, nil
}

func (m *mockTaskService) AddTag(ctx context.Context, taskID, tagID int64, ownerUID string) error {
	if m.addTagFn != nil {
		return m.addTagFn(ctx, taskID, tagID, ownerUID)
	}
	return nil
}

func (m *mockTaskService) RemoveTag(ctx context.Context, taskID, tagID int64, ownerUID string) error {
	if m.removeTagFn != nil {
		return m.removeTagFn(ctx, taskID, tagID, ownerUID)
	}
	return nil
}

func (m *mockTaskService) ListTags(ctx context.Context, taskID int64, ownerUID string) ([]model.TagSummary, error) {
	if m.listTagsFn != nil {
		return m.listTagsFn(ctx, taskID, ownerUID)
	}
	return nil, nil
}

type mockOverviewService struct {
	listFn func(ctx context.Context, ownerUID string, period model.OverviewPeriod, refDate time.Time) ([]model.TaskOverview, error)
}

func (m *mockOverviewService) List(ctx context.Context, ownerUID string, period model.OverviewPeriod, refDate time.Time) ([]model.TaskOverview, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerUID, period, refDate)
	}
	return nil, nil
}
