package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"organizame.app/api/common/id"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/service"
	"organizame.app/api/internal/store"
)

var _ = Describe("TaskService", func() {
	var (
		ctx        context.Context
		taskStore  *mockTaskStore
		stageStore *mockStageStore
		tagStore   *mockTagStore
		txRunner   *mockTxRunner
		svc        service.TaskService
	)

	BeforeEach(func() {
		ctx = context.Background()
		Expect(id.Init(1)).To(Succeed())

		taskStore = &mockTaskStore{}
		stageStore = &mockStageStore{
			getForOwnerFn: func(_ context.Context, stageID int64, _ string) (*model.Stage, error) {
				return &model.Stage{ID: stageID, Name: "a_fazer", BoardID: 10}, nil
			},
		}
		tagStore = &mockTagStore{
			getForOwnerFn: func(_ context.Context, tagID int64, _ string) (*model.Tag, error) {
				return &model.Tag{ID: tagID, Name: "urgente", WorkspaceID: 100}, nil
			},
		}
		txRunner = &mockTxRunner{
			withTxFn: func(_ context.Context, fn func(stores service.StoreProvider) error) error {
				return fn(&mockStoreProvider{
					stages: stageStore,
					tasks:  taskStore,
					tags:   tagStore,
				})
			},
		}
		svc = service.NewTaskService(taskStore, txRunner)
	})

	Describe("Create", func() {
		It("creates a task in a stage the owner can see", func() {
			var created *model.Task
			taskStore.createFn = func(_ context.Context, t *model.Task) error {
				created = t
				return nil
			}

			due := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
			task, err := svc.Create(ctx, "uid-1", service.CreateTaskInput{
				StageID:  5,
				Title:    "Write report",
				Position: 1,
				DueDate:  &due,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(created).NotTo(BeNil())
			Expect(task.ID).NotTo(BeZero())
			Expect(task.StageID).To(Equal(int64(5)))
			Expect(task.DueDate).To(HaveValue(Equal(due)))
		})

		It("refuses a stage that is not visible to the owner", func() {
			stageStore.getForOwnerFn = func(_ context.Context, _ int64, _ string) (*model.Stage, error) {
				return nil, store.ErrNotFound
			}

			var createCalls int
			taskStore.createFn = func(_ context.Context, _ *model.Task) error {
				createCalls++
				return nil
			}

			_, err := svc.Create(ctx, "uid-1", service.CreateTaskInput{StageID: 5, Title: "x"})

			Expect(err).To(MatchError(store.ErrNotFound))
			Expect(createCalls).To(BeZero())
		})
	})

	Describe("List", func() {
		It("attaches tag summaries to the listed tasks in one batch", func() {
			taskStore.listForOwnerFn = func(_ context.Context, _ string) ([]model.Task, error) {
				return []model.Task{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}, nil
			}

			var batched []int64
			taskStore.listTagsForTasksFn = func(_ context.Context, taskIDs []int64) (map[int64][]model.TagSummary, error) {
				batched = taskIDs
				return map[int64][]model.TagSummary{
					2: {{ID: 9, Name: "urgente", Color: "#3B82F6"}},
				}, nil
			}

			tasks, err := svc.List(ctx, "uid-1", nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(batched).To(Equal([]int64{1, 2}))
			Expect(tasks[0].Tags).To(BeEmpty())
			Expect(tasks[1].Tags).To(HaveLen(1))
			Expect(tasks[1].Tags[0].Name).To(Equal("urgente"))
		})

		It("skips the tag lookup when there are no tasks", func() {
			taskStore.listForOwnerFn = func(_ context.Context, _ string) ([]model.Task, error) {
				return []model.Task{}, nil
			}
			taskStore.listTagsForTasksFn = func(_ context.Context, _ []int64) (map[int64][]model.TagSummary, error) {
				Fail("unexpected tag lookup")
				return nil, nil
			}

			tasks, err := svc.List(ctx, "uid-1", nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(tasks).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		BeforeEach(func() {
			desc := "old description"
			taskStore.getForOwnerFn = func(_ context.Context, taskID int64, _ string) (*model.Task, error) {
				return &model.Task{ID: taskID, Title: "Old", Description: &desc, StageID: 5, Position: 3}, nil
			}
		})

		It("merges only the patched fields", func() {
			var saved *model.Task
			taskStore.updateFn = func(_ context.Context, t *model.Task) error {
				saved = t
				return nil
			}

			title := "New"
			task, err := svc.Update(ctx, 1, "uid-1", model.TaskPatch{Title: &title})

			Expect(err).NotTo(HaveOccurred())
			Expect(saved).NotTo(BeNil())
			Expect(task.Title).To(Equal("New"))
			Expect(task.Description).To(HaveValue(Equal("old description")))
			Expect(task.StageID).To(Equal(int64(5)))
			Expect(task.Position).To(Equal(int32(3)))
		})

		It("moves the task when the patch carries an owned stage", func() {
			var checkedStage int64
			stageStore.getForOwnerFn = func(_ context.Context, stageID int64, _ string) (*model.Stage, error) {
				checkedStage = stageID
				return &model.Stage{ID: stageID, BoardID: 10}, nil
			}

			stageID := int64(6)
			task, err := svc.Update(ctx, 1, "uid-1", model.TaskPatch{StageID: &stageID})

			Expect(err).NotTo(HaveOccurred())
			Expect(checkedStage).To(Equal(int64(6)))
			Expect(task.StageID).To(Equal(int64(6)))
		})

		It("rejects a stage change to a foreign stage without saving", func() {
			stageStore.getForOwnerFn = func(_ context.Context, _ int64, _ string) (*model.Stage, error) {
				return nil, store.ErrNotFound
			}

			stageID := int64(99)
			_, err := svc.Update(ctx, 1, "uid-1", model.TaskPatch{StageID: &stageID})

			Expect(err).To(MatchError(store.ErrNotFound))
			Expect(taskStore.updateCalls).To(BeZero())
		})

		It("skips the stage check when the stage is unchanged", func() {
			stageStore.getForOwnerFn = func(_ context.Context, _ int64, _ string) (*model.Stage, error) {
				Fail("unexpected stage lookup")
				return nil, nil
			}

			stageID := int64(5)
			task, err := svc.Update(ctx, 1, "uid-1", model.TaskPatch{StageID: &stageID})

			Expect(err).NotTo(HaveOccurred())
			Expect(task.StageID).To(Equal(int64(5)))
		})
	})

	Describe("Move", func() {
		BeforeEach(func() {
			taskStore.getForOwnerFn = func(_ context.Context, taskID int64, _ string) (*model.Task, error) {
				return &model.Task{ID: taskID, Title: "t", StageID: 5}, nil
			}
		})

		It("reassigns the task to the destination stage", func() {
			taskStore.updatePlacementFn = func(_ context.Context, taskID int64, placement model.TaskPlacement) (*model.Task, error) {
				return &model.Task{ID: taskID, Title: "t", StageID: placement.StageID, Position: placement.Position}, nil
			}

			task, err := svc.Move(ctx, 1, "uid-1", model.TaskPlacement{StageID: 6, Position: 0})

			Expect(err).NotTo(HaveOccurred())
			Expect(task.StageID).To(Equal(int64(6)))
			Expect(task.Position).To(Equal(int32(0)))
			Expect(taskStore.updateCalls).To(BeZero())
		})

		It("rejects a destination stage the owner cannot see", func() {
			stageStore.getForOwnerFn = func(_ context.Context, _ int64, _ string) (*model.Stage, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Move(ctx, 1, "uid-1", model.TaskPlacement{StageID: 99})

			Expect(err).To(MatchError(store.ErrNotFound))
			Expect(taskStore.updatePlacementCalls).To(BeZero())
		})

		It("rejects a task the owner cannot see", func() {
			taskStore.getForOwnerFn = func(_ context.Context, _ int64, _ string) (*model.Task, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Move(ctx, 1, "uid-1", model.TaskPlacement{StageID: 6})

			Expect(err).To(MatchError(store.ErrNotFound))
			Expect(taskStore.updatePlacementCalls).To(BeZero())
		})
	})

	Describe("AddTag", func() {
		BeforeEach(func() {
			taskStore.getForOwnerFn = func(_ context.Context, taskID int64, _ string) (*model.Task, error) {
				return &model.Task{ID: taskID}, nil
			}
		})

		It("links the tag after checking task and tag ownership", func() {
			err := svc.AddTag(ctx, 1, 9, "uid-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(taskStore.addTagCalls).To(Equal(1))
		})

		It("accepts a tag from another workspace of the same owner", func() {
			// Task and tag are checked independently against the owner;
			// nothing compares the tag's workspace with the task's chain.
			var checkedOwners []string
			tagStore.getForOwnerFn = func(_ context.Context, tagID int64, ownerUID string) (*model.Tag, error) {
				checkedOwners = append(checkedOwners, ownerUID)
				return &model.Tag{ID: tagID, Name: "urgente", WorkspaceID: 200}, nil
			}
			taskStore.getForOwnerFn = func(_ context.Context, taskID int64, ownerUID string) (*model.Task, error) {
				checkedOwners = append(checkedOwners, ownerUID)
				// stage 5 sits under workspace 100, not the tag's 200
				return &model.Task{ID: taskID, StageID: 5}, nil
			}

			err := svc.AddTag(ctx, 1, 9, "uid-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(taskStore.addTagCalls).To(Equal(1))
			Expect(checkedOwners).To(Equal([]string{"uid-1", "uid-1"}))
		})

		It("refuses a tag owned by someone else", func() {
			tagStore.getForOwnerFn = func(_ context.Context, _ int64, _ string) (*model.Tag, error) {
				return nil, store.ErrNotFound
			}

			err := svc.AddTag(ctx, 1, 9, "uid-1")

			Expect(err).To(MatchError(store.ErrNotFound))
			Expect(taskStore.addTagCalls).To(BeZero())
		})
	})

	Describe("RemoveTag", func() {
		BeforeEach(func() {
			taskStore.getForOwnerFn = func(_ context.Context, taskID int64, _ string) (*model.Task, error) {
				return &model.Task{ID: taskID}, nil
			}
		})

		It("unlinks the tag", func() {
			err := svc.RemoveTag(ctx, 1, 9, "uid-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(taskStore.removeTagCalls).To(Equal(1))
		})

		It("succeeds when the tag was not linked", func() {
			taskStore.removeTagFn = func(_ context.Context, _, _ int64) error {
				return store.ErrNotFound
			}

			err := svc.RemoveTag(ctx, 1, 9, "uid-1")

			Expect(err).NotTo(HaveOccurred())
		})
	})
})
