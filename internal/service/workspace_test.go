package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"organizame.app/api/common/id"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/service"
	"organizame.app/api/internal/store"
)

var _ = Describe("WorkspaceService", func() {
	var (
		ctx      context.Context
		wsStore  *mockWorkspaceStore
		txRunner *mockTxRunner
		svc      service.WorkspaceService
	)

	BeforeEach(func() {
		ctx = context.Background()
		Expect(id.Init(1)).To(Succeed())

		wsStore = &mockWorkspaceStore{}
		txRunner = &mockTxRunner{
			withTxFn: func(_ context.Context, fn func(stores service.StoreProvider) error) error {
				return fn(&mockStoreProvider{workspaces: wsStore})
			},
		}
		svc = service.NewWorkspaceService(wsStore, txRunner)
	})

	Describe("Create", func() {
		It("stamps the owner uid and a fresh id", func() {
			var created *model.Workspace
			wsStore.createFn = func(_ context.Context, ws *model.Workspace) error {
				created = ws
				return nil
			}

			ws, err := svc.Create(ctx, "uid-1", "Personal", nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(created).NotTo(BeNil())
			Expect(ws.ID).NotTo(BeZero())
			Expect(ws.OwnerUID).To(Equal("uid-1"))
			Expect(ws.Name).To(Equal("Personal"))
		})
	})

	Describe("Update", func() {
		It("keeps unpatched fields intact", func() {
			desc := "notes"
			wsStore.getForOwnerFn = func(_ context.Context, wsID int64, _ string) (*model.Workspace, error) {
				return &model.Workspace{ID: wsID, Name: "Old", Description: &desc, OwnerUID: "uid-1"}, nil
			}

			name := "New"
			ws, err := svc.Update(ctx, 1, "uid-1", model.WorkspacePatch{Name: &name})

			Expect(err).NotTo(HaveOccurred())
			Expect(ws.Name).To(Equal("New"))
			Expect(ws.Description).To(HaveValue(Equal("notes")))
		})

		It("returns not found for another owner's workspace", func() {
			wsStore.getForOwnerFn = func(_ context.Context, _ int64, _ string) (*model.Workspace, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Update(ctx, 1, "uid-2", model.WorkspacePatch{})

			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("Delete", func() {
		It("delegates to the store", func() {
			var deleted int64
			wsStore.deleteForOwnerFn = func(_ context.Context, wsID int64, _ string) error {
				deleted = wsID
				return nil
			}

			Expect(svc.Delete(ctx, 7, "uid-1")).To(Succeed())
			Expect(deleted).To(Equal(int64(7)))
		})
	})
})
