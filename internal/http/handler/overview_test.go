package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"organizame.app/api/internal/http/handler"
	"organizame.app/api/internal/model"
)

var _ = Describe("OverviewHandler", func() {
	var (
		router *gin.Engine
		svc    *mockOverviewService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockOverviewService{}
		h := handler.NewOverviewHandler(svc)
		router.GET("/overview", h.List)
	})

	It("defaults to the current week", func() {
		var gotPeriod model.OverviewPeriod
		svc.listFn = func(_ context.Context, _ string, period model.OverviewPeriod, refDate time.Time) ([]model.TaskOverview, error) {
			gotPeriod = period
			Expect(refDate).To(BeTemporally("~", time.Now(), time.Minute))
			return nil, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/overview", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotPeriod).To(Equal(model.PeriodWeek))
	})

	It("forwards an explicit period and ref date", func() {
		svc.listFn = func(_ context.Context, _ string, period model.OverviewPeriod, refDate time.Time) ([]model.TaskOverview, error) {
			Expect(period).To(Equal(model.PeriodMonth))
			Expect(refDate.Format("2006-01-02")).To(Equal("2025-06-15"))
			return nil, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/overview?period=month&ref_date=2025-06-15", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("rejects an unknown period", func() {
		req := httptest.NewRequest(http.MethodGet, "/overview?period=year", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("rejects a malformed ref date", func() {
		req := httptest.NewRequest(http.MethodGet, "/overview?ref_date=15-06-2025", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("flattens tasks with their board and workspace context", func() {
		due := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		svc.listFn = func(_ context.Context, _ string, _ model.OverviewPeriod, _ time.Time) ([]model.TaskOverview, error) {
			return []model.TaskOverview{
				{ID: 1, Title: "Write report", DueDate: &due, StageID: 5, StageName: "a_fazer", BoardID: 10, BoardName: "Sprint", WorkspaceID: 100, WorkspaceName: "Personal"},
				{ID: 2, Title: "No deadline", StageID: 5, StageName: "a_fazer", BoardID: 10, BoardName: "Sprint", WorkspaceID: 100, WorkspaceName: "Personal"},
			}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/overview", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(2))
		Expect(resp[0]["due_date"]).To(Equal("2025-06-10"))
		Expect(resp[0]["workspace_name"]).To(Equal("Personal"))
		Expect(resp[1]).NotTo(HaveKey("due_date"))
	})
})
